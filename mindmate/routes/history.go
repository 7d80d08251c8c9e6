package routes

import (
	"net/http"

	"mindmate/mindmate/config"
	"mindmate/mindmate/controllers"
	"mindmate/mindmate/middlewares"
	"mindmate/mindmate/session"

	"github.com/go-chi/chi/v5"
)

// HistoryRoutes exposes the recency-ordered activity listings.
func HistoryRoutes(moodCtrl *controllers.MoodController, chatCtrl *controllers.ChatController, screeningCtrl *controllers.ScreeningController, cfg config.Config, sessions *session.Store) chi.Router {
	r := chi.NewRouter()
	r.Use(middlewares.AuthMiddleware(cfg, sessions))

	r.Get("/chat", handleJSON(func(r *http.Request) (any, int, error) {
		username, _ := sessionFrom(r)
		turns, err := chatCtrl.ListChatHistory(r.Context(), username)
		if err != nil {
			return nil, http.StatusInternalServerError, err
		}
		return turns, http.StatusOK, nil
	}))

	r.Get("/moods", handleJSON(func(r *http.Request) (any, int, error) {
		username, _ := sessionFrom(r)
		entries, err := moodCtrl.ListMoods(r.Context(), username)
		if err != nil {
			return nil, http.StatusInternalServerError, err
		}
		return entries, http.StatusOK, nil
	}))

	r.Get("/screenings", handleJSON(func(r *http.Request) (any, int, error) {
		username, _ := sessionFrom(r)
		results, err := screeningCtrl.ListScreenings(r.Context(), username)
		if err != nil {
			return nil, http.StatusInternalServerError, err
		}
		return results, http.StatusOK, nil
	}))

	return r
}
