package routes

import (
	"encoding/json"
	"net/http"

	"mindmate/mindmate/config"
	"mindmate/mindmate/controllers"
	"mindmate/mindmate/middlewares"
	"mindmate/mindmate/session"
	"mindmate/mindmate/types"

	"github.com/go-chi/chi/v5"
)

func MoodRoutes(ctrl *controllers.MoodController, cfg config.Config, sessions *session.Store) chi.Router {
	r := chi.NewRouter()
	r.Use(middlewares.AuthMiddleware(cfg, sessions))

	r.Post("/", func(w http.ResponseWriter, r *http.Request) {
		var req types.MoodRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		username, sessionID := sessionFrom(r)
		resp, err := ctrl.SubmitMood(r.Context(), sessionID, username, req.Note)
		if err != nil {
			status := statusFor(err)
			if status == http.StatusInternalServerError {
				// Echo the note back so the client can keep what was typed.
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(status)
				json.NewEncoder(w).Encode(map[string]string{
					"error": "could not save your entry, please try again",
					"note":  req.Note,
				})
				return
			}
			http.Error(w, err.Error(), status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	})

	r.Post("/reset", handleJSON(func(r *http.Request) (any, int, error) {
		_, sessionID := sessionFrom(r)
		if err := ctrl.StartOver(sessionID); err != nil {
			return nil, statusFor(err), err
		}
		return types.MoodStateResponse{Submitted: false}, http.StatusOK, nil
	}))

	r.Get("/state", handleJSON(func(r *http.Request) (any, int, error) {
		_, sessionID := sessionFrom(r)
		state, err := ctrl.MoodState(sessionID)
		if err != nil {
			return nil, statusFor(err), err
		}
		return state, http.StatusOK, nil
	}))

	r.Post("/uplift/{action}", handleJSON(func(r *http.Request) (any, int, error) {
		var req types.UpliftRequest
		// Body is optional; only the journal action carries text.
		_ = json.NewDecoder(r.Body).Decode(&req)
		result, err := ctrl.Uplift(chi.URLParam(r, "action"), req.JournalText)
		if err != nil {
			return nil, http.StatusBadRequest, err
		}
		return result, http.StatusOK, nil
	}))

	return r
}
