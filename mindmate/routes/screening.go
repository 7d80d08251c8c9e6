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

func ScreeningRoutes(ctrl *controllers.ScreeningController, cfg config.Config, sessions *session.Store) chi.Router {
	r := chi.NewRouter()
	r.Use(middlewares.AuthMiddleware(cfg, sessions))

	r.Post("/", handleJSON(func(r *http.Request) (any, int, error) {
		var req types.ScreeningRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, http.StatusBadRequest, err
		}
		username, _ := sessionFrom(r)
		resp, err := ctrl.Screen(r.Context(), username, req.Answers)
		if err != nil {
			return nil, statusFor(err), err
		}
		return resp, http.StatusOK, nil
	}))

	return r
}
