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

func AuthRoutes(ctrl *controllers.AuthController, cfg config.Config, sessions *session.Store) chi.Router {
	r := chi.NewRouter()

	r.Post("/signup", handleJSON(func(r *http.Request) (any, int, error) {
		var req types.SignupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, http.StatusBadRequest, err
		}
		if err := ctrl.Signup(r.Context(), req.Username, req.Password); err != nil {
			return nil, statusFor(err), err
		}
		return map[string]string{"message": "account created, you can log in now"}, http.StatusCreated, nil
	}))

	r.Post("/login", handleJSON(func(r *http.Request) (any, int, error) {
		var req types.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, http.StatusBadRequest, err
		}
		token, err := ctrl.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			return nil, statusFor(err), err
		}
		return types.LoginResponse{Token: token, Username: req.Username}, http.StatusOK, nil
	}))

	r.Group(func(gr chi.Router) {
		gr.Use(middlewares.AuthMiddleware(cfg, sessions))
		gr.Post("/logout", handleJSON(func(r *http.Request) (any, int, error) {
			_, sessionID := sessionFrom(r)
			ctrl.Logout(sessionID)
			return map[string]string{"message": "logged out"}, http.StatusOK, nil
		}))
	})

	return r
}
