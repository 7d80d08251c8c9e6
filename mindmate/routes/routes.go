package routes

import (
	"encoding/json"
	"errors"
	"net/http"

	"mindmate/mindmate/controllers"
	"mindmate/mindmate/middlewares"
	"mindmate/mindmate/sources/sqlite/dao"
)

// generic wrapper to reduce boilerplate
func handleJSON(handler func(r *http.Request) (any, int, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, status, err := handler(r)
		if err != nil {
			http.Error(w, err.Error(), status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(res)
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, controllers.ErrEmptyInput),
		errors.Is(err, controllers.ErrInvalidAnswers):
		return http.StatusBadRequest
	case errors.Is(err, controllers.ErrInvalidCredentials),
		errors.Is(err, controllers.ErrSessionExpired):
		return http.StatusUnauthorized
	case errors.Is(err, controllers.ErrMoodAlreadySubmitted),
		errors.Is(err, dao.ErrUsernameTaken):
		return http.StatusConflict
	case errors.Is(err, controllers.ErrAssistantUnavailable):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func sessionFrom(r *http.Request) (username, sessionID string) {
	username, _ = r.Context().Value(middlewares.UsernameKey).(string)
	sessionID, _ = r.Context().Value(middlewares.SessionIDKey).(string)
	return username, sessionID
}
