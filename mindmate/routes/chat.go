package routes

import (
	"encoding/json"
	"net/http"

	"mindmate/mindmate/config"
	"mindmate/mindmate/controllers"
	"mindmate/mindmate/middlewares"
	"mindmate/mindmate/session"
	"mindmate/mindmate/types"

	"github.com/coder/websocket"
	"github.com/go-chi/chi/v5"
)

func ChatRoutes(ctrl *controllers.ChatController, cfg config.Config, sessions *session.Store) chi.Router {
	r := chi.NewRouter()

	r.Group(func(gr chi.Router) {
		gr.Use(middlewares.AuthMiddleware(cfg, sessions))

		gr.Post("/", handleJSON(func(r *http.Request) (any, int, error) {
			var req types.ChatRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				return nil, http.StatusBadRequest, err
			}
			username, sessionID := sessionFrom(r)
			response, err := ctrl.Chat(r.Context(), sessionID, username, req.Message)
			if err != nil {
				return nil, statusFor(err), err
			}
			return types.ChatResponse{Response: response}, http.StatusOK, nil
		}))
	})

	// Streaming variant: the first frame carries the token and the message,
	// chunks of the reply flow back as text frames.
	r.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
		if err != nil {
			return
		}
		defer conn.Close(websocket.StatusInternalError, "internal error")

		ctx := r.Context()
		typ, data, err := conn.Read(ctx)
		if err != nil {
			return
		}
		if typ != websocket.MessageText {
			conn.Close(websocket.StatusUnsupportedData, "unsupported data")
			return
		}
		var input struct {
			Token   string `json:"token"`
			Message string `json:"message"`
		}
		if err := json.Unmarshal(data, &input); err != nil {
			conn.Write(ctx, websocket.MessageText, []byte(`{"error":"invalid json"}`))
			return
		}

		username, sessionID, err := middlewares.ParseToken(cfg, input.Token)
		if err != nil {
			conn.Write(ctx, websocket.MessageText, []byte(`{"error":"invalid token"}`))
			conn.Close(websocket.StatusPolicyViolation, "invalid token")
			return
		}
		if sessions.Get(sessionID) == nil {
			conn.Write(ctx, websocket.MessageText, []byte(`{"error":"session expired"}`))
			conn.Close(websocket.StatusPolicyViolation, "session expired")
			return
		}

		ch, errCh := ctrl.ChatStream(ctx, sessionID, username, input.Message)
		go func() {
			if err := <-errCh; err != nil {
				conn.Write(ctx, websocket.MessageText, []byte(`{"error":"`+err.Error()+`"}`))
				conn.Close(websocket.StatusInternalError, "stream error")
			}
		}()

		for chunk := range ch {
			if err := conn.Write(ctx, websocket.MessageText, []byte(chunk)); err != nil {
				return
			}
		}
		conn.Close(websocket.StatusNormalClosure, "")
	})

	return r
}
