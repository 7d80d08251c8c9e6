package controllers

import (
	"context"
	"strings"
	"time"

	"mindmate/mindmate/config"
	"mindmate/mindmate/session"
	"mindmate/mindmate/sources/sqlite/dao"

	"github.com/golang-jwt/jwt/v5"
)

type AuthController struct {
	userDAO  *dao.UserDAO
	sessions *session.Store
	cfg      config.Config
}

func NewAuthController(userDAO *dao.UserDAO, sessions *session.Store, cfg config.Config) *AuthController {
	return &AuthController{
		userDAO:  userDAO,
		sessions: sessions,
		cfg:      cfg,
	}
}

func (c *AuthController) Signup(ctx context.Context, username, password string) error {
	if strings.TrimSpace(username) == "" || password == "" {
		return ErrEmptyInput
	}
	_, err := c.userDAO.CreateUser(ctx, username, password)
	return err
}

// Login authenticates and opens a fresh session; the returned token carries
// both the username and the session id, so logout can invalidate it.
func (c *AuthController) Login(ctx context.Context, username, password string) (string, error) {
	user, err := c.userDAO.Authenticate(ctx, username, password)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrInvalidCredentials
	}
	state := c.sessions.Create(user.Username)
	claims := jwt.MapClaims{
		"username":   user.Username,
		"session_id": state.ID,
		"exp":        time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(c.cfg.JWTSecret))
}

// Logout drops the whole session unconditionally.
func (c *AuthController) Logout(sessionID string) {
	c.sessions.Delete(sessionID)
}
