package controllers

import (
	"context"
	"errors"
	"testing"

	"mindmate/mindmate/config"
	"mindmate/mindmate/middlewares"
	"mindmate/mindmate/session"
	"mindmate/mindmate/sources/sqlite/dao"
)

func setupAuthEnv(t *testing.T) (*AuthController, *session.Store, config.Config) {
	t.Helper()
	db := testDB(t)
	cfg := config.Config{JWTSecret: "test-secret"}
	sessions := session.NewStore()
	return NewAuthController(dao.NewUserDAO(db), sessions, cfg), sessions, cfg
}

func TestSignupThenLogin(t *testing.T) {
	ctrl, sessions, cfg := setupAuthEnv(t)
	ctx := context.Background()

	if err := ctrl.Signup(ctx, "aditi", "secret"); err != nil {
		t.Fatalf("Signup: %v", err)
	}

	token, err := ctrl.Login(ctx, "aditi", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	username, sessionID, err := middlewares.ParseToken(cfg, token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if username != "aditi" {
		t.Errorf("expected username claim aditi, got %s", username)
	}
	state := sessions.Get(sessionID)
	if state == nil {
		t.Fatal("login should open a session")
	}
	if state.Submitted || state.Sentiment != "" {
		t.Errorf("fresh session should be awaiting mood: %+v", state)
	}
}

func TestSignupDuplicateUsername(t *testing.T) {
	ctrl, _, _ := setupAuthEnv(t)
	ctx := context.Background()

	if err := ctrl.Signup(ctx, "aditi", "secret"); err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if err := ctrl.Signup(ctx, "aditi", "other"); !errors.Is(err, dao.ErrUsernameTaken) {
		t.Errorf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	ctrl, _, _ := setupAuthEnv(t)
	ctx := context.Background()

	if err := ctrl.Signup(ctx, "aditi", "secret"); err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if _, err := ctrl.Login(ctx, "aditi", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := ctrl.Login(ctx, "nobody", "secret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown user: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogoutClearsSessionAndRelogStartsFresh(t *testing.T) {
	ctrl, sessions, cfg := setupAuthEnv(t)
	ctx := context.Background()

	if err := ctrl.Signup(ctx, "aditi", "secret"); err != nil {
		t.Fatalf("Signup: %v", err)
	}
	token, err := ctrl.Login(ctx, "aditi", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	_, sessionID, _ := middlewares.ParseToken(cfg, token)

	sessions.SetMood(sessionID, "Negative")
	sessions.AppendTurn(sessionID, "hi", "hello")

	ctrl.Logout(sessionID)
	if sessions.Get(sessionID) != nil {
		t.Fatal("logout should destroy the session")
	}

	token2, err := ctrl.Login(ctx, "aditi", "secret")
	if err != nil {
		t.Fatalf("second Login: %v", err)
	}
	_, sessionID2, _ := middlewares.ParseToken(cfg, token2)
	state := sessions.Get(sessionID2)
	if state.Submitted || state.Sentiment != "" || len(state.Transcript) != 0 {
		t.Errorf("relogin carries residual state: %+v", state)
	}
}

func TestSignupRejectsEmptyFields(t *testing.T) {
	ctrl, _, _ := setupAuthEnv(t)
	ctx := context.Background()

	if err := ctrl.Signup(ctx, "  ", "secret"); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("blank username: expected ErrEmptyInput, got %v", err)
	}
	if err := ctrl.Signup(ctx, "aditi", ""); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("empty password: expected ErrEmptyInput, got %v", err)
	}
}
