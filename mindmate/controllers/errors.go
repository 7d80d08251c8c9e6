package controllers

import "errors"

// Sentinel errors the routes map to status codes. Everything else is a 500.
var (
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrEmptyInput           = errors.New("empty input")
	ErrSessionExpired       = errors.New("session expired")
	ErrMoodAlreadySubmitted = errors.New("mood already submitted, start over first")
	ErrInvalidAnswers       = errors.New("invalid screening answers")
	ErrAssistantUnavailable = errors.New("assistant unavailable")
)
