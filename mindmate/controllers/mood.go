package controllers

import (
	"context"
	"strings"

	"mindmate/mindmate/services/sentiment"
	"mindmate/mindmate/services/suggest"
	"mindmate/mindmate/session"
	"mindmate/mindmate/sources/sqlite/dao"
	"mindmate/mindmate/sources/sqlite/models"
	"mindmate/mindmate/types"
)

type MoodController struct {
	moodDAO    *dao.MoodDAO
	classifier *sentiment.Classifier
	suggester  *suggest.Service
	sessions   *session.Store
}

func NewMoodController(moodDAO *dao.MoodDAO, classifier *sentiment.Classifier, suggester *suggest.Service, sessions *session.Store) *MoodController {
	return &MoodController{
		moodDAO:    moodDAO,
		classifier: classifier,
		suggester:  suggester,
		sessions:   sessions,
	}
}

// SubmitMood runs the awaiting-mood -> submitted transition: classify,
// persist, cache, then fetch suggestions. An empty note is rejected before
// anything is written; the state machine does not move.
func (c *MoodController) SubmitMood(ctx context.Context, sessionID, username, note string) (types.MoodResponse, error) {
	state := c.sessions.Get(sessionID)
	if state == nil {
		return types.MoodResponse{}, ErrSessionExpired
	}
	if state.Submitted {
		return types.MoodResponse{}, ErrMoodAlreadySubmitted
	}
	if strings.TrimSpace(note) == "" {
		return types.MoodResponse{}, ErrEmptyInput
	}

	label := c.classifier.Classify(note)
	if _, err := c.moodDAO.RecordMood(ctx, username, string(label), note); err != nil {
		return types.MoodResponse{}, err
	}
	c.sessions.SetMood(sessionID, string(label))

	// Suggestion generation degrades internally and never fails the submit.
	suggestions := c.suggester.Suggest(ctx, label)

	return types.MoodResponse{
		Sentiment:   string(label),
		Suggestions: suggestions,
	}, nil
}

// StartOver returns the session to awaiting-mood; persisted entries stay.
func (c *MoodController) StartOver(sessionID string) error {
	if !c.sessions.ResetMood(sessionID) {
		return ErrSessionExpired
	}
	return nil
}

func (c *MoodController) MoodState(sessionID string) (types.MoodStateResponse, error) {
	state := c.sessions.Get(sessionID)
	if state == nil {
		return types.MoodStateResponse{}, ErrSessionExpired
	}
	return types.MoodStateResponse{
		Submitted: state.Submitted,
		Sentiment: state.Sentiment,
	}, nil
}

// Uplift handles the Negative-mood follow-up menu.
func (c *MoodController) Uplift(action, journalText string) (suggest.UpliftResult, error) {
	return suggest.Uplift(action, journalText)
}

func (c *MoodController) ListMoods(ctx context.Context, username string) ([]models.MoodEntry, error) {
	return c.moodDAO.ListMoods(ctx, username)
}
