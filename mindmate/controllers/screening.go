package controllers

import (
	"context"
	"fmt"

	"mindmate/mindmate/services/severity"
	"mindmate/mindmate/sources/sqlite/dao"
	"mindmate/mindmate/sources/sqlite/models"
	"mindmate/mindmate/types"
)

type ScreeningController struct {
	screeningDAO *dao.ScreeningDAO
	severity     *severity.Service
}

func NewScreeningController(screeningDAO *dao.ScreeningDAO, svc *severity.Service) *ScreeningController {
	return &ScreeningController{
		screeningDAO: screeningDAO,
		severity:     svc,
	}
}

// Screen scores a completed PHQ-9 form. Every valid submission persists one
// result row, whatever the predicted label.
func (c *ScreeningController) Screen(ctx context.Context, username string, answers []int) (types.ScreeningResponse, error) {
	level, err := c.severity.PredictSeverity(answers)
	if err != nil {
		return types.ScreeningResponse{}, fmt.Errorf("%w: %v", ErrInvalidAnswers, err)
	}
	total := 0
	for _, a := range answers {
		total += a
	}
	if _, err := c.screeningDAO.RecordScreening(ctx, username, total, level); err != nil {
		return types.ScreeningResponse{}, err
	}
	return types.ScreeningResponse{
		TotalScore:     total,
		PredictedLevel: level,
		SupportPlan:    severity.SupportPlan(level),
	}, nil
}

func (c *ScreeningController) ListScreenings(ctx context.Context, username string) ([]models.ScreeningResult, error) {
	return c.screeningDAO.ListScreenings(ctx, username)
}
