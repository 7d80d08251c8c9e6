package dao

import (
	"context"
	"mindmate/mindmate/sources/sqlite/models"

	"gorm.io/gorm"
)

type ScreeningDAO struct {
	DB *gorm.DB
}

func NewScreeningDAO(db *gorm.DB) *ScreeningDAO {
	return &ScreeningDAO{DB: db}
}

func (dao *ScreeningDAO) RecordScreening(ctx context.Context, username string, score int, level string) (*models.ScreeningResult, error) {
	result := models.ScreeningResult{
		Username:   username,
		TotalScore: score,
		Level:      level,
	}
	if err := dao.DB.WithContext(ctx).Create(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (dao *ScreeningDAO) ListScreenings(ctx context.Context, username string) ([]models.ScreeningResult, error) {
	var results []models.ScreeningResult
	err := dao.DB.WithContext(ctx).
		Where("username = ?", username).
		Order("created_at DESC").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
