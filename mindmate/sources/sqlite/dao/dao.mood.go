package dao

import (
	"context"
	"mindmate/mindmate/sources/sqlite/models"

	"gorm.io/gorm"
)

type MoodDAO struct {
	DB *gorm.DB
}

func NewMoodDAO(db *gorm.DB) *MoodDAO {
	return &MoodDAO{DB: db}
}

func (dao *MoodDAO) RecordMood(ctx context.Context, username, sentiment, note string) (*models.MoodEntry, error) {
	entry := models.MoodEntry{
		Username:  username,
		Sentiment: sentiment,
		Note:      note,
	}
	if err := dao.DB.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (dao *MoodDAO) ListMoods(ctx context.Context, username string) ([]models.MoodEntry, error) {
	var entries []models.MoodEntry
	err := dao.DB.WithContext(ctx).
		Where("username = ?", username).
		Order("created_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (dao *MoodDAO) CountMoods(ctx context.Context, username string) (int64, error) {
	var n int64
	err := dao.DB.WithContext(ctx).
		Model(&models.MoodEntry{}).
		Where("username = ?", username).
		Count(&n).Error
	return n, err
}
