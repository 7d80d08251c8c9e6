package dao

import (
	"context"
	"mindmate/mindmate/sources/sqlite/models"

	"gorm.io/gorm"
)

type ChatDAO struct {
	DB *gorm.DB
}

func NewChatDAO(db *gorm.DB) *ChatDAO {
	return &ChatDAO{DB: db}
}

func (dao *ChatDAO) RecordChatTurn(ctx context.Context, username, message, response string) (*models.ChatTurn, error) {
	turn := models.ChatTurn{
		Username: username,
		Message:  message,
		Response: response,
	}
	if err := dao.DB.WithContext(ctx).Create(&turn).Error; err != nil {
		return nil, err
	}
	return &turn, nil
}

// ListChatHistory returns every turn for the user, newest first.
func (dao *ChatDAO) ListChatHistory(ctx context.Context, username string) ([]models.ChatTurn, error) {
	var turns []models.ChatTurn
	err := dao.DB.WithContext(ctx).
		Where("username = ?", username).
		Order("created_at DESC").
		Find(&turns).Error
	if err != nil {
		return nil, err
	}
	return turns, nil
}

func (dao *ChatDAO) CountChatTurns(ctx context.Context, username string) (int64, error) {
	var n int64
	err := dao.DB.WithContext(ctx).
		Model(&models.ChatTurn{}).
		Where("username = ?", username).
		Count(&n).Error
	return n, err
}
