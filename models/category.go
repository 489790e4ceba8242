package models

import (
	"time"

	"github.com/granaflow/granaflow/types"
)

type Category struct {
	ID        uint64                `json:"id" gorm:"primaryKey"`
	UserID    uint64                `json:"user_id"`
	Name      string                `json:"name"`
	Type      types.TransactionType `json:"type"`
	Color     string                `json:"color"`
	Icon      string                `json:"icon"`
	IsDefault bool                  `json:"is_default"`
	CreatedAt time.Time             `json:"created_at"`
}
