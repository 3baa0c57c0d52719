package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type SavedResume struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Title     string         `gorm:"type:text;not null" json:"title"`
	Template  string         `gorm:"type:text;not null;default:'modern'" json:"template"`
	Data      datatypes.JSON `gorm:"type:jsonb;not null" json:"data"`
	CreatedAt time.Time      `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"type:timestamp;default:now()" json:"updated_at"`
}

func (SavedResume) TableName() string {
	return "saved_resumes"
}
