package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ResumeAnalysis struct {
	ID               uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID           uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	ResumeText       string         `gorm:"type:text;not null" json:"resume_text"`
	JobDescription   *string        `gorm:"type:text" json:"job_description,omitempty"`
	ATSScore         int            `gorm:"not null" json:"ats_score"`
	KeywordMatch     int            `gorm:"not null" json:"keyword_match_score"`
	FormatScore      int            `gorm:"not null" json:"format_score"`
	ContentScore     int            `gorm:"not null" json:"content_score"`
	ReadabilityScore int            `gorm:"not null" json:"readability_score"`
	ImpactScore      int            `gorm:"not null" json:"impact_score"`
	OverallFeedback  string         `gorm:"type:text" json:"overall_feedback"`
	Suggestions      datatypes.JSON `gorm:"type:jsonb" json:"suggestions"`
	KeywordAnalysis  datatypes.JSON `gorm:"type:jsonb" json:"keyword_analysis"`
	CreatedAt        time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (ResumeAnalysis) TableName() string {
	return "resume_analyses"
}
