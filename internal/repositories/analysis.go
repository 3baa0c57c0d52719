package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"resume-builder/internal/models"
)

type AnalysisRepository interface {
	Create(analysis *models.ResumeAnalysis) error
	FindByUser(userID uuid.UUID) ([]models.ResumeAnalysis, error)
}

type analysisRepository struct {
	db *gorm.DB
}

func NewAnalysisRepository(db *gorm.DB) AnalysisRepository {
	return &analysisRepository{db: db}
}

// Create implements AnalysisRepository.
func (r *analysisRepository) Create(analysis *models.ResumeAnalysis) error {
	if err := r.db.Create(analysis).Error; err != nil {
		return fmt.Errorf("failed to create analysis: %w", err)
	}

	return nil
}

// FindByUser implements AnalysisRepository. Newest first.
func (r *analysisRepository) FindByUser(userID uuid.UUID) ([]models.ResumeAnalysis, error) {
	var analyses []models.ResumeAnalysis
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&analyses).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find analyses: %w", err)
	}

	return analyses, nil
}
