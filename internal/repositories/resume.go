package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"resume-builder/internal/models"
)

var ErrResumeNotFound = fmt.Errorf("resume not found")

type ResumeRepository interface {
	Create(resume *models.SavedResume) error
	Update(resume *models.SavedResume) error
	FindByUser(userID uuid.UUID) ([]models.SavedResume, error)
	FindByID(id, userID uuid.UUID) (*models.SavedResume, error)
	Delete(id, userID uuid.UUID) error
	Duplicate(id, userID uuid.UUID) (*models.SavedResume, error)
}

type resumeRepository struct {
	db *gorm.DB
}

func NewResumeRepository(db *gorm.DB) ResumeRepository {
	return &resumeRepository{db: db}
}

// Create implements ResumeRepository.
func (r *resumeRepository) Create(resume *models.SavedResume) error {
	if err := r.db.Create(resume).Error; err != nil {
		return fmt.Errorf("failed to create resume: %w", err)
	}

	return nil
}

// Update implements ResumeRepository.
func (r *resumeRepository) Update(resume *models.SavedResume) error {
	resume.UpdatedAt = time.Now()
	result := r.db.Model(&models.SavedResume{}).
		Where("id = ? AND user_id = ?", resume.ID, resume.UserID).
		Updates(map[string]interface{}{
			"title":      resume.Title,
			"template":   resume.Template,
			"data":       resume.Data,
			"updated_at": resume.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update resume: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrResumeNotFound
	}

	return nil
}

// FindByUser implements ResumeRepository. Most recently edited first.
func (r *resumeRepository) FindByUser(userID uuid.UUID) ([]models.SavedResume, error) {
	var resumes []models.SavedResume
	err := r.db.
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&resumes).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find resumes: %w", err)
	}

	return resumes, nil
}

// FindByID implements ResumeRepository.
func (r *resumeRepository) FindByID(id, userID uuid.UUID) (*models.SavedResume, error) {
	var resume models.SavedResume
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&resume).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrResumeNotFound
		}

		return nil, fmt.Errorf("failed to find resume: %w", err)
	}

	return &resume, nil
}

// Delete implements ResumeRepository.
func (r *resumeRepository) Delete(id, userID uuid.UUID) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.SavedResume{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete resume: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrResumeNotFound
	}

	return nil
}

// Duplicate implements ResumeRepository. The copy gets a fresh id and
// " (Copy)" appended to the title.
func (r *resumeRepository) Duplicate(id, userID uuid.UUID) (*models.SavedResume, error) {
	original, err := r.FindByID(id, userID)
	if err != nil {
		return nil, err
	}

	copy := &models.SavedResume{
		UserID:   original.UserID,
		Title:    original.Title + " (Copy)",
		Template: original.Template,
		Data:     original.Data,
	}

	if err := r.db.Create(copy).Error; err != nil {
		return nil, fmt.Errorf("failed to duplicate resume: %w", err)
	}

	return copy, nil
}
