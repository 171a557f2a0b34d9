package repository

import (
	"context"

	"github.com/pfportal/employer-api/internal/models"
	"gorm.io/gorm"
)

// ReturnRepository defines the interface for return file data access
type ReturnRepository interface {
	Create(ctx context.Context, returnFile *models.ReturnFile) error
	Update(ctx context.Context, returnFile *models.ReturnFile) error
	FindByID(ctx context.Context, employerID, id uint) (*models.ReturnFile, error)
	FindByTRRN(ctx context.Context, trrn string) (*models.ReturnFile, error)
	FindInProcess(ctx context.Context, employerID uint, wageMonth string) ([]models.ReturnFile, error)
	FindRecent(ctx context.Context, employerID uint, wageMonth string, limit int) ([]models.ReturnFile, error)
	HasOpenReturn(ctx context.Context, employerID uint, wageMonth string) (bool, error)
	FindByWageMonths(ctx context.Context, employerID uint, wageMonths []string) ([]models.ReturnFile, error)
	CountByStatus(ctx context.Context, employerID uint) (map[string]int64, error)
}

type returnRepository struct {
	db *gorm.DB
}

// NewReturnRepository creates a new return repository
func NewReturnRepository(db *gorm.DB) ReturnRepository {
	return &returnRepository{db: db}
}

func (r *returnRepository) Create(ctx context.Context, returnFile *models.ReturnFile) error {
	return r.db.WithContext(ctx).Create(returnFile).Error
}

func (r *returnRepository) Update(ctx context.Context, returnFile *models.ReturnFile) error {
	return r.db.WithContext(ctx).Save(returnFile).Error
}

func (r *returnRepository) FindByID(ctx context.Context, employerID, id uint) (*models.ReturnFile, error) {
	var returnFile models.ReturnFile
	err := r.db.WithContext(ctx).
		Where("employer_id = ?", employerID).
		First(&returnFile, id).Error
	if err != nil {
		return nil, err
	}
	return &returnFile, nil
}

func (r *returnRepository) FindByTRRN(ctx context.Context, trrn string) (*models.ReturnFile, error) {
	var returnFile models.ReturnFile
	err := r.db.WithContext(ctx).
		Where("trrn = ?", trrn).
		First(&returnFile).Error
	if err != nil {
		return nil, err
	}
	return &returnFile, nil
}

func (r *returnRepository) FindInProcess(ctx context.Context, employerID uint, wageMonth string) ([]models.ReturnFile, error) {
	var files []models.ReturnFile
	db := r.db.WithContext(ctx).
		Where("employer_id = ? AND status = ?", employerID, models.ReturnStatusInProcess)
	if wageMonth != "" {
		db = db.Where("wage_month = ?", wageMonth)
	}
	err := db.Order("uploaded_on DESC").Find(&files).Error
	return files, err
}

func (r *returnRepository) FindRecent(ctx context.Context, employerID uint, wageMonth string, limit int) ([]models.ReturnFile, error) {
	var files []models.ReturnFile
	db := r.db.WithContext(ctx).
		Where("employer_id = ? AND status IN ?", employerID,
			[]string{models.ReturnStatusApproved, models.ReturnStatusRejected})
	if wageMonth != "" {
		db = db.Where("wage_month = ?", wageMonth)
	}
	if limit > 0 {
		db = db.Limit(limit)
	}
	err := db.Order("uploaded_on DESC").Find(&files).Error
	return files, err
}

// HasOpenReturn reports whether a wage month already holds a return that
// blocks re-upload (in-process or approved; rejected frees the month).
func (r *returnRepository) HasOpenReturn(ctx context.Context, employerID uint, wageMonth string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.ReturnFile{}).
		Where("employer_id = ? AND wage_month = ? AND status IN ?", employerID, wageMonth,
			[]string{models.ReturnStatusInProcess, models.ReturnStatusApproved}).
		Count(&count).Error
	return count > 0, err
}

func (r *returnRepository) FindByWageMonths(ctx context.Context, employerID uint, wageMonths []string) ([]models.ReturnFile, error) {
	var files []models.ReturnFile
	err := r.db.WithContext(ctx).
		Where("employer_id = ? AND wage_month IN ?", employerID, wageMonths).
		Order("uploaded_on DESC").
		Find(&files).Error
	return files, err
}

func (r *returnRepository) CountByStatus(ctx context.Context, employerID uint) (map[string]int64, error) {
	type statusCount struct {
		Status string
		Count  int64
	}
	var rows []statusCount
	err := r.db.WithContext(ctx).Model(&models.ReturnFile{}).
		Select("status, COUNT(*) as count").
		Where("employer_id = ?", employerID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
