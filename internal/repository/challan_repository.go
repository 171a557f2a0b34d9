package repository

import (
	"context"

	"github.com/pfportal/employer-api/internal/models"
	"gorm.io/gorm"
)

// ChallanRepository defines the interface for challan data access
type ChallanRepository interface {
	Create(ctx context.Context, challan *models.Challan) error
	Update(ctx context.Context, challan *models.Challan) error
	FindByID(ctx context.Context, employerID, id uint) (*models.Challan, error)
	FindByReturnFileID(ctx context.Context, returnFileID uint) (*models.Challan, error)
	FindByEmployer(ctx context.Context, employerID uint) ([]models.Challan, error)
	FindDue(ctx context.Context, employerID uint) ([]models.Challan, error)
	FindAllDue(ctx context.Context) ([]models.Challan, error)
	SumDueAmount(ctx context.Context, employerID uint) (float64, error)
}

type challanRepository struct {
	db *gorm.DB
}

// NewChallanRepository creates a new challan repository
func NewChallanRepository(db *gorm.DB) ChallanRepository {
	return &challanRepository{db: db}
}

func (r *challanRepository) Create(ctx context.Context, challan *models.Challan) error {
	return r.db.WithContext(ctx).Create(challan).Error
}

func (r *challanRepository) Update(ctx context.Context, challan *models.Challan) error {
	return r.db.WithContext(ctx).Save(challan).Error
}

func (r *challanRepository) FindByID(ctx context.Context, employerID, id uint) (*models.Challan, error) {
	var challan models.Challan
	err := r.db.WithContext(ctx).
		Where("employer_id = ?", employerID).
		First(&challan, id).Error
	if err != nil {
		return nil, err
	}
	return &challan, nil
}

func (r *challanRepository) FindByReturnFileID(ctx context.Context, returnFileID uint) (*models.Challan, error) {
	var challan models.Challan
	err := r.db.WithContext(ctx).
		Where("return_file_id = ?", returnFileID).
		First(&challan).Error
	if err != nil {
		return nil, err
	}
	return &challan, nil
}

func (r *challanRepository) FindByEmployer(ctx context.Context, employerID uint) ([]models.Challan, error) {
	var challans []models.Challan
	err := r.db.WithContext(ctx).
		Where("employer_id = ?", employerID).
		Order("created_at DESC").
		Find(&challans).Error
	return challans, err
}

func (r *challanRepository) FindDue(ctx context.Context, employerID uint) ([]models.Challan, error) {
	var challans []models.Challan
	err := r.db.WithContext(ctx).
		Where("employer_id = ? AND status = ?", employerID, models.ChallanStatusDue).
		Order("created_at DESC").
		Find(&challans).Error
	return challans, err
}

// FindAllDue loads due challans across employers, with the employer preloaded
// for reminder notifications.
func (r *challanRepository) FindAllDue(ctx context.Context) ([]models.Challan, error) {
	var challans []models.Challan
	err := r.db.WithContext(ctx).
		Preload("Employer").
		Where("status = ?", models.ChallanStatusDue).
		Find(&challans).Error
	return challans, err
}

func (r *challanRepository) SumDueAmount(ctx context.Context, employerID uint) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&models.Challan{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Where("employer_id = ? AND status = ?", employerID, models.ChallanStatusDue).
		Scan(&total).Error
	return total, err
}
