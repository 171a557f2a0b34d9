package repository

import (
	"context"

	"github.com/pfportal/employer-api/internal/models"
	"gorm.io/gorm"
)

// MemberRepository defines the interface for member roster data access
type MemberRepository interface {
	FindActive(ctx context.Context, employerID uint) ([]models.Member, error)
	CountActive(ctx context.Context, employerID uint) (int64, error)
}

type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new member repository
func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

func (r *memberRepository) FindActive(ctx context.Context, employerID uint) ([]models.Member, error) {
	var members []models.Member
	err := r.db.WithContext(ctx).
		Where("employer_id = ? AND (date_of_exit IS NULL OR date_of_exit = '')", employerID).
		Order("member_name ASC").
		Find(&members).Error
	return members, err
}

func (r *memberRepository) CountActive(ctx context.Context, employerID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Member{}).
		Where("employer_id = ? AND (date_of_exit IS NULL OR date_of_exit = '')", employerID).
		Count(&count).Error
	return count, err
}

// BankRepository defines the interface for payment bank data access
type BankRepository interface {
	FindActive(ctx context.Context) ([]models.Bank, error)
	FindByName(ctx context.Context, name string) (*models.Bank, error)
}

type bankRepository struct {
	db *gorm.DB
}

// NewBankRepository creates a new bank repository
func NewBankRepository(db *gorm.DB) BankRepository {
	return &bankRepository{db: db}
}

func (r *bankRepository) FindActive(ctx context.Context) ([]models.Bank, error) {
	var banks []models.Bank
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("name ASC").
		Find(&banks).Error
	return banks, err
}

func (r *bankRepository) FindByName(ctx context.Context, name string) (*models.Bank, error) {
	var bank models.Bank
	err := r.db.WithContext(ctx).
		Where("name = ? AND active = ?", name, true).
		First(&bank).Error
	if err != nil {
		return nil, err
	}
	return &bank, nil
}
