package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pfportal/employer-api/internal/models"
	"gorm.io/gorm"
)

// EmployerRepository defines the interface for employer data access
type EmployerRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Employer, error)
	FindByUsername(ctx context.Context, username string) (*models.Employer, error)
	FindByEstablishmentID(ctx context.Context, establishmentID string) (*models.Employer, error)
	Create(ctx context.Context, employer *models.Employer) error
	Update(ctx context.Context, employer *models.Employer) error
}

type employerRepository struct {
	db *gorm.DB
}

// NewEmployerRepository creates a new employer repository
func NewEmployerRepository(db *gorm.DB) EmployerRepository {
	return &employerRepository{db: db}
}

func (r *employerRepository) FindByID(ctx context.Context, id uint) (*models.Employer, error) {
	var employer models.Employer
	if err := r.db.WithContext(ctx).First(&employer, id).Error; err != nil {
		return nil, err
	}
	return &employer, nil
}

func (r *employerRepository) FindByUsername(ctx context.Context, username string) (*models.Employer, error) {
	var employer models.Employer
	err := r.db.WithContext(ctx).
		Where("LOWER(username) = LOWER(?)", username).
		First(&employer).Error
	if err != nil {
		return nil, err
	}
	return &employer, nil
}

func (r *employerRepository) FindByEstablishmentID(ctx context.Context, establishmentID string) (*models.Employer, error) {
	var employer models.Employer
	err := r.db.WithContext(ctx).
		Where("establishment_id = ?", establishmentID).
		First(&employer).Error
	if err != nil {
		return nil, err
	}
	return &employer, nil
}

func (r *employerRepository) Create(ctx context.Context, employer *models.Employer) error {
	if err := r.db.WithContext(ctx).Create(employer).Error; err != nil {
		if isDuplicateKeyError(err, "employers_establishment_id_key") {
			return errors.New("an employer with this establishment id already exists")
		}
		if isDuplicateKeyError(err, "employers_username_key") {
			return errors.New("an employer with this username already exists")
		}
		return err
	}
	return nil
}

func (r *employerRepository) Update(ctx context.Context, employer *models.Employer) error {
	return r.db.WithContext(ctx).Save(employer).Error
}

func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && pgErr.ConstraintName == constraintName
	}
	return false
}
