package services

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pfportal/employer-api/internal/config"
	"github.com/pfportal/employer-api/internal/models"
	"github.com/pfportal/employer-api/internal/repository"
	"github.com/stretchr/testify/assert"
)

type mockEmployerRepo struct {
	repository.EmployerRepository
	mockFindByUsername func(ctx context.Context, username string) (*models.Employer, error)
	mockFindByID       func(ctx context.Context, id uint) (*models.Employer, error)
}

func (m *mockEmployerRepo) FindByUsername(ctx context.Context, username string) (*models.Employer, error) {
	return m.mockFindByUsername(ctx, username)
}

func (m *mockEmployerRepo) FindByID(ctx context.Context, id uint) (*models.Employer, error) {
	return m.mockFindByID(ctx, id)
}

func testConfig() *config.Config {
	return &config.Config{
		Environment:        "test",
		JWTSecret:          "test-secret",
		JWTExpirationHours: 1,
	}
}

func activeEmployer(password string) *models.Employer {
	hash, _ := HashPassword(password)
	return &models.Employer{
		ID:                1,
		EstablishmentID:   "DLCPM0012345000",
		EstablishmentName: "ACME INDUSTRIES",
		Username:          "acme",
		EncryptedPassword: hash,
		Status:            models.EmployerStatusActive,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	mockRepo := &mockEmployerRepo{}
	service := NewAuthService(mockRepo, testConfig())

	mockRepo.mockFindByUsername = func(ctx context.Context, username string) (*models.Employer, error) {
		return activeEmployer("secret123"), nil
	}

	result, err := service.Login(context.Background(), "acme", "secret123")
	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "DLCPM0012345000", result.Employer.EstablishmentID)

	// Token carries the employer claims
	token, err := jwt.Parse(result.Token, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	assert.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, float64(1), claims["employer_id"])
	assert.Equal(t, "DLCPM0012345000", claims["establishment_id"])
	assert.Equal(t, "acme", claims["username"])
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	mockRepo := &mockEmployerRepo{}
	service := NewAuthService(mockRepo, testConfig())

	mockRepo.mockFindByUsername = func(ctx context.Context, username string) (*models.Employer, error) {
		return activeEmployer("secret123"), nil
	}

	result, err := service.Login(context.Background(), "acme", "wrong")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownUsername(t *testing.T) {
	mockRepo := &mockEmployerRepo{}
	service := NewAuthService(mockRepo, testConfig())

	mockRepo.mockFindByUsername = func(ctx context.Context, username string) (*models.Employer, error) {
		return nil, ErrNotFound
	}

	result, err := service.Login(context.Background(), "nobody", "password")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_InactiveEmployer(t *testing.T) {
	mockRepo := &mockEmployerRepo{}
	service := NewAuthService(mockRepo, testConfig())

	mockRepo.mockFindByUsername = func(ctx context.Context, username string) (*models.Employer, error) {
		employer := activeEmployer("secret123")
		employer.Status = models.EmployerStatusInactive
		return employer, nil
	}

	result, err := service.Login(context.Background(), "acme", "secret123")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	assert.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.True(t, VerifyPassword("secret123", hash))
	assert.False(t, VerifyPassword("wrong", hash))
}
