package services

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pfportal/employer-api/internal/config"
	"github.com/pfportal/employer-api/internal/models"
	"github.com/pfportal/employer-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles employer authentication
type AuthService struct {
	employerRepo repository.EmployerRepository
	cfg          *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(employerRepo repository.EmployerRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		employerRepo: employerRepo,
		cfg:          cfg,
	}
}

// LoginResult represents the result of a login attempt
type LoginResult struct {
	Token    string                  `json:"token"`
	Employer models.EmployerResponse `json:"employer"`
}

// Login authenticates an employer and returns a signed token
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	employer, err := s.employerRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !employer.IsActive() {
		return nil, ErrUnauthorized
	}

	if !VerifyPassword(password, employer.EncryptedPassword) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.generateJWT(employer)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Token:    token,
		Employer: employer.ToResponse(),
	}, nil
}

// generateJWT creates a new JWT token for an employer
func (s *AuthService) generateJWT(employer *models.Employer) (string, error) {
	claims := jwt.MapClaims{
		"employer_id":      employer.ID,
		"establishment_id": employer.EstablishmentID,
		"username":         employer.Username,
		"exp":              time.Now().Add(time.Duration(s.cfg.JWTExpirationHours) * time.Hour).Unix(),
		"iat":              time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// VerifyPassword compares a password with a hash
func VerifyPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
