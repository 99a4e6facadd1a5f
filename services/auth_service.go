package services

import (
	"context"
	"net/http"

	"github.com/mirkashi/Grazieoutfits/apperrors"
	"github.com/mirkashi/Grazieoutfits/models"
	"github.com/mirkashi/Grazieoutfits/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// CreateAdminRequest carries the fields for a new admin account.
type CreateAdminRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role"`
}

// AuthService verifies admin credentials and manages admin accounts.
type AuthService struct {
	adminRepo repository.AdminRepository
	tokens    *TokenService
}

// NewAuthService creates a new AuthService.
func NewAuthService(adminRepo repository.AdminRepository, tokens *TokenService) *AuthService {
	return &AuthService{adminRepo: adminRepo, tokens: tokens}
}

// Login verifies the credentials and returns a signed token plus the admin's
// public fields. Unknown username and wrong password fail identically so the
// response never reveals which accounts exist.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *models.Admin, error) {
	admin, err := s.adminRepo.FindByUsername(ctx, username)
	if err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(admin)
	if err != nil {
		return "", nil, apperrors.Internal(err)
	}

	return token, admin, nil
}

// CreateAdmin registers a new admin account. While no admin exists the call
// is open so the first account can be bootstrapped; once any admin exists the
// caller must be authenticated.
func (s *AuthService) CreateAdmin(ctx context.Context, req CreateAdminRequest, authenticated bool) (*models.Admin, error) {
	count, err := s.adminRepo.Count(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if count > 0 && !authenticated {
		return nil, apperrors.ErrUnauthorized
	}

	_, err = s.adminRepo.FindByUsernameOrEmail(ctx, req.Username, req.Email)
	if err == nil {
		return nil, apperrors.Validation("Admin already exists")
	}
	if err != mongo.ErrNoDocuments {
		return nil, apperrors.Internal(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	role := req.Role
	if role == "" {
		role = "admin"
	}

	admin := &models.Admin{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return nil, apperrors.Internal(err)
	}

	return admin, nil
}

// ChangePassword re-verifies the current password before replacing the hash.
func (s *AuthService) ChangePassword(ctx context.Context, adminID primitive.ObjectID, currentPassword, newPassword string) error {
	admin, err := s.adminRepo.FindByID(ctx, adminID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return apperrors.NotFound("Admin not found")
		}
		return apperrors.Internal(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(currentPassword)); err != nil {
		return apperrors.New(http.StatusUnauthorized, "Current password is incorrect", nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return apperrors.Internal(err)
	}

	if err := s.adminRepo.UpdatePassword(ctx, adminID, string(hash)); err != nil {
		return apperrors.Internal(err)
	}
	return nil
}

// GetProfile returns the admin's own record, hash excluded by serialization.
func (s *AuthService) GetProfile(ctx context.Context, adminID primitive.ObjectID) (*models.Admin, error) {
	admin, err := s.adminRepo.FindByID(ctx, adminID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.NotFound("Admin not found")
		}
		return nil, apperrors.Internal(err)
	}
	return admin, nil
}
