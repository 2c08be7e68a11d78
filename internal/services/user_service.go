package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/justsurfingit/job-board/internal/apperr"
	"github.com/justsurfingit/job-board/internal/auth"
	"github.com/justsurfingit/job-board/internal/dtos"
	"github.com/justsurfingit/job-board/internal/models"
	"github.com/justsurfingit/job-board/internal/storage"
	"gorm.io/gorm"
)

type UserService struct {
	DB     *gorm.DB
	Assets storage.AssetHost
	Log    *slog.Logger
}

func NewUserService(db *gorm.DB, assets storage.AssetHost, log *slog.Logger) *UserService {
	return &UserService{DB: db, Assets: assets, Log: log}
}

// Register creates an account. resume is optional.
func (s *UserService) Register(ctx context.Context, req *dtos.RegisterRequest, resume *storage.File) (*models.User, error) {
	role, ok := models.ParseRole(req.Role)
	if !ok {
		return nil, apperr.Validation("Please select a valid role.")
	}
	email := normalizeEmail(req.Email)

	taken, err := s.emailTaken(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperr.Conflict("Email already registered!")
	}

	hash, err := auth.HashPassword(req.Password)
	if errors.Is(err, auth.ErrPasswordTooLong) {
		return nil, apperr.Validation(fmt.Sprintf("password cannot exceed %d bytes.", auth.MaxPasswordBytes))
	}
	if err != nil {
		return nil, apperr.Internal("Could not register user.", err)
	}

	if resume != nil {
		if err := checkResume(resume); err != nil {
			return nil, err
		}
	}

	user := &models.User{
		Name:     strings.TrimSpace(req.Name),
		Email:    email,
		Phone:    strings.TrimSpace(string(req.Phone)),
		Address:  strings.TrimSpace(req.Address),
		Password: hash,
		Role:     role,
	}
	if resume != nil {
		if user.Resume, err = uploadResume(ctx, s.Assets, resume); err != nil {
			return nil, err
		}
	}

	if err := s.DB.WithContext(ctx).Create(user).Error; err != nil {
		removeAsset(ctx, s.Assets, s.Log, user.Resume.PublicID)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("Email already registered!")
		}
		return nil, apperr.Internal("Could not register user.", err)
	}
	return user, nil
}

// Login checks the credentials and that the account has the role the
// client asked for.
func (s *UserService) Login(ctx context.Context, req *dtos.LoginRequest) (*models.User, error) {
	role, ok := models.ParseRole(req.Role)
	if !ok {
		return nil, apperr.Validation("Please select a valid role.")
	}

	var user models.User
	err := s.DB.WithContext(ctx).Where("email = ?", normalizeEmail(req.Email)).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Auth("Invalid Email Or Password.")
	}
	if err != nil {
		return nil, apperr.Internal("Could not log in.", err)
	}

	match, err := auth.ComparePassword(user.Password, req.Password)
	if err != nil {
		return nil, apperr.Internal("Could not log in.", err)
	}
	if !match {
		return nil, apperr.Auth("Invalid Email Or Password.")
	}
	if user.Role != role {
		return nil, apperr.Auth("User with provided email and " + string(role) + " role not found!")
	}
	return &user, nil
}

// FindByID loads a user; it backs session authentication.
func (s *UserService) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := s.DB.WithContext(ctx).First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("User not found.")
	}
	if err != nil {
		return nil, apperr.Internal("Could not load user.", err)
	}
	return &user, nil
}

func (s *UserService) emailTaken(ctx context.Context, email string) (bool, error) {
	var n int64
	if err := s.DB.WithContext(ctx).Model(&models.User{}).Where("email = ?", email).Count(&n).Error; err != nil {
		return false, apperr.Internal("Could not register user.", err)
	}
	return n > 0, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

var _ auth.UserFinder = (*UserService)(nil)
