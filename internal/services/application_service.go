package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/justsurfingit/job-board/internal/apperr"
	"github.com/justsurfingit/job-board/internal/auth"
	"github.com/justsurfingit/job-board/internal/dtos"
	"github.com/justsurfingit/job-board/internal/models"
	"github.com/justsurfingit/job-board/internal/storage"
	"gorm.io/gorm"
)

type ApplicationService struct {
	DB     *gorm.DB
	Assets storage.AssetHost
	Log    *slog.Logger
}

func NewApplicationService(db *gorm.DB, assets storage.AssetHost, log *slog.Logger) *ApplicationService {
	return &ApplicationService{DB: db, Assets: assets, Log: log}
}

// Create submits the caller's application to an open job. The resume is
// uploaded last and removed again if the record cannot be written.
func (s *ApplicationService) Create(ctx context.Context, caller auth.Principal, req *dtos.ApplicationRequest, resume *storage.File) (*models.Application, error) {
	if err := caller.Require(models.RoleJobSeeker); err != nil {
		return nil, err
	}
	if resume == nil {
		return nil, apperr.Validation("Resume File Required!")
	}
	if err := checkResume(resume); err != nil {
		return nil, err
	}

	var job models.Job
	err := s.DB.WithContext(ctx).First(&job, "id = ? AND expired = ?", req.JobID, false).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Job not found!")
	}
	if err != nil {
		return nil, apperr.Internal("Could not load job.", err)
	}

	applied, err := s.hasApplied(ctx, caller.UserID, job.ID)
	if err != nil {
		return nil, err
	}
	if applied {
		return nil, apperr.Conflict("You have already applied for this job.")
	}

	ref, err := uploadResume(ctx, s.Assets, resume)
	if err != nil {
		return nil, err
	}

	app := &models.Application{
		Name:          strings.TrimSpace(req.Name),
		Email:         normalizeEmail(req.Email),
		Phone:         strings.TrimSpace(req.Phone),
		Address:       strings.TrimSpace(req.Address),
		CoverLetter:   strings.TrimSpace(req.CoverLetter),
		Resume:        ref,
		JobID:         job.ID,
		JobSeekerInfo: models.Party{UserID: caller.UserID, Role: models.RoleJobSeeker},
		EmployerInfo:  models.Party{UserID: job.PostedBy, Role: models.RoleEmployer},
	}
	if err := s.DB.WithContext(ctx).Create(app).Error; err != nil {
		removeAsset(ctx, s.Assets, s.Log, ref.PublicID)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("You have already applied for this job.")
		}
		return nil, apperr.Internal("Could not submit application.", err)
	}
	return app, nil
}

// ListForJobSeeker returns the applications the caller submitted.
func (s *ApplicationService) ListForJobSeeker(ctx context.Context, caller auth.Principal) ([]models.Application, error) {
	if err := caller.Require(models.RoleJobSeeker); err != nil {
		return nil, err
	}
	return s.list(ctx, "job_seeker_user_id = ?", caller.UserID)
}

// ListForEmployer returns the applications sent to the caller's jobs.
func (s *ApplicationService) ListForEmployer(ctx context.Context, caller auth.Principal) ([]models.Application, error) {
	if err := caller.Require(models.RoleEmployer); err != nil {
		return nil, err
	}
	return s.list(ctx, "employer_user_id = ?", caller.UserID)
}

// Delete withdraws one of the caller's applications and removes its resume.
func (s *ApplicationService) Delete(ctx context.Context, caller auth.Principal, id string) error {
	if err := caller.Require(models.RoleJobSeeker); err != nil {
		return err
	}

	var app models.Application
	err := s.DB.WithContext(ctx).First(&app, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("Application not found!")
	}
	if err != nil {
		return apperr.Internal("Could not load application.", err)
	}
	if !caller.Owns(app.JobSeekerInfo.UserID) {
		return apperr.Forbidden("You are not allowed to delete this application.")
	}

	if err := s.DB.WithContext(ctx).Delete(&app).Error; err != nil {
		return apperr.Internal("Could not delete application.", err)
	}
	removeAsset(ctx, s.Assets, s.Log, app.Resume.PublicID)
	return nil
}

func (s *ApplicationService) list(ctx context.Context, where string, args ...any) ([]models.Application, error) {
	apps := make([]models.Application, 0)
	err := s.DB.WithContext(ctx).Where(where, args...).Order("created_at DESC").Find(&apps).Error
	if err != nil {
		return nil, apperr.Internal("Could not load applications.", err)
	}
	return apps, nil
}

func (s *ApplicationService) hasApplied(ctx context.Context, userID, jobID string) (bool, error) {
	var n int64
	err := s.DB.WithContext(ctx).Model(&models.Application{}).
		Where("job_seeker_user_id = ? AND job_id = ?", userID, jobID).
		Count(&n).Error
	if err != nil {
		return false, apperr.Internal("Could not check existing applications.", err)
	}
	return n > 0, nil
}
