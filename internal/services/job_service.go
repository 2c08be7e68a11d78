package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/justsurfingit/job-board/internal/apperr"
	"github.com/justsurfingit/job-board/internal/auth"
	"github.com/justsurfingit/job-board/internal/dtos"
	"github.com/justsurfingit/job-board/internal/models"
	"github.com/justsurfingit/job-board/internal/validation"
	"gorm.io/gorm"
)

type JobService struct {
	DB  *gorm.DB
	now func() time.Time
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{
		DB:  db,
		now: time.Now,
	}
}

// List returns open jobs, newest first, narrowed by the optional filters.
func (s *JobService) List(ctx context.Context, f dtos.JobFilter) ([]models.Job, error) {
	q := s.DB.WithContext(ctx).Where("expired = ?", false)

	if c := strings.TrimSpace(f.Category); c != "" {
		q = q.Where("category = ?", c)
	}
	if k := strings.TrimSpace(f.Keyword); k != "" {
		q = q.Where("LOWER(title) LIKE ? ESCAPE '!'", containsPattern(k))
	}
	if l := strings.TrimSpace(f.Location); l != "" {
		p := containsPattern(l)
		q = q.Where("(LOWER(location) LIKE ? ESCAPE '!' OR LOWER(city) LIKE ? ESCAPE '!' OR LOWER(country) LIKE ? ESCAPE '!')", p, p, p)
	}

	jobs := make([]models.Job, 0)
	if err := q.Order("created_at DESC").Find(&jobs).Error; err != nil {
		return nil, apperr.Internal("Could not load jobs.", err)
	}
	return jobs, nil
}

// Get returns a job by id, expired or not.
func (s *JobService) Get(ctx context.Context, id string) (*models.Job, error) {
	var job models.Job
	err := s.DB.WithContext(ctx).First(&job, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Job not found.")
	}
	if err != nil {
		return nil, apperr.Internal("Could not load job.", err)
	}
	return &job, nil
}

// ListMine returns every job the calling employer posted, expired included.
func (s *JobService) ListMine(ctx context.Context, caller auth.Principal) ([]models.Job, error) {
	if err := caller.Require(models.RoleEmployer); err != nil {
		return nil, err
	}
	jobs := make([]models.Job, 0)
	err := s.DB.WithContext(ctx).
		Where("posted_by = ?", caller.UserID).
		Order("created_at DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, apperr.Internal("Could not load jobs.", err)
	}
	return jobs, nil
}

// Create posts a job owned by the caller. The payload has already passed
// the job schema.
func (s *JobService) Create(ctx context.Context, caller auth.Principal, req *dtos.JobCreationRequest) (*models.Job, error) {
	if err := caller.Require(models.RoleEmployer); err != nil {
		return nil, err
	}

	job := &models.Job{
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Category:    req.Category,
		Country:     strings.TrimSpace(req.Country),
		City:        strings.TrimSpace(req.City),
		Location:    strings.TrimSpace(req.Location),
		FixedSalary: req.FixedSalary.Value(),
		SalaryFrom:  req.SalaryFrom.Value(),
		SalaryTo:    req.SalaryTo.Value(),
		JobPostedOn: s.now(),
		PostedBy:    caller.UserID,
	}
	if err := validation.Salary(job.FixedSalary, job.SalaryFrom, job.SalaryTo); err != nil {
		return nil, err
	}

	if err := s.DB.WithContext(ctx).Create(job).Error; err != nil {
		return nil, apperr.Internal("Could not post job.", err)
	}
	return job, nil
}

// Update merges the supplied fields into a job the caller owns. Supplying
// one salary form clears the other.
func (s *JobService) Update(ctx context.Context, caller auth.Principal, id string, req *dtos.JobUpdateRequest) (*models.Job, error) {
	if err := caller.Require(models.RoleEmployer); err != nil {
		return nil, err
	}
	job, err := s.owned(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	setString(&job.Title, req.Title)
	setString(&job.Description, req.Description)
	setString(&job.Category, req.Category)
	setString(&job.Country, req.Country)
	setString(&job.City, req.City)
	setString(&job.Location, req.Location)
	if req.Expired != nil {
		job.Expired = *req.Expired
	}

	fixed := req.FixedSalary.Value()
	from, to := req.SalaryFrom.Value(), req.SalaryTo.Value()
	switch {
	case fixed != nil && (from != nil || to != nil):
		return nil, apperr.Validation("Cannot Enter Fixed and Ranged Salary together.")
	case fixed != nil:
		job.FixedSalary, job.SalaryFrom, job.SalaryTo = fixed, nil, nil
	case from != nil || to != nil:
		job.FixedSalary = nil
		if from != nil {
			job.SalaryFrom = from
		}
		if to != nil {
			job.SalaryTo = to
		}
	}
	if err := validation.Salary(job.FixedSalary, job.SalaryFrom, job.SalaryTo); err != nil {
		return nil, err
	}

	if err := s.DB.WithContext(ctx).Save(job).Error; err != nil {
		return nil, apperr.Internal("Could not update job.", err)
	}
	return job, nil
}

// Delete removes a job the caller owns. Applications sent to it are kept.
func (s *JobService) Delete(ctx context.Context, caller auth.Principal, id string) error {
	if err := caller.Require(models.RoleEmployer); err != nil {
		return err
	}
	job, err := s.owned(ctx, caller, id)
	if err != nil {
		return err
	}
	if err := s.DB.WithContext(ctx).Delete(job).Error; err != nil {
		return apperr.Internal("Could not delete job.", err)
	}
	return nil
}

func (s *JobService) owned(ctx context.Context, caller auth.Principal, id string) (*models.Job, error) {
	job, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !caller.Owns(job.PostedBy) {
		return nil, apperr.Forbidden("You are not allowed to modify this job.")
	}
	return job, nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}

// containsPattern builds a case-insensitive LIKE pattern matching s
// anywhere, with '!' as the escape character.
func containsPattern(s string) string {
	r := strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")
	return "%" + r.Replace(strings.ToLower(s)) + "%"
}
