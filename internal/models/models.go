package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleEmployer  Role = "Employer"
	RoleJobSeeker Role = "Job Seeker"
)

// ParseRole returns the Role named by s and whether s is a known role.
func ParseRole(s string) (Role, bool) {
	switch r := Role(s); r {
	case RoleEmployer, RoleJobSeeker:
		return r, true
	}
	return "", false
}

// Categories a job can be posted under.
var Categories = []string{
	"Graphics & Design",
	"Mobile App Development",
	"Frontend Web Development",
	"MERN Stack Development",
	"Account & Finance",
	"Artificial Intelligence",
	"Video Animation",
	"MEAN Stack Development",
	"MEVN Stack Development",
	"Data Entry Operator",
}

// FileRef points at an asset stored on the asset host.
type FileRef struct {
	PublicID string `json:"public_id"`
	URL      string `json:"url"`
}

func (f FileRef) IsZero() bool { return f.PublicID == "" && f.URL == "" }

type User struct {
	ID        string    `gorm:"primaryKey;size:36" json:"_id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Name     string  `gorm:"size:30;not null" json:"name"`
	Email    string  `gorm:"size:191;uniqueIndex;not null" json:"email"`
	Phone    string  `gorm:"size:32;not null" json:"phone"`
	Address  string  `json:"address,omitempty"`
	Password string  `gorm:"not null" json:"-"`
	Role     Role    `gorm:"size:16;not null" json:"role"`
	Resume   FileRef `gorm:"embedded;embeddedPrefix:resume_" json:"resume"`
}

type Job struct {
	ID        string    `gorm:"primaryKey;size:36" json:"_id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Title       string `gorm:"size:30;not null" json:"title"`
	Description string `gorm:"type:text;not null" json:"description"`
	Category    string `gorm:"size:64;not null;index" json:"category"`
	Country     string `gorm:"not null" json:"country"`
	City        string `gorm:"not null" json:"city"`
	Location    string `gorm:"not null" json:"location"`

	// Exactly one of FixedSalary or the SalaryFrom/SalaryTo pair is set.
	FixedSalary *int64 `json:"fixedSalary,omitempty"`
	SalaryFrom  *int64 `json:"salaryFrom,omitempty"`
	SalaryTo    *int64 `json:"salaryTo,omitempty"`

	Expired     bool      `gorm:"not null;default:false;index" json:"expired"`
	JobPostedOn time.Time `json:"jobPostedOn"`
	PostedBy    string    `gorm:"size:36;not null;index" json:"postedBy"`
}

// Party is the denormalized identity of a user stored on an application.
type Party struct {
	UserID string `gorm:"size:36;index" json:"id"`
	Role   Role   `gorm:"size:16" json:"role"`
}

type Application struct {
	ID        string    `gorm:"primaryKey;size:36" json:"_id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Name        string  `gorm:"size:30;not null" json:"name"`
	Email       string  `gorm:"not null" json:"email"`
	Phone       string  `gorm:"size:32;not null" json:"phone"`
	Address     string  `gorm:"not null" json:"address"`
	CoverLetter string  `gorm:"type:text;not null" json:"coverLetter"`
	Resume      FileRef `gorm:"embedded;embeddedPrefix:resume_" json:"resume"`

	// No foreign key: applications outlive the job they were sent to.
	// (job_id, job_seeker_user_id) is unique, see database.ApplicantIndex.
	JobID         string `gorm:"size:36;not null;index" json:"jobId"`
	JobSeekerInfo Party  `gorm:"embedded;embeddedPrefix:job_seeker_" json:"jobSeekerInfo"`
	EmployerInfo  Party  `gorm:"embedded;embeddedPrefix:employer_" json:"employerInfo"`
}

func (u *User) BeforeCreate(*gorm.DB) error        { u.ID = newID(u.ID); return nil }
func (j *Job) BeforeCreate(*gorm.DB) error         { j.ID = newID(j.ID); return nil }
func (a *Application) BeforeCreate(*gorm.DB) error { a.ID = newID(a.ID); return nil }

func newID(id string) string {
	if id != "" {
		return id
	}
	return uuid.NewString()
}

// All lists the models managed by AutoMigrate.
func All() []any {
	return []any{&User{}, &Job{}, &Application{}}
}
