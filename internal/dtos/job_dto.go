package dtos

// Lengths, categories and salary bounds are enforced by the job schema in
// internal/validation before binding.

type JobCreationRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Country     string `json:"country" binding:"required"`
	City        string `json:"city" binding:"required"`
	Location    string `json:"location" binding:"required"`

	FixedSalary *Amount `json:"fixedSalary"`
	SalaryFrom  *Amount `json:"salaryFrom"`
	SalaryTo    *Amount `json:"salaryTo"`
}

// JobUpdateRequest carries only the fields the client sent.
type JobUpdateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Country     *string `json:"country"`
	City        *string `json:"city"`
	Location    *string `json:"location"`

	FixedSalary *Amount `json:"fixedSalary"`
	SalaryFrom  *Amount `json:"salaryFrom"`
	SalaryTo    *Amount `json:"salaryTo"`

	Expired *bool `json:"expired"`
}

type JobFilter struct {
	Category string `form:"category"`
	Keyword  string `form:"keyword"`
	Location string `form:"location"`
}
