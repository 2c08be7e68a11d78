package dtos

// ApplicationRequest is the multipart form of a job application; the
// resume travels as a separate file part.
type ApplicationRequest struct {
	Name        string `form:"name" binding:"required,min=3,max=30"`
	Email       string `form:"email" binding:"required,max=191,email"`
	Phone       string `form:"phone" binding:"required,max=32"`
	Address     string `form:"address" binding:"required"`
	CoverLetter string `form:"coverLetter" binding:"required"`
	JobID       string `form:"jobId" binding:"required"`
}
