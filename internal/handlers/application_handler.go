package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/job-board/internal/dtos"
	"github.com/justsurfingit/job-board/internal/services"
)

type ApplicationHandler struct {
	Applications   *services.ApplicationService
	MaxUploadBytes int64
}

func NewApplicationHandler(apps *services.ApplicationService, maxUploadBytes int64) *ApplicationHandler {
	return &ApplicationHandler{Applications: apps, MaxUploadBytes: maxUploadBytes}
}

// Post handles POST /application/post (multipart, resume part required).
func (h *ApplicationHandler) Post(c *gin.Context) {
	p, ok := caller(c)
	if !ok {
		return
	}
	limitBody(c, h.MaxUploadBytes)

	resume, closeFile, err := formFile(c, "resume")
	if err != nil {
		_ = c.Error(err)
		return
	}
	defer closeFile()

	var req dtos.ApplicationRequest
	if err := c.ShouldBind(&req); err != nil {
		_ = c.Error(bindError(err))
		return
	}

	app, err := h.Applications.Create(c.Request.Context(), p, &req, resume)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Application Submitted!", "application": app})
}

// JobSeekerGetAll handles GET /application/jobseeker/getall.
func (h *ApplicationHandler) JobSeekerGetAll(c *gin.Context) {
	p, ok := caller(c)
	if !ok {
		return
	}
	apps, err := h.Applications.ListForJobSeeker(c.Request.Context(), p)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "applications": apps})
}

// EmployerGetAll handles GET /application/employer/getall.
func (h *ApplicationHandler) EmployerGetAll(c *gin.Context) {
	p, ok := caller(c)
	if !ok {
		return
	}
	apps, err := h.Applications.ListForEmployer(c.Request.Context(), p)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "applications": apps})
}

// Delete handles DELETE /application/delete/:id.
func (h *ApplicationHandler) Delete(c *gin.Context) {
	p, ok := caller(c)
	if !ok {
		return
	}
	if err := h.Applications.Delete(c.Request.Context(), p, c.Param("id")); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Application Deleted!"})
}
