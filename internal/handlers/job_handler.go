package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/justsurfingit/job-board/internal/dtos"
	"github.com/justsurfingit/job-board/internal/services"
	"github.com/justsurfingit/job-board/internal/validation"
)

// maxJobBody bounds job payloads; descriptions are at most 500 characters.
const maxJobBody = 64 << 10

type JobHandler struct {
	Jobs *services.JobService
}

func NewJobHandler(jobs *services.JobService) *JobHandler {
	return &JobHandler{Jobs: jobs}
}

// GetAll handles GET /job/getall.
func (h *JobHandler) GetAll(c *gin.Context) {
	var filter dtos.JobFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		_ = c.Error(bindError(err))
		return
	}
	jobs, err := h.Jobs.List(c.Request.Context(), filter)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "jobs": jobs})
}

// GetByID handles GET /job/:id.
func (h *JobHandler) GetByID(c *gin.Context) {
	job, err := h.Jobs.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "job": job})
}

// GetMyJobs handles GET /job/getmyjobs.
func (h *JobHandler) GetMyJobs(c *gin.Context) {
	p, ok := caller(c)
	if !ok {
		return
	}
	jobs, err := h.Jobs.ListMine(c.Request.Context(), p)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "jobs": jobs})
}

// Post handles POST /job/post.
func (h *JobHandler) Post(c *gin.Context) {
	p, ok := caller(c)
	if !ok {
		return
	}
	raw, err := readBody(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if err := validation.JobCreate(raw); err != nil {
		_ = c.Error(err)
		return
	}
	var req dtos.JobCreationRequest
	if err := binding.JSON.BindBody(raw, &req); err != nil {
		_ = c.Error(bindError(err))
		return
	}

	job, err := h.Jobs.Create(c.Request.Context(), p, &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Job Posted Successfully!", "job": job})
}

// Update handles PUT /job/update/:id.
func (h *JobHandler) Update(c *gin.Context) {
	p, ok := caller(c)
	if !ok {
		return
	}
	raw, err := readBody(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if err := validation.JobUpdate(raw); err != nil {
		_ = c.Error(err)
		return
	}
	var req dtos.JobUpdateRequest
	if err := binding.JSON.BindBody(raw, &req); err != nil {
		_ = c.Error(bindError(err))
		return
	}

	job, err := h.Jobs.Update(c.Request.Context(), p, c.Param("id"), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Job Updated!", "job": job})
}

// Delete handles DELETE /job/delete/:id.
func (h *JobHandler) Delete(c *gin.Context) {
	p, ok := caller(c)
	if !ok {
		return
	}
	if err := h.Jobs.Delete(c.Request.Context(), p, c.Param("id")); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Job Deleted!"})
}

func readBody(c *gin.Context) ([]byte, error) {
	limitBody(c, maxJobBody)
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, uploadError(err)
	}
	return raw, nil
}
