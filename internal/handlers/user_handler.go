package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/job-board/internal/dtos"
	"github.com/justsurfingit/job-board/internal/models"
	"github.com/justsurfingit/job-board/internal/services"
	"github.com/justsurfingit/job-board/internal/storage"
)

// SessionIssuer mints session tokens and manages the session cookie.
// *auth.SessionManager implements it.
type SessionIssuer interface {
	Issue(u *models.User) (string, error)
	SetCookie(c *gin.Context, token string)
	ClearCookie(c *gin.Context)
}

type UserHandler struct {
	Users          *services.UserService
	Sessions       SessionIssuer
	Log            *slog.Logger
	MaxUploadBytes int64
}

func NewUserHandler(users *services.UserService, sessions SessionIssuer, log *slog.Logger, maxUploadBytes int64) *UserHandler {
	return &UserHandler{Users: users, Sessions: sessions, Log: log, MaxUploadBytes: maxUploadBytes}
}

// Register handles POST /user/register. JSON and multipart bodies are
// accepted; only multipart can carry a resume.
func (h *UserHandler) Register(c *gin.Context) {
	var resume *storage.File
	if c.ContentType() == gin.MIMEMultipartPOSTForm {
		limitBody(c, h.MaxUploadBytes)
		f, closeFile, err := formFile(c, "resume")
		if err != nil {
			_ = c.Error(err)
			return
		}
		defer closeFile()
		resume = f
	}

	var req dtos.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		_ = c.Error(bindError(err))
		return
	}

	user, err := h.Users.Register(c.Request.Context(), &req, resume)
	if err != nil {
		_ = c.Error(err)
		return
	}

	// The account exists from here on, so a session failure must not
	// report the registration as failed.
	token, err := h.Sessions.Issue(user)
	if err != nil {
		h.Log.Error("registered user without a session", "user_id", user.ID, "error", err)
		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "User Registered! Please log in.",
			"user":    user,
		})
		return
	}
	h.writeSession(c, user, token, http.StatusCreated, "User Registered!")
}

// Login handles POST /user/login.
func (h *UserHandler) Login(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		_ = c.Error(bindError(err))
		return
	}

	user, err := h.Users.Login(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	token, err := h.Sessions.Issue(user)
	if err != nil {
		_ = c.Error(err)
		return
	}
	h.writeSession(c, user, token, http.StatusOK, "User Logged In!")
}

// Logout handles GET /user/logout.
func (h *UserHandler) Logout(c *gin.Context) {
	h.Sessions.ClearCookie(c)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged Out Successfully."})
}

// GetUser handles GET /user/getuser.
func (h *UserHandler) GetUser(c *gin.Context) {
	p, ok := caller(c)
	if !ok {
		return
	}
	user, err := h.Users.FindByID(c.Request.Context(), p.UserID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

func (h *UserHandler) writeSession(c *gin.Context, user *models.User, token string, status int, msg string) {
	h.Sessions.SetCookie(c, token)
	c.JSON(status, gin.H{
		"success": true,
		"message": msg,
		"user":    user,
		"token":   token,
	})
}
