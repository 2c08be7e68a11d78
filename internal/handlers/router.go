package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/job-board/internal/auth"
	"github.com/justsurfingit/job-board/internal/models"
	"github.com/justsurfingit/job-board/internal/services"
	"github.com/justsurfingit/job-board/internal/storage"
	"gorm.io/gorm"
)

// Deps is everything the router needs.
type Deps struct {
	DB           *gorm.DB
	Users        *services.UserService
	Jobs         *services.JobService
	Applications *services.ApplicationService
	Sessions     *auth.SessionManager
	AuthLimiter  *auth.RateLimiter
	Logger       *slog.Logger

	AllowedOrigins []string
	// TrustedProxies may set X-Forwarded-For; nil trusts none, so the
	// rate limiter keys on the peer address.
	TrustedProxies []string
	MaxUploadBytes int64
	// LocalUploadDir, when set, is served under storage.URLPrefix.
	LocalUploadDir string
}

var _ SessionIssuer = (*auth.SessionManager)(nil)

func NewRouter(d Deps) (*gin.Engine, error) {
	useWireFieldNames()

	r := gin.New()
	if err := r.SetTrustedProxies(d.TrustedProxies); err != nil {
		return nil, fmt.Errorf("handlers: trusted proxies: %w", err)
	}
	r.MaxMultipartMemory = d.MaxUploadBytes
	r.Use(RequestLogger(d.Logger), Recovery(d.Logger), ErrorHandler(d.Logger))

	config := cors.DefaultConfig()
	config.AllowOrigins = d.AllowedOrigins
	if len(config.AllowOrigins) == 0 {
		config.AllowOriginFunc = func(string) bool { return false }
	}
	config.AllowCredentials = true
	config.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	config.MaxAge = 12 * time.Hour
	r.Use(cors.New(config))

	if d.LocalUploadDir != "" {
		r.Static(storage.URLPrefix, d.LocalUploadDir)
	}

	userHandler := NewUserHandler(d.Users, d.Sessions, d.Logger, d.MaxUploadBytes)
	jobHandler := NewJobHandler(d.Jobs)
	appHandler := NewApplicationHandler(d.Applications, d.MaxUploadBytes)

	authenticated := auth.Authenticate(d.Sessions, d.Users)
	employerOnly := auth.RequireRole(models.RoleEmployer)
	seekerOnly := auth.RequireRole(models.RoleJobSeeker)

	api := r.Group("/api/v1")
	{
		api.GET("/health", HealthCheck(d.DB))

		user := api.Group("/user")
		user.POST("/register", d.AuthLimiter.Middleware(), userHandler.Register)
		user.POST("/login", d.AuthLimiter.Middleware(), userHandler.Login)
		user.GET("/logout", authenticated, userHandler.Logout)
		user.GET("/getuser", authenticated, userHandler.GetUser)

		job := api.Group("/job", authenticated)
		job.GET("/getall", jobHandler.GetAll)
		job.GET("/getmyjobs", employerOnly, jobHandler.GetMyJobs)
		job.POST("/post", employerOnly, jobHandler.Post)
		job.PUT("/update/:id", employerOnly, jobHandler.Update)
		job.DELETE("/delete/:id", employerOnly, jobHandler.Delete)
		job.GET("/:id", jobHandler.GetByID)

		application := api.Group("/application", authenticated)
		application.POST("/post", seekerOnly, appHandler.Post)
		application.GET("/jobseeker/getall", seekerOnly, appHandler.JobSeekerGetAll)
		application.GET("/employer/getall", employerOnly, appHandler.EmployerGetAll)
		application.DELETE("/delete/:id", seekerOnly, appHandler.Delete)
	}
	return r, nil
}
