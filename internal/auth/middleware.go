package auth

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/job-board/internal/apperr"
	"github.com/justsurfingit/job-board/internal/models"
)

// UserFinder loads the user a session token refers to.
type UserFinder interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
}

// Authenticate resolves the caller from the session token. Requests without
// a valid token for an existing user are aborted with an auth error.
func Authenticate(sessions *SessionManager, users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c)
		if token == "" {
			_ = c.Error(apperr.Auth("User Not Authorized"))
			c.Abort()
			return
		}

		claims, err := sessions.Parse(token)
		if err != nil {
			slog.DebugContext(c.Request.Context(), "rejected session token", "error", err)
			_ = c.Error(apperr.Auth("User Not Authorized"))
			c.Abort()
			return
		}

		user, err := users.FindByID(c.Request.Context(), claims.Subject)
		if err != nil {
			if apperr.Is(err, apperr.KindNotFound) {
				err = apperr.Auth("User Not Authorized")
			}
			_ = c.Error(err)
			c.Abort()
			return
		}

		setPrincipal(c, Principal{UserID: user.ID, Role: user.Role})
		c.Next()
	}
}

// RequireRole rejects callers without the given role before the handler
// reads the request body. It runs after Authenticate.
func RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := FromContext(c)
		if !ok {
			_ = c.Error(apperr.Auth("User Not Authorized"))
			c.Abort()
			return
		}
		if err := p.Require(role); err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}
		c.Next()
	}
}
