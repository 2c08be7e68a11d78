package auth

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/job-board/internal/apperr"
	"github.com/justsurfingit/job-board/internal/models"
)

const principalKey = "auth.principal"

// Principal is the authenticated caller of a request.
type Principal struct {
	UserID string
	Role   models.Role
}

// Require is the single role check used by every service operation.
func (p Principal) Require(role models.Role) error {
	if p.Role == role {
		return nil
	}
	return apperr.Forbidden(fmt.Sprintf("%s not allowed to access this resource.", p.Role))
}

// Owns reports whether the resource owned by ownerID belongs to the caller.
func (p Principal) Owns(ownerID string) bool {
	return p.UserID != "" && p.UserID == ownerID
}

// FromContext returns the principal stored by Authenticate.
func FromContext(c *gin.Context) (Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return Principal{}, false
	}
	p, ok := v.(Principal)
	return p, ok
}

func setPrincipal(c *gin.Context, p Principal) {
	c.Set(principalKey, p)
}
