package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/justsurfingit/job-board/internal/models"
)

// CookieName is the name of the session cookie.
const CookieName = "token"

var ErrInvalidToken = errors.New("auth: invalid session token")

type Claims struct {
	Role models.Role `json:"role"`
	jwt.RegisteredClaims
}

// SessionManager issues and verifies HMAC-signed session tokens and manages
// the cookie that carries them.
type SessionManager struct {
	secret       []byte
	ttl          time.Duration
	cookieMaxAge time.Duration
	secure       bool
	now          func() time.Time
}

type SessionConfig struct {
	Secret       string
	TTL          time.Duration
	CookieMaxAge time.Duration
	// Secure marks the cookie Secure and SameSite=None so a separately
	// hosted frontend can send it.
	Secure bool
}

func NewSessionManager(cfg SessionConfig) *SessionManager {
	maxAge := cfg.CookieMaxAge
	if maxAge == 0 {
		maxAge = cfg.TTL
	}
	return &SessionManager{
		secret:       []byte(cfg.Secret),
		ttl:          cfg.TTL,
		cookieMaxAge: maxAge,
		secure:       cfg.Secure,
		now:          time.Now,
	}
}

// Issue signs a token for u.
func (m *SessionManager) Issue(u *models.User) (string, error) {
	now := m.now()
	claims := Claims{
		Role: u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("auth: sign token: %w", err)
	}
	return signed, nil
}

// Parse verifies the signature and expiry of token.
func (m *SessionManager) Parse(token string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (any, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// SetCookie writes the session cookie.
func (m *SessionManager) SetCookie(c *gin.Context, token string) {
	m.writeCookie(c, token, int(m.cookieMaxAge.Seconds()))
}

// ClearCookie expires the session cookie.
func (m *SessionManager) ClearCookie(c *gin.Context) {
	m.writeCookie(c, "", -1)
}

func (m *SessionManager) writeCookie(c *gin.Context, value string, maxAge int) {
	if m.secure {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}
	c.SetCookie(CookieName, value, maxAge, "/", "", m.secure, true)
}

// tokenFromRequest reads the session token from the cookie, falling back to
// a bearer Authorization header.
func tokenFromRequest(c *gin.Context) string {
	if v, err := c.Cookie(CookieName); err == nil && v != "" {
		return v
	}
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	return ""
}
