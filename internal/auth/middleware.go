package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitdesk/internal/models"
	"fitdesk/internal/permissions"
)

const (
	claimsKey    = "claims"
	actorKey     = "actor"
	requestIDKey = "request_id"

	// RequestIDHeader is echoed back on every response.
	RequestIDHeader = "X-Request-ID"
)

// Claims represents the JWT claims structure.
type Claims struct {
	UserID     string               `json:"uid"`
	Email      string               `json:"email"`
	Role       permissions.Role     `json:"role"`
	Position   permissions.Position `json:"position,omitempty"`
	Department string               `json:"department,omitempty"`
	jwt.RegisteredClaims
}

func (c *Claims) Actor() permissions.Actor {
	return permissions.Actor{ID: c.UserID, Role: c.Role, Position: c.Position, Department: c.Department}
}

// IssueToken signs an HS256 session token for the staff member.
func IssueToken(secret string, s models.Staff, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:     s.ID,
		Email:      s.Email,
		Role:       s.Role,
		Position:   s.Position,
		Department: s.Department,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   s.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseToken validates the signature and expiry and returns the claims.
func ParseToken(secret, tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid claims")
	}
	if _, ok := permissions.ParseRole(string(claims.Role)); !ok {
		return nil, fmt.Errorf("unknown role %q", claims.Role)
	}
	return claims, nil
}

// RequestID tags each request with an id used to correlate audit entries.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// JWT returns a Gin middleware that validates JWT tokens from either the
// Authorization header or a "token" cookie and verifies that the staff
// account is still active. Role, position and department are taken from the
// stored account, so changes apply without re-login.
func JWT(db *gorm.DB, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := c.GetHeader("Authorization")
		if tokenStr == "" {
			if cookie, err := c.Cookie("token"); err == nil {
				tokenStr = "Bearer " + cookie
			}
		}
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		tokenStr = strings.TrimSpace(strings.TrimPrefix(tokenStr, "Bearer "))

		claims, err := ParseToken(secret, tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		var staff models.Staff
		if err := db.WithContext(c.Request.Context()).Where("id = ?", claims.UserID).First(&staff).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
			return
		}
		if staff.Status != models.StaffActive {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "account suspended"})
			return
		}

		claims.Role = staff.Role
		claims.Position = staff.Position
		claims.Department = staff.Department

		c.Set(claimsKey, claims)
		c.Set(actorKey, staff.Actor())
		c.Next()
	}
}

// ClaimsFrom returns the claims stored by JWT.
func ClaimsFrom(c *gin.Context) (*Claims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil, false
	}
	cl, ok := v.(*Claims)
	return cl, ok
}

// ActorFrom returns the authenticated actor stored by JWT.
func ActorFrom(c *gin.Context) (permissions.Actor, bool) {
	v, ok := c.Get(actorKey)
	if !ok {
		return permissions.Actor{}, false
	}
	a, ok := v.(permissions.Actor)
	return a, ok
}

// RequestIDFrom returns the id set by RequestID, or "".
func RequestIDFrom(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
