package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"installer_crm/internal/identity"
	"installer_crm/internal/platform/logger"
	"installer_crm/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid or expired token")

var errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid or expired token", http.StatusUnauthorized)

// Claims identify the owner whose remote records a request may touch.
type Claims struct {
	OwnerID string `json:"owner_id"`
	jwt.RegisteredClaims
}

// Owner returns OwnerID, falling back to the subject claim.
func (c *Claims) Owner() string {
	if c.OwnerID != "" {
		return c.OwnerID
	}
	return c.Subject
}

type TokenVerifier struct {
	secret []byte
}

func NewTokenVerifier(secret string) *TokenVerifier {
	return &TokenVerifier{secret: []byte(secret)}
}

// Enabled reports whether a signing secret is configured.
func (v *TokenVerifier) Enabled() bool { return len(v.secret) > 0 }

// Issue signs a token for ownerID. Used by tests and local tooling.
func (v *TokenVerifier) Issue(ownerID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		OwnerID: ownerID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   ownerID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return s, nil
}

func (v *TokenVerifier) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Owner() == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// OptionalAuth attaches the token owner to the request context. Requests
// without a token stay anonymous and are served from the local cache only;
// a token that fails verification is rejected.
func OptionalAuth(v *TokenVerifier, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" || v == nil || !v.Enabled() {
			c.Next()
			return
		}
		claims, err := v.Verify(tokenString)
		if err != nil {
			if log != nil {
				log.Debug("rejected bearer token", "error", err)
			}
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		c.Request = c.Request.WithContext(identity.WithOwner(c.Request.Context(), claims.Owner()))
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	return ""
}
