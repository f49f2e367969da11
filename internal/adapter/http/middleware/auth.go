package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"certifica_condo/internal/domain/entities"
	"certifica_condo/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	actorKey   = "actor"
	ActorIDKey = "actor_id"
)

var ErrInvalidToken = errors.New("invalid token")

var (
	errUnauthenticated = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing or invalid bearer token", http.StatusUnauthorized)
	errForbiddenRole   = pkg.NewDomainErrorSimple("FORBIDDEN", "Role not allowed for this route", http.StatusForbidden)
)

// Claims carries the platform role next to the standard claims. The subject
// is the company, condo or admin id.
type Claims struct {
	Role entities.Role `json:"role"`
	jwt.RegisteredClaims
}

// Authenticator validates HS256 bearer tokens issued by the identity service.
type Authenticator struct {
	secret []byte
	issuer string
	now    func() time.Time
}

func NewAuthenticator(secret, issuer string) *Authenticator {
	return &Authenticator{secret: []byte(secret), issuer: issuer, now: time.Now}
}

// IssueToken signs a token for actor. Used by the dev tooling and tests.
func (a *Authenticator) IssueToken(actor entities.Actor, ttl time.Duration) (string, error) {
	if !actor.Role.Valid() || strings.TrimSpace(actor.ID) == "" {
		return "", fmt.Errorf("%w: actor %q/%q", ErrInvalidToken, actor.Role, actor.ID)
	}
	now := a.now().UTC()
	claims := Claims{
		Role: actor.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    a.issuer,
			Subject:   actor.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.NewString(),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Parse verifies signature, issuer and expiry and returns the actor.
func (a *Authenticator) Parse(token string) (entities.Actor, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.Actor{}, ErrInvalidToken
	}
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, ErrInvalidToken
		}
		return a.secret, nil
	},
		jwt.WithIssuer(a.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(a.now),
	)
	if err != nil {
		return entities.Actor{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || !claims.Role.Valid() || strings.TrimSpace(claims.Subject) == "" {
		return entities.Actor{}, ErrInvalidToken
	}
	return entities.Actor{Role: claims.Role, ID: claims.Subject}, nil
}

// Authenticate rejects requests without a valid bearer token and stores the
// actor in the gin context.
func (a *Authenticator) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found {
			c.AbortWithStatusJSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
			return
		}
		actor, err := a.Parse(token)
		if err != nil {
			c.AbortWithStatusJSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
			return
		}
		c.Set(actorKey, actor)
		c.Set(ActorIDKey, actor.ID)
		c.Next()
	}
}

// RequireRole must run after Authenticate.
func RequireRole(roles ...entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := ActorFrom(c)
		if !ok {
			c.AbortWithStatusJSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
			return
		}
		for _, r := range roles {
			if actor.Role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(errForbiddenRole.HTTPStatus, errForbiddenRole.ToHTTPError())
	}
}

// ActorFrom returns the authenticated actor, if any.
func ActorFrom(c *gin.Context) (entities.Actor, bool) {
	v, ok := c.Get(actorKey)
	if !ok {
		return entities.Actor{}, false
	}
	actor, ok := v.(entities.Actor)
	return actor, ok
}

// WithActor stores actor in the context. Handler tests use it in place of a token.
func WithActor(actor entities.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(actorKey, actor)
		c.Set(ActorIDKey, actor.ID)
		c.Next()
	}
}
