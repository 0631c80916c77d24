// Package auth provides authentication and authorization support.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stayvie/floorplan/business/domain/userbus"
	"github.com/stayvie/floorplan/business/types/role"
	"github.com/stayvie/floorplan/foundation/logger"
)

// tokenTTL is how long an issued token stays valid.
const tokenTTL = 7 * 24 * time.Hour

var (
	ErrForbidden    = errors.New("attempted action is not allowed")
	ErrUserDisabled = errors.New("user is disabled")
	ErrInvalidRole  = errors.New("token contains an invalid role")
)

// Claims represents the authorization claims transmitted via a JWT.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// Config represents information required to initialize auth.
type Config struct {
	Log     *logger.Logger
	UserBus *userbus.Core
	Secret  string
	Issuer  string
}

// Auth is used to authenticate clients.
type Auth struct {
	log     *logger.Logger
	userBus *userbus.Core
	secret  []byte
	method  jwt.SigningMethod
	parser  *jwt.Parser
	issuer  string
}

// New creates an Auth to support authentication/authorization.
func New(cfg Config) *Auth {
	return &Auth{
		log:     cfg.Log,
		userBus: cfg.UserBus,
		secret:  []byte(cfg.Secret),
		method:  jwt.GetSigningMethod(jwt.SigningMethodHS256.Name),
		parser:  jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name})),
		issuer:  cfg.Issuer,
	}
}

// Issuer provides the configured issuer used to authenticate tokens.
func (a *Auth) Issuer() string {
	return a.issuer
}

// GenerateToken generates a signed JWT token string representing the user.
func (a *Auth) GenerateToken(usr userbus.User) (string, error) {
	now := time.Now()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   usr.ID.String(),
			Issuer:    a.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Email: usr.Email.Address,
		Name:  usr.Name.String(),
		Role:  usr.Role.String(),
	}

	token := jwt.NewWithClaims(a.method, claims)

	str, err := token.SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return str, nil
}

// Authenticate processes the token to validate the sender's token is valid.
func (a *Auth) Authenticate(ctx context.Context, bearerToken string) (Claims, error) {
	if !strings.HasPrefix(bearerToken, "Bearer ") {
		return Claims{}, errors.New("expected authorization header format: Bearer <token>")
	}

	tokenStr := bearerToken[7:]

	var claims Claims
	token, err := a.parser.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (interface{}, error) {
		return a.secret, nil
	})
	if err != nil {
		return Claims{}, fmt.Errorf("validating token signature: %w", err)
	}

	if !token.Valid {
		return Claims{}, errors.New("token is invalid")
	}

	if claims.Issuer != a.issuer {
		return Claims{}, fmt.Errorf("invalid issuer: expected %q, got %q", a.issuer, claims.Issuer)
	}

	if _, err := role.Parse(claims.Role); err != nil {
		return Claims{}, ErrInvalidRole
	}

	return claims, nil
}

// UserFromClaims fetches the current state of the user referenced by the
// claims. A token for a user that no longer exists, or whose account has been
// disabled since the token was issued, does not authenticate.
func (a *Auth) UserFromClaims(ctx context.Context, claims Claims) (userbus.User, error) {
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return userbus.User{}, fmt.Errorf("parsing user ID %q from claims: %w", claims.Subject, err)
	}

	usr, err := a.userBus.QueryByID(ctx, userID)
	if err != nil {
		return userbus.User{}, fmt.Errorf("query user: %w", err)
	}

	if !usr.Enabled {
		return userbus.User{}, ErrUserDisabled
	}

	return usr, nil
}

// Authorize checks if the claims possess ONE OF the required roles.
func (a *Auth) Authorize(ctx context.Context, claims Claims, allowedRoles ...role.Role) error {
	if len(allowedRoles) == 0 {
		return fmt.Errorf("%w: no roles authorized for this endpoint", ErrForbidden)
	}

	for _, r := range allowedRoles {
		if claims.Role == r.String() {
			return nil
		}
	}

	return fmt.Errorf("%w: user role %q is not in the allowed list %v", ErrForbidden, claims.Role, allowedRoles)
}

// Login validates the specified credentials and returns the matching user.
func (a *Auth) Login(ctx context.Context, email mail.Address, password string) (userbus.User, error) {
	usr, err := a.userBus.Authenticate(ctx, email, password)
	if err != nil {
		return userbus.User{}, fmt.Errorf("invalid credentials: %w", err)
	}

	return usr, nil
}
