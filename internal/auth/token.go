package auth

//go:generate mockgen -source=token.go -destination=mock_token.go -package=auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"player-auction/internal/auctionerrors"
	"player-auction/internal/dependencies/clock"
	model "player-auction/internal/models"
)

// DefaultTokenTTL is how long an issued token stays valid
const DefaultTokenTTL = time.Hour

// TokenVerifier turns a bearer token back into the identity it was issued to
type TokenVerifier interface {
	Verify(token string) (model.Identity, error)
}

// Claims is the JWT payload carried by access tokens
type Claims struct {
	Role     model.Role `json:"role"`
	TeamName string     `json:"team_name,omitempty"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256 signed access tokens
type TokenService struct {
	secret []byte
	ttl    time.Duration
	clock  clock.Clock
}

var _ TokenVerifier = (*TokenService)(nil)

// NewTokenService creates a token service. A non-positive ttl uses DefaultTokenTTL.
func NewTokenService(secret string, ttl time.Duration, clk clock.Clock) *TokenService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
		clock:  clk,
	}
}

// Issue signs a token for identity that expires after the configured ttl
func (s *TokenService) Issue(identity model.Identity) (string, error) {
	now := s.clock.Now()
	claims := Claims{
		Role: identity.Role(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.SubjectID(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	if buyer, ok := identity.(model.BuyerIdentity); ok {
		claims.TeamName = buyer.TeamName
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature, algorithm and expiry and returns the identity in the token
func (s *TokenService) Verify(token string) (model.Identity, error) {
	if token == "" {
		return nil, auctionerrors.ErrMissingToken
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims,
		func(t *jwt.Token) (interface{}, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.clock.Now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w - %v", auctionerrors.ErrInvalidToken, err)
	}
	if !parsed.Valid || claims.Subject == "" {
		return nil, auctionerrors.ErrInvalidToken
	}

	switch claims.Role {
	case model.RoleAdmin:
		return model.AdminIdentity{ID: claims.Subject}, nil
	case model.RoleBuyer:
		if claims.TeamName == "" {
			return nil, fmt.Errorf("%w - buyer token without team", auctionerrors.ErrInvalidToken)
		}
		return model.BuyerIdentity{ID: claims.Subject, TeamName: claims.TeamName}, nil
	default:
		return nil, fmt.Errorf("%w - unknown role %q", auctionerrors.ErrInvalidToken, claims.Role)
	}
}

