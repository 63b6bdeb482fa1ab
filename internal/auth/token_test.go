package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"player-auction/internal/auctionerrors"
	"player-auction/internal/dependencies/clock"
	model "player-auction/internal/models"
)

var tokenEpoch = time.Date(2024, 3, 22, 10, 0, 0, 0, time.UTC)

func TestTokenService_RoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		identity model.Identity
	}{
		{name: "admin", identity: model.AdminIdentity{ID: "admin-1"}},
		{name: "buyer", identity: model.BuyerIdentity{ID: "buyer-1", TeamName: "Royal Challengers"}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc := NewTokenService("test-secret", time.Hour, clock.NewManual(tokenEpoch))
			token, err := svc.Issue(tc.identity)
			require.NoError(t, err)

			got, err := svc.Verify(token)
			require.NoError(t, err)
			require.Equal(t, tc.identity, got)
		})
	}
}

func TestTokenService_Expiry(t *testing.T) {
	t.Parallel()

	clk := clock.NewManual(tokenEpoch)
	svc := NewTokenService("test-secret", time.Hour, clk)

	token, err := svc.Issue(model.AdminIdentity{ID: "admin-1"})
	require.NoError(t, err)

	clk.Advance(59 * time.Minute)
	_, err = svc.Verify(token)
	require.NoError(t, err)

	clk.Advance(2 * time.Minute)
	_, err = svc.Verify(token)
	require.ErrorIs(t, err, auctionerrors.ErrInvalidToken)
}

func TestTokenService_Rejects(t *testing.T) {
	t.Parallel()

	clk := clock.NewManual(tokenEpoch)
	svc := NewTokenService("test-secret", time.Hour, clk)

	valid, err := svc.Issue(model.BuyerIdentity{ID: "buyer-1", TeamName: "Mumbai"})
	require.NoError(t, err)
	other, err := svc.Issue(model.AdminIdentity{ID: "admin-9"})
	require.NoError(t, err)

	// Payload of one token under the signature of another
	vp, op := strings.Split(valid, "."), strings.Split(other, ".")
	tampered := vp[0] + "." + op[1] + "." + vp[2]

	sign := func(method jwt.SigningMethod, key any, claims Claims) string {
		s, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return s
	}
	registered := jwt.RegisteredClaims{
		Subject:   "someone",
		IssuedAt:  jwt.NewNumericDate(tokenEpoch),
		ExpiresAt: jwt.NewNumericDate(tokenEpoch.Add(time.Hour)),
	}

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{name: "empty", token: "", wantErr: auctionerrors.ErrMissingToken},
		{name: "garbage", token: "not.a.token", wantErr: auctionerrors.ErrInvalidToken},
		{name: "tampered", token: tampered, wantErr: auctionerrors.ErrInvalidToken},
		{
			name:    "other_secret",
			token:   sign(jwt.SigningMethodHS256, []byte("other"), Claims{Role: model.RoleAdmin, RegisteredClaims: registered}),
			wantErr: auctionerrors.ErrInvalidToken,
		},
		{
			name:    "unexpected_algorithm",
			token:   sign(jwt.SigningMethodHS512, []byte("test-secret"), Claims{Role: model.RoleAdmin, RegisteredClaims: registered}),
			wantErr: auctionerrors.ErrInvalidToken,
		},
		{
			name:    "unknown_role",
			token:   sign(jwt.SigningMethodHS256, []byte("test-secret"), Claims{Role: "superuser", RegisteredClaims: registered}),
			wantErr: auctionerrors.ErrInvalidToken,
		},
		{
			name:    "buyer_without_team",
			token:   sign(jwt.SigningMethodHS256, []byte("test-secret"), Claims{Role: model.RoleBuyer, RegisteredClaims: registered}),
			wantErr: auctionerrors.ErrInvalidToken,
		},
		{
			name: "missing_expiry",
			token: sign(jwt.SigningMethodHS256, []byte("test-secret"), Claims{
				Role:             model.RoleAdmin,
				RegisteredClaims: jwt.RegisteredClaims{Subject: "someone"},
			}),
			wantErr: auctionerrors.ErrInvalidToken,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := svc.Verify(tc.token)
			require.ErrorIs(t, err, tc.wantErr)
			require.Nil(t, got)
		})
	}
}

func TestNewTokenService_DefaultTTL(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("s", 0, clock.New())
	require.Equal(t, DefaultTokenTTL, svc.ttl)
}
