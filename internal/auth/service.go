package auth

import (
	"context"
	"fmt"
	"strings"

	"player-auction/internal/auctionerrors"
	"player-auction/internal/dependencies/clock"
	model "player-auction/internal/models"
	"player-auction/internal/repository"
	"player-auction/utils"
)

// Service registers and logs in admin and buyer accounts
type Service struct {
	accounts repository.AccountDB
	hasher   PasswordHasher
	tokens   *TokenService
	clock    clock.Clock
}

// NewService creates a new auth service
func NewService(accounts repository.AccountDB, hasher PasswordHasher, tokens *TokenService, clk clock.Clock) *Service {
	return &Service{
		accounts: accounts,
		hasher:   hasher,
		tokens:   tokens,
		clock:    clk,
	}
}

// RegisterAdmin creates an admin account with a hashed password
func (s *Service) RegisterAdmin(ctx context.Context, username, password string) (model.Admin, error) {
	if err := requireFields(map[string]string{"username": username, "password": password}); err != nil {
		return model.Admin{}, fmt.Errorf("register admin: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return model.Admin{}, fmt.Errorf("register admin: %w", err)
	}

	admin := model.Admin{
		ID:           utils.GenerateID(),
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    s.clock.Now(),
	}
	if err := s.accounts.CreateAdmin(ctx, admin); err != nil {
		return model.Admin{}, fmt.Errorf("register admin: %w", err)
	}

	utils.Info("admin registered", map[string]any{"admin_id": admin.ID, "username": username})
	return admin, nil
}

// RegisterBuyer creates a buyer account bound to teamName
func (s *Service) RegisterBuyer(ctx context.Context, username, password, teamName string) (model.Buyer, error) {
	err := requireFields(map[string]string{"username": username, "password": password, "teamName": teamName})
	if err != nil {
		return model.Buyer{}, fmt.Errorf("register buyer: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return model.Buyer{}, fmt.Errorf("register buyer: %w", err)
	}

	buyer := model.Buyer{
		ID:           utils.GenerateID(),
		Username:     username,
		PasswordHash: hash,
		TeamName:     teamName,
		CreatedAt:    s.clock.Now(),
	}
	if err := s.accounts.CreateBuyer(ctx, buyer); err != nil {
		return model.Buyer{}, fmt.Errorf("register buyer: %w", err)
	}

	utils.Info("buyer registered", map[string]any{"buyer_id": buyer.ID, "username": username, "team_name": teamName})
	return buyer, nil
}

// LookupAdmin returns the admin account for username
func (s *Service) LookupAdmin(ctx context.Context, username string) (model.Admin, error) {
	return s.accounts.GetAdminByUsername(ctx, username)
}

// LookupBuyer returns the buyer account for username
func (s *Service) LookupBuyer(ctx context.Context, username string) (model.Buyer, error) {
	return s.accounts.GetBuyerByUsername(ctx, username)
}

// LoginAdmin checks credentials and returns a signed admin token
func (s *Service) LoginAdmin(ctx context.Context, username, password string) (string, error) {
	if err := requireFields(map[string]string{"username": username, "password": password}); err != nil {
		return "", fmt.Errorf("admin login: %w", err)
	}

	admin, err := s.accounts.GetAdminByUsername(ctx, username)
	if err != nil {
		return "", fmt.Errorf("admin login: %w", err)
	}
	if err := s.hasher.Compare(admin.PasswordHash, password); err != nil {
		utils.Warn("admin login rejected", map[string]any{"username": username})
		return "", fmt.Errorf("admin login: %w", err)
	}

	return s.tokens.Issue(model.AdminIdentity{ID: admin.ID})
}

// LoginBuyer checks credentials and returns a signed buyer token carrying the team name
func (s *Service) LoginBuyer(ctx context.Context, username, password string) (string, error) {
	if err := requireFields(map[string]string{"username": username, "password": password}); err != nil {
		return "", fmt.Errorf("buyer login: %w", err)
	}

	buyer, err := s.accounts.GetBuyerByUsername(ctx, username)
	if err != nil {
		return "", fmt.Errorf("buyer login: %w", err)
	}
	if err := s.hasher.Compare(buyer.PasswordHash, password); err != nil {
		utils.Warn("buyer login rejected", map[string]any{"username": username})
		return "", fmt.Errorf("buyer login: %w", err)
	}

	return s.tokens.Issue(model.BuyerIdentity{ID: buyer.ID, TeamName: buyer.TeamName})
}

// Verify returns the identity a token was issued to
func (s *Service) Verify(token string) (model.Identity, error) {
	return s.tokens.Verify(token)
}

// requireFields fails with ErrInvalidInput naming the first blank field
func requireFields(fields map[string]string) error {
	for _, name := range []string{"username", "password", "teamName"} {
		v, ok := fields[name]
		if ok && strings.TrimSpace(v) == "" {
			return fmt.Errorf("%w - %s is required", auctionerrors.ErrInvalidInput, name)
		}
	}
	return nil
}
