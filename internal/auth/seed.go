package auth

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"player-auction/internal/auctionerrors"
	"player-auction/utils"
)

type accountsFile struct {
	Admins []struct {
		Username string `yaml:"username"`
		Password string `yaml:"password"`
	} `yaml:"admins"`
	Buyers []struct {
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		TeamName string `yaml:"team_name"`
	} `yaml:"buyers"`
}

// SeedResult counts what a seed run did
type SeedResult struct {
	AdminsCreated int
	BuyersCreated int
	Skipped       int
}

// SeedFromFile registers every account listed in a YAML file. Accounts whose
// username is already taken are skipped, so seeding can be repeated.
func (s *Service) SeedFromFile(ctx context.Context, path string) (SeedResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SeedResult{}, fmt.Errorf("seed: %w", err)
	}
	return s.Seed(ctx, data)
}

// Seed registers the accounts in a YAML document
func (s *Service) Seed(ctx context.Context, data []byte) (SeedResult, error) {
	var af accountsFile
	if err := yaml.Unmarshal(data, &af); err != nil {
		return SeedResult{}, fmt.Errorf("seed: %w - %v", auctionerrors.ErrInvalidInput, err)
	}

	var res SeedResult
	for _, a := range af.Admins {
		_, err := s.RegisterAdmin(ctx, a.Username, a.Password)
		switch {
		case err == nil:
			res.AdminsCreated++
		case errors.Is(err, auctionerrors.ErrDuplicateUsername):
			res.Skipped++
		default:
			return res, fmt.Errorf("seed admin %q: %w", a.Username, err)
		}
	}
	for _, b := range af.Buyers {
		_, err := s.RegisterBuyer(ctx, b.Username, b.Password, b.TeamName)
		switch {
		case err == nil:
			res.BuyersCreated++
		case errors.Is(err, auctionerrors.ErrDuplicateUsername):
			res.Skipped++
		default:
			return res, fmt.Errorf("seed buyer %q: %w", b.Username, err)
		}
	}

	utils.Info("accounts seeded", map[string]any{
		"admins_created": res.AdminsCreated,
		"buyers_created": res.BuyersCreated,
		"skipped":        res.Skipped,
	})
	return res, nil
}
