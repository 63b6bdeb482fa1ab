package registry

import (
	"context"
	"fmt"
	"strings"

	"player-auction/internal/auctionerrors"
	"player-auction/internal/dependencies/clock"
	"player-auction/internal/dependencies/random"
	model "player-auction/internal/models"
	"player-auction/internal/repository"
	"player-auction/utils"
)

// Roster is the pool of names the random generator draws from
var Roster = []string{
	"Virat Kohli", "MS Dhoni", "Rohit Sharma", "KL Rahul",
	"Jasprit Bumrah", "Hardik Pandya", "Ravindra Jadeja",
	"AB de Villiers", "Chris Gayle", "David Warner",
}

// Config bounds the base price of generated players (inclusive)
type Config struct {
	MinBasePrice int64
	MaxBasePrice int64
}

// DefaultConfig returns the 2,000,000 to 20,000,000 price range
func DefaultConfig() Config {
	return Config{
		MinBasePrice: 2_000_000,
		MaxBasePrice: 20_000_000,
	}
}

// Registry creates players and answers read-only player queries
type Registry struct {
	db    repository.PlayerDB
	rand  random.Random
	clock clock.Clock
	cfg   Config
}

// New creates a Registry. An invalid price range falls back to DefaultConfig.
func New(db repository.PlayerDB, rnd random.Random, clk clock.Clock, cfg Config) *Registry {
	if cfg.MinBasePrice <= 0 || cfg.MaxBasePrice < cfg.MinBasePrice {
		cfg = DefaultConfig()
	}
	return &Registry{
		db:    db,
		rand:  rnd,
		clock: clk,
		cfg:   cfg,
	}
}

// Create stores a new unsold player with no bids. Callers must already have checked
// that the requester is an admin.
func (r *Registry) Create(ctx context.Context, name string, role model.PlayerRole, basePrice int64) (model.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Player{}, fmt.Errorf("registry: %w - empty player name", auctionerrors.ErrInvalidInput)
	}
	if !role.Valid() {
		return model.Player{}, fmt.Errorf("registry: %w - unknown role %q", auctionerrors.ErrInvalidInput, role)
	}
	if basePrice <= 0 {
		return model.Player{}, fmt.Errorf("registry: %w - non-positive base price", auctionerrors.ErrInvalidInput)
	}

	player := model.Player{
		ID:        utils.GenerateID(),
		Name:      name,
		Role:      role,
		BasePrice: basePrice,
		CreatedAt: r.clock.Now(),
	}
	if err := r.db.CreatePlayer(ctx, player); err != nil {
		return model.Player{}, fmt.Errorf("registry: failed to create player %s: %w", name, err)
	}

	utils.Info("player created", map[string]any{
		"player_id":  player.ID,
		"name":       player.Name,
		"role":       player.Role,
		"base_price": player.BasePrice,
	})
	return player, nil
}

// GenerateRandom creates a player with a random roster name, role and base price
func (r *Registry) GenerateRandom(ctx context.Context) (model.Player, error) {
	name := random.Pick(r.rand, Roster)
	role := random.Pick(r.rand, model.PlayerRoles)
	price := random.Between(r.rand, r.cfg.MinBasePrice, r.cfg.MaxBasePrice)
	return r.Create(ctx, name, role, price)
}

// Get returns a single player
func (r *Registry) Get(ctx context.Context, playerID string) (model.Player, error) {
	if playerID == "" {
		return model.Player{}, fmt.Errorf("registry: %w - empty player ID", auctionerrors.ErrInvalidInput)
	}
	player, err := r.db.GetPlayer(ctx, playerID)
	if err != nil {
		return model.Player{}, fmt.Errorf("registry: failed to get player %s: %w", playerID, err)
	}
	return player, nil
}

// List returns players matching status ordered by current bid, highest first
func (r *Registry) List(ctx context.Context, status model.PlayerStatus) ([]model.Player, error) {
	players, err := r.db.ListPlayers(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("registry: failed to list %s players: %w", status, err)
	}
	return players, nil
}

func (r *Registry) ListAll(ctx context.Context) ([]model.Player, error) {
	return r.List(ctx, model.StatusAll)
}

func (r *Registry) ListUnsold(ctx context.Context) ([]model.Player, error) {
	return r.List(ctx, model.StatusUnsold)
}

func (r *Registry) ListSold(ctx context.Context) ([]model.Player, error) {
	return r.List(ctx, model.StatusSold)
}

// BidsForPlayer returns a player's bid history, newest first
func (r *Registry) BidsForPlayer(ctx context.Context, playerID string) ([]model.Bid, error) {
	if playerID == "" {
		return nil, fmt.Errorf("registry: %w - empty player ID", auctionerrors.ErrInvalidInput)
	}
	bids, err := r.db.GetBidsByPlayer(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("registry: failed to get bids for player %s: %w", playerID, err)
	}
	return bids, nil
}
