package repository

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"player-auction/internal/auctionerrors"
	model "player-auction/internal/models"
)

// AccountDB persists admin and buyer credentials. Usernames are unique per role.
type AccountDB interface {
	CreateAdmin(ctx context.Context, admin model.Admin) error
	CreateBuyer(ctx context.Context, buyer model.Buyer) error
	GetAdminByUsername(ctx context.Context, username string) (model.Admin, error)
	GetBuyerByUsername(ctx context.Context, username string) (model.Buyer, error)
}

// PlayerDB persists players and their append-only bid log
type PlayerDB interface {
	CreatePlayer(ctx context.Context, player model.Player) error
	GetPlayer(ctx context.Context, playerID string) (model.Player, error)
	ListPlayers(ctx context.Context, status model.PlayerStatus) ([]model.Player, error)
	// RecordBid appends bid and moves the player's current bid to bid.Amount, but only
	// if the player is unsold and its current bid still equals expectedCurrentBid.
	// Otherwise it returns ErrStaleBid and writes nothing.
	RecordBid(ctx context.Context, bid model.Bid, expectedCurrentBid int64) (model.Player, error)
	MarkSold(ctx context.Context, playerID string) (model.Player, error)
	GetBidsByPlayer(ctx context.Context, playerID string) ([]model.Bid, error)
}

// AuctionDB is the full storage handle the application is wired with
type AuctionDB interface {
	AccountDB
	PlayerDB
	Close() error
}

// MemoryRepo is a concurrency-safe in-memory implementation of AuctionDB
type MemoryRepo struct {
	mu      sync.RWMutex
	admins  map[string]model.Admin  // key: username
	buyers  map[string]model.Buyer  // key: username
	players map[string]model.Player // key: playerID
	bids    map[string][]model.Bid  // key: playerID -> bids in arrival order
}

var _ AuctionDB = (*MemoryRepo)(nil)

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		admins:  make(map[string]model.Admin),
		buyers:  make(map[string]model.Buyer),
		players: make(map[string]model.Player),
		bids:    make(map[string][]model.Bid),
	}
}

// CreateAdmin stores a new admin account
func (r *MemoryRepo) CreateAdmin(_ context.Context, admin model.Admin) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.admins[admin.Username]; ok {
		return fmt.Errorf("create admin %s: %w", admin.Username, auctionerrors.ErrDuplicateUsername)
	}
	r.admins[admin.Username] = admin
	return nil
}

// CreateBuyer stores a new buyer account
func (r *MemoryRepo) CreateBuyer(_ context.Context, buyer model.Buyer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.buyers[buyer.Username]; ok {
		return fmt.Errorf("create buyer %s: %w", buyer.Username, auctionerrors.ErrDuplicateUsername)
	}
	r.buyers[buyer.Username] = buyer
	return nil
}

// GetAdminByUsername looks up an admin account
func (r *MemoryRepo) GetAdminByUsername(_ context.Context, username string) (model.Admin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	admin, ok := r.admins[username]
	if !ok {
		return model.Admin{}, fmt.Errorf("get admin %s: %w", username, auctionerrors.ErrAccountNotFound)
	}
	return admin, nil
}

// GetBuyerByUsername looks up a buyer account
func (r *MemoryRepo) GetBuyerByUsername(_ context.Context, username string) (model.Buyer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	buyer, ok := r.buyers[username]
	if !ok {
		return model.Buyer{}, fmt.Errorf("get buyer %s: %w", username, auctionerrors.ErrAccountNotFound)
	}
	return buyer, nil
}

// CreatePlayer adds a player to the repository. An existing ID is never overwritten.
func (r *MemoryRepo) CreatePlayer(_ context.Context, player model.Player) error {
	if player.ID == "" {
		return fmt.Errorf("create player: %w - empty player ID", auctionerrors.ErrInvalidInput)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.players[player.ID]; exists {
		return fmt.Errorf("create player %s: %w", player.ID, auctionerrors.ErrDuplicatePlayer)
	}
	r.players[player.ID] = clonePlayer(player)
	return nil
}

// GetPlayer returns a single player
func (r *MemoryRepo) GetPlayer(_ context.Context, playerID string) (model.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	player, ok := r.players[playerID]
	if !ok {
		return model.Player{}, fmt.Errorf("get player %s: %w", playerID, auctionerrors.ErrPlayerNotFound)
	}
	return clonePlayer(player), nil
}

// ListPlayers returns players matching status, highest current bid first
func (r *MemoryRepo) ListPlayers(_ context.Context, status model.PlayerStatus) ([]model.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	players := make([]model.Player, 0, len(r.players))
	for _, p := range r.players {
		if MatchesStatus(p, status) {
			players = append(players, clonePlayer(p))
		}
	}
	SortPlayers(players)
	return players, nil
}

// RecordBid appends a bid and updates the player if it is unchanged since it was read
func (r *MemoryRepo) RecordBid(_ context.Context, bid model.Bid, expectedCurrentBid int64) (model.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	player, ok := r.players[bid.PlayerID]
	if !ok {
		return model.Player{}, fmt.Errorf("record bid for player %s: %w", bid.PlayerID, auctionerrors.ErrPlayerNotFound)
	}
	if player.IsSold || player.CurrentBid != expectedCurrentBid {
		return model.Player{}, fmt.Errorf("record bid for player %s: %w", bid.PlayerID, auctionerrors.ErrStaleBid)
	}

	r.bids[bid.PlayerID] = append(r.bids[bid.PlayerID], bid)

	team := bid.TeamName
	player.CurrentBid = bid.Amount
	player.SoldToTeam = &team
	r.players[player.ID] = player

	return clonePlayer(player), nil
}

// MarkSold flags a player as sold. Marking an already sold player is a no-op.
func (r *MemoryRepo) MarkSold(_ context.Context, playerID string) (model.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	player, ok := r.players[playerID]
	if !ok {
		return model.Player{}, fmt.Errorf("mark player %s sold: %w", playerID, auctionerrors.ErrPlayerNotFound)
	}
	player.IsSold = true
	r.players[playerID] = player
	return clonePlayer(player), nil
}

// GetBidsByPlayer returns every bid for a player, newest first
func (r *MemoryRepo) GetBidsByPlayer(_ context.Context, playerID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.players[playerID]; !ok {
		return nil, fmt.Errorf("get bids for player %s: %w", playerID, auctionerrors.ErrPlayerNotFound)
	}

	bids := r.bids[playerID]
	out := make([]model.Bid, 0, len(bids))
	for i := len(bids) - 1; i >= 0; i-- {
		out = append(out, bids[i])
	}
	return out, nil
}

// Close is a no-op for the in-memory store
func (r *MemoryRepo) Close() error {
	return nil
}

// MatchesStatus reports whether p belongs in a listing filtered by status
func MatchesStatus(p model.Player, status model.PlayerStatus) bool {
	switch status {
	case model.StatusSold:
		return p.IsSold
	case model.StatusUnsold:
		return !p.IsSold
	default:
		return true
	}
}

// SortPlayers orders players by current bid descending, then creation time, then ID
func SortPlayers(players []model.Player) {
	sort.SliceStable(players, func(i, j int) bool {
		a, b := players[i], players[j]
		if a.CurrentBid != b.CurrentBid {
			return a.CurrentBid > b.CurrentBid
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})
}

// clonePlayer copies the SoldToTeam pointer so callers cannot mutate stored state
func clonePlayer(p model.Player) model.Player {
	if p.SoldToTeam != nil {
		team := *p.SoldToTeam
		p.SoldToTeam = &team
	}
	return p
}
