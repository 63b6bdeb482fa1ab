package bidding

import (
	"context"
	"errors"
	"fmt"
	"math"

	"player-auction/internal/auctionerrors"
	"player-auction/internal/auth"
	"player-auction/internal/dependencies/clock"
	"player-auction/internal/feed"
	"player-auction/internal/metrics"
	model "player-auction/internal/models"
	"player-auction/internal/registry"
	"player-auction/internal/repository"
	"player-auction/utils"
)

// maxBidAttempts bounds how often a bid is re-validated after losing a race
const maxBidAttempts = 3

// Options holds the optional collaborators of a BidEngine
type Options struct {
	// AllowUnbidSale lets an admin finalize a player nobody bid on
	AllowUnbidSale bool
	Publisher      feed.Publisher
	Metrics        *metrics.Metrics
}

// BidEngine enforces the bidding rules and role gates of the auction
type BidEngine struct {
	verifier       auth.TokenVerifier
	db             repository.PlayerDB
	registry       *registry.Registry
	clock          clock.Clock
	publisher      feed.Publisher
	metrics        *metrics.Metrics
	allowUnbidSale bool
}

// NewBidEngine creates a new BidEngine instance
func NewBidEngine(verifier auth.TokenVerifier, db repository.PlayerDB, reg *registry.Registry, clk clock.Clock, opts Options) *BidEngine {
	return &BidEngine{
		verifier:       verifier,
		db:             db,
		registry:       reg,
		clock:          clk,
		publisher:      opts.Publisher,
		metrics:        opts.Metrics,
		allowUnbidSale: opts.AllowUnbidSale,
	}
}

// PlaceBid records a buyer's bid if it beats the player's current bid
func (e *BidEngine) PlaceBid(ctx context.Context, token, playerID string, amount int64) (model.Player, error) {
	player, err := e.placeBid(ctx, token, playerID, amount)
	if err != nil {
		e.metrics.BidRejected(err)
		return model.Player{}, err
	}

	e.metrics.BidPlaced()
	e.publish(feed.EventBidPlaced, player)
	return player, nil
}

func (e *BidEngine) placeBid(ctx context.Context, token, playerID string, amount int64) (model.Player, error) {
	identity, err := e.verifier.Verify(token)
	if err != nil {
		return model.Player{}, fmt.Errorf("engine: %w", err)
	}
	buyer, ok := identity.(model.BuyerIdentity)
	if !ok {
		return model.Player{}, fmt.Errorf("engine: %w - only buyers can place bids", auctionerrors.ErrForbidden)
	}

	if playerID == "" {
		return model.Player{}, fmt.Errorf("engine: %w - missing player ID", auctionerrors.ErrInvalidInput)
	}
	if amount <= 0 {
		return model.Player{}, fmt.Errorf("engine: %w - non-positive bid amount", auctionerrors.ErrInvalidInput)
	}

	for attempt := 1; ; attempt++ {
		player, err := e.db.GetPlayer(ctx, playerID)
		if err != nil {
			return model.Player{}, fmt.Errorf("engine: failed to load player %s: %w", playerID, err)
		}
		if player.IsSold {
			return model.Player{}, fmt.Errorf("engine: %w - player %s", auctionerrors.ErrPlayerAlreadySold, playerID)
		}
		if amount <= player.CurrentBid {
			return model.Player{}, fmt.Errorf("engine: %w - current bid is %d", auctionerrors.ErrBidTooLow, player.CurrentBid)
		}

		bid := model.Bid{
			BidID:     utils.GenerateID(),
			PlayerID:  playerID,
			BuyerID:   buyer.ID,
			TeamName:  buyer.TeamName,
			Amount:    amount,
			CreatedAt: e.clock.Now(),
		}

		updated, err := e.db.RecordBid(ctx, bid, player.CurrentBid)
		if err == nil {
			utils.Info("bid placed", map[string]any{
				"player_id": playerID,
				"buyer_id":  buyer.ID,
				"team_name": buyer.TeamName,
				"amount":    amount,
			})
			return updated, nil
		}
		if !errors.Is(err, auctionerrors.ErrStaleBid) || attempt == maxBidAttempts {
			return model.Player{}, fmt.Errorf("engine: failed to record bid for player %s: %w", playerID, err)
		}

		e.metrics.BidRetried()
		utils.Warn("bid raced a concurrent update, retrying", map[string]any{"player_id": playerID, "attempt": attempt})
	}
}

// FinalizeSale marks a player sold to the current highest bidder. Finalizing a
// sold player returns it unchanged.
func (e *BidEngine) FinalizeSale(ctx context.Context, token, playerID string) (model.Player, error) {
	if _, err := e.requireAdmin(token, "finalize sales"); err != nil {
		return model.Player{}, err
	}
	if playerID == "" {
		return model.Player{}, fmt.Errorf("engine: %w - missing player ID", auctionerrors.ErrInvalidInput)
	}

	player, err := e.db.GetPlayer(ctx, playerID)
	if err != nil {
		return model.Player{}, fmt.Errorf("engine: failed to load player %s: %w", playerID, err)
	}
	if player.IsSold {
		return player, nil
	}
	if !player.HasBids() && !e.allowUnbidSale {
		return model.Player{}, fmt.Errorf("engine: %w - player %s", auctionerrors.ErrNoBids, playerID)
	}

	sold, err := e.db.MarkSold(ctx, playerID)
	if err != nil {
		return model.Player{}, fmt.Errorf("engine: failed to finalize player %s: %w", playerID, err)
	}

	fields := map[string]any{"player_id": playerID, "amount": sold.CurrentBid}
	if sold.SoldToTeam != nil {
		fields["team_name"] = *sold.SoldToTeam
	}
	utils.Info("player sold", fields)

	e.metrics.SaleFinalized()
	e.publish(feed.EventPlayerSold, sold)
	return sold, nil
}

// GeneratePlayer creates a random player on behalf of an admin
func (e *BidEngine) GeneratePlayer(ctx context.Context, token string) (model.Player, error) {
	if _, err := e.requireAdmin(token, "generate players"); err != nil {
		return model.Player{}, err
	}

	player, err := e.registry.GenerateRandom(ctx)
	if err != nil {
		return model.Player{}, fmt.Errorf("engine: %w", err)
	}

	e.metrics.PlayerGenerated()
	e.publish(feed.EventPlayerCreated, player)
	return player, nil
}

// CreatePlayer adds a named player on behalf of an admin
func (e *BidEngine) CreatePlayer(ctx context.Context, token, name string, role model.PlayerRole, basePrice int64) (model.Player, error) {
	if _, err := e.requireAdmin(token, "create players"); err != nil {
		return model.Player{}, err
	}

	player, err := e.registry.Create(ctx, name, role, basePrice)
	if err != nil {
		return model.Player{}, fmt.Errorf("engine: %w", err)
	}

	e.metrics.PlayerGenerated()
	e.publish(feed.EventPlayerCreated, player)
	return player, nil
}

// ListPlayers returns players filtered by sale status, highest current bid first
func (e *BidEngine) ListPlayers(ctx context.Context, status model.PlayerStatus) ([]model.Player, error) {
	return e.registry.List(ctx, status)
}

// GetPlayer returns a single player
func (e *BidEngine) GetPlayer(ctx context.Context, playerID string) (model.Player, error) {
	return e.registry.Get(ctx, playerID)
}

// BidsForPlayer returns the bid history of a player, newest first
func (e *BidEngine) BidsForPlayer(ctx context.Context, playerID string) ([]model.Bid, error) {
	return e.registry.BidsForPlayer(ctx, playerID)
}

func (e *BidEngine) requireAdmin(token, action string) (model.AdminIdentity, error) {
	identity, err := e.verifier.Verify(token)
	if err != nil {
		return model.AdminIdentity{}, fmt.Errorf("engine: %w", err)
	}
	admin, ok := identity.(model.AdminIdentity)
	if !ok {
		return model.AdminIdentity{}, fmt.Errorf("engine: %w - only admin can %s", auctionerrors.ErrForbidden, action)
	}
	return admin, nil
}

func (e *BidEngine) publish(eventType string, player model.Player) {
	if e.publisher == nil {
		return
	}
	e.publisher.Publish(feed.Event{Type: eventType, Player: player})
}

// SuggestedBid is the next bid shown to buyers: the base price before any bid,
// otherwise 5% above the current bid rounded up. It is a hint and never enforced.
func SuggestedBid(p model.Player) int64 {
	if !p.HasBids() {
		return p.BasePrice
	}
	cur := p.CurrentBid
	step := cur / 20
	if cur%20 != 0 {
		step++
	}
	if cur > math.MaxInt64-step {
		return math.MaxInt64
	}
	return cur + step
}
