package perftests

import (
	"context"
	"fmt"
	"testing"
	"time"

	"player-auction/internal/auth"
	bidding "player-auction/internal/biddingService"
	"player-auction/internal/dependencies/clock"
	"player-auction/internal/dependencies/random"
	"player-auction/internal/metrics"
	model "player-auction/internal/models"
	"player-auction/internal/registry"
	"player-auction/internal/repository"

	"github.com/prometheus/client_golang/prometheus"
)

// bench bundles a real engine on in-memory storage with pre-issued tokens
type bench struct {
	engine      *bidding.BidEngine
	playerIDs   []string
	buyerTokens []string
	adminToken  string
}

// setupBench creates numPlayers players and numBuyers buyer tokens
func setupBench(tb testing.TB, numPlayers, numBuyers int) *bench {
	tb.Helper()

	clk := clock.New()
	repo := repository.NewMemoryRepo()
	tokens := auth.NewTokenService("perf-secret", time.Hour, clk)
	reg := registry.New(repo, random.New(), clk, registry.DefaultConfig())
	engine := bidding.NewBidEngine(tokens, repo, reg, clk, bidding.Options{
		Metrics: metrics.New(prometheus.NewRegistry()),
	})

	adminToken, err := tokens.Issue(model.AdminIdentity{ID: "admin"})
	if err != nil {
		tb.Fatalf("issue admin token: %v", err)
	}

	b := &bench{engine: engine, adminToken: adminToken}
	ctx := context.Background()
	for i := 0; i < numPlayers; i++ {
		p, err := engine.GeneratePlayer(ctx, adminToken)
		if err != nil {
			tb.Fatalf("generate player: %v", err)
		}
		b.playerIDs = append(b.playerIDs, p.ID)
	}
	for i := 0; i < numBuyers; i++ {
		tok, err := tokens.Issue(model.BuyerIdentity{ID: fmt.Sprintf("buyer_%d", i), TeamName: fmt.Sprintf("Team %d", i)})
		if err != nil {
			tb.Fatalf("issue buyer token: %v", err)
		}
		b.buyerTokens = append(b.buyerTokens, tok)
	}
	return b
}
