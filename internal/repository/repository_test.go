package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"player-auction/internal/auctionerrors"
	model "player-auction/internal/models"

	"github.com/stretchr/testify/require"
)

// Helper to create a new Player
func newPlayer(id, name string, basePrice, currentBid int64, createdAt time.Time) model.Player {
	return model.Player{
		ID:         id,
		Name:       name,
		Role:       model.RoleBatsman,
		BasePrice:  basePrice,
		CurrentBid: currentBid,
		CreatedAt:  createdAt,
	}
}

// Helper to create a new Bid
func newBid(bidID, playerID, buyerID, team string, amount int64) model.Bid {
	return model.Bid{
		BidID:     bidID,
		PlayerID:  playerID,
		BuyerID:   buyerID,
		TeamName:  team,
		Amount:    amount,
		CreatedAt: time.Now().UTC(),
	}
}

// Test account creation and lookup
func TestMemoryRepo_Accounts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()

	require.NoError(t, repo.CreateAdmin(ctx, model.Admin{ID: "a1", Username: "root", PasswordHash: "h"}))
	require.NoError(t, repo.CreateBuyer(ctx, model.Buyer{ID: "b1", Username: "csk", PasswordHash: "h", TeamName: "Chennai"}))

	t.Run("duplicate_admin", func(t *testing.T) {
		err := repo.CreateAdmin(ctx, model.Admin{ID: "a2", Username: "root"})
		require.ErrorIs(t, err, auctionerrors.ErrDuplicateUsername)
	})

	t.Run("duplicate_buyer", func(t *testing.T) {
		err := repo.CreateBuyer(ctx, model.Buyer{ID: "b2", Username: "csk"})
		require.ErrorIs(t, err, auctionerrors.ErrDuplicateUsername)
	})

	t.Run("same_username_across_roles", func(t *testing.T) {
		require.NoError(t, repo.CreateBuyer(ctx, model.Buyer{ID: "b3", Username: "root", TeamName: "Mumbai"}))
	})

	t.Run("lookup", func(t *testing.T) {
		admin, err := repo.GetAdminByUsername(ctx, "root")
		require.NoError(t, err)
		require.Equal(t, "a1", admin.ID)

		buyer, err := repo.GetBuyerByUsername(ctx, "csk")
		require.NoError(t, err)
		require.Equal(t, "Chennai", buyer.TeamName)
	})

	t.Run("lookup_missing", func(t *testing.T) {
		_, err := repo.GetAdminByUsername(ctx, "nobody")
		require.ErrorIs(t, err, auctionerrors.ErrAccountNotFound)

		_, err = repo.GetBuyerByUsername(ctx, "nobody")
		require.ErrorIs(t, err, auctionerrors.ErrAccountNotFound)
	})
}

// Test RecordBid
func TestMemoryRepo_RecordBid(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	tests := []struct {
		name      string
		player    model.Player
		sold      bool
		bid       model.Bid
		expected  int64
		wantError error
	}{
		{
			name:     "first_bid",
			player:   newPlayer("p1", "Virat Kohli", 5_000_000, 0, time.Now()),
			bid:      newBid("bid1", "p1", "b1", "Bangalore", 5_500_000),
			expected: 0,
		},
		{
			name:      "player_not_found",
			player:    newPlayer("p1", "Virat Kohli", 5_000_000, 0, time.Now()),
			bid:       newBid("bid2", "pX", "b1", "Bangalore", 5_500_000),
			expected:  0,
			wantError: auctionerrors.ErrPlayerNotFound,
		},
		{
			name:      "stale_expected_bid",
			player:    newPlayer("p1", "Virat Kohli", 5_000_000, 6_000_000, time.Now()),
			bid:       newBid("bid3", "p1", "b1", "Bangalore", 6_500_000),
			expected:  5_500_000,
			wantError: auctionerrors.ErrStaleBid,
		},
		{
			name:      "player_sold",
			player:    newPlayer("p1", "Virat Kohli", 5_000_000, 6_000_000, time.Now()),
			sold:      true,
			bid:       newBid("bid4", "p1", "b1", "Bangalore", 7_000_000),
			expected:  6_000_000,
			wantError: auctionerrors.ErrStaleBid,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			repo := NewMemoryRepo()
			tc.player.IsSold = tc.sold
			require.NoError(t, repo.CreatePlayer(ctx, tc.player))

			updated, err := repo.RecordBid(ctx, tc.bid, tc.expected)
			if tc.wantError != nil {
				require.ErrorIs(t, err, tc.wantError)

				// Nothing was written
				stored, getErr := repo.GetPlayer(ctx, tc.player.ID)
				require.NoError(t, getErr)
				require.Equal(t, tc.player.CurrentBid, stored.CurrentBid)
				bids, _ := repo.GetBidsByPlayer(ctx, tc.player.ID)
				require.Empty(t, bids)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.bid.Amount, updated.CurrentBid)
			require.NotNil(t, updated.SoldToTeam)
			require.Equal(t, tc.bid.TeamName, *updated.SoldToTeam)

			bids, err := repo.GetBidsByPlayer(ctx, tc.player.ID)
			require.NoError(t, err)
			require.Equal(t, []model.Bid{tc.bid}, bids)
		})
	}

	// concurrency test: every writer races with the same expected value, only one may win
	t.Run("concurrent_bids_single_winner", func(t *testing.T) {
		t.Parallel()

		repo := NewMemoryRepo()
		require.NoError(t, repo.CreatePlayer(ctx, newPlayer("p1", "MS Dhoni", 2_000_000, 0, time.Now())))

		var (
			wg      sync.WaitGroup
			mu      sync.Mutex
			winners int
		)
		concurrentCount := 50

		for i := 0; i < concurrentCount; i++ {
			wg.Add(1)
			i := i
			go func() {
				defer wg.Done()
				b := newBid(fmt.Sprintf("bid-%d", i), "p1", fmt.Sprintf("buyer-%d", i), "Team", int64(2_000_000+i))
				_, err := repo.RecordBid(ctx, b, 0)
				if err == nil {
					mu.Lock()
					winners++
					mu.Unlock()
					return
				}
				require.True(t, errors.Is(err, auctionerrors.ErrStaleBid))
			}()
		}

		wg.Wait()

		require.Equal(t, 1, winners)
		bids, err := repo.GetBidsByPlayer(ctx, "p1")
		require.NoError(t, err)
		require.Len(t, bids, 1)
	})
}

func TestMemoryRepo_CreatePlayer(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()
	original := newPlayer("p1", "Jasprit Bumrah", 4_000_000, 0, time.Now())
	require.NoError(t, repo.CreatePlayer(ctx, original))

	_, err := repo.RecordBid(ctx, newBid("bid1", "p1", "b1", "Mumbai", 4_500_000), 0)
	require.NoError(t, err)

	tests := []struct {
		name      string
		player    model.Player
		wantError error
	}{
		{name: "empty_id", player: newPlayer("", "Nobody", 2_000_000, 0, time.Now()), wantError: auctionerrors.ErrInvalidInput},
		{name: "duplicate_id", player: newPlayer("p1", "Impostor", 2_000_000, 0, time.Now()), wantError: auctionerrors.ErrDuplicatePlayer},
	}

	for _, tc := range tests {
		require.ErrorIs(t, repo.CreatePlayer(ctx, tc.player), tc.wantError, tc.name)
	}

	// The stored player and its bid survive the rejected write
	stored, err := repo.GetPlayer(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, "Jasprit Bumrah", stored.Name)
	require.Equal(t, int64(4_500_000), stored.CurrentBid)
}

// Test MarkSold
func TestMemoryRepo_MarkSold(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()
	require.NoError(t, repo.CreatePlayer(ctx, newPlayer("p1", "Rohit Sharma", 3_000_000, 0, time.Now())))

	_, err := repo.RecordBid(ctx, newBid("bid1", "p1", "b1", "Mumbai", 3_100_000), 0)
	require.NoError(t, err)

	sold, err := repo.MarkSold(ctx, "p1")
	require.NoError(t, err)
	require.True(t, sold.IsSold)
	require.Equal(t, "Mumbai", *sold.SoldToTeam)

	// Repeated finalize is harmless
	again, err := repo.MarkSold(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, sold, again)

	_, err = repo.MarkSold(ctx, "missing")
	require.ErrorIs(t, err, auctionerrors.ErrPlayerNotFound)

	// Sold players reject further conditional writes
	_, err = repo.RecordBid(ctx, newBid("bid2", "p1", "b2", "Delhi", 4_000_000), 3_100_000)
	require.ErrorIs(t, err, auctionerrors.ErrStaleBid)
}

// Test ListPlayers ordering and filtering
func TestMemoryRepo_ListPlayers(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()
	base := time.Date(2024, 3, 22, 12, 0, 0, 0, time.UTC)

	seed := []model.Player{
		newPlayer("p1", "KL Rahul", 2_000_000, 0, base),
		newPlayer("p2", "Jasprit Bumrah", 2_000_000, 9_000_000, base.Add(time.Minute)),
		newPlayer("p3", "Hardik Pandya", 2_000_000, 4_000_000, base.Add(2*time.Minute)),
		newPlayer("p4", "Chris Gayle", 2_000_000, 0, base.Add(-time.Minute)),
	}
	seed[2].IsSold = true
	for _, p := range seed {
		require.NoError(t, repo.CreatePlayer(ctx, p))
	}

	tests := []struct {
		name    string
		status  model.PlayerStatus
		wantIDs []string
	}{
		{name: "all", status: model.StatusAll, wantIDs: []string{"p2", "p3", "p4", "p1"}},
		{name: "unsold", status: model.StatusUnsold, wantIDs: []string{"p2", "p4", "p1"}},
		{name: "sold", status: model.StatusSold, wantIDs: []string{"p3"}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			players, err := repo.ListPlayers(ctx, tc.status)
			require.NoError(t, err)

			ids := make([]string, 0, len(players))
			for _, p := range players {
				ids = append(ids, p.ID)
			}
			require.Equal(t, tc.wantIDs, ids)
		})
	}

	t.Run("empty_repo_returns_empty_slice", func(t *testing.T) {
		t.Parallel()

		players, err := NewMemoryRepo().ListPlayers(ctx, model.StatusAll)
		require.NoError(t, err)
		require.NotNil(t, players)
		require.Empty(t, players)
	})
}

// Test GetBidsByPlayer ordering
func TestMemoryRepo_GetBidsByPlayer(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()
	require.NoError(t, repo.CreatePlayer(ctx, newPlayer("p1", "David Warner", 2_500_000, 0, time.Now())))

	_, err := repo.RecordBid(ctx, newBid("bid1", "p1", "b1", "Hyderabad", 2_600_000), 0)
	require.NoError(t, err)
	_, err = repo.RecordBid(ctx, newBid("bid2", "p1", "b2", "Delhi", 2_700_000), 2_600_000)
	require.NoError(t, err)

	bids, err := repo.GetBidsByPlayer(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, bids, 2)
	require.Equal(t, "bid2", bids[0].BidID)
	require.Equal(t, "bid1", bids[1].BidID)

	_, err = repo.GetBidsByPlayer(ctx, "missing")
	require.ErrorIs(t, err, auctionerrors.ErrPlayerNotFound)
}

// Returned players must not alias stored state
func TestMemoryRepo_ReturnsCopies(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()
	require.NoError(t, repo.CreatePlayer(ctx, newPlayer("p1", "Ravindra Jadeja", 2_000_000, 0, time.Now())))

	updated, err := repo.RecordBid(ctx, newBid("bid1", "p1", "b1", "Chennai", 2_100_000), 0)
	require.NoError(t, err)
	*updated.SoldToTeam = "tampered"

	stored, err := repo.GetPlayer(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, "Chennai", *stored.SoldToTeam)
}
