package registry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"player-auction/internal/auctionerrors"
	"player-auction/internal/dependencies/clock"
	"player-auction/internal/dependencies/random"
	model "player-auction/internal/models"
	"player-auction/internal/repository"
)

var epoch = time.Date(2024, 3, 22, 12, 0, 0, 0, time.UTC)

// Tests Create
func TestRegistry_Create(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		player    string
		role      model.PlayerRole
		basePrice int64
		wantError error
	}{
		{name: "valid", player: "Virat Kohli", role: model.RoleBatsman, basePrice: 5_000_000},
		{name: "trims_name", player: "  MS Dhoni ", role: model.RoleWicketKeeper, basePrice: 2_000_000},
		{name: "empty_name", player: " ", role: model.RoleBatsman, basePrice: 5_000_000, wantError: auctionerrors.ErrInvalidInput},
		{name: "unknown_role", player: "Virat Kohli", role: "Umpire", basePrice: 5_000_000, wantError: auctionerrors.ErrInvalidInput},
		{name: "zero_price", player: "Virat Kohli", role: model.RoleBatsman, basePrice: 0, wantError: auctionerrors.ErrInvalidInput},
		{name: "negative_price", player: "Virat Kohli", role: model.RoleBatsman, basePrice: -1, wantError: auctionerrors.ErrInvalidInput},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			repo := repository.NewMemoryRepo()
			reg := New(repo, random.New(), clock.NewManual(epoch), DefaultConfig())

			player, err := reg.Create(context.Background(), tc.player, tc.role, tc.basePrice)
			if tc.wantError != nil {
				require.ErrorIs(t, err, tc.wantError)
				all, _ := repo.ListPlayers(context.Background(), model.StatusAll)
				require.Empty(t, all)
				return
			}

			require.NoError(t, err)
			require.NotEmpty(t, player.ID)
			require.Equal(t, tc.role, player.Role)
			require.Equal(t, tc.basePrice, player.BasePrice)
			require.Zero(t, player.CurrentBid)
			require.False(t, player.IsSold)
			require.Nil(t, player.SoldToTeam)
			require.Equal(t, epoch, player.CreatedAt)

			stored, err := repo.GetPlayer(context.Background(), player.ID)
			require.NoError(t, err)
			require.Equal(t, player, stored)
		})
	}
}

// Tests GenerateRandom with scripted random draws
func TestRegistry_GenerateRandom(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rnd := random.NewMockRandom(ctrl)
	gomock.InOrder(
		rnd.EXPECT().Intn(len(Roster)).Return(0),
		rnd.EXPECT().Intn(len(model.PlayerRoles)).Return(3),
		rnd.EXPECT().Intn(18_000_001).Return(3_000_000),
	)

	repo := repository.NewMemoryRepo()
	reg := New(repo, rnd, clock.NewManual(epoch), DefaultConfig())

	player, err := reg.GenerateRandom(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Virat Kohli", player.Name)
	require.Equal(t, model.RoleWicketKeeper, player.Role)
	require.Equal(t, int64(5_000_000), player.BasePrice)
}

func TestRegistry_GenerateRandomBounds(t *testing.T) {
	t.Parallel()

	reg := New(repository.NewMemoryRepo(), random.New(), clock.New(), Config{MinBasePrice: 100, MaxBasePrice: 110})

	for i := 0; i < 50; i++ {
		player, err := reg.GenerateRandom(context.Background())
		require.NoError(t, err)
		require.GreaterOrEqual(t, player.BasePrice, int64(100))
		require.LessOrEqual(t, player.BasePrice, int64(110))
		require.Contains(t, Roster, player.Name)
		require.True(t, player.Role.Valid())
	}
}

func TestNew_InvalidConfigFallsBack(t *testing.T) {
	t.Parallel()

	reg := New(repository.NewMemoryRepo(), random.New(), clock.New(), Config{MinBasePrice: 10, MaxBasePrice: 5})
	require.Equal(t, DefaultConfig(), reg.cfg)
}

// Tests the query helpers
func TestRegistry_Queries(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	db := repository.NewMockPlayerDB(ctrl)
	reg := New(db, random.New(), clock.New(), DefaultConfig())

	sold := []model.Player{{ID: "p2", IsSold: true}}
	db.EXPECT().ListPlayers(ctx, model.StatusAll).Return([]model.Player{{ID: "p1"}, {ID: "p2"}}, nil)
	db.EXPECT().ListPlayers(ctx, model.StatusUnsold).Return([]model.Player{{ID: "p1"}}, nil)
	db.EXPECT().ListPlayers(ctx, model.StatusSold).Return(sold, nil)

	all, err := reg.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	unsold, err := reg.ListUnsold(ctx)
	require.NoError(t, err)
	require.Len(t, unsold, 1)

	gotSold, err := reg.ListSold(ctx)
	require.NoError(t, err)
	require.Equal(t, sold, gotSold)

	t.Run("store_failure_is_wrapped", func(t *testing.T) {
		storeErr := errors.New("db down")
		db.EXPECT().ListPlayers(ctx, model.StatusAll).Return(nil, storeErr)

		_, err := reg.List(ctx, model.StatusAll)
		require.ErrorIs(t, err, storeErr)
	})

	t.Run("get", func(t *testing.T) {
		db.EXPECT().GetPlayer(ctx, "p1").Return(model.Player{ID: "p1"}, nil)
		db.EXPECT().GetPlayer(ctx, "missing").Return(model.Player{}, auctionerrors.ErrPlayerNotFound)

		p, err := reg.Get(ctx, "p1")
		require.NoError(t, err)
		require.Equal(t, "p1", p.ID)

		_, err = reg.Get(ctx, "missing")
		require.ErrorIs(t, err, auctionerrors.ErrPlayerNotFound)

		_, err = reg.Get(ctx, "")
		require.ErrorIs(t, err, auctionerrors.ErrInvalidInput)
	})

	t.Run("bids", func(t *testing.T) {
		bids := []model.Bid{{BidID: "b2", Amount: 200}, {BidID: "b1", Amount: 100}}
		db.EXPECT().GetBidsByPlayer(ctx, "p1").Return(bids, nil)

		got, err := reg.BidsForPlayer(ctx, "p1")
		require.NoError(t, err)
		require.Equal(t, bids, got)

		_, err = reg.BidsForPlayer(ctx, "")
		require.ErrorIs(t, err, auctionerrors.ErrInvalidInput)
	})
}
