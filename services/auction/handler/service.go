package handler

//go:generate mockgen -source=service.go -destination=mock_service.go -package=handler

import (
	"context"

	model "player-auction/internal/models"
)

type AuthServiceInterface interface {
	RegisterAdmin(ctx context.Context, username, password string) (model.Admin, error)
	RegisterBuyer(ctx context.Context, username, password, teamName string) (model.Buyer, error)
	LoginAdmin(ctx context.Context, username, password string) (string, error)
	LoginBuyer(ctx context.Context, username, password string) (string, error)
}

type AuctionServiceInterface interface {
	ListPlayers(ctx context.Context, status model.PlayerStatus) ([]model.Player, error)
	GetPlayer(ctx context.Context, playerID string) (model.Player, error)
	BidsForPlayer(ctx context.Context, playerID string) ([]model.Bid, error)
	GeneratePlayer(ctx context.Context, token string) (model.Player, error)
	CreatePlayer(ctx context.Context, token, name string, role model.PlayerRole, basePrice int64) (model.Player, error)
	PlaceBid(ctx context.Context, token, playerID string, amount int64) (model.Player, error)
	FinalizeSale(ctx context.Context, token, playerID string) (model.Player, error)
}
