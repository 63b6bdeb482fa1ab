package helpers

import (
	bidding "player-auction/internal/biddingService"
	model "player-auction/internal/models"
)

// Auth actions accepted by the auth endpoints
const (
	ActionRegister = "register"
	ActionLogin    = "login"
)

// Bid actions accepted by the bids endpoint
const (
	ActionPlace    = "place"
	ActionFinalize = "finalize"
)

// Request/Response DTOs
type AuthRequest struct {
	Action   string `json:"action"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	TeamName string `json:"teamName"`
}

type BidRequest struct {
	Action    string `json:"action"`
	PlayerID  string `json:"playerId" binding:"required"`
	BidAmount int64  `json:"bidAmount"`
}

// CreatePlayerRequest is optional; an empty body generates a random player
type CreatePlayerRequest struct {
	Name      string `json:"name"`
	Role      string `json:"role"`
	BasePrice int64  `json:"basePrice"`
}

// IsEmpty reports whether no player fields were supplied
func (r CreatePlayerRequest) IsEmpty() bool {
	return r.Name == "" && r.Role == "" && r.BasePrice == 0
}

type AdminResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type BuyerResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	TeamName string `json:"teamName"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

// PlayerResponse is a player plus the next suggested bid while it is still for sale
type PlayerResponse struct {
	model.Player
	SuggestedBid *int64 `json:"suggestedBid,omitempty"`
}

func NewPlayerResponse(p model.Player) PlayerResponse {
	resp := PlayerResponse{Player: p}
	if !p.IsSold {
		next := bidding.SuggestedBid(p)
		resp.SuggestedBid = &next
	}
	return resp
}

func NewPlayerResponses(players []model.Player) []PlayerResponse {
	out := make([]PlayerResponse, 0, len(players))
	for _, p := range players {
		out = append(out, NewPlayerResponse(p))
	}
	return out
}
