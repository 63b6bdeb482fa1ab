package models

import "time"

// Role identifies which kind of account a token was issued to
type Role string

const (
	RoleAdmin Role = "admin"
	RoleBuyer Role = "buyer"
)

// Admin is an auction administrator account
type Admin struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Buyer is a team account that places bids
type Buyer struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	TeamName     string    `json:"teamName"`
	CreatedAt    time.Time `json:"createdAt"`
}

// PlayerRole is the playing specialty of an auctioned player
type PlayerRole string

const (
	RoleBatsman      PlayerRole = "Batsman"
	RoleBowler       PlayerRole = "Bowler"
	RoleAllRounder   PlayerRole = "All-Rounder"
	RoleWicketKeeper PlayerRole = "Wicket-Keeper"
)

// PlayerRoles lists every valid PlayerRole
var PlayerRoles = []PlayerRole{RoleBatsman, RoleBowler, RoleAllRounder, RoleWicketKeeper}

// Valid reports whether r is one of the known roles
func (r PlayerRole) Valid() bool {
	for _, known := range PlayerRoles {
		if r == known {
			return true
		}
	}
	return false
}

// Player represents a player put up for auction. Amounts are in minor currency units.
type Player struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Role       PlayerRole `json:"role"`
	BasePrice  int64      `json:"basePrice"`
	CurrentBid int64      `json:"currentBid"`
	IsSold     bool       `json:"isSold"`
	SoldToTeam *string    `json:"soldToTeam"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// HasBids reports whether any bid has been accepted for the player
func (p Player) HasBids() bool {
	return p.CurrentBid > 0
}

// Bid is an append-only record of an accepted bid
type Bid struct {
	BidID     string    `json:"bidId"`
	PlayerID  string    `json:"playerId"`
	BuyerID   string    `json:"buyerId"`
	TeamName  string    `json:"teamName"`
	Amount    int64     `json:"amount"`
	CreatedAt time.Time `json:"createdAt"`
}

// PlayerStatus filters player listings
type PlayerStatus string

const (
	StatusAll    PlayerStatus = "all"
	StatusUnsold PlayerStatus = "unsold"
	StatusSold   PlayerStatus = "sold"
)

// ParsePlayerStatus maps a query value to a PlayerStatus. Empty means all.
func ParsePlayerStatus(s string) (PlayerStatus, bool) {
	switch PlayerStatus(s) {
	case "", StatusAll:
		return StatusAll, true
	case StatusUnsold:
		return StatusUnsold, true
	case StatusSold:
		return StatusSold, true
	default:
		return "", false
	}
}
