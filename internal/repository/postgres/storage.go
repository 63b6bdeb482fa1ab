package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"player-auction/internal/auctionerrors"
	model "player-auction/internal/models"
	"player-auction/internal/repository"
)

type adminRow struct {
	ID           string    `gorm:"primaryKey"`
	Username     string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

func (adminRow) TableName() string { return "admins" }

type buyerRow struct {
	ID           string    `gorm:"primaryKey"`
	Username     string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	TeamName     string    `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

func (buyerRow) TableName() string { return "buyers" }

type playerRow struct {
	ID         string `gorm:"primaryKey"`
	Name       string `gorm:"not null"`
	Role       string `gorm:"not null"`
	BasePrice  int64  `gorm:"not null"`
	CurrentBid int64  `gorm:"not null;default:0;index"`
	IsSold     bool   `gorm:"not null;default:false;index"`
	SoldToTeam *string
	CreatedAt  time.Time `gorm:"not null"`
}

func (playerRow) TableName() string { return "players" }

type bidRow struct {
	BidID     string    `gorm:"column:id;primaryKey"`
	PlayerID  string    `gorm:"not null;index"`
	BuyerID   string    `gorm:"not null"`
	TeamName  string    `gorm:"not null"`
	Amount    int64     `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
}

func (bidRow) TableName() string { return "bids" }

// Storage is a PostgreSQL implementation of repository.AuctionDB built on gorm
type Storage struct {
	db *gorm.DB
}

var _ repository.AuctionDB = (*Storage)(nil)

// Open connects to PostgreSQL and migrates the auction tables
func Open(dsn string) (*Storage, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	s := &Storage{db: db}
	if err := s.AutoMigrate(); err != nil {
		_ = s.Close()
		return nil, err
	}
	return s, nil
}

// AutoMigrate creates or updates the auction tables
func (s *Storage) AutoMigrate() error {
	if err := s.db.AutoMigrate(&adminRow{}, &buyerRow{}, &playerRow{}, &bidRow{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// Close closes the underlying connection pool
func (s *Storage) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *Storage) CreateAdmin(ctx context.Context, admin model.Admin) error {
	row := adminRow(admin)
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("create admin %s: %w", admin.Username, translate(err))
	}
	return nil
}

func (s *Storage) CreateBuyer(ctx context.Context, buyer model.Buyer) error {
	row := buyerRow(buyer)
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("create buyer %s: %w", buyer.Username, translate(err))
	}
	return nil
}

func (s *Storage) GetAdminByUsername(ctx context.Context, username string) (model.Admin, error) {
	var row adminRow
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&row).Error; err != nil {
		return model.Admin{}, fmt.Errorf("get admin %s: %w", username, translate(err))
	}
	return model.Admin(row), nil
}

func (s *Storage) GetBuyerByUsername(ctx context.Context, username string) (model.Buyer, error) {
	var row buyerRow
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&row).Error; err != nil {
		return model.Buyer{}, fmt.Errorf("get buyer %s: %w", username, translate(err))
	}
	return model.Buyer(row), nil
}

func (s *Storage) CreatePlayer(ctx context.Context, player model.Player) error {
	if player.ID == "" {
		return fmt.Errorf("create player: %w - empty player ID", auctionerrors.ErrInvalidInput)
	}
	row := toPlayerRow(player)
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			err = auctionerrors.ErrDuplicatePlayer
		}
		return fmt.Errorf("create player %s: %w", player.ID, err)
	}
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, playerID string) (model.Player, error) {
	var row playerRow
	if err := s.db.WithContext(ctx).First(&row, "id = ?", playerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = auctionerrors.ErrPlayerNotFound
		}
		return model.Player{}, fmt.Errorf("get player %s: %w", playerID, err)
	}
	return row.toModel(), nil
}

func (s *Storage) ListPlayers(ctx context.Context, status model.PlayerStatus) ([]model.Player, error) {
	q := s.db.WithContext(ctx).Model(&playerRow{})
	switch status {
	case model.StatusSold:
		q = q.Where("is_sold = ?", true)
	case model.StatusUnsold:
		q = q.Where("is_sold = ?", false)
	}

	var rows []playerRow
	if err := q.Order("current_bid DESC").Order("created_at ASC").Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	players := make([]model.Player, 0, len(rows))
	for _, r := range rows {
		players = append(players, r.toModel())
	}
	return players, nil
}

// RecordBid uses a conditional UPDATE so only a writer that saw the current bid can move it
func (s *Storage) RecordBid(ctx context.Context, bid model.Bid, expectedCurrentBid int64) (model.Player, error) {
	var updated playerRow
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&playerRow{}).
			Where("id = ? AND is_sold = ? AND current_bid = ?", bid.PlayerID, false, expectedCurrentBid).
			Updates(map[string]any{"current_bid": bid.Amount, "sold_to_team": bid.TeamName})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&playerRow{}).Where("id = ?", bid.PlayerID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return auctionerrors.ErrPlayerNotFound
			}
			return auctionerrors.ErrStaleBid
		}

		row := bidRow(bid)
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		return tx.First(&updated, "id = ?", bid.PlayerID).Error
	})
	if err != nil {
		return model.Player{}, fmt.Errorf("record bid for player %s: %w", bid.PlayerID, err)
	}
	return updated.toModel(), nil
}

func (s *Storage) MarkSold(ctx context.Context, playerID string) (model.Player, error) {
	var updated playerRow
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&playerRow{}).Where("id = ?", playerID).Update("is_sold", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return auctionerrors.ErrPlayerNotFound
		}
		return tx.First(&updated, "id = ?", playerID).Error
	})
	if err != nil {
		return model.Player{}, fmt.Errorf("mark player %s sold: %w", playerID, err)
	}
	return updated.toModel(), nil
}

func (s *Storage) GetBidsByPlayer(ctx context.Context, playerID string) ([]model.Bid, error) {
	if _, err := s.GetPlayer(ctx, playerID); err != nil {
		return nil, err
	}

	var rows []bidRow
	err := s.db.WithContext(ctx).
		Where("player_id = ?", playerID).
		Order("amount DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("get bids for player %s: %w", playerID, err)
	}

	bids := make([]model.Bid, 0, len(rows))
	for _, r := range rows {
		bids = append(bids, model.Bid(r))
	}
	return bids, nil
}

func toPlayerRow(p model.Player) playerRow {
	return playerRow{
		ID:         p.ID,
		Name:       p.Name,
		Role:       string(p.Role),
		BasePrice:  p.BasePrice,
		CurrentBid: p.CurrentBid,
		IsSold:     p.IsSold,
		SoldToTeam: p.SoldToTeam,
		CreatedAt:  p.CreatedAt,
	}
}

func (r playerRow) toModel() model.Player {
	return model.Player{
		ID:         r.ID,
		Name:       r.Name,
		Role:       model.PlayerRole(r.Role),
		BasePrice:  r.BasePrice,
		CurrentBid: r.CurrentBid,
		IsSold:     r.IsSold,
		SoldToTeam: r.SoldToTeam,
		CreatedAt:  r.CreatedAt.UTC(),
	}
}

// translate maps gorm errors onto the repository's sentinel errors
func translate(err error) error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return auctionerrors.ErrDuplicateUsername
	case errors.Is(err, gorm.ErrRecordNotFound):
		return auctionerrors.ErrAccountNotFound
	default:
		return err
	}
}
