package redisrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"player-auction/internal/auctionerrors"
	model "player-auction/internal/models"
	"player-auction/internal/repository"
)

// Storage is a Redis-backed implementation of repository.AuctionDB
type Storage struct {
	client *redis.Client
}

var _ repository.AuctionDB = (*Storage)(nil)

// New connects to Redis and verifies the connection
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("redis: parse url: %w", err)
	}
	if cfg.PoolSize > 0 {
		opts.PoolSize = cfg.PoolSize
	}
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis: ping: %w", err)
	}

	return &Storage{client: client}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client) *Storage {
	return &Storage{client: client}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Account operations

// The account models hide the hash from JSON responses, so they are
// persisted through these records instead.
type adminRecord struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

type buyerRecord struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"password_hash"`
	TeamName     string    `json:"team_name"`
	CreatedAt    time.Time `json:"created_at"`
}

func (s *Storage) CreateAdmin(ctx context.Context, admin model.Admin) error {
	rec := adminRecord(admin)
	return s.createAccount(ctx, adminKey(admin.Username), admin.Username, rec)
}

func (s *Storage) CreateBuyer(ctx context.Context, buyer model.Buyer) error {
	rec := buyerRecord(buyer)
	return s.createAccount(ctx, buyerKey(buyer.Username), buyer.Username, rec)
}

// createAccount stores v under key only if the key is free
func (s *Storage) createAccount(ctx context.Context, key, username string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	created, err := s.client.SetNX(ctx, key, data, 0).Result()
	if err != nil {
		return fmt.Errorf("create account %s: %w", username, err)
	}
	if !created {
		return fmt.Errorf("create account %s: %w", username, auctionerrors.ErrDuplicateUsername)
	}
	return nil
}

func (s *Storage) GetAdminByUsername(ctx context.Context, username string) (model.Admin, error) {
	var rec adminRecord
	if err := s.getAccount(ctx, adminKey(username), &rec); err != nil {
		return model.Admin{}, fmt.Errorf("get admin %s: %w", username, err)
	}
	return model.Admin(rec), nil
}

func (s *Storage) GetBuyerByUsername(ctx context.Context, username string) (model.Buyer, error) {
	var rec buyerRecord
	if err := s.getAccount(ctx, buyerKey(username), &rec); err != nil {
		return model.Buyer{}, fmt.Errorf("get buyer %s: %w", username, err)
	}
	return model.Buyer(rec), nil
}

func (s *Storage) getAccount(ctx context.Context, key string, dst any) error {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return auctionerrors.ErrAccountNotFound
		}
		return err
	}
	return json.Unmarshal(data, dst)
}

// Player operations

func (s *Storage) CreatePlayer(ctx context.Context, player model.Player) error {
	if player.ID == "" {
		return fmt.Errorf("create player: %w - empty player ID", auctionerrors.ErrInvalidInput)
	}

	data, err := json.Marshal(player)
	if err != nil {
		return err
	}

	// SADD of an existing ID is a no-op, so the index stays correct when SETNX loses
	pipe := s.client.TxPipeline()
	created := pipe.SetNX(ctx, playerKey(player.ID), data, 0)
	pipe.SAdd(ctx, playersIndexKey(), player.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("create player %s: %w", player.ID, err)
	}
	if !created.Val() {
		return fmt.Errorf("create player %s: %w", player.ID, auctionerrors.ErrDuplicatePlayer)
	}
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, playerID string) (model.Player, error) {
	player, err := getPlayer(ctx, s.client, playerID)
	if err != nil {
		return model.Player{}, fmt.Errorf("get player %s: %w", playerID, err)
	}
	return player, nil
}

// getPlayer reads a player through any command issuer, including a watched transaction
func getPlayer(ctx context.Context, c redis.Cmdable, playerID string) (model.Player, error) {
	data, err := c.Get(ctx, playerKey(playerID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.Player{}, auctionerrors.ErrPlayerNotFound
		}
		return model.Player{}, err
	}

	var player model.Player
	if err := json.Unmarshal(data, &player); err != nil {
		return model.Player{}, err
	}
	return player, nil
}

func (s *Storage) ListPlayers(ctx context.Context, status model.PlayerStatus) ([]model.Player, error) {
	ids, err := s.client.SMembers(ctx, playersIndexKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	players := make([]model.Player, 0, len(ids))
	if len(ids) == 0 {
		return players, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = playerKey(id)
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			// index entry without a player document
			continue
		}
		var p model.Player
		if err := json.Unmarshal([]byte(raw), &p); err != nil {
			return nil, fmt.Errorf("list players: %w", err)
		}
		if repository.MatchesStatus(p, status) {
			players = append(players, p)
		}
	}

	repository.SortPlayers(players)
	return players, nil
}

// RecordBid runs an optimistic WATCH/MULTI transaction on the player key
func (s *Storage) RecordBid(ctx context.Context, bid model.Bid, expectedCurrentBid int64) (model.Player, error) {
	key := playerKey(bid.PlayerID)
	bidData, err := json.Marshal(bid)
	if err != nil {
		return model.Player{}, err
	}

	var updated model.Player
	txf := func(tx *redis.Tx) error {
		player, err := getPlayer(ctx, tx, bid.PlayerID)
		if err != nil {
			return err
		}
		if player.IsSold || player.CurrentBid != expectedCurrentBid {
			return auctionerrors.ErrStaleBid
		}

		team := bid.TeamName
		player.CurrentBid = bid.Amount
		player.SoldToTeam = &team

		playerData, err := json.Marshal(player)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, playerData, 0)
			pipe.LPush(ctx, bidsKey(bid.PlayerID), bidData)
			return nil
		})
		if err != nil {
			return err
		}
		updated = player
		return nil
	}

	if err := s.client.Watch(ctx, txf, key); err != nil {
		if errors.Is(err, redis.TxFailedErr) {
			err = auctionerrors.ErrStaleBid
		}
		return model.Player{}, fmt.Errorf("record bid for player %s: %w", bid.PlayerID, err)
	}
	return updated, nil
}

func (s *Storage) MarkSold(ctx context.Context, playerID string) (model.Player, error) {
	key := playerKey(playerID)

	var updated model.Player
	txf := func(tx *redis.Tx) error {
		player, err := getPlayer(ctx, tx, playerID)
		if err != nil {
			return err
		}
		if player.IsSold {
			updated = player
			return nil
		}

		player.IsSold = true
		data, err := json.Marshal(player)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, 0)
			return nil
		})
		if err != nil {
			return err
		}
		updated = player
		return nil
	}

	// A concurrent bid may invalidate the watch; retry since selling does not depend on the bid value.
	var err error
	for attempt := 0; attempt < 3; attempt++ {
		err = s.client.Watch(ctx, txf, key)
		if !errors.Is(err, redis.TxFailedErr) {
			break
		}
	}
	if err != nil {
		return model.Player{}, fmt.Errorf("mark player %s sold: %w", playerID, err)
	}
	return updated, nil
}

func (s *Storage) GetBidsByPlayer(ctx context.Context, playerID string) ([]model.Bid, error) {
	exists, err := s.client.Exists(ctx, playerKey(playerID)).Result()
	if err != nil {
		return nil, fmt.Errorf("get bids for player %s: %w", playerID, err)
	}
	if exists == 0 {
		return nil, fmt.Errorf("get bids for player %s: %w", playerID, auctionerrors.ErrPlayerNotFound)
	}

	raw, err := s.client.LRange(ctx, bidsKey(playerID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("get bids for player %s: %w", playerID, err)
	}

	bids := make([]model.Bid, 0, len(raw))
	for _, r := range raw {
		var b model.Bid
		if err := json.Unmarshal([]byte(r), &b); err != nil {
			return nil, fmt.Errorf("get bids for player %s: %w", playerID, err)
		}
		bids = append(bids, b)
	}
	return bids, nil
}
