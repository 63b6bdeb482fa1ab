package cli

import (
	"fmt"

	"player-auction/internal/auth"
	bidding "player-auction/internal/biddingService"
	"player-auction/internal/config"
	"player-auction/internal/dependencies/clock"
	"player-auction/internal/dependencies/random"
	"player-auction/internal/feed"
	"player-auction/internal/metrics"
	"player-auction/internal/registry"
	"player-auction/internal/repository"
	"player-auction/internal/repository/postgres"
	"player-auction/internal/repository/redisrepo"
	"player-auction/internal/server"
	handler "player-auction/services/auction/handler"
	"player-auction/utils"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// App holds the wired application components
type App struct {
	Config   *config.Config
	Store    repository.AuctionDB
	Auth     *auth.Service
	Engine   *bidding.BidEngine
	Hub      *feed.Hub
	Metrics  *metrics.Metrics
	Registry *prometheus.Registry
}

// NewApp opens the configured store and builds every service on top of it
func NewApp(cfg *config.Config) (*App, error) {
	store, err := openStore(cfg.Storage)
	if err != nil {
		return nil, err
	}

	clk := clock.New()

	promReg := prometheus.NewRegistry()
	promReg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(promReg)

	tokens := auth.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, clk)
	authSvc := auth.NewService(store, auth.NewBcryptHasher(cfg.Auth.BcryptCost), tokens, clk)

	players := registry.New(store, random.New(), clk, registry.Config{
		MinBasePrice: cfg.Auction.MinBasePrice,
		MaxBasePrice: cfg.Auction.MaxBasePrice,
	})

	hub := feed.NewHub()
	engine := bidding.NewBidEngine(tokens, store, players, clk, bidding.Options{
		AllowUnbidSale: cfg.Auction.AllowUnbidSale,
		Publisher:      hub,
		Metrics:        m,
	})

	return &App{
		Config:   cfg,
		Store:    store,
		Auth:     authSvc,
		Engine:   engine,
		Hub:      hub,
		Metrics:  m,
		Registry: promReg,
	}, nil
}

// Router builds the HTTP router for the app
func (a *App) Router() *gin.Engine {
	return server.SetupRouter(server.Handlers{
		Auth:    handler.NewAuthHandler(a.Auth),
		Players: handler.NewPlayerHandler(a.Engine),
		Bids:    handler.NewBidHandler(a.Engine),
	}, a.Hub, a.Metrics, a.Registry)
}

// Close disconnects feed clients and releases the store
func (a *App) Close() error {
	a.Hub.Close()
	return a.Store.Close()
}

func openStore(cfg config.StorageConfig) (repository.AuctionDB, error) {
	switch cfg.Type {
	case config.StorageMemory:
		utils.Info("using in-memory storage", nil)
		return repository.NewMemoryRepo(), nil
	case config.StorageRedis:
		rc := redisrepo.DefaultConfig()
		rc.URL = cfg.Redis.URL
		if cfg.Redis.PoolSize > 0 {
			rc.PoolSize = cfg.Redis.PoolSize
		}
		store, err := redisrepo.New(rc)
		if err != nil {
			return nil, fmt.Errorf("open redis storage: %w", err)
		}
		utils.Info("using redis storage", map[string]any{"pool_size": rc.PoolSize})
		return store, nil
	case config.StoragePostgres:
		store, err := postgres.Open(cfg.Postgres.DSN)
		if err != nil {
			return nil, fmt.Errorf("open postgres storage: %w", err)
		}
		utils.Info("using postgres storage", nil)
		return store, nil
	default:
		return nil, fmt.Errorf("unknown storage type %q", cfg.Type)
	}
}
