package app

import (
	"context"
	"math/rand/v2"
	"net/http"
	"time"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/klauspost/compress/gzhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	adminAPI "slot_machine/internal/api/admin"
	gameAPI "slot_machine/internal/api/game"
	"slot_machine/internal/config"
	"slot_machine/internal/config/env"
	"slot_machine/internal/logger"
	"slot_machine/internal/middleware"
	"slot_machine/internal/repository"
	"slot_machine/internal/repository/guest_repo"
	"slot_machine/internal/repository/profile_repo"
	"slot_machine/internal/repository/stats_repo"
	"slot_machine/internal/repository/win_repo"
	"slot_machine/internal/service"
	"slot_machine/internal/service/claim"
	"slot_machine/internal/service/game"
	"slot_machine/internal/service/win"
	"slot_machine/internal/slot"
)

type ServiceProvider struct {
	logger *zap.Logger
	logCfg config.LogConfig

	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Redis
	redisCfg    config.RedisConfig
	redisClient *redis.Client

	// Game bits
	gameCfg     config.GameConfig
	table       *slot.Table
	profileRepo repository.ProfileRepository
	guestRepo   repository.GuestRepository
	statsRepo   repository.StatsRepository
	hub         *game.Hub
	gameHand    *gameAPI.Handler

	// Win bits
	winRepo   repository.WinRepository
	winServ   service.WinService
	claimServ service.ClaimService
	adminHand *adminAPI.Handler

	// Auth
	jwtCfg   config.JWTConfig
	adminCfg config.AdminConfig

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) LogCfg() config.LogConfig {
	if sp.logCfg == nil {
		cfg, err := env.NewLogConfig()
		if err != nil {
			panic("failed to get log config: " + err.Error())
		}
		sp.logCfg = cfg
	}
	return sp.logCfg
}

func (sp *ServiceProvider) Logger() *zap.Logger {
	if sp.logger == nil {
		l, err := logger.New(sp.LogCfg())
		if err != nil {
			panic("failed to create logger: " + err.Error())
		}
		sp.logger = l
	}
	return sp.logger
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		poolCfg, err := pgxpool.ParseConfig(sp.PgConfig().DSN())
		if err != nil {
			panic("failed to parse db config: " + err.Error())
		}
		poolCfg.MaxConns = 10
		poolCfg.MaxConnIdleTime = 5 * time.Minute

		dbc, err := pgxpool.NewWithConfig(ctx, poolCfg)
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		err = repository.Migrate(ctx, dbc)
		if err != nil {
			panic("failed to migrate db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) RedisCfg() config.RedisConfig {
	if sp.redisCfg == nil {
		cfg, err := env.NewRedisConfig()
		if err != nil {
			panic("failed to get redis config: " + err.Error())
		}
		sp.redisCfg = cfg
	}
	return sp.redisCfg
}

func (sp *ServiceProvider) RedisClient(ctx context.Context) *redis.Client {
	if sp.redisClient == nil {
		rdb := redis.NewClient(&redis.Options{
			Addr:     sp.RedisCfg().Addr(),
			Password: sp.RedisCfg().Password(),
			DB:       sp.RedisCfg().DB(),
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			panic("failed to ping redis: " + err.Error())
		}
		sp.redisClient = rdb
	}
	return sp.redisClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}

		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) GameCfg() config.GameConfig {
	if sp.gameCfg == nil {
		cfg, err := env.NewGameConfigFromYAML("config.yaml")
		if err != nil {
			panic("failed to get game config: " + err.Error())
		}
		sp.gameCfg = cfg
	}
	return sp.gameCfg
}

func (sp *ServiceProvider) Table() *slot.Table {
	if sp.table == nil {
		t, err := slot.NewTable(sp.GameCfg().Catalog(), rand.NewPCG(rand.Uint64(), rand.Uint64()))
		if err != nil {
			panic("invalid symbol catalog: " + err.Error())
		}
		sp.table = t
	}
	return sp.table
}

func (sp *ServiceProvider) ProfileRepository(ctx context.Context) repository.ProfileRepository {
	if sp.profileRepo == nil {
		sp.profileRepo = profile_repo.NewProfileRepository(sp.DBClient(ctx))
	}
	return sp.profileRepo
}

func (sp *ServiceProvider) GuestRepository(ctx context.Context) repository.GuestRepository {
	if sp.guestRepo == nil {
		sp.guestRepo = guest_repo.NewGuestRepository(sp.RedisClient(ctx))
	}
	return sp.guestRepo
}

func (sp *ServiceProvider) StatsRepository() repository.StatsRepository {
	if sp.statsRepo == nil {
		sp.statsRepo = stats_repo.NewStatsRepository(sp.Table().Symbols())
	}
	return sp.statsRepo
}

func (sp *ServiceProvider) WinRepository(ctx context.Context) repository.WinRepository {
	if sp.winRepo == nil {
		sp.winRepo = win_repo.NewWinRepository(sp.DBClient(ctx))
	}
	return sp.winRepo
}

func (sp *ServiceProvider) WinService(ctx context.Context) service.WinService {
	if sp.winServ == nil {
		sp.winServ = win.NewWinService(sp.WinRepository(ctx), sp.GameCfg().MaxCodeAttempts(), sp.Logger())
	}
	return sp.winServ
}

func (sp *ServiceProvider) ClaimService(ctx context.Context) service.ClaimService {
	if sp.claimServ == nil {
		sp.claimServ = claim.NewClaimService(sp.WinRepository(ctx), sp.TXManager(ctx), sp.Logger())
	}
	return sp.claimServ
}

func (sp *ServiceProvider) Hub(ctx context.Context) *game.Hub {
	if sp.hub == nil {
		settings := sp.GameCfg().Settings()
		sp.hub = game.NewHub(game.HubDeps{
			Settings:   settings,
			ReelParams: sp.GameCfg().ReelParams(),
			Table:      sp.Table(),
			Catalog:    sp.Table().Symbols(),
			Gate:       game.NewGate(sp.ProfileRepository(ctx), sp.GuestRepository(ctx), settings.DefaultAttempts, sp.Logger()),
			Wins:       sp.WinService(ctx),
			Stats:      sp.StatsRepository(),
			Logger:     sp.Logger(),
		})
	}
	return sp.hub
}

func (sp *ServiceProvider) GameHandler(ctx context.Context) *gameAPI.Handler {
	if sp.gameHand == nil {
		sp.gameHand = gameAPI.NewHandler(gameAPI.HandlerDeps{
			Serv:   sp.Hub(ctx),
			Logger: sp.Logger(),
		})
	}
	return sp.gameHand
}

func (sp *ServiceProvider) AdminHandler(ctx context.Context) *adminAPI.Handler {
	if sp.adminHand == nil {
		sp.adminHand = adminAPI.NewHandler(adminAPI.HandlerDeps{
			Claims: sp.ClaimService(ctx),
			Stats:  sp.StatsRepository(),
			Logger: sp.Logger(),
		})
	}
	return sp.adminHand
}

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
}

func (sp *ServiceProvider) AdminCfg() config.AdminConfig {
	if sp.adminCfg == nil {
		cfg, err := env.NewAdminConfig()
		if err != nil {
			panic("failed to get admin config: " + err.Error())
		}
		sp.adminCfg = cfg
	}
	return sp.adminCfg
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		r.Use(chimw.RequestID)
		r.Use(chimw.Recoverer)
		r.Use(middleware.RequestLogger(sp.Logger()))
		r.Use(func(next http.Handler) http.Handler {
			return gzhttp.GzipHandler(next)
		})

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middleware.OperatorKeyHeader},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		// Game endpoints
		gameHandler := sp.GameHandler(ctx)
		r.Route("/game", func(rr chi.Router) {
			rr.Use(middleware.Auth(sp.JWTCfg().AccessTokenSecretKey(), sp.Logger()))
			rr.Use(middleware.Guest)
			rr.Post("/spin", gameHandler.Spin)
			rr.Get("/state", gameHandler.State)
			rr.Post("/popup/close", gameHandler.ClosePopup)
			rr.Post("/prompt/dismiss", gameHandler.DismissPrompt)
		})

		// Admin endpoints
		adminHandler := sp.AdminHandler(ctx)
		r.Route("/admin", func(rr chi.Router) {
			rr.Use(middleware.OperatorKey(sp.AdminCfg().OperatorKeyHash(), sp.Logger()))
			rr.Post("/claim", adminHandler.Claim)
			rr.Get("/wins", adminHandler.ListWins)
			rr.Get("/stats", adminHandler.Stats)
		})

		sp.router = r
	}

	return sp.router
}

// Close освобождает соединения
func (sp *ServiceProvider) Close() {
	if sp.redisClient != nil {
		_ = sp.redisClient.Close()
	}
	if sp.dbClient != nil {
		sp.dbClient.Close()
	}
	if sp.logger != nil {
		_ = sp.logger.Sync()
	}
}
