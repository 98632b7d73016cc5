package bootstrap

import (
	"github.com/osse101/HeroVerse_Go/internal/catalog"
	"github.com/osse101/HeroVerse_Go/internal/clock"
	"github.com/osse101/HeroVerse_Go/internal/concurrency"
	"github.com/osse101/HeroVerse_Go/internal/config"
	"github.com/osse101/HeroVerse_Go/internal/economy"
	"github.com/osse101/HeroVerse_Go/internal/event"
	"github.com/osse101/HeroVerse_Go/internal/game"
	"github.com/osse101/HeroVerse_Go/internal/leaderboard"
	"github.com/osse101/HeroVerse_Go/internal/mysterybox"
	"github.com/osse101/HeroVerse_Go/internal/wheel"
)

// Services groups the session services built at startup.
type Services struct {
	Catalog     catalog.Service
	MysteryBox  mysterybox.Service
	Game        game.Service
	Economy     economy.Service
	Leaderboard leaderboard.Service
	Wheel       wheel.Service
	Clock       clock.Clock
}

// InitializeServices wires every service for the configured account.
// The account-scoped commands share one lock manager so that at most one
// balance-changing command is in flight at a time.
func InitializeServices(cfg *config.Config, repos *Repositories, bus event.Bus) *Services {
	clk := clock.NewRealClock()
	locks := concurrency.NewLockManager()

	catalogSvc := catalog.NewService(repos.Heroes, cfg.CatalogTTL)
	boxSvc := mysterybox.NewService(repos.Heroes, mysterybox.NewSelector(nil), cfg.MysteryBoxServerDraw)

	return &Services{
		Catalog:     catalogSvc,
		MysteryBox:  boxSvc,
		Game:        game.NewService(cfg.UserID, repos.Heroes, catalogSvc, boxSvc, locks, bus, clk),
		Economy:     economy.NewService(cfg.UserID, repos.Economy, locks, bus),
		Leaderboard: leaderboard.NewService(repos.Economy, cfg.LeaderboardTTL),
		Wheel:       wheel.NewService(cfg.UserID, repos.Wheel, locks, bus, clk, cfg.CatalogTTL),
		Clock:       clk,
	}
}
