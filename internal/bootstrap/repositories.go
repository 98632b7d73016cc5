package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/HeroVerse_Go/internal/database/postgres"
)

// Repositories holds the backend adapters the session daemon talks to.
type Repositories struct {
	Heroes  *postgres.HeroRepository
	Economy *postgres.EconomyRepository
	Wheel   *postgres.WheelRepository
}

// InitializeRepositories creates every postgres adapter over one pool.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Heroes:  postgres.NewHeroRepository(dbPool),
		Economy: postgres.NewEconomyRepository(dbPool),
		Wheel:   postgres.NewWheelRepository(dbPool),
	}
}
