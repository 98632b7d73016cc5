package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/HeroVerse_Go/internal/domain"
	"github.com/osse101/HeroVerse_Go/internal/repository"
)

// HeroRepository implements repository.HeroBackend for PostgreSQL
type HeroRepository struct {
	db *pgxpool.Pool
}

var _ repository.HeroBackend = (*HeroRepository)(nil)

// NewHeroRepository creates a new HeroRepository
func NewHeroRepository(db *pgxpool.Pool) *HeroRepository {
	return &HeroRepository{db: db}
}

// FetchOwnedInstances returns every hero instance owned by userID
func (r *HeroRepository) FetchOwnedInstances(ctx context.Context, userID string) ([]domain.OwnedHeroInstance, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id::text, user_id::text, hero_id, is_active, is_revealed, acquired_at,
		       activated_at, last_collected_at, power_level, last_power_update_at
		FROM user_heroes
		WHERE user_id = $1
		ORDER BY acquired_at DESC, id
	`

	rows, err := r.db.Query(ctx, query, userUUID)
	if err != nil {
		return nil, fmt.Errorf("failed to query owned heroes: %w", mapRPCError(err))
	}
	defer rows.Close()

	instances := make([]domain.OwnedHeroInstance, 0)
	for rows.Next() {
		var inst domain.OwnedHeroInstance
		err := rows.Scan(
			&inst.ID,
			&inst.UserID,
			&inst.HeroID,
			&inst.IsActive,
			&inst.IsRevealed,
			&inst.AcquiredAt,
			&inst.ActivatedAt,
			&inst.LastCollectedAt,
			&inst.PowerLevel,
			&inst.LastPowerUpdateAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan owned hero: %w", err)
		}
		instances = append(instances, inst)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return instances, nil
}

// Activate starts earning on one instance. Activating an active instance is a no-op.
func (r *HeroRepository) Activate(ctx context.Context, userID, instanceID string) error {
	query := `
		UPDATE user_heroes
		SET is_active = TRUE,
		    activated_at = NOW(),
		    last_power_update_at = NOW(),
		    last_collected_at = NOW()
		WHERE id = $1 AND user_id = $2 AND NOT is_active
	`
	return r.updateInstance(ctx, userID, instanceID, query)
}

// Deactivate stops earning on one instance. Stored power is left untouched.
func (r *HeroRepository) Deactivate(ctx context.Context, userID, instanceID string) error {
	query := `
		UPDATE user_heroes
		SET is_active = FALSE,
		    activated_at = NULL
		WHERE id = $1 AND user_id = $2 AND is_active
	`
	return r.updateInstance(ctx, userID, instanceID, query)
}

func (r *HeroRepository) updateInstance(ctx context.Context, userID, instanceID, query string) error {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return err
	}
	instanceUUID, err := parseInstanceUUID(instanceID)
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, query, instanceUUID, userUUID)
	if err != nil {
		return fmt.Errorf("failed to update hero instance: %w", mapRPCError(err))
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	// Nothing changed: either already in the target state or not ours
	var exists bool
	err = r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM user_heroes WHERE id = $1 AND user_id = $2)`,
		instanceUUID, userUUID,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check hero instance: %w", mapRPCError(err))
	}
	if !exists {
		return domain.ErrInstanceNotFound
	}
	return nil
}

// ActivateAll activates every inactive copy of heroID
func (r *HeroRepository) ActivateAll(ctx context.Context, userID, heroID string) (int, error) {
	query := `
		UPDATE user_heroes
		SET is_active = TRUE,
		    activated_at = NOW(),
		    last_power_update_at = NOW(),
		    last_collected_at = NOW()
		WHERE user_id = $1 AND hero_id = $2 AND NOT is_active
	`
	return r.updateHero(ctx, userID, heroID, query)
}

// DeactivateAll deactivates every active copy of heroID
func (r *HeroRepository) DeactivateAll(ctx context.Context, userID, heroID string) (int, error) {
	query := `
		UPDATE user_heroes
		SET is_active = FALSE,
		    activated_at = NULL
		WHERE user_id = $1 AND hero_id = $2 AND is_active
	`
	return r.updateHero(ctx, userID, heroID, query)
}

func (r *HeroRepository) updateHero(ctx context.Context, userID, heroID, query string) (int, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return 0, err
	}

	tag, err := r.db.Exec(ctx, query, userUUID, heroID)
	if err != nil {
		return 0, fmt.Errorf("failed to update hero copies: %w", mapRPCError(err))
	}
	if tag.RowsAffected() > 0 {
		return int(tag.RowsAffected()), nil
	}

	var owned bool
	err = r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM user_heroes WHERE user_id = $1 AND hero_id = $2)`,
		userUUID, heroID,
	).Scan(&owned)
	if err != nil {
		return 0, fmt.Errorf("failed to check hero copies: %w", mapRPCError(err))
	}
	if !owned {
		return 0, domain.ErrHeroNotFound
	}
	return 0, nil
}

// ClaimStarterHero grants a random starter hero once per account
func (r *HeroRepository) ClaimStarterHero(ctx context.Context, userID string) (*domain.HeroDefinition, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}

	var heroID string
	if err := r.db.QueryRow(ctx, `SELECT claim_starter_hero($1)`, userUUID).Scan(&heroID); err != nil {
		return nil, fmt.Errorf("failed to claim starter hero: %w", mapRPCError(err))
	}

	hero, err := r.getHeroDefinition(ctx, heroID)
	if err != nil {
		return nil, err
	}
	return hero, nil
}

// PurchaseMysteryBox persists client-drawn heroes; the backend re-validates and charges
func (r *HeroRepository) PurchaseMysteryBox(ctx context.Context, userID string, heroIDs []string) error {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return err
	}

	var cost int64
	if err := r.db.QueryRow(ctx, `SELECT purchase_mystery_box($1, $2)`, userUUID, heroIDs).Scan(&cost); err != nil {
		return fmt.Errorf("failed to purchase mystery box: %w", mapRPCError(err))
	}
	return nil
}

// OpenMysteryBox lets the backend draw count heroes
func (r *HeroRepository) OpenMysteryBox(ctx context.Context, userID string, count int) ([]string, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}

	var heroIDs []string
	if err := r.db.QueryRow(ctx, `SELECT open_mystery_box($1, $2)`, userUUID, count).Scan(&heroIDs); err != nil {
		return nil, fmt.Errorf("failed to open mystery box: %w", mapRPCError(err))
	}
	return heroIDs, nil
}

// Collect sweeps pending earnings into the balance and returns the amount
func (r *HeroRepository) Collect(ctx context.Context, userID string) (int64, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return 0, err
	}

	var amount int64
	if err := r.db.QueryRow(ctx, `SELECT collect_earnings($1)`, userUUID).Scan(&amount); err != nil {
		return 0, fmt.Errorf("failed to collect earnings: %w", mapRPCError(err))
	}
	return amount, nil
}

func (r *HeroRepository) getHeroDefinition(ctx context.Context, heroID string) (*domain.HeroDefinition, error) {
	query := `
		SELECT id, name, rarity_id, image_url, is_starter
		FROM heroes
		WHERE id = $1
	`

	var hero domain.HeroDefinition
	err := r.db.QueryRow(ctx, query, heroID).Scan(
		&hero.ID,
		&hero.Name,
		&hero.RarityID,
		&hero.ImageURL,
		&hero.IsStarter,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrHeroNotFound, heroID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get hero: %w", mapRPCError(err))
	}
	return &hero, nil
}
