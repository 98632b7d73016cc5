package postgres

import (
	"context"
	"fmt"

	"github.com/osse101/HeroVerse_Go/internal/domain"
)

// GetLeaderboard ranks accounts by balance. Equal balances share a rank.
func (r *EconomyRepository) GetLeaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	query := `
		SELECT RANK() OVER (ORDER BY balance DESC)::int AS rank,
		       user_id::text, username, balance
		FROM profiles
		ORDER BY balance DESC, username
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %w", mapRPCError(err))
	}
	defer rows.Close()

	entries := make([]domain.LeaderboardEntry, 0, limit)
	for rows.Next() {
		var e domain.LeaderboardEntry
		if err := rows.Scan(&e.Rank, &e.UserID, &e.Username, &e.Balance); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard entry: %w", err)
		}
		entries = append(entries, e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return entries, nil
}
