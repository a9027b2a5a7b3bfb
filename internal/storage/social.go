package storage

import (
	"context"
	"fmt"
)

// ListFollowing returns the IDs of users this user follows, oldest follow
// first. The analytics core only reads the graph, for the friends
// leaderboard.
func (db *DB) ListFollowing(ctx context.Context, userID int) ([]int, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT followed_id FROM follows WHERE user_id = $1 ORDER BY created_at ASC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("querying follows: %w", err)
	}
	defer rows.Close()

	var following []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning follow row: %w", err)
		}
		following = append(following, id)
	}
	return following, rows.Err()
}

// AddFollow records a follow edge. Re-follows are no-ops.
func (db *DB) AddFollow(ctx context.Context, userID, followedID int) error {
	_, err := db.Pool.Exec(ctx,
		`INSERT INTO follows (user_id, followed_id) VALUES ($1, $2)
		 ON CONFLICT DO NOTHING`,
		userID, followedID)
	if err != nil {
		return fmt.Errorf("inserting follow: %w", err)
	}
	return nil
}
