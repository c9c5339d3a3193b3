package repos

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type UsersRepo struct {
	db *pgxpool.Pool
}

// Ensure creates the user row if missing and refreshes the display name.
func (r *UsersRepo) Ensure(ctx context.Context, id int64, name, displayName string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO users (id, name, display_name)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, display_name = EXCLUDED.display_name`,
		id, name, displayName)
	return err
}

// Exists reports whether the user row is present.
func (r *UsersRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}
