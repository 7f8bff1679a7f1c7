//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	sqlc "event-booking/internal/infra/sqlc/generated"
	"event-booking/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

const DefaultPassword = "password123"

// DBLike is satisfied by a pool or an open transaction.
type DBLike = sqlc.DBTX

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	hash, err := password.HashPassword(DefaultPassword)
	require.NoError(t, err)

	userID := uuid.New()
	ctx := context.Background()
	tag, err := db.Exec(ctx, `INSERT INTO users (id, name, email, password_hash, role)
		VALUES ($1, $2, $3, $4, $5) ON CONFLICT DO NOTHING`,
		userID, "Test "+role, email, hash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id FROM users WHERE lower(email) = lower($1)", email).Scan(&userID)
		require.NoError(t, err)
	}

	return userID
}

func CreateTestEvent(t *testing.T, db DBLike, name string, date time.Time, price float64) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(), `INSERT INTO events (name, description, category, date, venue, price)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		name, name+" description", "Music", date, "Main Hall", price).Scan(&id)
	require.NoError(t, err)
	return id
}

func CountBookings(t *testing.T, db DBLike, userID, eventID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM bookings WHERE user_id = $1 AND event_id = $2", userID, eventID).Scan(&n)
	require.NoError(t, err)
	return n
}

// ResetDB empties every table between tests.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE bookings, events, users RESTART IDENTITY CASCADE")
	return err
}
