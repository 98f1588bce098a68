//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"room-reserve/internal/pkg/sharetoken"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestUser(t *testing.T, db DBLike, email, name string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, email, name) VALUES ($1, $2, $3) ON CONFLICT (email) DO NOTHING",
		userID, email, name)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestRoom(t *testing.T, db DBLike, name string, capacity int32) uuid.UUID {
	t.Helper()

	roomID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO rooms (id, name, capacity) VALUES ($1, $2, $3)",
		roomID, name, capacity)
	require.NoError(t, err)

	return roomID
}

// CreateTestRoomWithState inserts a room in an arbitrary listing state, for
// tests covering blocked or unavailable rooms.
func CreateTestRoomWithState(t *testing.T, db DBLike, name string, capacity int32, status, recordState string) uuid.UUID {
	t.Helper()

	roomID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO rooms (id, name, capacity, status, record_state) VALUES ($1, $2, $3, $4, $5)",
		roomID, name, capacity, status, recordState)
	require.NoError(t, err)

	return roomID
}

func CreateTestReservation(t *testing.T, db DBLike, roomID, userID uuid.UUID, startAt, endAt time.Time) uuid.UUID {
	t.Helper()

	reservationID := uuid.New()
	ctx := context.Background()

	token, err := sharetoken.New()
	require.NoError(t, err)

	_, err = db.Exec(ctx,
		"INSERT INTO reservations (id, room_id, user_id, start_at, end_at, share_token) VALUES ($1, $2, $3, $4, $5, $6)",
		reservationID, roomID, userID, startAt, endAt, token)
	require.NoError(t, err)

	return reservationID
}

// No reference tables in this schema; tests create their own rooms and users.
func SeedReferenceData(pool *pgxpool.Pool) error {
	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables between subtests
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
