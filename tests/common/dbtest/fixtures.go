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

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DefaultPassword matches the bcrypt hash stored by CreateTestUser.
const DefaultPassword = "password123"

const defaultPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()
	displayName := strings.Split(email, "@")[0]

	tag, err := db.Exec(ctx, `INSERT INTO users (id, email, display_name, password_hash, role, is_active)
		VALUES ($1, $2, $3, $4, $5, true) ON CONFLICT (email) DO NOTHING`,
		userID, email, displayName, defaultPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func DeactivateUser(t *testing.T, db DBLike, userID uuid.UUID) {
	t.Helper()
	_, err := db.Exec(context.Background(), "UPDATE users SET is_active = false WHERE id = $1", userID)
	require.NoError(t, err)
}

func CreateTestEquipment(t *testing.T, db DBLike, name, kind string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO equipment (id, name, type) VALUES ($1, $2, $3)", id, name, kind)
	require.NoError(t, err)
	return id
}

type ReservationFixture struct {
	EquipmentID   uuid.UUID
	EquipmentName string
	Date          string
	StartTime     string
	EndTime       string
	Owner         string
	CreatedBy     *uuid.UUID
}

func CreateTestReservation(t *testing.T, db DBLike, r ReservationFixture) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), `INSERT INTO reservations
		(id, equipment_id, equipment_name, date, start_time, end_time, owner, created_by)
		VALUES ($1, $2, $3, $4::date, $5, $6, $7, $8)`,
		id, r.EquipmentID, r.EquipmentName, r.Date, r.StartTime, r.EndTime, r.Owner, r.CreatedBy)
	require.NoError(t, err)
	return id
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates every application table.
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
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
