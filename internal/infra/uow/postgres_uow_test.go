//go:build unit

package uow

import (
	"testing"
	"time"

	"lab-dashboard/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryableError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{name: "serialization failure", err: &pgconn.PgError{Code: pgErrCodeSerializationFailure}, want: true},
		{name: "deadlock", err: &pgconn.PgError{Code: pgErrCodeDeadlockDetected}, want: true},
		{name: "wrapped deadlock", err: errs.Wrap(&pgconn.PgError{Code: pgErrCodeDeadlockDetected}, "update"), want: true},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: false},
		{name: "plain error", err: errs.New("boom"), want: false},
		{name: "nil", err: nil, want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, isRetryableError(tc.err))
		})
	}
}

func TestShouldRetry(t *testing.T) {
	retryable := &pgconn.PgError{Code: pgErrCodeSerializationFailure}
	assert.True(t, shouldRetry(retryable, 0, 3))
	assert.True(t, shouldRetry(retryable, 2, 3))
	assert.False(t, shouldRetry(retryable, 3, 3))
	assert.False(t, shouldRetry(errs.New("boom"), 0, 3))
}

func TestCalculateBackoff(t *testing.T) {
	base := 100 * time.Millisecond
	for attempt := 0; attempt < 4; attempt++ {
		want := time.Duration(1<<attempt) * base
		got := calculateBackoff(attempt, base)
		assert.GreaterOrEqual(t, got, want)
		assert.Less(t, got, want+want/5+time.Nanosecond)
	}
}
