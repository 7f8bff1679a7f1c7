//go:build unit

package uow

import (
	"errors"
	"testing"
	"time"

	"event-booking/internal/infra"
	"event-booking/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "serialization failure", err: &pgconn.PgError{Code: "40001"}, want: true},
		{name: "deadlock", err: &pgconn.PgError{Code: "40P01"}, want: true},
		{name: "wrapped deadlock", err: errs.Wrap(&pgconn.PgError{Code: "40P01"}, "failed to lock booking"), want: true},
		{name: "repository wrapped serialization", err: infra.WrapRepoErr("failed to create booking", &pgconn.PgError{Code: "40001"}), want: true},
		{name: "unique violation is never retried", err: &pgconn.PgError{Code: "23505"}, want: false},
		{name: "foreign key violation", err: &pgconn.PgError{Code: "23503"}, want: false},
		{name: "plain error", err: errors.New("boom"), want: false},
		{name: "nil", err: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryableError(tt.err))
		})
	}
}

func TestShouldRetry_StopsAtMax(t *testing.T) {
	deadlock := &pgconn.PgError{Code: "40P01"}

	assert.True(t, shouldRetry(deadlock, 0, 3))
	assert.True(t, shouldRetry(deadlock, 2, 3))
	assert.False(t, shouldRetry(deadlock, 3, 3))
}

func TestCalculateBackoff(t *testing.T) {
	base := 100 * time.Millisecond

	for attempt := 0; attempt < 3; attempt++ {
		wait := calculateBackoff(attempt, base)
		floor := time.Duration(1<<attempt) * base
		assert.GreaterOrEqual(t, wait, floor)
		assert.Less(t, wait, floor+floor/5+time.Millisecond)
	}
}
