package uow

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"event-booking/internal/infra/readstore"
	"event-booking/internal/infra/repository"
	sqlc "event-booking/internal/infra/sqlc/generated"
	"event-booking/internal/pkg/errs"
	"event-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"

	maxRetries  = 3
	backoffBase = 100 * time.Millisecond
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *sqlc.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// Within runs fn at ReadCommitted. Booking uniqueness is enforced by a constraint
// and cancellation locks its row with SELECT ... FOR UPDATE, so nothing here needs more.
// Serialization failures and deadlocks are retried with backoff; every other error is final.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	opts := pgx.TxOptions{IsoLevel: pgx.ReadCommitted}

	for attempt := 0; ; attempt++ {
		err := u.attempt(ctx, opts, func(ctx context.Context, dbtx pgx.Tx) error {
			return fn(ctx, &pgTx{dbtx: dbtx, uow: u})
		})
		if err == nil {
			return nil
		}
		if !shouldRetry(err, attempt, maxRetries) {
			if isRetryableError(err) {
				slog.Error("transaction failed after max retries", "attempts", attempt+1, "error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		wait := calculateBackoff(attempt, backoffBase)
		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", wait.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

// WithinReadOnly runs every statement of fn against one snapshot.
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	opts := pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}
	return u.attempt(ctx, opts, func(ctx context.Context, dbtx pgx.Tx) error {
		return fn(ctx, dbtx)
	})
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// attempt runs fn in one transaction. The rollback after a successful commit is a no-op.
func (u *PostgresUoW) attempt(ctx context.Context, opts pgx.TxOptions, fn func(ctx context.Context, tx pgx.Tx) error) (err error) {
	tx, err := u.pool.BeginTx(ctx, opts)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			slog.Warn("rollback failed", "error", rbErr.Error())
		}
	}()

	if err := fn(ctx, tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return errs.Mark(err, errTransactionCommit)
	}
	return nil
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

// calculateBackoff doubles base per attempt and adds up to 20% jitter.
func calculateBackoff(attempt int, base time.Duration) time.Duration {
	wait := time.Duration(1<<attempt) * base
	if spread := int64(wait / 5); spread > 0 {
		wait += time.Duration(rand.Int64N(spread))
	}
	return wait
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgErrCodeSerializationFailure || pgErr.Code == pgErrCodeDeadlockDetected
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	eventRepo    shared.EventRepository
	bookingRepo  shared.BookingRepository
	userRepo     shared.UserRepository
	commandReads shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Events() shared.EventRepository {
	if t.eventRepo == nil {
		t.eventRepo = repository.NewEventRepository(t.uow.q)
	}
	return t.eventRepo
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository(t.uow.q)
	}
	return t.bookingRepo
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository(t.uow.q)
	}
	return t.userRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX

	// Lazy-initialized readstores
	eventStore *readstore.EventReadStore
	userStore  *readstore.UserReadStore
}

func (r *commandReads) EventExists(ctx context.Context, id uuid.UUID) (bool, error) {
	if r.eventStore == nil {
		r.eventStore = readstore.NewEventReadStore(r.uow.q, r.dbtx)
	}
	return r.eventStore.Exists(ctx, id)
}

func (r *commandReads) UserByEmail(ctx context.Context, email string) (*shared.UserSnapshot, error) {
	view, hash, err := r.users().FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return &shared.UserSnapshot{
		ID:           view.ID,
		Name:         view.Name,
		Email:        view.Email,
		PasswordHash: hash,
		Role:         view.Role,
		LastLogin:    view.LastLogin,
		CreatedAt:    view.CreatedAt,
	}, nil
}

func (r *commandReads) UserByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	view, err := r.users().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &shared.UserSnapshot{
		ID:        view.ID,
		Name:      view.Name,
		Email:     view.Email,
		Role:      view.Role,
		LastLogin: view.LastLogin,
		CreatedAt: view.CreatedAt,
	}, nil
}

func (r *commandReads) users() *readstore.UserReadStore {
	if r.userStore == nil {
		r.userStore = readstore.NewUserReadStore(r.uow.q, r.dbtx)
	}
	return r.userStore
}
