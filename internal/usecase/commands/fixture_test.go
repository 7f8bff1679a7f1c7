//go:build unit

package commands_test

import (
	"context"
	"testing"

	"event-booking/internal/usecase/shared"
	sharedmock "event-booking/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

type fixture struct {
	uow         *sharedmock.MockUnitOfWork
	tx          *sharedmock.MockTx
	reads       *sharedmock.MockCommandReads
	events      *sharedmock.MockEventRepository
	bookings    *sharedmock.MockBookingRepository
	users       *sharedmock.MockUserRepository
	images      *sharedmock.MockImageStore
	revocations *sharedmock.MockTokenRevocationStore
}

// newFixture wires a unit of work whose Within runs fn once against the mock tx.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		uow:         sharedmock.NewMockUnitOfWork(ctrl),
		tx:          sharedmock.NewMockTx(ctrl),
		reads:       sharedmock.NewMockCommandReads(ctrl),
		events:      sharedmock.NewMockEventRepository(ctrl),
		bookings:    sharedmock.NewMockBookingRepository(ctrl),
		users:       sharedmock.NewMockUserRepository(ctrl),
		images:      sharedmock.NewMockImageStore(ctrl),
		revocations: sharedmock.NewMockTokenRevocationStore(ctrl),
	}

	f.tx.EXPECT().Events().Return(f.events).AnyTimes()
	f.tx.EXPECT().Bookings().Return(f.bookings).AnyTimes()
	f.tx.EXPECT().Users().Return(f.users).AnyTimes()
	f.tx.EXPECT().Reads().Return(f.reads).AnyTimes()
	f.tx.EXPECT().DB().Return(nil).AnyTimes()
	f.uow.EXPECT().CommandReads().Return(f.reads).AnyTimes()
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		}).AnyTimes()

	return f
}
