package commands

import (
	"context"

	"event-booking/internal/domain/booking"
	"event-booking/internal/infra"
	"event-booking/internal/pkg/errs"
	"event-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingCommands interface {
	Create(ctx context.Context, userID uuid.UUID, eventRef string) (*booking.Booking, error)
	Cancel(ctx context.Context, userID uuid.UUID, bookingRef string) error
}

type bookingCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewBookingCommands(uow shared.UnitOfWork) BookingCommands {
	return &bookingCommandsImpl{uow: uow}
}

// Create has no read-then-write duplicate check: bookings_user_event_key decides
// which of several concurrent requests wins.
func (uc *bookingCommandsImpl) Create(ctx context.Context, userID uuid.UUID, eventRef string) (*booking.Booking, error) {
	eventID, err := uuid.Parse(eventRef)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidReference)
	}

	exists, err := uc.uow.CommandReads().EventExists(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.ErrEventNotFound
	}

	b, err := booking.NewBooking(userID, eventID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var created *booking.Booking
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		row, cerr := tx.Bookings().Create(ctx, tx.DB(), b)
		if cerr != nil {
			return cerr
		}
		created = row
		return nil
	})
	if err != nil {
		return nil, mapBookingCreateErr(err)
	}
	return created, nil
}

// Cancel locks the booking row, so the ownership check and the delete see the same state.
func (uc *bookingCommandsImpl) Cancel(ctx context.Context, userID uuid.UUID, bookingRef string) error {
	bookingID, err := uuid.Parse(bookingRef)
	if err != nil {
		return errs.Mark(err, errs.ErrBookingNotFound)
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, ferr := tx.Bookings().FindByIDForUpdate(ctx, tx.DB(), bookingID)
		if ferr != nil {
			return mapBookingErr(ferr)
		}
		if oerr := b.EnsureOwnedBy(userID); oerr != nil {
			return errs.Mark(oerr, errs.ErrBookingNotOwned)
		}
		return mapBookingErr(tx.Bookings().Delete(ctx, tx.DB(), bookingID))
	})
}

func mapBookingCreateErr(err error) error {
	constraint := infra.ViolatedConstraint(err)
	switch {
	case infra.IsKind(err, infra.KindDuplicateKey) && constraint == infra.ConstraintBookingUserEvent:
		return errs.Mark(err, errs.ErrAlreadyBooked)
	case infra.IsKind(err, infra.KindForeignKeyViolated) && constraint == infra.ConstraintBookingEventFK:
		// The event was deleted between the existence check and the insert
		return errs.Mark(err, errs.ErrEventNotFound)
	case infra.IsKind(err, infra.KindForeignKeyViolated) && constraint == infra.ConstraintBookingUserFK:
		return errs.Mark(err, errs.ErrUnauthenticated)
	default:
		return err
	}
}

func mapBookingErr(err error) error {
	if err == nil {
		return nil
	}
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, errs.ErrBookingNotFound)
	}
	return err
}
