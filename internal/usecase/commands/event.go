package commands

import (
	"context"
	"log/slog"

	"event-booking/internal/domain/event"
	"event-booking/internal/infra"
	"event-booking/internal/pkg/errs"
	"event-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type EventCommands interface {
	Create(ctx context.Context, draft event.Draft, image *shared.ImageUpload) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, patch event.Patch, image *shared.ImageUpload) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type eventCommandsImpl struct {
	uow    shared.UnitOfWork
	images shared.ImageStore
}

func NewEventCommands(uow shared.UnitOfWork, images shared.ImageStore) EventCommands {
	return &eventCommandsImpl{uow: uow, images: images}
}

func (uc *eventCommandsImpl) Create(ctx context.Context, draft event.Draft, image *shared.ImageUpload) (uuid.UUID, error) {
	e, err := event.NewEvent(draft, nil)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var stored *string
	if image != nil {
		ref, serr := uc.images.Save(ctx, *image)
		if serr != nil {
			return uuid.Nil, serr
		}
		stored = &ref
		e.ReplaceImage(ref)
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, cerr := tx.Events().Create(ctx, tx.DB(), e)
		if cerr != nil {
			return cerr
		}
		createdID = created.ID()
		return nil
	})
	if err != nil {
		uc.release(ctx, stored)
		return uuid.Nil, err
	}
	return createdID, nil
}

// Update overwrites only the supplied fields. A replaced image is released after commit.
func (uc *eventCommandsImpl) Update(ctx context.Context, id uuid.UUID, patch event.Patch, image *shared.ImageUpload) error {
	var stored *string
	if image != nil {
		ref, err := uc.images.Save(ctx, *image)
		if err != nil {
			return err
		}
		stored = &ref
	}

	var replaced *string
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		replaced = nil

		e, ferr := tx.Events().FindByIDForUpdate(ctx, tx.DB(), id)
		if ferr != nil {
			return mapEventErr(ferr)
		}
		if aerr := e.Apply(patch); aerr != nil {
			return errs.Mark(aerr, errs.ErrDomainValidation)
		}
		if stored != nil {
			replaced = e.ReplaceImage(*stored)
		}
		_, uerr := tx.Events().Update(ctx, tx.DB(), e)
		return mapEventErr(uerr)
	})
	if err != nil {
		uc.release(ctx, stored)
		return err
	}

	uc.release(ctx, replaced)
	return nil
}

func (uc *eventCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	var image *string
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		img, derr := tx.Events().Delete(ctx, tx.DB(), id)
		if derr != nil {
			return mapEventErr(derr)
		}
		image = img
		return nil
	})
	if err != nil {
		return err
	}

	uc.release(ctx, image)
	return nil
}

// release is best effort and only logs failures.
func (uc *eventCommandsImpl) release(ctx context.Context, ref *string) {
	if ref == nil || *ref == "" {
		return
	}
	if err := uc.images.Remove(ctx, *ref); err != nil {
		slog.Warn("failed to release event image", "image", *ref, "error", err.Error())
	}
}

func mapEventErr(err error) error {
	if err == nil {
		return nil
	}
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, errs.ErrEventNotFound)
	}
	return err
}
