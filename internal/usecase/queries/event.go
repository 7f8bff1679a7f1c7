package queries

import (
	"context"
	"math"
	"strings"

	"event-booking/internal/infra"
	"event-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	DefaultEventPageSize = 10
	MaxEventPageSize     = 100
)

var ErrPageOutOfRange = errs.New("page is out of range")

// EventFilter narrows the public listing. Nil fields do not filter.
type EventFilter struct {
	Category *string
	Search   *string
}

type EventPage struct {
	Items []*EventView
	Total int64
	Page  int
	Limit int
}

type EventReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*EventView, error)
	List(ctx context.Context, filter EventFilter, limit, offset int32) ([]*EventView, error)
	Count(ctx context.Context, filter EventFilter) (int64, error)
}

type EventQueries interface {
	Get(ctx context.Context, id uuid.UUID) (*EventView, error)
	List(ctx context.Context, filter EventFilter, page, limit int) (*EventPage, error)
}

type eventQueriesImpl struct {
	store EventReadStore
}

func NewEventQueries(store EventReadStore) EventQueries {
	return &eventQueriesImpl{store: store}
}

func (q *eventQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*EventView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrEventNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

// List orders by date then id so that offset pages stay stable.
func (q *eventQueriesImpl) List(ctx context.Context, filter EventFilter, page, limit int) (*EventPage, error) {
	page, limit = NormalizePage(page, limit)
	filter = normalizeFilter(filter)

	// offset must fit the int32 the query takes
	if page-1 > math.MaxInt32/limit {
		return nil, errs.Mark(ErrPageOutOfRange, errs.ErrDomainValidation)
	}
	offset := (page - 1) * limit
	items, err := q.store.List(ctx, filter, int32(limit), int32(offset)) // #nosec G115 -- limit <= MaxEventPageSize, offset checked above
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	total, err := q.store.Count(ctx, filter)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if items == nil {
		items = []*EventView{}
	}
	return &EventPage{Items: items, Total: total, Page: page, Limit: limit}, nil
}

// NormalizePage applies the listing defaults: page below 1 becomes 1 and limit is clamped to [1, 100].
func NormalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	if limit > MaxEventPageSize {
		limit = MaxEventPageSize
	}
	return page, limit
}

func normalizeFilter(f EventFilter) EventFilter {
	var out EventFilter
	if f.Category != nil {
		if c := strings.TrimSpace(*f.Category); c != "" {
			out.Category = &c
		}
	}
	if f.Search != nil {
		if s := strings.TrimSpace(*f.Search); s != "" {
			out.Search = &s
		}
	}
	return out
}
