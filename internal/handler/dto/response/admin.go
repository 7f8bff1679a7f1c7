package response

import (
	"event-booking/internal/usecase/queries"
)

type DashboardResponse struct {
	TotalEvents    int64 `json:"totalEvents"`
	UpcomingEvents int64 `json:"upcomingEvents"`
	TotalBookings  int64 `json:"totalBookings"`
	TotalUsers     int64 `json:"totalUsers"`
}

func FromDashboard(v *queries.DashboardView) *DashboardResponse {
	resp := copyInto[DashboardResponse](v)
	return &resp
}

// PageResponse is the keyset-paginated envelope of the admin listings.
type PageResponse[T any] struct {
	Items      []T     `json:"items"`
	NextCursor *string `json:"nextCursor"`
}

func NewPage[T any, V any](items []V, next *queries.Cursor) PageResponse[T] {
	page := PageResponse[T]{Items: copyInto[[]T](items)}
	if page.Items == nil {
		page.Items = []T{}
	}
	if next != nil {
		page.NextCursor = &next.After
	}
	return page
}
