//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"event-booking/internal/handler/api"
	resdto "event-booking/internal/handler/dto/response"
	"event-booking/internal/pkg/errs"
	"event-booking/internal/usecase/queries"
	"event-booking/tests/common/builder"
	"event-booking/tests/common/httptest"
	queriesmock "event-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockAdminQueries
	handler     *api.AdminHandler
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockAdminQueries(s.mockCtrl)
	s.handler = api.NewAdminHandler(s.mockQueries)

	s.router.GET("/admin/dashboard", s.handler.Dashboard)
	s.router.GET("/admin/events", s.handler.ListEvents)
	s.router.GET("/admin/bookings", s.handler.ListBookings)
	s.router.GET("/admin/users", s.handler.ListUsers)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) TestDashboard() {
	s.Run("正常系: 集計値を返す", func() {
		s.mockQueries.EXPECT().Dashboard(gomock.Any()).Return(&queries.DashboardView{
			TotalEvents: 3, UpcomingEvents: 2, TotalBookings: 5, TotalUsers: 4,
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/dashboard", nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"totalEvents":3,"upcomingEvents":2,"totalBookings":5,"totalUsers":4}`, rec.Body.String())
	})

	s.Run("異常系: 集計失敗は500", func() {
		s.mockQueries.EXPECT().Dashboard(gomock.Any()).
			Return(nil, errs.Mark(errs.New("timeout"), errs.ErrDatabaseOperationFailed)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/dashboard", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *AdminHandlerTestSuite) TestListEvents() {
	s.Run("正常系: 予約数と次カーソルを返す", func() {
		ev := builder.NewEventBuilder().BuildView()
		item := &queries.AdminEventView{
			ID: ev.ID, Name: ev.Name, Description: ev.Description, Category: ev.Category,
			Date: ev.Date, Venue: ev.Venue, Price: ev.Price, BookingCount: 7,
			CreatedAt: ev.CreatedAt, UpdatedAt: ev.UpdatedAt,
		}
		next := &queries.Cursor{After: queries.EncodeAfterCursor(ev.CreatedAt, ev.ID)}
		s.mockQueries.EXPECT().ListEvents(gomock.Any(), &queries.Cursor{After: "abc"}, 1).
			Return([]*queries.AdminEventView{item}, next, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/events?after=abc&limit=1", nil, "")

		var response resdto.PageResponse[resdto.AdminEventResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Items, 1)
		s.Equal(int64(7), response.Items[0].BookingCount)
		s.Equal(ev.Name, response.Items[0].Name)
		s.Require().NotNil(response.NextCursor)
		s.Equal(next.After, *response.NextCursor)
	})

	s.Run("正常系: 既定件数で最終ページ", func() {
		s.mockQueries.EXPECT().ListEvents(gomock.Any(), nil, queries.DefaultListLimit).
			Return([]*queries.AdminEventView{}, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/events", nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"items":[],"nextCursor":null}`, rec.Body.String())
	})

	s.Run("異常系: 範囲外の件数は400", func() {
		for _, q := range []string{"limit=0", "limit=101", "limit=x"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/events?"+q, nil, "")
			s.Equal(http.StatusBadRequest, rec.Code, q)
		}
	})

	s.Run("異常系: 不正なカーソルは400", func() {
		s.mockQueries.EXPECT().ListEvents(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil, errs.Mark(errs.New("decode"), errs.ErrInvalidCursor)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/events?after=%25%25", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid cursor")
	})
}

func (s *AdminHandlerTestSuite) TestListBookings() {
	item := &queries.AdminBookingView{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		UserName:  "Jane",
		UserEmail: "jane@example.com",
		EventID:   uuid.New(),
		EventName: "Jazz Night",
		EventDate: time.Now().Add(48 * time.Hour),
		CreatedAt: time.Now(),
	}
	s.mockQueries.EXPECT().ListBookings(gomock.Any(), nil, 5).
		Return([]*queries.AdminBookingView{item}, nil, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/bookings?limit=5", nil, "")

	var response resdto.PageResponse[resdto.AdminBookingResponse]
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Require().Len(response.Items, 1)
	s.Equal("jane@example.com", response.Items[0].UserEmail)
	s.Equal("Jazz Night", response.Items[0].EventName)
	s.Nil(response.NextCursor)
}

func (s *AdminHandlerTestSuite) TestListUsers() {
	view := builder.NewUserBuilder().AsAdmin().BuildView()
	s.mockQueries.EXPECT().ListUsers(gomock.Any(), nil, queries.DefaultListLimit).
		Return([]*queries.UserView{view}, nil, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/users", nil, "")

	var response resdto.PageResponse[resdto.UserResponse]
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Require().Len(response.Items, 1)
	s.Equal("admin", response.Items[0].Role)
	s.NotContains(rec.Body.String(), "password")
}
