//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"event-booking/internal/handler/api"
	resdto "event-booking/internal/handler/dto/response"
	"event-booking/internal/pkg/errs"
	"event-booking/internal/usecase/queries"
	"event-booking/tests/common/builder"
	"event-booking/tests/common/httptest"
	commandsmock "event-booking/tests/mock/commands"
	queriesmock "event-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
	userID       uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.userID)
		c.Next()
	}

	s.router.POST("/bookings", authMiddleware, s.handler.Create)
	s.router.GET("/bookings/user", authMiddleware, s.handler.ListMine)
	s.router.GET("/bookings/check/:eventId", authMiddleware, s.handler.Check)
	s.router.DELETE("/bookings/:id", authMiddleware, s.handler.Cancel)
	// no auth middleware: the handler itself must refuse
	s.router.POST("/unguarded/bookings", s.handler.Create)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestCreate() {
	eventID := uuid.New()
	body := map[string]any{"eventId": eventID.String()}

	s.Run("正常系: 予約して201", func() {
		created := builder.NewBookingBuilder().WithUserID(s.userID).WithEventID(eventID).BuildDomain()
		s.mockCommands.EXPECT().Create(gomock.Any(), s.userID, eventID.String()).Return(created, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", body, "bearer-token")

		var response resdto.BookingCreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("Event booked successfully", response.Message)
		s.Equal(created.ID(), response.Booking.ID)
		s.Equal(eventID, response.Booking.EventID)
		s.Equal(s.userID, response.Booking.UserID)
	})

	errorCases := []struct {
		name       string
		err        error
		expectCode int
		expectMsg  string
	}{
		{name: "予約済みは409", err: errs.ErrAlreadyBooked, expectCode: http.StatusConflict, expectMsg: "already booked"},
		{name: "不正な参照は400", err: errs.ErrInvalidReference, expectCode: http.StatusBadRequest, expectMsg: "Invalid event reference"},
		{name: "存在しないイベントは404", err: errs.ErrEventNotFound, expectCode: http.StatusNotFound, expectMsg: "Event not found"},
	}
	for _, tc := range errorCases {
		s.Run("異常系: "+tc.name, func() {
			s.mockCommands.EXPECT().Create(gomock.Any(), s.userID, gomock.Any()).
				Return(nil, errs.Mark(errs.New("usecase failure"), tc.err)).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", body, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
		})
	}

	s.Run("異常系: eventIdなしは400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", map[string]any{}, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("異常系: 未認証は401", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", body, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("異常系: ユーザー情報なしは401", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/unguarded/bookings", body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Authentication required")
	})
}

func (s *BookingHandlerTestSuite) TestListMine() {
	s.Run("正常系: イベント情報付きで返す", func() {
		first := builder.NewBookingBuilder().WithUserID(s.userID).BuildView()
		second := builder.NewBookingBuilder().WithUserID(s.userID).BuildView()
		s.mockQueries.EXPECT().ListForUser(gomock.Any(), s.userID).
			Return([]*queries.BookingView{first, second}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/user", nil, "bearer-token")

		var response []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 2)
		s.Equal(first.ID, response[0].ID)
		s.Equal(first.Event.Name, response[0].Event.Name)
		s.Equal(first.EventID, response[0].Event.ID)
	})

	s.Run("正常系: 予約なしは空配列", func() {
		s.mockQueries.EXPECT().ListForUser(gomock.Any(), s.userID).Return([]*queries.BookingView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/user", nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq("[]", rec.Body.String())
	})
}

func (s *BookingHandlerTestSuite) TestCheck() {
	eventID := uuid.New().String()

	s.Run("正常系: 予約状況を返す", func() {
		s.mockQueries.EXPECT().IsReserved(gomock.Any(), s.userID, eventID).Return(true, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/check/"+eventID, nil, "bearer-token")

		var response resdto.BookingCheckResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.IsReserved)
	})

	s.Run("異常系: 不正なイベント参照は400", func() {
		s.mockQueries.EXPECT().IsReserved(gomock.Any(), s.userID, "garbage").
			Return(false, errs.Mark(errs.New("parse"), errs.ErrInvalidReference)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/check/garbage", nil, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *BookingHandlerTestSuite) TestCancel() {
	bookingID := uuid.New().String()
	url := "/bookings/" + bookingID

	s.Run("正常系: 取消して200", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.userID, bookingID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")

		var response resdto.MessageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Booking cancelled successfully", response.Message)
	})

	s.Run("異常系: 他人の予約は403", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.userID, bookingID).
			Return(errs.Mark(errs.New("owner mismatch"), errs.ErrBookingNotOwned)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Not authorized")
	})

	s.Run("異常系: 存在しない予約は404", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.userID, bookingID).
			Return(errs.Mark(errs.New("no rows"), errs.ErrBookingNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}
