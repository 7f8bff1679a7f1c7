//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"event-booking/internal/domain/event"
	"event-booking/internal/handler/api"
	resdto "event-booking/internal/handler/dto/response"
	"event-booking/internal/pkg/errs"
	"event-booking/internal/usecase/queries"
	"event-booking/internal/usecase/shared"
	"event-booking/tests/common/builder"
	"event-booking/tests/common/httptest"
	"event-booking/tests/common/testutil"
	commandsmock "event-booking/tests/mock/commands"
	queriesmock "event-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

type EventHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockEventCommands
	mockQueries  *queriesmock.MockEventQueries
	handler      *api.EventHandler
}

func (s *EventHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockEventCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockEventQueries(s.mockCtrl)
	s.handler = api.NewEventHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/events", s.handler.List)
	s.router.GET("/events/:id", s.handler.Get)
	s.router.POST("/events", s.handler.Create)
	s.router.PUT("/events/:id", s.handler.Update)
	s.router.DELETE("/events/:id", s.handler.Delete)
}

func (s *EventHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestEventHandlerSuite(t *testing.T) {
	suite.Run(t, new(EventHandlerTestSuite))
}

type testCaseEvent struct {
	name       string
	mutate     testutil.Mutation
	expectCode int
}

func (s *EventHandlerTestSuite) TestList() {
	s.Run("正常系: 既定のページングで一覧と総件数を返す", func() {
		items := []*queries.EventView{builder.NewEventBuilder().BuildView(), builder.NewEventBuilder().WithName("Rock Fest").BuildView()}
		s.mockQueries.EXPECT().List(gomock.Any(), queries.EventFilter{}, 1, queries.DefaultEventPageSize).
			Return(&queries.EventPage{Items: items, Total: 12, Page: 1, Limit: 10}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/events", nil, "")

		var response []resdto.EventResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal("Rock Fest", response[1].Name)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"X-Total-Count": "12"})
	})

	s.Run("正常系: フィルタとページ指定を渡す", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), 2, 5).
			DoAndReturn(func(_ context.Context, f queries.EventFilter, page, limit int) (*queries.EventPage, error) {
				s.Require().NotNil(f.Category)
				s.Equal("Music", *f.Category)
				s.Require().NotNil(f.Search)
				s.Equal("jazz", *f.Search)
				return &queries.EventPage{Items: []*queries.EventView{}, Page: page, Limit: limit}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/events?category=Music&search=jazz&page=2&limit=5", nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq("[]", rec.Body.String())
	})

	s.Run("異常系: 数値でないページは400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/events?page=abc", nil, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *EventHandlerTestSuite) TestGet() {
	s.Run("正常系: イベントを返す", func() {
		view := builder.NewEventBuilder().WithImage("/uploads/a.png").BuildView()
		s.mockQueries.EXPECT().Get(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/events/"+view.ID.String(), nil, "")

		var response resdto.EventResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
		s.Require().NotNil(response.Image)
		s.Equal("/uploads/a.png", *response.Image)
	})

	s.Run("異常系: 存在しないIDは404", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().Get(gomock.Any(), id).
			Return(nil, errs.Mark(errs.New("no rows"), errs.ErrEventNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/events/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Event not found")
	})

	s.Run("異常系: 不正な形式のIDは404", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/events/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Event not found")
	})
}

func (s *EventHandlerTestSuite) TestCreate() {
	b := builder.NewEventBuilder()
	reqBody := b.BuildCreateRequestDTO()
	view := b.BuildView()

	s.Run("正常系: JSONで作成し201", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), nil).
			DoAndReturn(func(_ context.Context, d event.Draft, _ *shared.ImageUpload) (uuid.UUID, error) {
				s.Equal(b.Name, d.Name)
				s.Equal(b.Venue, d.Venue)
				s.True(b.Date.Equal(d.Date))
				return view.ID, nil
			}).Times(1)
		s.mockQueries.EXPECT().Get(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/events", reqBody, "")

		var response resdto.EventResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.ID, response.ID)
		s.Equal(b.Price, response.Price)
	})

	s.Run("正常系: multipartで画像付き作成", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Not(gomock.Nil())).
			DoAndReturn(func(_ context.Context, d event.Draft, img *shared.ImageUpload) (uuid.UUID, error) {
				s.Equal(b.Name, d.Name)
				s.Equal(b.Price, d.Price)
				s.True(b.Date.Equal(d.Date))
				s.Equal("poster.png", img.Filename)
				s.Equal(int64(len(pngHeader)), img.Size)
				return view.ID, nil
			}).Times(1)
		s.mockQueries.EXPECT().Get(gomock.Any(), view.ID).Return(view, nil).Times(1)

		fields := map[string]string{
			"name":        b.Name,
			"description": b.Description,
			"category":    b.Category,
			"venue":       b.Venue,
			"date":        b.Date.Format(time.RFC3339Nano),
			"price":       "25",
		}
		rec := httptest.PerformMultipart(s.T(), s.router, http.MethodPost, "/events", fields,
			&httptest.FilePart{Field: "image", Filename: "poster.png", Content: pngHeader}, "")

		s.Equal(http.StatusCreated, rec.Code, rec.Body.String())
	})

	s.Run("異常系: 入力検証で400", func() {
		cases := []testCaseEvent{
			{name: "名前なし", mutate: testutil.Field("name", nil), expectCode: http.StatusBadRequest},
			{name: "説明なし", mutate: testutil.Field("description", nil), expectCode: http.StatusBadRequest},
			{name: "カテゴリなし", mutate: testutil.Field("category", nil), expectCode: http.StatusBadRequest},
			{name: "日付なし", mutate: testutil.Field("date", nil), expectCode: http.StatusBadRequest},
			{name: "日付形式不正", mutate: testutil.Field("date", "next friday"), expectCode: http.StatusBadRequest},
			{name: "会場なし", mutate: testutil.Field("venue", nil), expectCode: http.StatusBadRequest},
			{name: "価格なし", mutate: testutil.Field("price", nil), expectCode: http.StatusBadRequest},
			{name: "負の価格", mutate: testutil.Field("price", -1), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/events", requestMap, "")
				s.Equal(tc.expectCode, rec.Code, rec.Body.String())
			})
		}
	})

	s.Run("正常系: 無料イベントは許可", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), nil).Return(view.ID, nil).Times(1)
		s.mockQueries.EXPECT().Get(gomock.Any(), view.ID).Return(view, nil).Times(1)

		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("price", 0))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/events", requestMap, "")
		s.Equal(http.StatusCreated, rec.Code, rec.Body.String())
	})

	s.Run("異常系: 画像形式不正で400", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.Nil, errs.Mark(errs.New("unsupported"), errs.ErrInvalidImage)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/events", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid image")
	})
}

func (s *EventHandlerTestSuite) TestUpdate() {
	view := builder.NewEventBuilder().WithName("Updated").BuildView()
	url := "/events/" + view.ID.String()

	s.Run("正常系: 指定項目のみ更新し200", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), view.ID, gomock.Any(), nil).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, p event.Patch, _ *shared.ImageUpload) error {
				s.Require().NotNil(p.Name)
				s.Equal("Updated", *p.Name)
				s.Nil(p.Venue)
				s.Nil(p.Price)
				return nil
			}).Times(1)
		s.mockQueries.EXPECT().Get(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"name": "Updated"}, "")

		var response resdto.EventResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Updated", response.Name)
	})

	s.Run("正常系: 空白の項目は無視される", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), view.ID, event.Patch{}, nil).Return(nil).Times(1)
		s.mockQueries.EXPECT().Get(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"name": "  ", "venue": ""}, "")
		s.Equal(http.StatusOK, rec.Code, rec.Body.String())
	})

	s.Run("異常系: 存在しないイベントは404", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), view.ID, gomock.Any(), nil).
			Return(errs.Mark(errs.New("no rows"), errs.ErrEventNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"name": "x"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Event not found")
	})

	s.Run("異常系: 負の価格は400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"price": -10}, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *EventHandlerTestSuite) TestDelete() {
	id := uuid.New()

	s.Run("正常系: 削除して200", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/events/"+id.String(), nil, "")

		var response resdto.MessageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Event deleted successfully", response.Message)
	})

	s.Run("異常系: 存在しないイベントは404", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).
			Return(errs.Mark(errs.New("no rows"), errs.ErrEventNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/events/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Event not found")
	})
}
