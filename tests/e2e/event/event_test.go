//go:build e2e

package event_test

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"event-booking/internal/domain/user"
	"event-booking/internal/handler/dto/response"
	"event-booking/tests/common/authtest"
	"event-booking/tests/common/builder"
	"event-booking/tests/common/dbtest"
	"event-booking/tests/common/httptest"
	"event-booking/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const eventsURL = "/api/events"

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

type eventSuite struct {
	e2e.SharedSuite
	adminToken  string
	memberToken string
}

func TestEventSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(eventSuite))
}

func (s *eventSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	_, s.adminToken = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "admin@example.com", string(user.RoleAdmin))
	_, s.memberToken = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "member@example.com", string(user.RoleMember))
}

func (s *eventSuite) createEvent(b *builder.EventBuilder) response.EventResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, eventsURL, b.BuildCreateRequestDTO(), s.adminToken)

	var res response.EventResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
	return res
}

func (s *eventSuite) listEvents(query string) ([]response.EventResponse, string) {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, eventsURL+query, nil, "")

	var res []response.EventResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
	return res, w.Header().Get("X-Total-Count")
}

func (s *eventSuite) TestCreate() {
	s.Run("管理者はJSONでイベントを作成できる", func() {
		t := s.T()
		b := builder.NewEventBuilder()

		res := s.createEvent(b)
		assert.NotEmpty(t, res.ID)
		assert.Equal(t, b.Name, res.Name)
		assert.Equal(t, b.Price, res.Price)
		assert.True(t, b.Date.Equal(res.Date))
		assert.Nil(t, res.Image)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, eventsURL+"/"+res.ID.String(), nil, "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	s.Run("画像付きで作成すると公開パスから取得できる", func() {
		t := s.T()
		b := builder.NewEventBuilder()
		fields := map[string]string{
			"name":        b.Name,
			"description": b.Description,
			"category":    b.Category,
			"venue":       b.Venue,
			"date":        b.Date.Format(time.RFC3339Nano),
			"price":       "25",
		}
		file := &httptest.FilePart{Field: "image", Filename: "poster.png", Content: pngHeader}

		w := httptest.PerformMultipart(t, s.Router, http.MethodPost, eventsURL, fields, file, s.adminToken)

		var res response.EventResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
		require.NotNil(t, res.Image)
		assert.True(t, strings.HasPrefix(*res.Image, s.Config.Upload.PublicPath+"/"))
		assert.True(t, strings.HasSuffix(*res.Image, ".png"))

		served := httptest.PerformRequest(t, s.Router, http.MethodGet, *res.Image, nil, "")
		assert.Equal(t, http.StatusOK, served.Code)
		assert.Equal(t, pngHeader, served.Body.Bytes())
	})

	s.Run("画像以外のファイルは400で何も保存されない", func() {
		t := s.T()
		b := builder.NewEventBuilder()
		fields := map[string]string{
			"name":        b.Name,
			"description": b.Description,
			"category":    b.Category,
			"venue":       b.Venue,
			"date":        b.Date.Format(time.RFC3339Nano),
			"price":       "25",
		}
		file := &httptest.FilePart{Field: "image", Filename: "poster.png", Content: []byte("#!/bin/sh\necho hi\n")}

		w := httptest.PerformMultipart(t, s.Router, http.MethodPost, eventsURL, fields, file, s.adminToken)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		_, total := s.listEvents("")
		assert.Equal(t, "0", total)
	})

	s.Run("会員は作成できない", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, eventsURL,
			builder.NewEventBuilder().BuildCreateRequestDTO(), s.memberToken)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	s.Run("未認証は401", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, eventsURL,
			builder.NewEventBuilder().BuildCreateRequestDTO(), "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("負の価格は400", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, eventsURL,
			builder.NewEventBuilder().WithPrice(-1).BuildCreateRequestDTO(), s.adminToken)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func (s *eventSuite) TestList() {
	s.Run("日付順で並びカテゴリと検索で絞り込める", func() {
		t := s.T()
		base := time.Now().Add(48 * time.Hour).UTC()
		s.createEvent(builder.NewEventBuilder().WithName("Late Jazz").WithDate(base.Add(3 * time.Hour)))
		s.createEvent(builder.NewEventBuilder().WithName("Early Jazz").WithDate(base.Add(time.Hour)))
		s.createEvent(builder.NewEventBuilder().WithName("Go Workshop").WithCategory("Tech").WithDate(base.Add(2 * time.Hour)).
			With(func(b *builder.EventBuilder) { b.Description = "Hands-on concurrency" }))

		all, total := s.listEvents("")
		assert.Equal(t, "3", total)
		require.Len(t, all, 3)
		assert.Equal(t, []string{"Early Jazz", "Go Workshop", "Late Jazz"},
			[]string{all[0].Name, all[1].Name, all[2].Name})

		tech, total := s.listEvents("?category=Tech")
		assert.Equal(t, "1", total)
		require.Len(t, tech, 1)
		assert.Equal(t, "Go Workshop", tech[0].Name)

		jazz, total := s.listEvents("?search=jAzZ")
		assert.Equal(t, "2", total)
		assert.Len(t, jazz, 2)
	})

	s.Run("ページングしても総件数は変わらない", func() {
		t := s.T()
		base := time.Now().Add(24 * time.Hour).UTC()
		for i := range 5 {
			s.createEvent(builder.NewEventBuilder().
				WithName(fmt.Sprintf("Event %d", i)).
				WithDate(base.Add(time.Duration(i) * time.Hour)))
		}

		page2, total := s.listEvents("?page=2&limit=2")
		assert.Equal(t, "5", total)
		require.Len(t, page2, 2)
		assert.Equal(t, "Event 2", page2[0].Name)
		assert.Equal(t, "Event 3", page2[1].Name)

		beyond, total := s.listEvents("?page=9&limit=2")
		assert.Equal(t, "5", total)
		assert.Empty(t, beyond)
	})

	s.Run("検索語のワイルドカードは文字として扱う", func() {
		t := s.T()
		s.createEvent(builder.NewEventBuilder().WithName("100% Live"))
		s.createEvent(builder.NewEventBuilder().WithName("1000 Voices"))

		res, total := s.listEvents("?search=100%25")
		assert.Equal(t, "1", total)
		require.Len(t, res, 1)
		assert.Equal(t, "100% Live", res[0].Name)
	})

	s.Run("オフセットが範囲外になるページは400", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, eventsURL+"?page=42949674&limit=100", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "")
	})

	s.Run("イベントがなければ空配列", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, eventsURL, nil, "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})
}

func (s *eventSuite) TestUpdate() {
	s.Run("指定したフィールドだけが変わる", func() {
		t := s.T()
		created := s.createEvent(builder.NewEventBuilder())

		body := map[string]any{"venue": "Open Air Stage", "price": 0, "name": ""}
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, eventsURL+"/"+created.ID.String(), body, s.adminToken)

		var res response.EventResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		assert.Equal(t, "Open Air Stage", res.Venue)
		assert.Equal(t, float64(0), res.Price)
		assert.Equal(t, created.Name, res.Name)
		assert.Equal(t, created.Category, res.Category)
	})

	s.Run("新しい画像は古い画像を置き換える", func() {
		t := s.T()
		created := s.createEvent(builder.NewEventBuilder())
		path := eventsURL + "/" + created.ID.String()
		file := &httptest.FilePart{Field: "image", Filename: "a.png", Content: pngHeader}

		first := httptest.PerformMultipart(t, s.Router, http.MethodPut, path, nil, file, s.adminToken)
		var withImage response.EventResponse
		httptest.AssertSuccessResponse(t, first, http.StatusOK, &withImage)
		require.NotNil(t, withImage.Image)

		second := httptest.PerformMultipart(t, s.Router, http.MethodPut, path, nil, file, s.adminToken)
		var replaced response.EventResponse
		httptest.AssertSuccessResponse(t, second, http.StatusOK, &replaced)
		require.NotNil(t, replaced.Image)
		assert.NotEqual(t, *withImage.Image, *replaced.Image)

		_, err := os.Stat(filepath.Join(s.Config.Upload.Dir, filepath.Base(*withImage.Image)))
		assert.True(t, os.IsNotExist(err), "old image should be removed")
		_, err = os.Stat(filepath.Join(s.Config.Upload.Dir, filepath.Base(*replaced.Image)))
		assert.NoError(t, err)
	})

	s.Run("存在しないイベントは404", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, eventsURL+"/"+uuid.NewString(), map[string]any{"name": "x"}, s.adminToken)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Event not found")
	})
}

func (s *eventSuite) TestDelete() {
	s.Run("削除すると予約も消える", func() {
		t := s.T()
		created := s.createEvent(builder.NewEventBuilder())
		memberID := dbtest.CreateTestUser(t, s.DB, "member@example.com", string(user.RoleMember))
		book := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/bookings",
			map[string]string{"eventId": created.ID.String()}, s.memberToken)
		require.Equal(t, http.StatusCreated, book.Code, book.Body.String())

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, eventsURL+"/"+created.ID.String(), nil, s.adminToken)
		var res response.MessageResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		assert.Equal(t, "Event deleted successfully", res.Message)

		get := httptest.PerformRequest(t, s.Router, http.MethodGet, eventsURL+"/"+created.ID.String(), nil, "")
		assert.Equal(t, http.StatusNotFound, get.Code)
		assert.Zero(t, dbtest.CountBookings(t, s.DB, memberID, created.ID))
	})

	s.Run("2回目の削除は404", func() {
		t := s.T()
		created := s.createEvent(builder.NewEventBuilder())
		path := eventsURL + "/" + created.ID.String()

		require.Equal(t, http.StatusOK, httptest.PerformRequest(t, s.Router, http.MethodDelete, path, nil, s.adminToken).Code)
		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, path, nil, s.adminToken)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func (s *eventSuite) TestGet() {
	s.Run("不正なIDは404", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, eventsURL+"/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Event not found")
	})
}
