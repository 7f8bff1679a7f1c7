//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"event-booking/internal/handler/api"
	resdto "event-booking/internal/handler/dto/response"
	"event-booking/internal/pkg/errs"
	"event-booking/internal/usecase/commands"
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

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockUserQueries
	handler      *api.AuthHandler
	userID       uuid.UUID
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("token_id", "token-123")
		c.Set("token_expires_at", time.Now().Add(time.Hour))
		c.Next()
	}

	s.router.POST("/auth/register", s.handler.Register)
	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/logout", authMiddleware, s.handler.Logout)
	s.router.GET("/auth/me", authMiddleware, s.handler.Me)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

type testCaseAuth struct {
	name       string
	mutate     testutil.Mutation
	expectCode int
}

func authResult(u *builder.UserBuilder) *commands.AuthResult {
	snap := u.BuildSnapshot()
	snap.PasswordHash = ""
	return &commands.AuthResult{
		Token:     "test-jwt-token",
		ExpiresAt: time.Now().Add(24 * time.Hour),
		User:      snap,
	}
}

func (s *AuthHandlerTestSuite) TestRegister() {
	url := "/auth/register"
	reqBody := builder.NewAuthBuilder().BuildRegisterDTO()

	s.Run("正常系: 201でトークンとユーザーを返す", func() {
		result := authResult(builder.NewUserBuilder())
		s.mockCommands.EXPECT().Register(gomock.Any(), reqBody.ToCommand()).Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.AuthResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("test-jwt-token", response.Token)
		s.Equal(result.User.ID, response.User.ID)
		s.Equal("member", response.User.Role)
		s.NotContains(rec.Body.String(), "password")
	})

	s.Run("異常系: 入力検証で400", func() {
		cases := []testCaseAuth{
			{name: "名前なし", mutate: testutil.Field("name", nil), expectCode: http.StatusBadRequest},
			{name: "名前101文字", mutate: testutil.Field("name", strings.Repeat("a", 101)), expectCode: http.StatusBadRequest},
			{name: "メール形式不正", mutate: testutil.Field("email", "not-an-email"), expectCode: http.StatusBadRequest},
			{name: "パスワード7文字", mutate: testutil.Field("password", "1234567"), expectCode: http.StatusBadRequest},
			{name: "パスワード73バイト", mutate: testutil.Field("password", strings.Repeat("p", 73)), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				s.Equal(tc.expectCode, rec.Code, rec.Body.String())
			})
		}
	})

	s.Run("異常系: 登録済みメールで409", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("duplicate"), errs.ErrEmailTaken)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Email already registered")
	})
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"
	reqBody := builder.NewAuthBuilder().BuildDTO()

	s.Run("正常系: 200でトークンを返す", func() {
		result := authResult(builder.NewUserBuilder())
		s.mockCommands.EXPECT().Login(gomock.Any(), reqBody.ToCommand()).Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.AuthResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(result.Token, response.Token)
		s.Equal(result.User.Email, response.User.Email)
	})

	s.Run("異常系: 入力検証で400", func() {
		cases := []testCaseAuth{
			{name: "メールなし", mutate: testutil.Field("email", nil), expectCode: http.StatusBadRequest},
			{name: "パスワードなし", mutate: testutil.Field("password", nil), expectCode: http.StatusBadRequest},
			{name: "空メール", mutate: testutil.Field("email", ""), expectCode: http.StatusBadRequest},
			{name: "メール形式不正", mutate: testutil.Field("email", "invalid-email"), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				s.Equal(tc.expectCode, rec.Code, rec.Body.String())
			})
		}
	})

	s.Run("異常系: 認証情報不一致で401", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("mismatch"), errs.ErrInvalidCredentials)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid email or password")
	})

	s.Run("異常系: 想定外のエラーは500", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(nil, errs.New("connection refused")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
		s.NotContains(rec.Body.String(), "connection refused")
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	s.Run("正常系: トークンを失効させて204", func() {
		s.mockCommands.EXPECT().Logout(gomock.Any(), "token-123", gomock.Any()).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("異常系: 未認証で401", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	s.Run("正常系: 現在のユーザーを返す", func() {
		view := builder.NewUserBuilder().BuildView()
		view.ID = s.userID
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), s.userID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "bearer-token")

		var response resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(s.userID, response.ID)
		s.Equal(view.Name, response.Name)
	})

	s.Run("異常系: ユーザー削除済みで404", func() {
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), s.userID).
			Return(nil, errs.Mark(errs.New("no rows"), errs.ErrUserNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "User not found")
	})
}
