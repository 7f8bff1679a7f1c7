//go:build unit || e2e

package authtest

import (
	"encoding/json"
	"net/http"
	"testing"

	"event-booking/internal/handler/dto/request"
	resdto "event-booking/internal/handler/dto/response"
	"event-booking/tests/common/dbtest"
	"event-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res resdto.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.NotEmpty(t, res.Token, "token missing from login response")

	return res.Token
}

// CreateAndLogin inserts a user with the default password and returns the user id and a bearer token.
func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email, role string) (uuid.UUID, string) {
	t.Helper()
	id := dbtest.CreateTestUser(t, db, email, role)
	return id, LoginUser(t, router, email, dbtest.DefaultPassword)
}

func LogoutUser(t *testing.T, router *gin.Engine, token string) {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/logout", nil, token)
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}
