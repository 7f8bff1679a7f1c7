//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"event-booking/internal/domain/user"
	"event-booking/internal/pkg/errs"
	"event-booking/internal/pkg/jwt"
	"event-booking/internal/usecase"
	sharedmock "event-booking/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTokenValidator(t *testing.T) {
	svc := jwt.NewService("validator-secret", time.Hour)
	userID := uuid.New()

	t.Run("有効なトークンから身元を返す", func(t *testing.T) {
		store := sharedmock.NewMockTokenRevocationStore(gomock.NewController(t))
		token, err := svc.GenerateToken(userID, user.RoleAdmin)
		require.NoError(t, err)
		store.EXPECT().IsRevoked(gomock.Any(), gomock.Any()).Return(false, nil)

		id, err := usecase.NewTokenValidator(svc, store).ValidateToken(context.Background(), token)
		require.NoError(t, err)
		assert.Equal(t, userID, id.UserID)
		assert.Equal(t, user.RoleAdmin, id.Role)
		assert.NotEmpty(t, id.TokenID)
		assert.WithinDuration(t, time.Now().Add(time.Hour), id.ExpiresAt, 2*time.Second)
	})

	t.Run("失効済みトークンは拒否", func(t *testing.T) {
		store := sharedmock.NewMockTokenRevocationStore(gomock.NewController(t))
		token, err := svc.GenerateToken(userID, user.RoleMember)
		require.NoError(t, err)
		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		store.EXPECT().IsRevoked(gomock.Any(), claims.TokenID()).Return(true, nil)

		_, err = usecase.NewTokenValidator(svc, store).ValidateToken(context.Background(), token)
		assert.ErrorIs(t, err, usecase.ErrTokenRevoked)
	})

	t.Run("別の鍵で署名されたトークンはストアを見ずに拒否", func(t *testing.T) {
		store := sharedmock.NewMockTokenRevocationStore(gomock.NewController(t))
		token, err := jwt.NewService("other-secret", time.Hour).GenerateToken(userID, user.RoleMember)
		require.NoError(t, err)

		_, err = usecase.NewTokenValidator(svc, store).ValidateToken(context.Background(), token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("未知のロールは無効なトークン", func(t *testing.T) {
		store := sharedmock.NewMockTokenRevocationStore(gomock.NewController(t))
		token, err := svc.GenerateToken(userID, user.Role("user"))
		require.NoError(t, err)

		_, err = usecase.NewTokenValidator(svc, store).ValidateToken(context.Background(), token)
		assert.True(t, errs.Is(err, jwt.ErrInvalidToken))
	})

	t.Run("ストア障害はエラー", func(t *testing.T) {
		store := sharedmock.NewMockTokenRevocationStore(gomock.NewController(t))
		token, err := svc.GenerateToken(userID, user.RoleMember)
		require.NoError(t, err)
		store.EXPECT().IsRevoked(gomock.Any(), gomock.Any()).Return(false, assert.AnError)

		_, err = usecase.NewTokenValidator(svc, store).ValidateToken(context.Background(), token)
		assert.ErrorIs(t, err, assert.AnError)
		assert.True(t, errs.Is(err, usecase.ErrRevocationCheckFailed))
		assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
		assert.False(t, errs.Is(err, jwt.ErrInvalidToken))
	})
}
