//go:build unit

package repository

import (
	"context"
	"testing"

	"event-booking/internal/domain/user"
	"event-booking/internal/infra"
	sqlc "event-booking/internal/infra/sqlc/generated"
	"event-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserQueries struct {
	mock.Mock
}

func (m *MockUserQueries) CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (sqlc.Users, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

func (m *MockUserQueries) UpdateLastLogin(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error {
	args := m.Called(ctx, db, id)
	return args.Error(0)
}

func (m *MockUserQueries) UpdateUserRole(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserRoleParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func TestUserRepository_Create(t *testing.T) {
	u, err := builder.NewUserBuilder().BuildDomain()
	require.NoError(t, err)
	row := builder.NewUserBuilder().BuildInfra()
	row.ID = u.ID()

	tests := []struct {
		name      string
		mockError error
		wantKind  infra.RepositoryErrorKind
	}{
		{name: "成功"},
		{
			name:      "メール重複",
			mockError: &pgconn.PgError{Code: "23505", ConstraintName: infra.ConstraintUserEmail},
			wantKind:  infra.KindDuplicateKey,
		},
		{name: "DB障害", mockError: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockUserQueries)
			q.On("CreateUser", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.CreateUserParams) bool {
				return p.ID == u.ID() && p.Email == "test@example.com" && p.Role == "member"
			})).Return(row, tt.mockError)

			created, err := NewUserRepository(q).Create(context.Background(), nil, u)

			if tt.wantKind == "" {
				require.NoError(t, err)
				assert.Equal(t, u.ID(), created.ID())
				assert.Equal(t, user.RoleMember, created.Role())
			} else {
				require.Error(t, err)
				assert.Nil(t, created)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			}
			q.AssertExpectations(t)
		})
	}
}

func TestUserRepository_UpdateRole(t *testing.T) {
	id := uuid.New()

	t.Run("成功", func(t *testing.T) {
		q := new(MockUserQueries)
		q.On("UpdateUserRole", mock.Anything, mock.Anything, sqlc.UpdateUserRoleParams{ID: id, Role: "admin"}).Return(int64(1), nil)

		require.NoError(t, NewUserRepository(q).UpdateRole(context.Background(), nil, id, user.RoleAdmin))
	})

	t.Run("対象なしはNotFound", func(t *testing.T) {
		q := new(MockUserQueries)
		q.On("UpdateUserRole", mock.Anything, mock.Anything, mock.Anything).Return(int64(0), nil)

		err := NewUserRepository(q).UpdateRole(context.Background(), nil, id, user.RoleAdmin)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
