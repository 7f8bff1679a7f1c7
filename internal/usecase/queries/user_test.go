//go:build unit

package queries_test

import (
	"context"
	"testing"

	"event-booking/internal/infra"
	"event-booking/internal/pkg/errs"
	"event-booking/internal/usecase/queries"
	"event-booking/tests/common/builder"
	queriesmock "event-booking/tests/mock/queries"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserQueries_GetCurrentUser(t *testing.T) {
	view := builder.NewUserBuilder().BuildView()

	tests := []struct {
		name      string
		storeErr  error
		wantErrIs error
	}{
		{name: "成功"},
		{name: "削除済みユーザー", storeErr: infra.WrapRepoErr("user not found", pgx.ErrNoRows, infra.KindNotFound), wantErrIs: errs.ErrUserNotFound},
		{name: "DB障害", storeErr: assert.AnError, wantErrIs: errs.ErrDatabaseOperationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockUserReadStore(ctrl)
			if tt.storeErr != nil {
				store.EXPECT().FindByID(gomock.Any(), view.ID).Return(nil, tt.storeErr)
			} else {
				store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)
			}

			got, err := queries.NewUserQueries(store).GetCurrentUser(context.Background(), view.ID)

			if tt.wantErrIs != nil {
				assert.True(t, errs.Is(err, tt.wantErrIs))
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, view, got)
		})
	}
}

