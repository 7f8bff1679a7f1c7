//go:build unit

package config_test

import (
	"testing"

	"event-booking/internal/pkg/config"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *config.Config)
		wantErr string
	}{
		{name: "テスト設定はそのまま有効", mutate: func(*config.Config) {}},
		{name: "JWT期間が不正", mutate: func(c *config.Config) { c.JWT.Duration = "forever" }, wantErr: "JWT_DURATION"},
		{name: "JWT期間が0", mutate: func(c *config.Config) { c.JWT.Duration = "0s" }, wantErr: "JWT_DURATION"},
		{name: "アップロード先が空", mutate: func(c *config.Config) { c.Upload.Dir = "" }, wantErr: "UPLOAD_DIR"},
		{name: "アップロード上限が0", mutate: func(c *config.Config) { c.Upload.MaxBytes = 0 }, wantErr: "UPLOAD_MAX_BYTES"},
		{
			name: "管理者パスワードが短い",
			mutate: func(c *config.Config) {
				c.Admin.Email = "admin@example.com"
				c.Admin.Password = "short"
			},
			wantErr: "ADMIN_PASSWORD",
		},
		{
			name:   "管理者メールのみでは無効扱い",
			mutate: func(c *config.Config) { c.Admin.Email = "admin@example.com" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewTestConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
