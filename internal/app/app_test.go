package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/fx"

	httpapi "github.com/fbtracker/v1/internal/api/http"
)

// TestGraphComplete 校验依赖图完整性而不实际启动组件
func TestGraphComplete(t *testing.T) {
	testCases := []struct {
		name   string
		invoke fx.Option
	}{
		{"命令工具组件", fx.Invoke(func(tk Toolkit) {})},
		{"HTTP服务组件", fx.Invoke(func(s *httpapi.Server) {})},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := fx.ValidateApp(buildOptions(""), tc.invoke)
			assert.NoError(t, err)
		})
	}
}
