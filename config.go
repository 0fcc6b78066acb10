package tagify

import (
	"sync"

	"github.com/riverfjs/tagify-go/internal/types"
)

// 导出类型别名
type RenderConfig = types.RenderConfig

var (
	defaultConfig     *RenderConfig
	defaultConfigOnce sync.Once
)

// DefaultConfig returns the default render configuration (singleton).
//
// 120 characters, 3 lines, ellipsis-in-place truncation. Callers that
// want to mutate a config should copy it first; the singleton is shared.
func DefaultConfig() *RenderConfig {
	defaultConfigOnce.Do(func() {
		defaultConfig = types.DefaultRenderConfig()
	})
	return defaultConfig
}
