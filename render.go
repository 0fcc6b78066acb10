package tagify

import (
	"github.com/riverfjs/tagify-go/internal/builder"
	"github.com/riverfjs/tagify-go/internal/markdown"
	"github.com/riverfjs/tagify-go/internal/scanner"
)

// Render 将自由文本转换为 (segments, wasTruncated) 用于样式化渲染
//
// 参数:
//   - content: 原始帖子/字幕文本
//   - config: 渲染配置，如为 nil 则使用默认配置
//
// 返回:
//   - []Segment: 按预算截断后的 segment 序列
//   - bool: 是否发生了截断（驱动 "展开" 按钮的可见性）
//
// 空输入返回 (nil, false)，从不 panic。
func Render(content string, config *RenderConfig) ([]Segment, bool) {
	if config == nil {
		config = DefaultConfig()
	}
	full, _ := Compose(content, config)
	return truncateForConfig(full, config)
}

// Compose 将自由文本转换为未截断的完整 segment 流及其 token 列表
//
// 类似 Render()，但不应用字符预算，供展开态和需要 token 偏移量的
// 调用方使用。
//
// 参数:
//   - content: 原始帖子/字幕文本
//   - config: 渲染配置，如为 nil 则使用默认配置
func Compose(content string, config *RenderConfig) ([]Segment, []Token) {
	if config == nil {
		config = DefaultConfig()
	}
	if content == "" {
		return nil, nil
	}

	// 预处理
	text := content
	if config.FlattenMarkdown {
		flattened := markdown.Flatten(text)
		if flattened == "" {
			// Pathological input; render the raw text rather than nothing
			Logger.Printf("markdown flatten produced empty output, using raw text")
		} else {
			text = flattened
		}
	}

	tokens := scanner.Scan(text)
	segments := builder.Build(text, tokens)
	return segments, tokens
}

// truncateForConfig applies the config's budget, policy and marker.
func truncateForConfig(segments []Segment, config *RenderConfig) ([]Segment, bool) {
	ellipsis := config.Ellipsis
	if ellipsis == "" {
		ellipsis = defaultEllipsis
	}
	return TruncateWithEllipsis(segments, config.MaxCharacters, config.Policy, ellipsis)
}
