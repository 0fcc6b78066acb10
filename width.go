package tagify

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// CountText 计算文本的有效长度（Unicode code points）
//
// 截断预算使用同一单位，因此 CountText(content) <= maxCharacters 时
// 渲染一定不发生截断。
func CountText(text string) int {
	return CharLen(text)
}

// CountGraphemes returns the number of user-perceived characters
// (grapheme clusters) in text.
func CountGraphemes(text string) int {
	return uniseg.GraphemeClusterCount(text)
}

// DisplayWidth returns the monospace cell width of text.
//
// The engine never evaluates MaxLines; presentation callers that clamp
// line counts themselves can use this to estimate how many lines the
// segment stream occupies.
func DisplayWidth(text string) int {
	return runewidth.StringWidth(text)
}
