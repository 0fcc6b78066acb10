// Package builder assembles token spans and the text between them into an
// ordered, gap-free segment sequence.
package builder

import (
	"github.com/riverfjs/tagify-go/internal/types"
)

// Build 将 token 列表与周围的普通文本组装为有序 segment 序列
//
// 依次遍历 token：先为上一个 token 结束与当前 token 起始之间的非空
// 文本发出一个 Plain segment，再为 token 本身发出对应类别的 segment，
// 最后补上末尾剩余的 Plain 文本。没有任何 token 时，整个输入作为唯一
// 的 Plain segment 返回（空串也是）。
//
// 不变量：按顺序拼接所有 segment 的 Text 恰好还原 text。
func Build(text string, tokens []types.Token) []types.Segment {
	segments := make([]types.Segment, 0, len(tokens)*2+1)
	if len(tokens) == 0 {
		return append(segments, types.Segment{
			Text: text,
			Kind: types.KindPlain,
		})
	}

	cursorByte := 0
	cursorChar := 0
	for _, tok := range tokens {
		if tok.ByteStart > cursorByte {
			segments = append(segments, types.Segment{
				Text:        text[cursorByte:tok.ByteStart],
				Kind:        types.KindPlain,
				SourceStart: cursorChar,
				ByteStart:   cursorByte,
			})
		}
		segments = append(segments, types.Segment{
			Text:        text[tok.ByteStart:tok.ByteEnd],
			Kind:        tok.Kind,
			SourceStart: tok.Start,
			ByteStart:   tok.ByteStart,
		})
		cursorByte = tok.ByteEnd
		cursorChar = tok.End
	}

	// Trailing plain text after the last token
	if cursorByte < len(text) {
		segments = append(segments, types.Segment{
			Text:        text[cursorByte:],
			Kind:        types.KindPlain,
			SourceStart: cursorChar,
			ByteStart:   cursorByte,
		})
	}

	return segments
}
