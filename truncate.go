package tagify

import (
	"github.com/rivo/uniseg"
)

// defaultEllipsis 默认截断标记
const defaultEllipsis = "..."

// Truncate 将 segment 流截断到 maxCharacters 字符预算之内
//
// 预算按纯文本字符数（Unicode code points）计算，与渲染宽度无关。
// 总长不超过预算时原样返回且 wasTruncated 为 false；否则按顺序累加：
//   - 完整放得下的 segment 原样纳入；
//   - 第一个放不下的 segment：剩余预算大于省略号长度时，就地截断并
//     追加省略号（PolicyEllipsis），或当它是 token 且策略为
//     PolicyDropToken 时整个丢弃；
//   - 此后立即停止，不再追加任何 segment。
//
// maxCharacters < 0 按 0 处理。预算为 0 且输入非空时返回空序列和
// wasTruncated = true。
func Truncate(segments []Segment, maxCharacters int, policy TruncatePolicy) ([]Segment, bool) {
	return TruncateWithEllipsis(segments, maxCharacters, policy, defaultEllipsis)
}

// TruncateWithEllipsis 同 Truncate，但使用自定义截断标记
func TruncateWithEllipsis(segments []Segment, maxCharacters int, policy TruncatePolicy, ellipsis string) ([]Segment, bool) {
	if maxCharacters < 0 {
		maxCharacters = 0
	}
	if TotalCharLen(segments) <= maxCharacters {
		return segments, false
	}

	marker := CharLen(ellipsis)
	result := make([]Segment, 0, len(segments))
	count := 0

	for _, seg := range segments {
		segLen := CharLen(seg.Text)
		if count+segLen <= maxCharacters {
			result = append(result, seg)
			count += segLen
			continue
		}

		// First segment over budget. Partial inclusion only when the
		// remaining budget leaves room for the ellipsis marker, and only
		// when the policy allows splitting this kind.
		remaining := maxCharacters - count
		if remaining > marker && (policy != PolicyDropToken || seg.Kind == KindPlain) {
			prefix := cutGraphemes(seg.Text, remaining-marker)
			if prefix != "" {
				cut := seg
				cut.Text = prefix + ellipsis
				result = append(result, cut)
			}
		}
		break
	}

	return result, true
}

// cutGraphemes returns the longest prefix of text whose char length does
// not exceed maxChars, never ending inside a grapheme cluster.
//
// A ZWJ emoji sequence or combining mark run counts several code points;
// cutting through one would render as garbage, so the cut backs off to
// the previous cluster boundary instead.
func cutGraphemes(text string, maxChars int) string {
	if maxChars <= 0 {
		return ""
	}

	gr := uniseg.NewGraphemes(text)
	end := 0
	chars := 0
	for gr.Next() {
		runes := gr.Runes()
		if chars+len(runes) > maxChars {
			break
		}
		chars += len(runes)
		_, to := gr.Positions()
		end = to
	}
	return text[:end]
}
