package types

// TokenKind 标识一段文本的类别
type TokenKind int

const (
	// KindPlain 普通文本
	KindPlain TokenKind = iota
	// KindHashtag #话题 token
	KindHashtag
	// KindMention @提及 token
	KindMention
)

// String returns the string representation of TokenKind.
func (k TokenKind) String() string {
	switch k {
	case KindPlain:
		return "plain"
	case KindHashtag:
		return "hashtag"
	case KindMention:
		return "mention"
	default:
		return "unknown"
	}
}

// Token 表示原文中一个 #话题 或 @提及 的匹配范围
//
// Start/End 是半开区间的字符（rune）偏移量；ByteStart/ByteEnd 是对应的
// 字节偏移量，用于直接切片原文而无需重新扫描。
type Token struct {
	Kind      TokenKind
	Start     int // char offset, inclusive
	End       int // char offset, exclusive
	ByteStart int
	ByteEnd   int
}

// CharLen 返回 token 覆盖的字符数
func (t Token) CharLen() int {
	return t.End - t.Start
}

// Segment 是渲染就绪的一段文本：Plain、Hashtag 或 Mention
//
// 一次构建产生的 segment 序列按顺序无缝覆盖整个原文；依次拼接所有
// segment 的 Text 恰好还原原文。
type Segment struct {
	Text        string
	Kind        TokenKind
	SourceStart int // char offset of this segment in the original text
	ByteStart   int
}

// Body returns the token text without its leading sigil.
//
// "#humans" -> "humans", "@reason" -> "reason". Plain segments are
// returned unchanged.
func (s Segment) Body() string {
	if s.Kind == KindHashtag || s.Kind == KindMention {
		for i := range s.Text {
			if i > 0 {
				return s.Text[i:]
			}
		}
		return ""
	}
	return s.Text
}

// ToDict 将 Segment 转换为 map
func (s Segment) ToDict() map[string]interface{} {
	return map[string]interface{}{
		"text":         s.Text,
		"kind":         s.Kind.String(),
		"source_start": s.SourceStart,
	}
}

// TruncatePolicy 控制跨越预算边界的 segment 的处理方式
type TruncatePolicy int

const (
	// PolicyEllipsis 对超出预算的 segment 就地截断并追加省略号
	// （无论 Plain 还是 token，与移动端原始行为一致）。
	PolicyEllipsis TruncatePolicy = iota
	// PolicyDropToken 从不拆分 Hashtag/Mention segment：放不下就整个
	// 丢弃；Plain segment 仍按省略号截断。
	PolicyDropToken
)

// RenderConfig 渲染配置
type RenderConfig struct {
	MaxCharacters   int
	MaxLines        int
	Policy          TruncatePolicy
	Ellipsis        string
	FlattenMarkdown bool
}

// DefaultRenderConfig 返回默认渲染配置
func DefaultRenderConfig() *RenderConfig {
	return &RenderConfig{
		MaxCharacters:   120,
		MaxLines:        3,
		Policy:          PolicyEllipsis,
		Ellipsis:        "...",
		FlattenMarkdown: false,
	}
}
