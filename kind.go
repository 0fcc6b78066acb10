package tagify

import "github.com/riverfjs/tagify-go/internal/types"

// 导出类型别名
type (
	SegmentKind    = types.TokenKind
	Token          = types.Token
	Segment        = types.Segment
	TruncatePolicy = types.TruncatePolicy
)

const (
	// KindPlain represents ordinary text between tokens.
	KindPlain = types.KindPlain
	// KindHashtag represents a #hashtag token.
	KindHashtag = types.KindHashtag
	// KindMention represents an @mention token.
	KindMention = types.KindMention
)

const (
	// PolicyEllipsis truncates the segment straddling the budget boundary
	// in place, whatever its kind.
	PolicyEllipsis = types.PolicyEllipsis
	// PolicyDropToken never splits a Hashtag/Mention segment.
	PolicyDropToken = types.PolicyDropToken
)
