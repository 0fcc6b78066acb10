// Package tagify 将自由格式的社交文本解析为带类型的 segment 流
//
// 这个包为帖子正文和视频字幕的富文本渲染提供核心算法：扫描 #话题 和
// @提及、生成覆盖全文的 segment 序列，并按字符预算截断以支持
// "展开/收起" 交互。
//
// 核心功能：
//   - 扫描 #hashtag / @mention token（手写单遍扫描，线性时间）
//   - 生成无损覆盖原文的 Plain/Hashtag/Mention segment 序列
//   - 按字符预算截断，从不切断字素簇
//   - Collapsed/Expanded 两态视图状态
//
// 主要 API：
//   - Tagify(): 一步到位，返回截断流、完整流与 token 列表
//   - Render(): 低层转换，返回 (segments, wasTruncated)
//   - Compose(): 仅 tokenize + 组装，不截断
//
// 示例：
//
//	// 简单渲染
//	segments, truncated := tagify.Render(post.Content, nil)
//
//	// 完整处理（含视图状态）
//	view := tagify.NewViewState(post.Content, nil)
//	for _, seg := range view.Visible() {
//	    switch seg.Kind {
//	    case tagify.KindHashtag:
//	        // 高亮话题
//	    case tagify.KindMention:
//	        // 高亮提及
//	    default:
//	        // 普通文本
//	    }
//	}
//	if view.ShowMore() {
//	    // 显示 "展开" 按钮
//	}
package tagify

// Result 一次完整渲染的输出
//
// Segments 是按预算截断后的显示流；Full 是未截断的完整流，供展开态
// 使用。MaxLines 原样透传，仅作为展示层的行数提示，引擎不解释它。
type Result struct {
	Segments     []Segment
	Full         []Segment
	Tokens       []Token
	WasTruncated bool
	MaxLines     int
}

// Tagify 将社交文本转换为渲染就绪的结果
//
// 这是主要的一站式 API。对于较低级别的转换，使用 Render() 或
// Compose()。
//
// 参数：
//   - content: 原始帖子/字幕文本
//   - opts: 功能选项，覆盖默认配置（120 字符、3 行、省略号截断）
func Tagify(content string, opts ...Option) *Result {
	config := applyOptions(opts...)

	full, tokens := Compose(content, config)
	segments, wasTruncated := truncateForConfig(full, config)

	return &Result{
		Segments:     segments,
		Full:         full,
		Tokens:       tokens,
		WasTruncated: wasTruncated,
		MaxLines:     config.MaxLines,
	}
}
