package tagify

// ViewState 持有一条屏上内容的 "展开/收起" 状态
//
// 引擎本身是无状态的纯函数；唯一可变的实体是这里的 expanded 标志，
// 归展示层所有，只在 UI 的单一逻辑线程上读写，因此不加锁。初始状态
// 总是收起；切换只由显式的用户操作触发，内容身份变化时重置。
type ViewState struct {
	content      string
	config       *RenderConfig
	full         []Segment
	collapsed    []Segment
	wasTruncated bool
	expanded     bool

	// OnHashtag is invoked by Activate with the full token text
	// including its '#' sigil.
	OnHashtag func(tag string)
	// OnMention is invoked by Activate with the full token text
	// including its '@' sigil.
	OnMention func(handle string)
}

// NewViewState 为一条内容创建视图状态，初始为收起态
//
// config 为 nil 时使用默认配置。
func NewViewState(content string, config *RenderConfig) *ViewState {
	if config == nil {
		config = DefaultConfig()
	}
	v := &ViewState{config: config}
	v.recompute(content)
	return v
}

// SetContent 替换显示的内容
//
// 内容身份变化时重新计算 segment 流并重置为收起态；内容相同则不做
// 任何事（展开状态保留）。
func (v *ViewState) SetContent(content string) {
	if content == v.content {
		return
	}
	v.recompute(content)
	v.expanded = false
}

func (v *ViewState) recompute(content string) {
	v.content = content
	v.full, _ = Compose(content, v.config)
	v.collapsed, v.wasTruncated = truncateForConfig(v.full, v.config)
}

// Content returns the content this state is bound to.
func (v *ViewState) Content() string {
	return v.content
}

// Toggle flips between Collapsed and Expanded.
func (v *ViewState) Toggle() {
	v.expanded = !v.expanded
}

// Expanded reports whether the view is in the expanded state.
func (v *ViewState) Expanded() bool {
	return v.expanded
}

// WasTruncated reports whether the collapsed stream was truncated.
func (v *ViewState) WasTruncated() bool {
	return v.wasTruncated
}

// Visible 返回当前状态下应当渲染的 segment 流
//
// 收起态返回截断流，展开态返回完整流。两个流在构建时都已算好，
// 切换状态只是选择其一。
func (v *ViewState) Visible() []Segment {
	if v.expanded {
		return v.full
	}
	return v.collapsed
}

// ShowMore reports whether the "show more" affordance should be visible.
func (v *ViewState) ShowMore() bool {
	return v.wasTruncated && !v.expanded
}

// ShowLess reports whether the "show less" affordance should be visible.
func (v *ViewState) ShowLess() bool {
	return v.wasTruncated && v.expanded
}

// MaxLines returns the line-clamp hint, passed through unmodified.
func (v *ViewState) MaxLines() int {
	return v.config.MaxLines
}

// Activate dispatches a user selection of seg to the matching hook.
//
// Plain segments and unset hooks are ignored. The hook receives the
// token text with its sigil; use seg.Body() for the bare tag/handle.
func (v *ViewState) Activate(seg Segment) {
	switch seg.Kind {
	case KindHashtag:
		if v.OnHashtag != nil {
			v.OnHashtag(seg.Text)
		}
	case KindMention:
		if v.OnMention != nil {
			v.OnMention(seg.Text)
		}
	}
}
