package tagify

// Option is a function that configures a RenderConfig.
type Option func(*RenderConfig)

// WithMaxCharacters sets the truncation budget in Unicode code points.
// Negative values are treated as zero.
func WithMaxCharacters(n int) Option {
	return func(config *RenderConfig) {
		config.MaxCharacters = n
	}
}

// WithMaxLines sets the display line-clamp hint.
//
// The engine never evaluates it; it is carried through to the result for
// the presentation layer.
func WithMaxLines(n int) Option {
	return func(config *RenderConfig) {
		config.MaxLines = n
	}
}

// WithTruncatePolicy selects how a segment straddling the budget boundary
// is handled.
func WithTruncatePolicy(policy TruncatePolicy) Option {
	return func(config *RenderConfig) {
		config.Policy = policy
	}
}

// WithEllipsis sets a custom truncation marker (default "...").
func WithEllipsis(ellipsis string) Option {
	return func(config *RenderConfig) {
		config.Ellipsis = ellipsis
	}
}

// WithMarkdownFlatten enables flattening markdown syntax to plain text
// before scanning.
func WithMarkdownFlatten(enable bool) Option {
	return func(config *RenderConfig) {
		config.FlattenMarkdown = enable
	}
}

// applyOptions applies the given options to a copy of the default config.
func applyOptions(opts ...Option) *RenderConfig {
	config := *DefaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return &config
}
