// Package markdown flattens markdown-flavored captions to plain text.
//
// Backend content frequently arrives with markdown artifacts (LLM output,
// pasted README text). Flattening strips the syntax so the tag scanner
// sees the words a reader sees.
package markdown

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/riverfjs/tagify-go/internal/buffer"
)

// standardOptions goldmark 扩展配置
var standardOptions = []goldmark.Option{
	goldmark.WithExtensions(
		extension.GFM, // GitHub Flavored Markdown (tables, strikethrough, tasklists)
	),
}

// Flatten 解析 markdown 并遍历 AST，仅收集纯文本内容
//
// 块级元素之间以换行分隔，行内格式（粗体、斜体、链接等）只保留文字。
// 代码块内容原样保留。
func Flatten(source string) string {
	md := goldmark.New(standardOptions...)

	src := []byte(source)
	reader := text.NewReader(src)
	node := md.Parser().Parse(reader)

	w := newFlattenWalker(src)
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		return w.walk(n, entering)
	})

	return strings.TrimRight(w.buf.String(), "\n")
}

// flattenWalker 遍历 goldmark AST 并收集纯文本
type flattenWalker struct {
	buf    *buffer.TextBuffer
	source []byte
}

func newFlattenWalker(source []byte) *flattenWalker {
	return &flattenWalker{
		buf:    buffer.New(),
		source: source,
	}
}

func (w *flattenWalker) walk(node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		// Separate blocks with a single newline
		if node.Type() == ast.TypeBlock && node.Kind() != ast.KindDocument &&
			w.buf.ByteOffset() > 0 && w.buf.TrailingNewlineCount() == 0 {
			w.buf.Write("\n")
		}
		return ast.WalkContinue, nil
	}

	switch n := node.(type) {
	case *ast.Text:
		w.buf.Write(string(n.Segment.Value(w.source)))
		if n.SoftLineBreak() || n.HardLineBreak() {
			w.buf.Write("\n")
		}

	case *ast.String:
		w.buf.Write(string(n.Value))

	case *ast.AutoLink:
		w.buf.Write(string(n.URL(w.source)))
		return ast.WalkSkipChildren, nil

	case *ast.CodeBlock:
		w.writeLines(n)
		return ast.WalkSkipChildren, nil

	case *ast.FencedCodeBlock:
		w.writeLines(n)
		return ast.WalkSkipChildren, nil
	}

	return ast.WalkContinue, nil
}

// writeLines writes a block node's raw source lines.
func (w *flattenWalker) writeLines(n ast.Node) {
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		w.buf.Write(string(line.Value(w.source)))
	}
}
