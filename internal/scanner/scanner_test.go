package scanner

import (
	"strings"
	"testing"

	"github.com/riverfjs/tagify-go/internal/types"
)

// tokenText 从原文中提取 token 覆盖的子串
func tokenText(text string, tok types.Token) string {
	return text[tok.ByteStart:tok.ByteEnd]
}

// TestScan_Empty 测试空输入
func TestScan_Empty(t *testing.T) {
	if got := Scan(""); len(got) != 0 {
		t.Errorf("Scan(\"\") = %v, want empty", got)
	}
}

// TestScan_PlainText 测试无 token 的普通文本
func TestScan_PlainText(t *testing.T) {
	if got := Scan("plain text"); len(got) != 0 {
		t.Errorf("Scan(\"plain text\") = %v, want empty", got)
	}
}

// TestScan_MentionAndHashtag 测试提及和话题的提取与偏移
func TestScan_MentionAndHashtag(t *testing.T) {
	text := "Hey @bob check #cool"
	tokens := Scan(text)
	if len(tokens) != 2 {
		t.Fatalf("Scan() returned %d tokens, want 2", len(tokens))
	}
	if tokens[0].Kind != types.KindMention || tokenText(text, tokens[0]) != "@bob" {
		t.Errorf("tokens[0] = %v (%q), want Mention @bob", tokens[0], tokenText(text, tokens[0]))
	}
	if tokens[0].Start != 4 || tokens[0].End != 8 {
		t.Errorf("tokens[0] span = [%d,%d), want [4,8)", tokens[0].Start, tokens[0].End)
	}
	if tokens[1].Kind != types.KindHashtag || tokenText(text, tokens[1]) != "#cool" {
		t.Errorf("tokens[1] = %v (%q), want Hashtag #cool", tokens[1], tokenText(text, tokens[1]))
	}
	if tokens[1].Start != 15 || tokens[1].End != 20 {
		t.Errorf("tokens[1] span = [%d,%d), want [15,20)", tokens[1].Start, tokens[1].End)
	}
}

// TestScan_AdjacentTokens 测试相邻 token 无缝无重叠
func TestScan_AdjacentTokens(t *testing.T) {
	text := "#a@b"
	tokens := Scan(text)
	if len(tokens) != 2 {
		t.Fatalf("Scan(%q) returned %d tokens, want 2", text, len(tokens))
	}
	if tokenText(text, tokens[0]) != "#a" || tokens[0].Kind != types.KindHashtag {
		t.Errorf("tokens[0] = %q, want #a", tokenText(text, tokens[0]))
	}
	if tokenText(text, tokens[1]) != "@b" || tokens[1].Kind != types.KindMention {
		t.Errorf("tokens[1] = %q, want @b", tokenText(text, tokens[1]))
	}
	if tokens[0].End != tokens[1].Start {
		t.Errorf("tokens should be adjacent: end=%d start=%d", tokens[0].End, tokens[1].Start)
	}
}

// TestScan_AdjacentHashtags 测试 #mixed#content 产生两个话题
func TestScan_AdjacentHashtags(t *testing.T) {
	text := "#mixed#content"
	tokens := Scan(text)
	if len(tokens) != 2 {
		t.Fatalf("Scan(%q) returned %d tokens, want 2", text, len(tokens))
	}
	if tokenText(text, tokens[0]) != "#mixed" || tokenText(text, tokens[1]) != "#content" {
		t.Errorf("tokens = [%q, %q], want [#mixed, #content]",
			tokenText(text, tokens[0]), tokenText(text, tokens[1]))
	}
}

// TestScan_BareSigils 测试孤立的 sigil 不产生 token
func TestScan_BareSigils(t *testing.T) {
	for _, text := range []string{"#", "@", "# ", "@ tail", "## @@", "a # b @ c", "#🔥"} {
		if got := Scan(text); len(got) != 0 {
			t.Errorf("Scan(%q) = %v, want empty", text, got)
		}
	}
}

// TestScan_NoPrecedingBoundaryRequired 测试 token 前不要求空白边界
func TestScan_NoPrecedingBoundaryRequired(t *testing.T) {
	text := "word#tag"
	tokens := Scan(text)
	if len(tokens) != 1 || tokenText(text, tokens[0]) != "#tag" {
		t.Fatalf("Scan(%q) = %v, want one #tag token", text, tokens)
	}
}

// TestScan_Underscore 测试下划线属于 word 字符
func TestScan_Underscore(t *testing.T) {
	text := "@user_name done"
	tokens := Scan(text)
	if len(tokens) != 1 || tokenText(text, tokens[0]) != "@user_name" {
		t.Fatalf("Scan(%q) = %v, want @user_name", text, tokens)
	}
}

// TestScan_UnicodeWordRunes 测试扩展字母范围（中文、假名、谚文、扩展拉丁）
func TestScan_UnicodeWordRunes(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"check #你好 out", "#你好"},
		{"new #ハッシュタグ drop", "#ハッシュタグ"},
		{"hi @한국어 friend", "@한국어"},
		{"cc @müller today", "@müller"},
	}
	for _, tc := range cases {
		tokens := Scan(tc.text)
		if len(tokens) != 1 {
			t.Errorf("Scan(%q) returned %d tokens, want 1", tc.text, len(tokens))
			continue
		}
		if got := tokenText(tc.text, tokens[0]); got != tc.want {
			t.Errorf("Scan(%q) token = %q, want %q", tc.text, got, tc.want)
		}
	}
}

// TestScan_CharAndByteOffsets 测试多字节前缀下字符与字节偏移分别正确
func TestScan_CharAndByteOffsets(t *testing.T) {
	text := "héllo @bob"
	tokens := Scan(text)
	if len(tokens) != 1 {
		t.Fatalf("Scan(%q) returned %d tokens, want 1", text, len(tokens))
	}
	tok := tokens[0]
	if tok.Start != 6 || tok.End != 10 {
		t.Errorf("char span = [%d,%d), want [6,10)", tok.Start, tok.End)
	}
	if tok.ByteStart != 7 || tok.ByteEnd != 11 {
		t.Errorf("byte span = [%d,%d), want [7,11)", tok.ByteStart, tok.ByteEnd)
	}
	if tokenText(text, tok) != "@bob" {
		t.Errorf("token text = %q, want @bob", tokenText(text, tok))
	}
}

// TestScan_Ordering 测试输出按起始偏移升序
func TestScan_Ordering(t *testing.T) {
	text := "@z first then #a then @m and #b"
	tokens := Scan(text)
	if len(tokens) != 4 {
		t.Fatalf("Scan() returned %d tokens, want 4", len(tokens))
	}
	for i := 1; i < len(tokens); i++ {
		if tokens[i].Start < tokens[i-1].End {
			t.Errorf("tokens out of order or overlapping at %d: %v", i, tokens)
		}
	}
}

// TestScan_LongWordRun 测试超长 word 串仍为线性扫描且匹配完整
func TestScan_LongWordRun(t *testing.T) {
	run := strings.Repeat("a", 100000)
	text := "#" + run
	tokens := Scan(text)
	if len(tokens) != 1 {
		t.Fatalf("Scan() returned %d tokens, want 1", len(tokens))
	}
	if tokens[0].End != len(run)+1 {
		t.Errorf("token end = %d, want %d", tokens[0].End, len(run)+1)
	}
}

// TestIsWordRune 测试 word 字符判定
func TestIsWordRune(t *testing.T) {
	for _, r := range "azAZ09_你ハ한é" {
		if !IsWordRune(r) {
			t.Errorf("IsWordRune(%q) = false, want true", r)
		}
	}
	for _, r := range " \n.#@!-🔥" {
		if IsWordRune(r) {
			t.Errorf("IsWordRune(%q) = true, want false", r)
		}
	}
}
