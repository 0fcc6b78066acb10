package markdown

import (
	"strings"
	"testing"
)

// TestFlatten_PlainText 测试纯文本原样通过
func TestFlatten_PlainText(t *testing.T) {
	if got := Flatten("just words #tag @user"); got != "just words #tag @user" {
		t.Errorf("Flatten() = %q, want unchanged", got)
	}
}

// TestFlatten_Emphasis 测试粗体/斜体只保留文字
func TestFlatten_Emphasis(t *testing.T) {
	if got := Flatten("**hot** #take"); got != "hot #take" {
		t.Errorf("Flatten() = %q, want %q", got, "hot #take")
	}
	if got := Flatten("*soft* launch"); got != "soft launch" {
		t.Errorf("Flatten() = %q, want %q", got, "soft launch")
	}
}

// TestFlatten_Heading 测试标题只保留文字，块间以换行分隔
func TestFlatten_Heading(t *testing.T) {
	got := Flatten("# Release notes\n\nshipping #golang today")
	want := "Release notes\nshipping #golang today"
	if got != want {
		t.Errorf("Flatten() = %q, want %q", got, want)
	}
}

// TestFlatten_Link 测试链接只保留标签文字
func TestFlatten_Link(t *testing.T) {
	got := Flatten("[the repo](https://example.com) by @maintainer")
	want := "the repo by @maintainer"
	if got != want {
		t.Errorf("Flatten() = %q, want %q", got, want)
	}
}

// TestFlatten_FencedCode 测试代码块内容原样保留
func TestFlatten_FencedCode(t *testing.T) {
	got := Flatten("```\nfmt.Println(\"hi\")\n```")
	want := "fmt.Println(\"hi\")"
	if got != want {
		t.Errorf("Flatten() = %q, want %q", got, want)
	}
}

// TestFlatten_List 测试列表项文字逐行保留
func TestFlatten_List(t *testing.T) {
	got := Flatten("- first #one\n- second @two")
	if !strings.Contains(got, "first #one") || !strings.Contains(got, "second @two") {
		t.Errorf("Flatten() = %q, want both item texts present", got)
	}
	if strings.Contains(got, "-") {
		t.Errorf("Flatten() = %q, should not contain list markers", got)
	}
}

// TestFlatten_Empty 测试空输入
func TestFlatten_Empty(t *testing.T) {
	if got := Flatten(""); got != "" {
		t.Errorf("Flatten(\"\") = %q, want empty", got)
	}
}

// TestFlatten_Strikethrough 测试 GFM 删除线
func TestFlatten_Strikethrough(t *testing.T) {
	if got := Flatten("~~old~~ new #plan"); got != "old new #plan" {
		t.Errorf("Flatten() = %q, want %q", got, "old new #plan")
	}
}
