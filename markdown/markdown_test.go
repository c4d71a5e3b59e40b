package markdown

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func render(t *testing.T, md string) string {
	t.Helper()
	out, err := HTML(md)
	if err != nil {
		t.Fatalf("HTML(%q) failed: %v", md, err)
	}
	return out
}

func TestHeadingsAreStyled(t *testing.T) {
	tests := []struct {
		input string
		class string
		close string
	}{
		{"# Title", headingClasses[1], "Title</h1>"},
		{"## Section", headingClasses[2], "Section</h2>"},
		{"### Sub", headingClasses[3], "Sub</h3>"},
	}
	for _, tt := range tests {
		got := render(t, tt.input)
		if !strings.Contains(got, `class="`+tt.class+`"`) {
			t.Errorf("render(%q) = %q, missing class %q", tt.input, got, tt.class)
		}
		if !strings.Contains(got, tt.close) {
			t.Errorf("render(%q) = %q, want %q", tt.input, got, tt.close)
		}
	}
}

func TestHeadingsGetIDs(t *testing.T) {
	got := render(t, "## Server components")
	if !strings.Contains(got, `id="server-components"`) {
		t.Errorf("expected auto heading id, got %q", got)
	}
}

func TestParagraphAndInline(t *testing.T) {
	got := render(t, "Hello **world** and `code`.")
	if !strings.Contains(got, `<p class="`+paragraphClass+`">`) {
		t.Errorf("paragraph not styled: %q", got)
	}
	if !strings.Contains(got, "<strong>world</strong>") {
		t.Errorf("bold not rendered: %q", got)
	}
	if !strings.Contains(got, ">code</code>") {
		t.Errorf("code span not rendered: %q", got)
	}
}

func TestLists(t *testing.T) {
	got := render(t, "- one\n- two\n\n1. first\n2. second\n")
	if !strings.Contains(got, `<ul class="`+unorderedListClass+`">`) {
		t.Errorf("unordered list not styled: %q", got)
	}
	if !strings.Contains(got, `<ol class="`+orderedListClass+`">`) {
		t.Errorf("ordered list not styled: %q", got)
	}
	if strings.Count(got, `<li class="`+listItemClass+`">`) != 4 {
		t.Errorf("expected 4 styled list items: %q", got)
	}
}

func TestExternalLinksOpenInNewTab(t *testing.T) {
	got := render(t, "[site](https://example.com)")
	if !strings.Contains(got, `href="https://example.com"`) {
		t.Errorf("href missing: %q", got)
	}
	if !strings.Contains(got, `target="_blank"`) || !strings.Contains(got, `rel="noopener noreferrer"`) {
		t.Errorf("external link should open in a new tab: %q", got)
	}
}

func TestInternalLinksStayInTab(t *testing.T) {
	got := render(t, "[home](/blog/)")
	if strings.Contains(got, "target=") {
		t.Errorf("internal link should not set target: %q", got)
	}
	if !strings.Contains(got, `class="`+linkClass+`"`) {
		t.Errorf("internal link not styled: %q", got)
	}
}

func TestUnsafeContentIsDropped(t *testing.T) {
	got := render(t, "<script>alert(1)</script>\n\n[x](javascript:alert(1))")
	if strings.Contains(got, "<script>") {
		t.Errorf("raw HTML passed through: %q", got)
	}
	if strings.Contains(got, "javascript:") {
		t.Errorf("dangerous URL passed through: %q", got)
	}
}

func TestTablesViaGFM(t *testing.T) {
	got := render(t, "| a | b |\n|---|---|\n| 1 | 2 |\n")
	if !strings.Contains(got, "<table>") || !strings.Contains(got, "<td>1</td>") {
		t.Errorf("table not rendered: %q", got)
	}
}

func TestWithoutStyles(t *testing.T) {
	out, err := New(WithoutStyles()).HTML("# Plain\n\ntext")
	if err != nil {
		t.Fatalf("HTML failed: %v", err)
	}
	if strings.Contains(out, "class=") {
		t.Errorf("unstyled renderer added classes: %q", out)
	}
}

func TestWithHardWraps(t *testing.T) {
	out, err := New(WithHardWraps()).HTML("line one\nline two")
	if err != nil {
		t.Fatalf("HTML failed: %v", err)
	}
	if !strings.Contains(out, "<br>") {
		t.Errorf("expected hard wrap, got %q", out)
	}
}

func TestMarkdownComponent(t *testing.T) {
	var buf bytes.Buffer
	if err := Markdown("# Hi").Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Hi</h1>") {
		t.Errorf("component output = %q", buf.String())
	}
}

func TestCollectExtensions(t *testing.T) {
	if got := len(collectExtensions(nil)); got != 1 {
		t.Errorf("default extensions = %d, want 1", got)
	}
	if got := len(collectExtensions([]string{"Table", "table", "nope", " footnote "})); got != 2 {
		t.Errorf("collected extensions = %d, want 2", got)
	}
}

func TestIsExternal(t *testing.T) {
	tests := map[string]bool{
		"https://example.com": true,
		"HTTP://example.com":  true,
		"/blog/post/":         false,
		"#section":            false,
		"mailto:a@b.c":        false,
	}
	for in, want := range tests {
		if got := IsExternal(in); got != want {
			t.Errorf("IsExternal(%q) = %v, want %v", in, got, want)
		}
	}
}
