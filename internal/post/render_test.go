package post

import (
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	tmpl := "<h1>{{title}}</h1><p>{{date}}</p>{{blog_content}}"

	got := Render(tmpl, DefaultTokens(), Values{
		Title:   "My First Post",
		Date:    "2024-01-15",
		Content: "Hello world.",
	})

	want := "<h1>My First Post</h1><p>2024-01-15</p>Hello world."
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRender_AllOccurrences(t *testing.T) {
	tmpl := "<title>{{title}}</title>\n<h1>{{title}}</h1>\n<time>{{date}}</time><time>{{date}}</time>\n{{blog_content}}{{blog_content}}"

	got := Render(tmpl, DefaultTokens(), Values{Title: "T", Date: "D", Content: "C"})

	want := "<title>T</title>\n<h1>T</h1>\n<time>D</time><time>D</time>\nCC"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
	for _, token := range []string{TitleToken, DateToken, ContentToken} {
		if strings.Contains(got, token) {
			t.Errorf("Render() left %s in output", token)
		}
	}
}

func TestRender_NoTokens(t *testing.T) {
	tmpl := "<html><body>static</body></html>"
	if got := Render(tmpl, DefaultTokens(), Values{Title: "x"}); got != tmpl {
		t.Errorf("Render() changed a template with no tokens: %q", got)
	}
}

func TestRender_LeavesOtherTextByteIdentical(t *testing.T) {
	tmpl := "{ {title} } {{Title}} {{title}\n\t{{date}} ünï"
	got := Render(tmpl, DefaultTokens(), Values{Title: "x", Date: "y", Content: "z"})
	want := "{ {title} } {{Title}} {{title}\n\ty ünï"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRender_ContentIsNotEscaped(t *testing.T) {
	got := Render("{{blog_content}}", DefaultTokens(), Values{Content: "<script>alert(1)</script> & more"})
	if got != "<script>alert(1)</script> & more" {
		t.Errorf("Render() = %q", got)
	}
}

func TestRender_SequentialResubstitution(t *testing.T) {
	// A title containing the content token is expanded again by the content step.
	got := Render("{{title}}|{{blog_content}}", DefaultTokens(), Values{
		Title:   "about {{blog_content}}",
		Content: "BODY",
	})
	if got != "about BODY|BODY" {
		t.Errorf("Render() = %q", got)
	}

	// Content is replaced last, so a title token inside content survives.
	got = Render("{{blog_content}}", DefaultTokens(), Values{Title: "T", Content: "see {{title}}"})
	if got != "see {{title}}" {
		t.Errorf("Render() = %q", got)
	}
}

func TestRender_CustomTokens(t *testing.T) {
	tokens := Tokens{Title: "%TITLE%", Date: "%DATE%", Content: "%BODY%"}
	got := Render("%TITLE% %DATE% %BODY% {{title}}", tokens, Values{Title: "a", Date: "b", Content: "c"})
	if got != "a b c {{title}}" {
		t.Errorf("Render() = %q", got)
	}
}

func TestTokens_WithDefaults(t *testing.T) {
	got := Tokens{Content: "%BODY%"}.WithDefaults()
	want := Tokens{Title: TitleToken, Date: DateToken, Content: "%BODY%"}
	if got != want {
		t.Errorf("WithDefaults() = %+v, want %+v", got, want)
	}
}

func TestResolveDate(t *testing.T) {
	if got := ResolveDate("", fixedNow); got != "2024-01-15" {
		t.Errorf("ResolveDate(\"\") = %q", got)
	}
	if got := ResolveDate("1999-12-31", fixedNow); got != "1999-12-31" {
		t.Errorf("ResolveDate(user) = %q", got)
	}
	if got := ResolveDate("last tuesday", fixedNow); got != "last tuesday" {
		t.Errorf("ResolveDate should not validate, got %q", got)
	}
}
