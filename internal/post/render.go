package post

import "strings"

// Default placeholder tokens.
const (
	TitleToken   = "{{title}}"
	DateToken    = "{{date}}"
	ContentToken = "{{blog_content}}"
)

// Tokens are the placeholder strings recognized in a template.
type Tokens struct {
	Title   string `yaml:"title"   json:"title"`
	Date    string `yaml:"date"    json:"date"`
	Content string `yaml:"content" json:"content"`
}

// DefaultTokens returns {{title}}, {{date}} and {{blog_content}}.
func DefaultTokens() Tokens {
	return Tokens{Title: TitleToken, Date: DateToken, Content: ContentToken}
}

// WithDefaults fills any empty token with its default.
func (t Tokens) WithDefaults() Tokens {
	def := DefaultTokens()
	if t.Title == "" {
		t.Title = def.Title
	}
	if t.Date == "" {
		t.Date = def.Date
	}
	if t.Content == "" {
		t.Content = def.Content
	}
	return t
}

// Values are the replacements for each token.
type Values struct {
	Title   string
	Date    string
	Content string
}

// Render replaces every occurrence of each token in template, in order
// title, date, content. Replacement is literal. A value that itself contains
// a later token is substituted again by that later step.
func Render(template string, tokens Tokens, values Values) string {
	tokens = tokens.WithDefaults()

	html := strings.ReplaceAll(template, tokens.Title, values.Title)
	html = strings.ReplaceAll(html, tokens.Date, values.Date)
	return strings.ReplaceAll(html, tokens.Content, values.Content)
}
