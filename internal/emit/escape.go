package emit

import (
	"strings"
	"unicode"
)

var jsEscaper = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
	"\n", `\n`,
	"\r", `\r`,
	"\u2028", `\u2028`,
	"\u2029", `\u2029`,
	"</", `<\/`,
)

// jsString renders s as a single-quoted JS string literal.
func jsString(s string) string {
	return "'" + jsEscaper.Replace(s) + "'"
}

// JSX attribute strings take no backslash escapes, so quotes and markup
// characters become entities and line breaks become spaces.
var jsxAttrEscaper = strings.NewReplacer(
	`&`, `&amp;`,
	`"`, `&quot;`,
	`<`, `&lt;`,
	`>`, `&gt;`,
	"\r\n", " ",
	"\n", " ",
	"\r", " ",
)

func jsxAttr(s string) string {
	return jsxAttrEscaper.Replace(s)
}

// JSX text additionally has to keep braces from opening an expression.
var jsxTextEscaper = strings.NewReplacer(
	`&`, `&amp;`,
	`<`, `&lt;`,
	`>`, `&gt;`,
	`{`, `&#123;`,
	`}`, `&#125;`,
	"\r\n", " ",
	"\n", " ",
	"\r", " ",
)

func jsxText(s string) string {
	return jsxTextEscaper.Replace(s)
}

// comment flattens s onto a single line comment.
func comment(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// identifier keeps the letters, digits and underscores of a component name.
func identifier(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r == '_' || r == '$' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	out := b.String()
	if out == "" {
		return "GeneratedPage"
	}
	if unicode.IsDigit([]rune(out)[0]) {
		out = "Page" + out
	}
	return out
}
