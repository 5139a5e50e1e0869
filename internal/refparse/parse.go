// Package refparse recovers the structural layout of a hand-built reference
// page from its source text.
//
// The scanner does not parse the page language. It looks for a fixed set of
// markers, in the shapes below, and anything written differently is treated
// as absent:
//
//	<PageLayout ... title="Case Overview"        page title (first one wins)
//	{ label: 'Notes', route: '/case/notes' }      navigation link
//	<Section ... title="Details"                  section start
//	<Field ... label="Case Number"                field inside the current section
//	<DataTable                                    the current section holds a list
//	columns={['ID', 'Name']}                      list columns of the current section
//	<Button ...>Save</Button>                     action
//	<Tabs                                         the page has tabs
//	<Tab ... label="Summary"                      tab label
//
// Attribute values may use either quote style. A section's body runs from its
// marker to the next section marker or the end of the text.
package refparse

import (
	"html"
	"regexp"
	"strconv"
	"strings"

	"github.com/matthewbaird/pagegen/internal/ir"
)

const (
	// attrs skips JSX attributes, including values in braces nested two deep.
	attrs = `(?:[^>{}]|\{(?:[^{}]|\{[^{}]*\})*\})*?`
	// jsxValue captures a JSX attribute literal in group 1 or 2.
	jsxValue = `(?:"([^"]*)"|'([^']*)')`
	// jsValue captures a JS string literal, escapes included, in group 1 or 2.
	jsValue = `(?:"((?:[^"\\]|\\.)*)"|'((?:[^'\\]|\\.)*)')`
)

var (
	titleRe   = regexp.MustCompile(`<PageLayout\b` + attrs + `\stitle\s*=\s*` + jsxValue)
	navLinkRe = regexp.MustCompile(`\{\s*label\s*:\s*` + jsValue + `\s*,\s*route\s*:\s*` + jsValue + `\s*,?\s*\}`)
	sectionRe = regexp.MustCompile(`<Section\b` + attrs + `\stitle\s*=\s*` + jsxValue)
	fieldRe   = regexp.MustCompile(`<Field\b` + attrs + `\slabel\s*=\s*` + jsxValue)
	listRe    = regexp.MustCompile(`<DataTable\b`)
	columnsRe = regexp.MustCompile(`columns\s*=\s*\{\s*\[([^\]]*)\]\s*\}`)
	stringRe  = regexp.MustCompile(jsValue)
	buttonRe  = regexp.MustCompile(`<Button\b` + attrs + `>([^<]*)</Button>`)
	tabsRe    = regexp.MustCompile(`<Tabs\b`)
	tabRe     = regexp.MustCompile(`<Tab\b` + attrs + `\slabel\s*=\s*` + jsxValue)
)

// Parse scans src for the structural markers. It never fails: a missing
// marker leaves the matching part of the page empty.
func Parse(src string) *ir.Page {
	page := &ir.Page{}

	if m := titleRe.FindStringSubmatch(src); m != nil {
		page.SetTitle(jsxText(m[1], m[2]))
	}

	for _, m := range navLinkRe.FindAllStringSubmatch(src, -1) {
		page.NavLinks = append(page.NavLinks, ir.NavLink{
			Label: jsText(m[1], m[2]),
			Route: jsText(m[3], m[4]),
		})
	}

	page.Sections = parseSections(src)

	for _, m := range buttonRe.FindAllStringSubmatch(src, -1) {
		if text := strings.TrimSpace(html.UnescapeString(m[1])); text != "" {
			page.Actions = append(page.Actions, text)
		}
	}

	if tabsRe.MatchString(src) {
		page.HasTabs = true
		for _, m := range tabRe.FindAllStringSubmatch(src, -1) {
			page.TabLabels = append(page.TabLabels, jsxText(m[1], m[2]))
		}
	}

	return page
}

func parseSections(src string) []ir.Section {
	locs := sectionRe.FindAllStringSubmatchIndex(src, -1)
	sections := make([]ir.Section, 0, len(locs))
	for i, loc := range locs {
		end := len(src)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		body := src[loc[0]:end]

		sec := ir.Section{Title: jsxText(group(src, loc, 1), group(src, loc, 2))}
		for _, m := range fieldRe.FindAllStringSubmatch(body, -1) {
			sec.Fields = append(sec.Fields, jsxText(m[1], m[2]))
		}
		if listRe.MatchString(body) {
			sec.HasList = true
			if m := columnsRe.FindStringSubmatch(body); m != nil {
				for _, c := range stringRe.FindAllStringSubmatch(m[1], -1) {
					sec.ListColumns = append(sec.ListColumns, jsText(c[1], c[2]))
				}
			} else {
				sec.ListColumns = append([]string(nil), ir.DefaultListColumns...)
			}
		}
		sections = append(sections, sec)
	}
	return sections
}

// group returns submatch n from an index slice, or "" when it did not take part.
func group(src string, loc []int, n int) string {
	if loc[2*n] < 0 {
		return ""
	}
	return src[loc[2*n]:loc[2*n+1]]
}

func jsxText(a, b string) string {
	return html.UnescapeString(a + b)
}

func jsText(a, b string) string {
	return unescapeJS(a + b)
}

// unescapeJS reverses the backslash escapes the emitter writes into JS
// string literals.
func unescapeJS(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 == len(s) {
			b.WriteByte(c)
			continue
		}
		i++
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'u':
			if i+4 < len(s) {
				if r, err := strconv.ParseUint(s[i+1:i+5], 16, 32); err == nil {
					b.WriteRune(rune(r))
					i += 4
					continue
				}
			}
			b.WriteByte('u')
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
