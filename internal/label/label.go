// Package label converts the raw labels found in page graphs and reference
// sources into display text, record keys and page classifications.
package label

import (
	"regexp"
	"strings"
	"unicode"
)

// PageType is the coarse page classification derived from a page id.
type PageType string

const (
	PageList    PageType = "list"
	PageSearch  PageType = "search"
	PageCreate  PageType = "create"
	PageModify  PageType = "modify"
	PageDetail  PageType = "detail"
	PageGeneric PageType = "generic"
)

var (
	camelBoundary = regexp.MustCompile(`([a-z0-9])([A-Z])`)
	currencyMarks = regexp.MustCompile(`[$€£¥]`)
	nonAlnum      = regexp.MustCompile(`[^A-Za-z0-9]+`)
)

// stripPrefix drops everything up to and including the last dot, so
// "Case.caseNumber" becomes "caseNumber".
func stripPrefix(s string) string {
	if i := strings.LastIndex(s, "."); i >= 0 {
		return s[i+1:]
	}
	return s
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// SanitizeLabel turns a metadata label into display text.
func SanitizeLabel(raw string) string {
	s := stripPrefix(raw)
	s = currencyMarks.ReplaceAllString(s, " ")
	s = camelBoundary.ReplaceAllString(s, "$1 $2")
	return collapse(s)
}

// LabelToDataKey derives the record property a labelled field reads from.
// "Case Number" and "case number" both map to "caseNumber".
func LabelToDataKey(label string) string {
	s := nonAlnum.ReplaceAllString(stripPrefix(label), " ")
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(strings.ToLower(words[0]))
	for _, w := range words[1:] {
		b.WriteString(upperFirst(w))
	}
	key := b.String()
	if unicode.IsDigit(rune(key[0])) {
		key = "field" + key
	}
	return key
}

// HumanizePageID renders a page id such as "Case_viewCaseNotes" as
// "View Case Notes".
func HumanizePageID(pageID string) string {
	s := pageID
	if i := strings.Index(s, "_"); i >= 0 {
		s = s[i+1:]
	}
	s = strings.ReplaceAll(s, "_", " ")
	s = camelBoundary.ReplaceAllString(s, "$1 $2")
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = upperFirst(w)
	}
	return strings.Join(words, " ")
}

// DetectPageType classifies a page id. Tokens are tested in priority order
// and the first hit wins, so "Case_searchCaseList" is a list page.
func DetectPageType(pageID string) PageType {
	id := strings.ToLower(pageID)
	switch {
	case strings.Contains(id, "list"):
		return PageList
	case strings.Contains(id, "search"):
		return PageSearch
	case strings.Contains(id, "create"):
		return PageCreate
	case strings.Contains(id, "modify"), strings.Contains(id, "edit"):
		return PageModify
	case strings.Contains(id, "view"), strings.Contains(id, "home"):
		return PageDetail
	default:
		return PageGeneric
	}
}

// Pascal upper-cases the first letter of a data key: "caseNumber" → "CaseNumber".
func Pascal(s string) string {
	return upperFirst(s)
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
