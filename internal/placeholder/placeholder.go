// Package placeholder decides whether a parsed reference page carries a real
// layout or is a stand-in that should be overridden.
package placeholder

import (
	"strings"

	"github.com/matthewbaird/pagegen/internal/ir"
)

// genericFields are the only fields a stand-in "Details" section shows.
var genericFields = map[string]bool{
	"ID":     true,
	"Status": true,
	"Date":   true,
}

// IsPlaceholder reports whether page is a stand-in for pageID.
func IsPlaceholder(page *ir.Page, pageID string) bool {
	if page == nil {
		return false
	}
	if page.Title != nil {
		title := *page.Title
		if strings.HasPrefix(title, "DUMMY") || title == pageID {
			return true
		}
	}
	if len(page.Sections) != 1 {
		return false
	}
	sec := page.Sections[0]
	if sec.Title != "Details" || len(sec.Fields) > 3 {
		return false
	}
	for _, f := range sec.Fields {
		if !genericFields[f] {
			return false
		}
	}
	return true
}
