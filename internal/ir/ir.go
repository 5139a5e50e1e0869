// Package ir defines the structural intermediate representation shared by the
// reference parser, the fallback builder and the page emitter.
package ir

// DefaultListColumns are used for a list section whose source names no columns.
var DefaultListColumns = []string{"ID", "Name", "Status", "Date"}

// NavLink is a labelled route shown in the page's navigation bar.
type NavLink struct {
	Label string `json:"label"`
	Route string `json:"route"`
}

// Section is one titled block of the page. Field order is screen order.
type Section struct {
	Title       string   `json:"title"`
	Fields      []string `json:"fields"`
	HasList     bool     `json:"has_list"`
	ListColumns []string `json:"list_columns,omitempty"`
}

// Page is the structural layout of a single page.
type Page struct {
	Title     *string   `json:"title"`
	NavLinks  []NavLink `json:"nav_links"`
	Sections  []Section `json:"sections"`
	Actions   []string  `json:"actions"`
	HasTabs   bool      `json:"has_tabs"`
	TabLabels []string  `json:"tab_labels"`
}

// TitleText returns the title or "" when none was recovered.
func (p *Page) TitleText() string {
	if p == nil || p.Title == nil {
		return ""
	}
	return *p.Title
}

// SetTitle replaces the title.
func (p *Page) SetTitle(t string) {
	p.Title = &t
}

// IsEmpty reports whether nothing structural was recovered.
func (p *Page) IsEmpty() bool {
	if p == nil {
		return true
	}
	return p.Title == nil &&
		len(p.NavLinks) == 0 &&
		len(p.Sections) == 0 &&
		len(p.Actions) == 0 &&
		!p.HasTabs
}

// Clone returns a deep copy.
func (p *Page) Clone() *Page {
	if p == nil {
		return nil
	}
	out := &Page{
		NavLinks:  append([]NavLink(nil), p.NavLinks...),
		Actions:   append([]string(nil), p.Actions...),
		HasTabs:   p.HasTabs,
		TabLabels: append([]string(nil), p.TabLabels...),
	}
	if p.Title != nil {
		out.SetTitle(*p.Title)
	}
	for _, s := range p.Sections {
		out.Sections = append(out.Sections, Section{
			Title:       s.Title,
			Fields:      append([]string(nil), s.Fields...),
			HasList:     s.HasList,
			ListColumns: append([]string(nil), s.ListColumns...),
		})
	}
	return out
}

// HasList reports whether any section carries a list.
func (p *Page) HasList() bool {
	for _, s := range p.Sections {
		if s.HasList {
			return true
		}
	}
	return false
}
