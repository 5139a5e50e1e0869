// Package fallback synthesizes a page layout from graph metadata when no
// usable reference page exists.
package fallback

import (
	"github.com/matthewbaird/pagegen/internal/graph"
	"github.com/matthewbaird/pagegen/internal/ir"
	"github.com/matthewbaird/pagegen/internal/label"
)

// WorkspaceRoute is used for link targets whose route is unknown.
const WorkspaceRoute = "/workspace"

var (
	defaultClusters = []string{"Details"}
	defaultFields   = []string{"ID", "Status", "Date"}
)

// Build constructs the layout of node. edges and nodes are the whole graph;
// nodes is only consulted for the routes of link targets.
func Build(node graph.Node, edges []graph.Edge, nodes []graph.Node) *ir.Page {
	page := &ir.Page{}
	page.SetTitle(label.HumanizePageID(node.PageID))

	clusters := node.ClusterTitles
	if len(clusters) == 0 {
		clusters = defaultClusters
	}
	fields := node.FieldLabels
	if len(fields) == 0 {
		fields = defaultFields
	}
	clean := sanitizeAll(fields)

	// Each cluster takes ceil(n/k) consecutive fields; trailing clusters may
	// come up short or empty.
	per := (len(clean) + len(clusters) - 1) / len(clusters)
	for i, title := range clusters {
		lo := min(i*per, len(clean))
		hi := min(lo+per, len(clean))
		page.Sections = append(page.Sections, ir.Section{
			Title:  label.SanitizeLabel(title),
			Fields: append([]string(nil), clean[lo:hi]...),
		})
	}

	columns := clean[:min(4, len(clean))]
	for _, title := range node.ListTitles {
		page.Sections = append(page.Sections, ir.Section{
			Title:       label.SanitizeLabel(title),
			HasList:     true,
			ListColumns: append([]string(nil), columns...),
		})
	}

	page.NavLinks = navLinks(node, edges, nodes)
	page.Actions = sanitizeAll(node.ActionLabels)
	page.TabLabels = sanitizeAll(node.TabTitles)
	page.HasTabs = len(node.TabTitles) > 0
	return page
}

func navLinks(node graph.Node, edges []graph.Edge, nodes []graph.Node) []ir.NavLink {
	routes := make(map[string]string, len(nodes))
	for _, n := range nodes {
		routes[n.PageID] = n.Route
	}

	var links []ir.NavLink
	for _, e := range edges {
		if e.Source != node.PageID {
			continue
		}
		route := routes[e.Target]
		if route == "" {
			route = WorkspaceRoute
		}
		if route == node.Route {
			continue
		}
		text := label.SanitizeLabel(label.HumanizePageID(e.Target))
		if text == "" {
			text = e.Target
		}
		links = append(links, ir.NavLink{Label: text, Route: route})
	}
	return links
}

func sanitizeAll(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = label.SanitizeLabel(s)
	}
	return out
}
