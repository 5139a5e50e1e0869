// Package graph loads the page dependency graph that drives generation.
package graph

// StatusStub marks a node whose page has not been built yet.
const StatusStub = "stub"

// Node is one page of the frontend.
type Node struct {
	PageID        string   `json:"pageId"`
	Domain        string   `json:"domain"`
	Component     string   `json:"component"`
	Route         string   `json:"route"`
	Status        string   `json:"status"`
	ClusterTitles []string `json:"clusterTitles"`
	ListTitles    []string `json:"listTitles"`
	FieldLabels   []string `json:"fieldLabels"`
	ActionLabels  []string `json:"actionLabels"`
	TabTitles     []string `json:"tabTitles"`
}

// IsStub reports whether the node is eligible for generation.
func (n Node) IsStub() bool {
	return n.Status == StatusStub
}

// Edge is a navigation dependency between two pages.
type Edge struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// Graph is the decoded graph document.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Stubs returns the stub nodes in graph order.
func (g *Graph) Stubs() []Node {
	var out []Node
	for _, n := range g.Nodes {
		if n.IsStub() {
			out = append(out, n)
		}
	}
	return out
}

// RouteIndex maps page ids to routes.
func (g *Graph) RouteIndex() map[string]string {
	idx := make(map[string]string, len(g.Nodes))
	for _, n := range g.Nodes {
		idx[n.PageID] = n.Route
	}
	return idx
}
