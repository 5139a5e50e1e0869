package fallback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matthewbaird/pagegen/internal/graph"
	"github.com/matthewbaird/pagegen/internal/ir"
)

func TestBuild_FieldDistribution(t *testing.T) {
	node := graph.Node{
		PageID:        "Case_viewCase",
		ClusterTitles: []string{"General", "Contacts"},
		FieldLabels:   []string{"caseNumber", "status", "openDate", "primaryPhone", "email"},
	}
	page := Build(node, nil, nil)

	require.Len(t, page.Sections, 2)
	assert.Equal(t, []string{"case Number", "status", "open Date"}, page.Sections[0].Fields)
	assert.Equal(t, []string{"primary Phone", "email"}, page.Sections[1].Fields)
}

func TestBuild_MoreClustersThanFields(t *testing.T) {
	node := graph.Node{
		PageID:        "Case_viewCase",
		ClusterTitles: []string{"A", "B", "C"},
		FieldLabels:   []string{"one", "two"},
	}
	page := Build(node, nil, nil)
	require.Len(t, page.Sections, 3)
	assert.Equal(t, []string{"one"}, page.Sections[0].Fields)
	assert.Equal(t, []string{"two"}, page.Sections[1].Fields)
	assert.Empty(t, page.Sections[2].Fields)
}

func TestBuild_Defaults(t *testing.T) {
	page := Build(graph.Node{PageID: "Case_viewCase"}, nil, nil)
	assert.Equal(t, "View Case", page.TitleText())
	require.Len(t, page.Sections, 1)
	assert.Equal(t, ir.Section{Title: "Details", Fields: []string{"ID", "Status", "Date"}}, page.Sections[0])
	assert.False(t, page.HasTabs)
	assert.Empty(t, page.Actions)
	assert.Empty(t, page.NavLinks)
}

func TestBuild_ListSections(t *testing.T) {
	node := graph.Node{
		PageID:      "Case_listCases",
		ListTitles:  []string{"openCases", "Closed Cases"},
		FieldLabels: []string{"a", "b", "c", "d", "e"},
	}
	page := Build(node, nil, nil)
	require.Len(t, page.Sections, 3)
	assert.False(t, page.Sections[0].HasList)
	for _, s := range page.Sections[1:] {
		assert.True(t, s.HasList)
		assert.Empty(t, s.Fields)
		assert.Equal(t, []string{"a", "b", "c", "d"}, s.ListColumns)
	}
	assert.Equal(t, "open Cases", page.Sections[1].Title)
	assert.Equal(t, "Closed Cases", page.Sections[2].Title)
}

func TestBuild_NavLinksFromEdges(t *testing.T) {
	nodes := []graph.Node{
		{PageID: "Case_viewCase", Route: "/case/view"},
		{PageID: "Case_caseNotes", Route: "/case/notes"},
		{PageID: "Case_viewCaseAlias", Route: "/case/view"},
	}
	edges := []graph.Edge{
		{Source: "Case_viewCase", Target: "Case_caseNotes"},
		{Source: "Case_viewCase", Target: "Case_viewCaseAlias"},
		{Source: "Case_viewCase", Target: "Provider_home"},
		{Source: "Case_viewCase", Target: "Case_"},
		{Source: "Case_other", Target: "Case_caseNotes"},
	}
	page := Build(nodes[0], edges, nodes)
	assert.Equal(t, []ir.NavLink{
		{Label: "Case Notes", Route: "/case/notes"},
		{Label: "Home", Route: WorkspaceRoute},
		{Label: "Case_", Route: WorkspaceRoute},
	}, page.NavLinks)
}

func TestBuild_ActionsAndTabs(t *testing.T) {
	node := graph.Node{
		PageID:       "Case_viewCase",
		ActionLabels: []string{"Case.Save", "saveAndClose"},
		TabTitles:    []string{"summary", "caseHistory"},
	}
	page := Build(node, nil, nil)
	assert.Equal(t, []string{"Save", "save And Close"}, page.Actions)
	assert.True(t, page.HasTabs)
	assert.Equal(t, []string{"summary", "case History"}, page.TabLabels)
}

func TestBuild_CreateScenario(t *testing.T) {
	node := graph.Node{
		PageID:        "Case_createCase",
		Domain:        "case",
		Component:     "CaseCreateCasePage",
		Status:        "stub",
		FieldLabels:   []string{"caseNumber", "status"},
		ClusterTitles: []string{"Details"},
	}
	page := Build(node, nil, nil)
	require.Len(t, page.Sections, 1)
	assert.Equal(t, "Details", page.Sections[0].Title)
	assert.Equal(t, []string{"case Number", "status"}, page.Sections[0].Fields)
}
