package emit

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matthewbaird/pagegen/internal/action"
	"github.com/matthewbaird/pagegen/internal/ir"
	"github.com/matthewbaird/pagegen/internal/label"
	"github.com/matthewbaird/pagegen/internal/refparse"
)

func render(t *testing.T, page *ir.Page, meta Meta) string {
	t.Helper()
	decisions := action.ResolveAll(page.Actions, meta.Domain, page.NavLinks, meta.PageType)
	out, err := Render(page, decisions, meta)
	require.NoError(t, err)
	return string(out)
}

func detailMeta() Meta {
	return Meta{
		PageID:       "Case_viewCase",
		Domain:       "case",
		Component:    "CaseViewCasePage",
		PageType:     label.PageDetail,
		HasReference: true,
		Source:       SourceReference,
	}
}

func TestCollapseRepeats(t *testing.T) {
	assert.Equal(t, []string{"Save", "Cancel", "Save"}, CollapseRepeats([]string{"Save", "Save", "Cancel", "Save"}))
	assert.Equal(t, []string{"A"}, CollapseRepeats([]string{"A", "A", "A"}))
	assert.Empty(t, CollapseRepeats(nil))
}

func TestRender_DedupsAdjacentButtons(t *testing.T) {
	page := &ir.Page{Actions: []string{"Save", "Save", "Cancel", "Save"}}
	page.SetTitle("Case Overview")
	out := render(t, page, detailMeta())

	assert.Equal(t, 3, strings.Count(out, "<Button "))
	assert.Equal(t, 2, strings.Count(out, "<Button onClick={handleSave}>Save</Button>"))
	assert.Equal(t, 1, strings.Count(out, "<Button onClick={handleCancel}>Cancel</Button>"))
	assert.Equal(t, 1, strings.Count(out, "const handleSave = "), "one handler per distinct label")

	assert.Equal(t, []string{"Save", "Cancel", "Save"}, refparse.Parse(out).Actions)
}

func TestRender_CreatePageWithoutReference(t *testing.T) {
	page := &ir.Page{
		Sections: []ir.Section{{Title: "Details", Fields: []string{"case Number", "status"}}},
		Actions:  []string{"Save"},
	}
	page.SetTitle("Create Case")
	out := render(t, page, Meta{
		PageID:    "Case_createCase",
		Domain:    "case",
		Component: "CaseCreateCasePage",
		PageType:  label.PageCreate,
		Source:    SourceFallback,
	})

	assert.NotContains(t, out, "useCaseData")
	assert.NotContains(t, out, "useParams")
	assert.Contains(t, out, `<Section title="Details">`)
	assert.Contains(t, out, `<Field label="case Number" />`)
	assert.Contains(t, out, `<Field label="status" />`)
	assert.Contains(t, out, "await caseApi.create({});")
	assert.Contains(t, out, "const caseApi = createDomainApi('case');")
	assert.Contains(t, out, "hidePlaceholderBanner={false}")
	assert.Contains(t, out, "export default function CaseCreateCasePage() {")
}

func TestRender_DetailBindsFieldsAndRecordID(t *testing.T) {
	page := &ir.Page{
		Sections: []ir.Section{
			{Title: "Case Details", Fields: []string{"Case Number", "Case Status"}},
			{Title: "Notes", HasList: true, ListColumns: []string{"Date", "Author"}},
		},
		Actions: []string{"Delete", "Back"},
	}
	page.SetTitle("Case Overview")
	out := render(t, page, detailMeta())

	assert.Contains(t, out, "import { useCaseData } from '../hooks/useCaseData';")
	assert.Contains(t, out, "const { id } = useParams();")
	assert.Contains(t, out, "const { record, items } = useCaseData(id);")
	assert.Contains(t, out, `<Field label="Case Number" value={record?.caseNumber} />`)
	assert.Contains(t, out, `<DataTable columns={['Date', 'Author']} rows={items ?? []} />`)
	assert.Contains(t, out, "if (!window.confirm('Delete this record?')) return;")
	assert.Contains(t, out, "await caseApi.update(id, { status: 'DELETED' });")
	assert.Contains(t, out, "hidePlaceholderBanner={true}")
	assert.NotContains(t, out, "placeholderRows")
}

func TestRender_DataHookWithoutRecordID(t *testing.T) {
	page := &ir.Page{Actions: []string{"Search"}, Sections: []ir.Section{{Title: "Results", HasList: true}}}
	page.SetTitle("Find Case")
	meta := detailMeta()
	meta.PageType = label.PageSearch
	out := render(t, page, meta)

	assert.Contains(t, out, "const { record, items } = useCaseData();")
	assert.NotContains(t, out, "useParams")
	assert.Contains(t, out, "import React, { useState } from 'react';")
	assert.Contains(t, out, "setResults(await caseApi.search({}));")
	assert.Contains(t, out, "rows={results ?? items ?? []}")
	assert.Contains(t, out, `columns={['ID', 'Name', 'Status', 'Date']}`)
}

func TestRender_UnboundListUsesPlaceholderRows(t *testing.T) {
	page := &ir.Page{Sections: []ir.Section{{Title: "Members", HasList: true, ListColumns: []string{"Name"}}}}
	page.SetTitle("New Household")
	meta := detailMeta()
	meta.PageType = label.PageCreate
	out := render(t, page, meta)

	assert.Contains(t, out, "const placeholderRows = Array.from({ length: 3 }")
	assert.Contains(t, out, "rows={placeholderRows}")
	assert.NotContains(t, out, "useNavigate")
	assert.NotContains(t, out, "createDomainApi")
}

func TestRender_EscapesLiterals(t *testing.T) {
	page := &ir.Page{
		NavLinks: []ir.NavLink{{Label: `O'Brien \ Co`, Route: "/p"}},
		Sections: []ir.Section{{Title: `Say "hi"`, Fields: []string{"a <b> & c"}}},
		Actions:  []string{"Look {up}"},
	}
	page.SetTitle("Line one\nLine \"two\"")
	out := render(t, page, detailMeta())

	assert.Contains(t, out, `title="Line one Line &quot;two&quot;"`)
	assert.Contains(t, out, `{ label: 'O\'Brien \\ Co', route: '/p' },`)
	assert.Contains(t, out, `<Section title="Say &quot;hi&quot;">`)
	assert.Contains(t, out, `>Look &#123;up&#125;</Button>`)

	back := refparse.Parse(out)
	assert.Equal(t, `Line one Line "two"`, back.TitleText())
	assert.Equal(t, `O'Brien \ Co`, back.NavLinks[0].Label)
	assert.Equal(t, []string{"a <b> & c"}, back.Sections[0].Fields)
	assert.Equal(t, []string{"Look {up}"}, back.Actions)
}

func TestRender_RoundTrip(t *testing.T) {
	page := &ir.Page{
		NavLinks: []ir.NavLink{
			{Label: "Case Home", Route: "/case"},
			{Label: "Participants", Route: "/case/participants"},
		},
		Sections: []ir.Section{
			{Title: "Details", Fields: []string{"Case Number", "Opened"}},
			{Title: "Participants", Fields: []string{"Primary Client"}, HasList: true, ListColumns: []string{"Name", "Role"}},
			{Title: "Empty"},
		},
		Actions:   []string{"Approve", "Print", "Participants", "Frobnicate"},
		HasTabs:   true,
		TabLabels: []string{"Summary", "History"},
	}
	page.SetTitle("Case Overview")
	out := render(t, page, detailMeta())

	if diff := cmp.Diff(page, refparse.Parse(out), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
	assert.Contains(t, out, "navigate('/case/participants');")
	assert.Contains(t, out, "window.alert('Frobnicate');")
	assert.Contains(t, out, "window.print();")
	assert.Contains(t, out, "await caseApi.update(id, { action: 'approve' });")
	assert.Contains(t, out, "const [activeTab, setActiveTab] = useState(0);")
}

func TestRender_Deterministic(t *testing.T) {
	page := &ir.Page{
		Sections: []ir.Section{{Title: "Details", Fields: []string{"ID"}}},
		Actions:  []string{"Save", "Cancel", "Validate"},
	}
	a := render(t, page, detailMeta())
	b := render(t, page, detailMeta())
	assert.Equal(t, a, b)
}

func TestRender_FallsBackToHumanizedTitle(t *testing.T) {
	out := render(t, &ir.Page{}, detailMeta())
	assert.Contains(t, out, `title="View Case"`)
}

func TestRender_HandlerNamesUnique(t *testing.T) {
	page := &ir.Page{Actions: []string{"Save", "save", "$"}}
	out := render(t, page, detailMeta())
	assert.Contains(t, out, "const handleSave = ")
	assert.Contains(t, out, "const handleSave2 = ")
	assert.Contains(t, out, "const handleAction3 = ")
}

func TestIdentifier(t *testing.T) {
	assert.Equal(t, "CaseViewPage", identifier("Case View-Page"))
	assert.Equal(t, "GeneratedPage", identifier("--"))
	assert.Equal(t, "Page2Col", identifier("2Col"))
}

func TestJSString(t *testing.T) {
	assert.Equal(t, `'it\'s'`, jsString("it's"))
	assert.Equal(t, `'a\\b'`, jsString(`a\b`))
	assert.Equal(t, `'a\nb'`, jsString("a\nb"))
	assert.Equal(t, `'<\/script>'`, jsString("</script>"))
}
