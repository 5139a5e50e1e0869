// Package emit renders a page layout and its action wiring as a JSX page
// module.
package emit

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/matthewbaird/pagegen/internal/action"
	"github.com/matthewbaird/pagegen/internal/ir"
	"github.com/matthewbaird/pagegen/internal/label"
)

//go:embed templates/*
var templateFS embed.FS

var pageTemplate = template.Must(
	template.New("page.jsx.tmpl").Funcs(template.FuncMap{
		"js":      jsString,
		"jsxAttr": jsxAttr,
		"jsxText": jsxText,
		"comment": comment,
		"join":    strings.Join,
	}).ParseFS(templateFS, "templates/page.jsx.tmpl"),
)

// Source names where a page's layout came from.
type Source string

const (
	SourceReference   Source = "reference page"
	SourcePlaceholder Source = "placeholder reference page"
	SourceFallback    Source = "page graph metadata"
)

// Meta describes the page being emitted.
type Meta struct {
	PageID    string
	Domain    string
	Component string
	PageType  label.PageType
	// HasReference suppresses the placeholder banner of the shared layout.
	HasReference bool
	Source       Source
}

// ── Template context types ───────────────────────────────────────────────────

type templateData struct {
	Source       string
	PageID       string
	Component    string
	Domain       string
	Title        string
	HasReference bool

	RouterImports []string
	SharedImports []string
	DataHook      string
	APIHandle     string

	UsesState           bool
	UsesData            bool
	UsesAPI             bool
	UsesNavigate        bool
	UsesRecordID        bool
	UsesSearch          bool
	UsesPlaceholderRows bool

	NavLinks []ir.NavLink
	HasTabs  bool
	Tabs     []string
	Sections []sectionData
	Handlers []handlerData
	Buttons  []buttonData
}

type sectionData struct {
	Title   string
	Fields  []fieldData
	HasList bool
	Columns []string
	Rows    string
}

type fieldData struct {
	Label   string
	Binding string
}

type handlerData struct {
	Name  string
	Hint  string
	Async bool
	Body  []string
}

type buttonData struct {
	Label   string
	Handler string
}

// ── Rendering ────────────────────────────────────────────────────────────────

// Render produces the page module for page. decisions holds the wiring of
// each distinct action label; labels without a decision are resolved here.
func Render(page *ir.Page, decisions []action.Decision, meta Meta) ([]byte, error) {
	if page == nil {
		page = &ir.Page{}
	}
	byLabel := make(map[string]action.Decision, len(decisions))
	for _, d := range decisions {
		byLabel[d.Label] = d
	}

	data := templateData{
		Source:       string(meta.Source),
		PageID:       meta.PageID,
		Component:    identifier(meta.Component),
		Domain:       meta.Domain,
		Title:        page.TitleText(),
		HasReference: meta.HasReference,
		DataHook:     action.DataHook(meta.Domain),
		APIHandle:    action.APIHandle(meta.Domain),
		NavLinks:     page.NavLinks,
		HasTabs:      page.HasTabs,
		Tabs:         page.TabLabels,
		UsesData:     meta.PageType != label.PageCreate,
	}
	if data.Title == "" {
		data.Title = label.HumanizePageID(meta.PageID)
	}

	buttons := CollapseRepeats(page.Actions)
	handlerFor := map[string]string{}
	usedNames := map[string]bool{}
	var ordered []action.Decision
	for _, a := range buttons {
		if _, ok := handlerFor[a]; ok {
			continue
		}
		d, ok := byLabel[strings.TrimSpace(a)]
		if !ok {
			d = action.Resolve(a, meta.Domain, page.NavLinks, meta.PageType)
		}
		name := handlerName(a, len(ordered), usedNames)
		handlerFor[a] = name
		ordered = append(ordered, d)

		data.UsesNavigate = data.UsesNavigate || d.NeedsNavigate
		data.UsesAPI = data.UsesAPI || d.NeedsDomainAPI
		data.UsesRecordID = data.UsesRecordID || d.NeedsRecordID
		data.UsesSearch = data.UsesSearch || d.Effect == action.EffectSearch

		data.Handlers = append(data.Handlers, handlerData{
			Name:  name,
			Hint:  d.Hint,
			Async: d.NeedsDomainAPI,
			Body:  handlerBody(d, data.UsesData),
		})
	}
	for _, a := range buttons {
		data.Buttons = append(data.Buttons, buttonData{Label: a, Handler: handlerFor[a]})
	}

	bindFields := data.UsesData && meta.PageType != label.PageCreate
	for _, s := range page.Sections {
		sec := sectionData{Title: s.Title, HasList: s.HasList, Columns: s.ListColumns}
		for _, f := range s.Fields {
			fd := fieldData{Label: f}
			if key := label.LabelToDataKey(f); bindFields && key != "" {
				fd.Binding = "record?." + key
			}
			sec.Fields = append(sec.Fields, fd)
		}
		if s.HasList {
			if len(sec.Columns) == 0 {
				sec.Columns = ir.DefaultListColumns
			}
			sec.Rows = listRows(data.UsesData, data.UsesSearch)
			if !data.UsesData {
				data.UsesPlaceholderRows = true
			}
		}
		data.Sections = append(data.Sections, sec)
	}

	data.UsesState = data.HasTabs || data.UsesSearch
	data.RouterImports = routerImports(data.UsesNavigate, data.UsesRecordID)
	data.SharedImports = sharedImports(page, len(data.Buttons) > 0)

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("emit: rendering %s: %w", meta.PageID, err)
	}
	return buf.Bytes(), nil
}

// CollapseRepeats drops an action that repeats the one immediately before it.
// Non-adjacent repeats are kept.
func CollapseRepeats(actions []string) []string {
	var out []string
	for i, a := range actions {
		if i > 0 && a == actions[i-1] {
			continue
		}
		out = append(out, a)
	}
	return out
}

func listRows(usesData, usesSearch bool) string {
	switch {
	case usesData && usesSearch:
		return "results ?? items ?? []"
	case usesData:
		return "items ?? []"
	case usesSearch:
		return "results ?? placeholderRows"
	default:
		return "placeholderRows"
	}
}

func routerImports(navigate, params bool) []string {
	var out []string
	if navigate {
		out = append(out, "useNavigate")
	}
	if params {
		out = append(out, "useParams")
	}
	return out
}

func sharedImports(page *ir.Page, hasButtons bool) []string {
	out := []string{"PageLayout"}
	var fields, lists bool
	for _, s := range page.Sections {
		fields = fields || len(s.Fields) > 0
		lists = lists || s.HasList
	}
	if len(page.Sections) > 0 {
		out = append(out, "Section")
	}
	if fields {
		out = append(out, "Field")
	}
	if lists {
		out = append(out, "DataTable")
	}
	if hasButtons {
		out = append(out, "Button")
	}
	if page.HasTabs {
		out = append(out, "Tabs", "Tab")
	}
	return out
}

func handlerName(actionLabel string, index int, used map[string]bool) string {
	key := label.LabelToDataKey(actionLabel)
	name := "handle" + label.Pascal(key)
	if key == "" {
		name = fmt.Sprintf("handleAction%d", index+1)
	}
	for base, n := name, 2; used[name]; n++ {
		name = fmt.Sprintf("%s%d", base, n)
	}
	used[name] = true
	return name
}

// handlerBody returns the statements of the handler wired to d.
func handlerBody(d action.Decision, usesData bool) []string {
	api := d.APIHandle
	payload := "{}"
	if usesData {
		payload = "record ?? {}"
	}
	switch d.Effect {
	case action.EffectNavigateBack:
		return []string{"navigate(-1);"}
	case action.EffectInform:
		return []string{fmt.Sprintf("console.info(%s);", jsString(d.Label+" continues on the follow-up page"))}
	case action.EffectReload:
		return []string{"window.location.reload();"}
	case action.EffectPrint:
		return []string{"window.print();"}
	case action.EffectSearch:
		return []string{fmt.Sprintf("setResults(await %s.search({}));", api)}
	case action.EffectConfirmUpdate:
		return []string{
			fmt.Sprintf("if (!window.confirm(%s)) return;", jsString(d.Label+" this record?")),
			fmt.Sprintf("await %s.update(id, { status: %s });", api, jsString(d.StatusValue)),
			"navigate(-1);",
		}
	case action.EffectCreate:
		return []string{fmt.Sprintf("await %s.create({});", api), "navigate(-1);"}
	case action.EffectUpdate:
		return []string{fmt.Sprintf("await %s.update(id, %s);", api, payload), "navigate(-1);"}
	case action.EffectTransition:
		return []string{
			fmt.Sprintf("await %s.update(id, { action: %s });", api, jsString(d.Verb)),
			"navigate(-1);",
		}
	case action.EffectFireAndForget:
		return []string{fmt.Sprintf("await %s.update(id, { action: %s });", api, jsString(d.Verb))}
	case action.EffectNavigate:
		return []string{fmt.Sprintf("navigate(%s);", jsString(d.Route))}
	default:
		return []string{fmt.Sprintf("window.alert(%s);", jsString(d.Label))}
	}
}
