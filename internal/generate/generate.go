// Package generate drives page generation for every stub node of a page graph.
package generate

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/matthewbaird/pagegen/internal/action"
	"github.com/matthewbaird/pagegen/internal/config"
	"github.com/matthewbaird/pagegen/internal/emit"
	"github.com/matthewbaird/pagegen/internal/fallback"
	"github.com/matthewbaird/pagegen/internal/graph"
	"github.com/matthewbaird/pagegen/internal/ir"
	"github.com/matthewbaird/pagegen/internal/label"
	"github.com/matthewbaird/pagegen/internal/placeholder"
	"github.com/matthewbaird/pagegen/internal/refparse"
)

// State is the terminal state of one stub node.
type State string

const (
	StateSkippedExisting       State = "skipped-existing"
	StateSkippedNoComponent    State = "skipped-no-component"
	StateGeneratedReference    State = "generated-real-reference"
	StateGeneratedPlaceholder  State = "generated-placeholder-reference"
	StateGeneratedFromFallback State = "generated-fallback"
	StateError                 State = "error"
)

// Stats counts node outcomes for one run.
type Stats struct {
	Generated          int
	Skipped            int
	Errors             int
	FromRef            int
	FromRefReal        int
	FromRefPlaceholder int
}

// Outcome records what happened to one stub node.
type Outcome struct {
	PageID     string
	State      State
	OutputPath string
	Err        error
}

// Result is the report of a run.
type Result struct {
	RunID    string
	Stats    Stats
	Outcomes []Outcome
}

// Generator writes pages for the stub nodes of a graph.
type Generator struct {
	cfg    config.Config
	cache  *refparse.Cache
	logger *zap.Logger
}

// New creates a Generator. A nil logger discards diagnostics.
func New(cfg config.Config, logger *zap.Logger) (*Generator, error) {
	cache, err := refparse.NewCache(cfg.CacheSize)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{cfg: cfg, cache: cache, logger: logger}, nil
}

// Run loads the configured graph and generates its stub pages. Only a graph
// that cannot be loaded is returned as an error; per-node failures are
// reported in the Result.
func (g *Generator) Run(force bool) (*Result, error) {
	gr, err := graph.Load(g.cfg.Graph)
	if err != nil {
		return nil, err
	}
	return g.RunGraph(gr, force), nil
}

// RunGraph generates the stub pages of gr in graph order.
func (g *Generator) RunGraph(gr *graph.Graph, force bool) *Result {
	res := &Result{RunID: uuid.NewString()}
	log := g.logger.With(zap.String("run", res.RunID))

	for _, node := range gr.Stubs() {
		out := g.generateNode(log, gr, node, force)
		res.record(out)
	}

	log.Debug("run complete",
		zap.Int("generated", res.Stats.Generated),
		zap.Int("skipped", res.Stats.Skipped),
		zap.Int("errors", res.Stats.Errors),
	)
	return res
}

func (r *Result) record(o Outcome) {
	r.Outcomes = append(r.Outcomes, o)
	switch o.State {
	case StateSkippedExisting, StateSkippedNoComponent:
		r.Stats.Skipped++
	case StateError:
		r.Stats.Errors++
	case StateGeneratedReference:
		r.Stats.Generated++
		r.Stats.FromRef++
		r.Stats.FromRefReal++
	case StateGeneratedPlaceholder:
		r.Stats.Generated++
		r.Stats.FromRef++
		r.Stats.FromRefPlaceholder++
	case StateGeneratedFromFallback:
		r.Stats.Generated++
	}
}

func (g *Generator) generateNode(log *zap.Logger, gr *graph.Graph, node graph.Node, force bool) Outcome {
	log = log.With(zap.String("page", node.PageID))

	if node.Component == "" {
		log.Debug("skipping node without component")
		return Outcome{PageID: node.PageID, State: StateSkippedNoComponent}
	}

	outPath := g.cfg.OutputPath(node.Domain, node.Component)
	if !force {
		if _, err := os.Stat(outPath); err == nil {
			log.Debug("output exists", zap.String("path", outPath))
			return Outcome{PageID: node.PageID, State: StateSkippedExisting, OutputPath: outPath}
		}
	}

	page, source, hasRef := g.layout(log, gr, node)
	pageType := label.DetectPageType(node.PageID)
	decisions := action.ResolveAll(page.Actions, node.Domain, page.NavLinks, pageType)

	content, err := emit.Render(page, decisions, emit.Meta{
		PageID:       node.PageID,
		Domain:       node.Domain,
		Component:    node.Component,
		PageType:     pageType,
		HasReference: hasRef,
		Source:       source,
	})
	if err == nil {
		err = writePage(outPath, content)
	}
	if err != nil {
		log.Error("failed to generate page", zap.String("path", outPath), zap.Error(err))
		return Outcome{PageID: node.PageID, State: StateError, OutputPath: outPath, Err: err}
	}

	state := StateGeneratedFromFallback
	switch source {
	case emit.SourceReference:
		state = StateGeneratedReference
	case emit.SourcePlaceholder:
		state = StateGeneratedPlaceholder
	}
	log.Info("generated page", zap.String("path", outPath), zap.String("source", string(source)))
	return Outcome{PageID: node.PageID, State: state, OutputPath: outPath}
}

// layout picks the page structure: the reference when it parses to
// something, with placeholders retitled, else the graph fallback.
func (g *Generator) layout(log *zap.Logger, gr *graph.Graph, node graph.Node) (*ir.Page, emit.Source, bool) {
	refPath := g.cfg.ReferencePath(node.Domain, node.Component)
	data, err := os.ReadFile(refPath)
	switch {
	case err == nil:
		page := g.cache.Parse(string(data))
		if page.IsEmpty() {
			log.Debug("reference has no recognizable structure", zap.String("reference", refPath))
			break
		}
		if placeholder.IsPlaceholder(page, node.PageID) {
			page.SetTitle(label.HumanizePageID(node.PageID))
			return page, emit.SourcePlaceholder, false
		}
		return page, emit.SourceReference, true
	case errors.Is(err, fs.ErrNotExist):
	default:
		log.Debug("reference unreadable", zap.String("reference", refPath), zap.Error(err))
	}
	return fallback.Build(node, gr.Edges, gr.Nodes), emit.SourceFallback, false
}

func writePage(path string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
