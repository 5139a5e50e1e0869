package graph

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

//go:embed schema.cue
var schemaSource string

// Load reads and validates the graph file at path. A missing file yields an
// error wrapping ErrNotFound.
func Load(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("reading graph %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse validates a JSON graph document against the #Graph schema and
// decodes it. filename is only used in error messages.
func Parse(data []byte, filename string) (*Graph, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaSource, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("compiling graph schema: %w", err)
	}

	// JSON is valid CUE, so the document compiles directly.
	doc := ctx.CompileBytes(data, cue.Filename(filename))
	if err := doc.Err(); err != nil {
		return nil, &SchemaError{File: filename, Err: err}
	}
	if !doc.LookupPath(cue.ParsePath("nodes")).Exists() {
		return nil, &SchemaError{File: filename, Field: "nodes", Err: errors.New("required field is missing")}
	}

	unified := schema.LookupPath(cue.ParsePath("#Graph")).Unify(doc)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, &SchemaError{File: filename, Err: err}
	}

	var g Graph
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, &SchemaError{File: filename, Err: err}
	}
	return &g, nil
}
