package generate

import (
	"fmt"
	"io"
)

// WriteSummary prints the run counters, one per line.
func (r *Result) WriteSummary(w io.Writer) error {
	s := r.Stats
	_, err := fmt.Fprintf(w, `pagegen: run %s
  generated:            %d
  skipped:              %d
  errors:               %d
  from reference:       %d
    real:               %d
    placeholder:        %d
`, r.RunID, s.Generated, s.Skipped, s.Errors, s.FromRef, s.FromRefReal, s.FromRefPlaceholder)
	return err
}
