// Package formats provides pluggable stage file format parsers.
package formats

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Stage represents a parsed stage file ready for conversion.
type Stage struct {
	ID               int
	Name             string
	Rows             int
	Cols             int
	TimeLimitSeconds int
	Layout           [][]bool
}

// YAMLStage represents the YAML structure for a stage file.
// The layout is drawn with '#' for active cells and '.' for holes.
// When layout is omitted the board is fully active.
type YAMLStage struct {
	ID        int      `yaml:"id"`
	Name      string   `yaml:"name,omitempty"`
	Rows      int      `yaml:"rows,omitempty"`
	Cols      int      `yaml:"cols,omitempty"`
	TimeLimit int      `yaml:"time_limit"`
	Layout    []string `yaml:"layout,omitempty"`
}

// ParseYAML parses a YAML stage file.
func ParseYAML(data []byte) (Stage, error) {
	var ys YAMLStage
	if err := yaml.Unmarshal(data, &ys); err != nil {
		return Stage{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	st := Stage{
		ID:               ys.ID,
		Name:             ys.Name,
		Rows:             ys.Rows,
		Cols:             ys.Cols,
		TimeLimitSeconds: ys.TimeLimit,
	}

	if len(ys.Layout) == 0 {
		if st.Rows <= 0 || st.Cols <= 0 {
			// no board to fill; size validation reports it
			return st, nil
		}
		st.Layout = make([][]bool, st.Rows)
		for r := range st.Layout {
			st.Layout[r] = make([]bool, st.Cols)
			for c := range st.Layout[r] {
				st.Layout[r][c] = true
			}
		}
		return st, nil
	}

	st.Layout = make([][]bool, len(ys.Layout))
	for r, line := range ys.Layout {
		line = strings.TrimSpace(line)
		row := make([]bool, 0, len(line))
		for _, ch := range line {
			switch ch {
			case '#', 'x', 'X':
				row = append(row, true)
			case '.', '_':
				row = append(row, false)
			case ' ':
				// allow visual spacing
			default:
				return Stage{}, fmt.Errorf("layout row %d: unexpected %q", r, ch)
			}
		}
		st.Layout[r] = row
	}

	if st.Rows == 0 {
		st.Rows = len(st.Layout)
	}
	if st.Cols == 0 && len(st.Layout) > 0 {
		st.Cols = len(st.Layout[0])
	}

	return st, nil
}

// FormatExtensions returns supported file extensions in lookup order.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".json"}
}
