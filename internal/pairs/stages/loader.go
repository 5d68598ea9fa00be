package stages

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/vovakirdan/tui-pairs/internal/pairs/stages/formats"
)

// Loader fetches stages on demand from a file system.
// Stage N is read from stage<N>.yaml, stage<N>.yml or stage<N>.json in the
// root of the file system, in that order.
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a new stage loader over fsys.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// Stage loads and validates stage number n.
// A stage without a file yields an error wrapping ErrStageNotFound.
func (l *Loader) Stage(ctx context.Context, n int) (Definition, error) {
	if err := ctx.Err(); err != nil {
		return Definition{}, err
	}
	if n < 1 {
		return Definition{}, fmt.Errorf("stage %d: %w", n, ErrStageNotFound)
	}

	for _, ext := range formats.FormatExtensions() {
		name := fmt.Sprintf("stage%d%s", n, ext)
		data, err := fs.ReadFile(l.fsys, name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return Definition{}, fmt.Errorf("stages: reading %s: %w", name, err)
		}

		def, err := parseDefinition(data, ext)
		if err != nil {
			return Definition{}, fmt.Errorf("stages: parsing %s: %w", name, err)
		}
		if def.ID == 0 {
			def.ID = n
		}
		def.Source = name
		if err := def.Validate(); err != nil {
			return Definition{}, fmt.Errorf("stages: %s: %w", name, err)
		}
		return def, nil
	}

	return Definition{}, fmt.Errorf("stage %d: %w", n, ErrStageNotFound)
}

// Numbers returns the stage numbers present in the file system, ascending.
func (l *Loader) Numbers() ([]int, error) {
	entries, err := fs.ReadDir(l.fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("stages: listing: %w", err)
	}

	seen := make(map[int]bool)
	var nums []int
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		n, ok := stageNumber(e.Name())
		if !ok || seen[n] {
			continue
		}
		seen[n] = true
		nums = append(nums, n)
	}
	sort.Ints(nums)
	return nums, nil
}

// stageNumber extracts N from a stage<N>.<ext> file name.
func stageNumber(name string) (int, bool) {
	ext := strings.ToLower(path.Ext(name))
	if !isSupportedExtension(ext) {
		return 0, false
	}
	base := strings.TrimSuffix(name, path.Ext(name))
	if !strings.HasPrefix(base, "stage") {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimPrefix(base, "stage"))
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseDefinition routes to the correct parser.
func parseDefinition(data []byte, ext string) (Definition, error) {
	var (
		st  formats.Stage
		err error
	)
	switch ext {
	case ".yaml", ".yml":
		st, err = formats.ParseYAML(data)
	case ".json":
		st, err = formats.ParseJSON(data)
	default:
		return Definition{}, fmt.Errorf("unsupported extension: %s", ext)
	}
	if err != nil {
		return Definition{}, err
	}

	return Definition{
		ID:        st.ID,
		Name:      st.Name,
		Rows:      st.Rows,
		Cols:      st.Cols,
		TimeLimit: time.Duration(st.TimeLimitSeconds) * time.Second,
		Layout:    st.Layout,
	}, nil
}
