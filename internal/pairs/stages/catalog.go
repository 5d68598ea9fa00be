package stages

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
)

//go:embed data/*.yaml
var builtinFS embed.FS

// Builtin returns the file system holding the stages shipped with the game.
func Builtin() fs.FS {
	sub, err := fs.Sub(builtinFS, "data")
	if err != nil {
		panic(err) // embedded path is fixed at compile time
	}
	return sub
}

// Catalog is a fixed, ordered list of stages held in memory.
// Stage numbers are 1-based positions in the list.
type Catalog struct {
	stages []Definition
}

// NewCatalog creates a catalog from already validated definitions.
func NewCatalog(defs ...Definition) *Catalog {
	return &Catalog{stages: defs}
}

// LoadCatalog reads stage1, stage2, ... from fsys until a number is missing.
func LoadCatalog(ctx context.Context, fsys fs.FS) (*Catalog, error) {
	loader := NewLoader(fsys)
	var defs []Definition
	for n := 1; ; n++ {
		def, err := loader.Stage(ctx, n)
		if errors.Is(err, ErrStageNotFound) {
			break
		}
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	if len(defs) == 0 {
		return nil, fmt.Errorf("stages: empty catalog: %w", ErrStageNotFound)
	}
	return NewCatalog(defs...), nil
}

// Stage returns the definition at 1-based position n.
func (c *Catalog) Stage(_ context.Context, n int) (Definition, error) {
	if n < 1 || n > len(c.stages) {
		return Definition{}, fmt.Errorf("stage %d: %w", n, ErrStageNotFound)
	}
	return c.stages[n-1], nil
}

// Len returns the number of stages in the catalog.
func (c *Catalog) Len() int {
	return len(c.stages)
}

// All returns the catalog's definitions in order.
func (c *Catalog) All() []Definition {
	out := make([]Definition, len(c.stages))
	copy(out, c.stages)
	return out
}
