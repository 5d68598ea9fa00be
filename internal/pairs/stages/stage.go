// Package stages provides stage definitions for Pairs and the two ways of
// sourcing them: a fixed in-memory catalog and on-demand loading by number.
// This package depends on board but board does not depend on stages.
package stages

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-pairs/internal/pairs/board"
)

// ErrStageNotFound is returned when no definition exists for a stage number.
// Callers treat it as "no further stages", not as a failure.
var ErrStageNotFound = errors.New("stages: stage not found")

// Source looks up stage definitions by 1-based number.
type Source interface {
	Stage(ctx context.Context, number int) (Definition, error)
}

// Definition describes a single stage: board size, active-cell mask and the
// countdown it starts with.
type Definition struct {
	ID        int
	Name      string
	Rows      int
	Cols      int
	TimeLimit time.Duration
	Layout    [][]bool
	Source    string // file the definition was read from, if any
}

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// ActiveCount returns the number of cells that receive a token.
func (d Definition) ActiveCount() int {
	n := 0
	for _, row := range d.Layout {
		for _, on := range row {
			if on {
				n++
			}
		}
	}
	return n
}

// Shape converts the definition into a board shape.
func (d Definition) Shape() board.Shape {
	return board.Shape{Rows: d.Rows, Cols: d.Cols, Active: d.Layout}
}

// Title returns the display name of the stage.
func (d Definition) Title() string {
	if d.Name != "" {
		return d.Name
	}
	return fmt.Sprintf("Stage %d", d.ID)
}

// Validate checks that the definition can produce a board.
func (d Definition) Validate() error {
	if d.Rows <= 0 || d.Cols <= 0 {
		return ValidationError{
			Code:    "BAD_SIZE",
			Message: fmt.Sprintf("stage %d has size %dx%d", d.ID, d.Rows, d.Cols),
		}
	}

	if len(d.Layout) != d.Rows {
		return ValidationError{
			Code:    "BAD_LAYOUT",
			Message: fmt.Sprintf("stage %d layout has %d rows, want %d", d.ID, len(d.Layout), d.Rows),
		}
	}
	for r, row := range d.Layout {
		if len(row) != d.Cols {
			return ValidationError{
				Code:    "BAD_LAYOUT",
				Message: fmt.Sprintf("stage %d layout row %d has %d cells, want %d", d.ID, r, len(row), d.Cols),
			}
		}
	}

	if n := d.ActiveCount(); n == 0 || n%board.CopiesPerSymbol != 0 {
		return ValidationError{
			Code:    "NOT_DIVISIBLE",
			Message: fmt.Sprintf("stage %d has %d active cells, want a positive multiple of %d", d.ID, n, board.CopiesPerSymbol),
		}
	}

	if d.TimeLimit <= 0 {
		return ValidationError{
			Code:    "BAD_TIME",
			Message: fmt.Sprintf("stage %d has time limit %s", d.ID, d.TimeLimit),
		}
	}

	return nil
}

// FullLayout returns a rows x cols mask with every cell active.
func FullLayout(rows, cols int) [][]bool {
	return board.FullShape(rows, cols).Active
}
