package board

import (
	"errors"
	"math/rand"
	"reflect"
	"sort"
	"testing"
)

// tokensFromRows builds tokens from a picture of the board.
// '.' is an empty cell; any other rune is a token with that symbol.
// IDs are assigned in row-major order.
func tokensFromRows(rows ...string) ([]Token, int, int) {
	var tokens []Token
	cols := 0
	for r, line := range rows {
		runes := []rune(line)
		if len(runes) > cols {
			cols = len(runes)
		}
		for c, ch := range runes {
			if ch == '.' {
				continue
			}
			tokens = append(tokens, Token{
				ID:     len(tokens),
				Symbol: Symbol(ch),
				Pos:    P(r, c),
			})
		}
	}
	return tokens, len(rows), cols
}

func TestGenerateSymbolCounts(t *testing.T) {
	shapes := []struct {
		name  string
		shape Shape
	}{
		{"4x6 full", FullShape(4, 6)},
		{"6x8 full", FullShape(6, 8)},
		{"hollow center", Shape{Rows: 3, Cols: 3, Active: [][]bool{
			{true, true, true},
			{true, false, true},
			{true, true, true},
		}}},
	}

	for _, tc := range shapes {
		t.Run(tc.name, func(t *testing.T) {
			for seed := int64(1); seed <= 20; seed++ {
				rng := rand.New(rand.NewSource(seed))
				tokens, err := Generate(rng, tc.shape, DefaultAlphabet())
				if err != nil {
					t.Fatalf("Generate() failed: %v", err)
				}

				active := tc.shape.ActiveCells()
				if len(tokens) != len(active) {
					t.Fatalf("got %d tokens, want %d", len(tokens), len(active))
				}

				counts := make(map[Symbol]int)
				for i, tok := range tokens {
					if tok.ID != i {
						t.Errorf("token %d has ID %d", i, tok.ID)
					}
					if tok.Pos != active[i] {
						t.Errorf("token %d at %v, want %v", i, tok.Pos, active[i])
					}
					if tok.Removed {
						t.Errorf("token %d should not start removed", i)
					}
					counts[tok.Symbol]++
				}
				for sym, n := range counts {
					if n%CopiesPerSymbol != 0 {
						t.Errorf("symbol %s appears %d times", sym, n)
					}
				}
				if len(counts) != len(active)/CopiesPerSymbol {
					t.Errorf("got %d distinct symbols, want %d", len(counts), len(active)/CopiesPerSymbol)
				}
			}
		})
	}
}

func TestGenerateDeterministicForSeed(t *testing.T) {
	a, err := Generate(rand.New(rand.NewSource(42)), FullShape(4, 6), DefaultAlphabet())
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	b, err := Generate(rand.New(rand.NewSource(42)), FullShape(4, 6), DefaultAlphabet())
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed should deal the same board")
	}
}

func TestGenerateConfigErrors(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	_, err := Generate(rng, FullShape(3, 3), DefaultAlphabet())
	if !errors.Is(err, ErrIndivisibleLayout) {
		t.Errorf("expected ErrIndivisibleLayout, got %v", err)
	}
	if !errors.Is(err, ErrConfig) {
		t.Errorf("expected error to wrap ErrConfig, got %v", err)
	}

	small := Alphabet{'A', 'B'}
	_, err = Generate(rng, FullShape(4, 4), small)
	if !errors.Is(err, ErrAlphabetTooSmall) {
		t.Errorf("expected ErrAlphabetTooSmall, got %v", err)
	}
	if !errors.Is(err, ErrConfig) {
		t.Errorf("expected error to wrap ErrConfig, got %v", err)
	}
}

func TestDefaultAlphabetDistinct(t *testing.T) {
	a := DefaultAlphabet()
	seen := make(map[Symbol]bool)
	for _, s := range a {
		if seen[s] {
			t.Errorf("duplicate symbol %s", s)
		}
		seen[s] = true
	}
	if len(a) < 88 {
		t.Errorf("alphabet too small: %d", len(a))
	}
	if a.Index(a[5]) != 5 {
		t.Errorf("Index() = %d, want 5", a.Index(a[5]))
	}
	if a.Index(Symbol('~')) != -1 {
		t.Error("Index() of unknown symbol should be -1")
	}
}

func TestBuildGrid(t *testing.T) {
	tokens, rows, cols := tokensFromRows(
		"AB.",
		".CD",
	)
	tokens[1].Removed = true
	g := BuildGrid(tokens, rows, cols)

	tests := []struct {
		pos     Position
		blocked bool
	}{
		{P(0, 0), true},
		{P(0, 1), false}, // removed
		{P(0, 2), false}, // empty
		{P(1, 1), true},
		{P(-1, 0), false}, // ring
		{P(0, 3), false},  // ring
		{P(2, 2), false},  // ring
	}
	for _, tc := range tests {
		if got := g.Blocked(tc.pos); got != tc.blocked {
			t.Errorf("Blocked(%v) = %v, want %v", tc.pos, got, tc.blocked)
		}
	}

	if id, ok := g.At(P(1, 2)); !ok || id != 3 {
		t.Errorf("At(1,2) = %d, %v; want 3, true", id, ok)
	}
	if g.Occupied() != 3 {
		t.Errorf("Occupied() = %d, want 3", g.Occupied())
	}
}

func TestFindPathTiers(t *testing.T) {
	tests := []struct {
		name   string
		rows   []string
		p1, p2 Position
		want   []Position
	}{
		{
			name: "adjacent",
			rows: []string{"AA"},
			p1:   P(0, 0), p2: P(0, 1),
			want: []Position{P(0, 0), P(0, 1)},
		},
		{
			name: "straight with gap",
			rows: []string{"A..A"},
			p1:   P(0, 0), p2: P(0, 3),
			want: []Position{P(0, 0), P(0, 3)},
		},
		{
			name: "vertical",
			rows: []string{"A", ".", "A"},
			p1:   P(0, 0), p2: P(2, 0),
			want: []Position{P(0, 0), P(2, 0)},
		},
		{
			name: "one bend first corner",
			rows: []string{"A..", "...", "..A"},
			p1:   P(0, 0), p2: P(2, 2),
			want: []Position{P(0, 0), P(0, 2), P(2, 2)},
		},
		{
			name: "one bend second corner",
			rows: []string{"A.X", "...", "..A"},
			p1:   P(0, 0), p2: P(2, 2),
			want: []Position{P(0, 0), P(2, 0), P(2, 2)},
		},
		{
			name: "two bends off-board column",
			rows: []string{"A..", "X..", "A.."},
			p1:   P(0, 0), p2: P(2, 0),
			want: []Position{P(0, 0), P(0, -1), P(2, -1), P(2, 0)},
		},
		{
			name: "one bend through gap",
			rows: []string{"XA..", "XX.X", "X.AX"},
			p1:   P(0, 1), p2: P(2, 2),
			want: []Position{P(0, 1), P(0, 2), P(2, 2)},
		},
		{
			name: "two bends off-board row",
			rows: []string{"AXA"},
			p1:   P(0, 0), p2: P(0, 2),
			want: []Position{P(0, 0), P(-1, 0), P(-1, 2), P(0, 2)},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tokens, rows, cols := tokensFromRows(tc.rows...)
			g := BuildGrid(tokens, rows, cols)
			got := FindPath(g, tc.p1, tc.p2)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("FindPath(%v, %v) = %v, want %v", tc.p1, tc.p2, got, tc.want)
			}
			if got != nil && Bends(got) > MaxBends {
				t.Errorf("path %v has %d bends", got, Bends(got))
			}
		})
	}
}

func TestFindPathTwoBendsThroughInterior(t *testing.T) {
	// A at (0,0) and (2,2); corners are blocked, column 1 is open.
	tokens, rows, cols := tokensFromRows(
		"A.X",
		"X.X",
		"X.A",
	)
	g := BuildGrid(tokens, rows, cols)
	got := FindPath(g, P(0, 0), P(2, 2))
	want := []Position{P(0, 0), P(0, 1), P(2, 1), P(2, 2)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FindPath = %v, want %v", got, want)
	}
}

func TestFindPathOffBoardRouting(t *testing.T) {
	// 1x3 board, blocked in the middle: only the ring above connects.
	tokens, rows, cols := tokensFromRows("ABA")
	g := BuildGrid(tokens, rows, cols)

	path := FindPath(g, P(0, 0), P(0, 2))
	if path == nil {
		t.Fatal("expected a path around the board")
	}
	if Bends(path) != 2 {
		t.Errorf("expected 2 bends, got %d (%v)", Bends(path), path)
	}
	offBoard := false
	for _, p := range path {
		if p.Row == -1 || p.Row == rows {
			offBoard = true
		}
	}
	if !offBoard {
		t.Errorf("expected path through ring row, got %v", path)
	}
}

func TestFindPathSamePoint(t *testing.T) {
	tokens, rows, cols := tokensFromRows("A.A")
	g := BuildGrid(tokens, rows, cols)
	for _, p := range []Position{P(0, 0), P(0, 1), P(-1, -1)} {
		if path := FindPath(g, p, p); path != nil {
			t.Errorf("FindPath(%v, %v) = %v, want nil", p, p, path)
		}
	}
}

func TestFindPathNone(t *testing.T) {
	tokens, rows, cols := tokensFromRows(
		"AB",
		"BA",
	)
	g := BuildGrid(tokens, rows, cols)
	if path := FindPath(g, P(0, 0), P(1, 1)); path != nil {
		t.Errorf("expected no path, got %v", path)
	}
	if path := FindPath(g, P(0, 1), P(1, 0)); path != nil {
		t.Errorf("expected no path, got %v", path)
	}
}

func TestFindPathDeterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	tokens, err := Generate(rng, FullShape(6, 8), DefaultAlphabet())
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	// Punch some holes so that longer routes exist
	for i := 0; i < len(tokens); i += 3 {
		tokens[i].Removed = true
	}
	g := BuildGrid(tokens, 6, 8)

	for i := 0; i < len(tokens); i++ {
		for j := i + 1; j < len(tokens); j++ {
			first := FindPath(g, tokens[i].Pos, tokens[j].Pos)
			for range 3 {
				again := FindPath(g, tokens[i].Pos, tokens[j].Pos)
				if !reflect.DeepEqual(first, again) {
					t.Fatalf("FindPath not deterministic for %v-%v: %v vs %v",
						tokens[i].Pos, tokens[j].Pos, first, again)
				}
			}
		}
	}
}

func TestFindAnyMatchOrdering(t *testing.T) {
	// Pair (0,2) needs a ring route; pair (4,5) is adjacent. The outer loop
	// visits id 0 first, so the ring pair wins.
	tokens, rows, cols := tokensFromRows(
		"ABAB",
		"CCDD",
	)

	m, ok := FindAnyMatch(tokens, rows, cols)
	if !ok {
		t.Fatal("expected a match")
	}
	if m.A.ID != 0 || m.B.ID != 2 {
		t.Errorf("got pair (%d,%d), want (0,2)", m.A.ID, m.B.ID)
	}
	want := []Position{P(0, 0), P(-1, 0), P(-1, 2), P(0, 2)}
	if !reflect.DeepEqual(m.Path, want) {
		t.Errorf("path = %v, want %v", m.Path, want)
	}

	// Removed tokens are skipped
	tokens[0].Removed = true
	m, ok = FindAnyMatch(tokens, rows, cols)
	if !ok {
		t.Fatal("expected a match")
	}
	if m.A.ID != 1 || m.B.ID != 3 {
		t.Errorf("got pair (%d,%d), want (1,3)", m.A.ID, m.B.ID)
	}
}

func TestFindAnyMatchNone(t *testing.T) {
	tokens, rows, cols := tokensFromRows(
		"AB",
		"BA",
	)
	if _, ok := FindAnyMatch(tokens, rows, cols); ok {
		t.Error("expected no match")
	}
	if HasMatch(tokens, rows, cols) {
		t.Error("HasMatch should be false")
	}

	for i := range tokens {
		tokens[i].Removed = true
	}
	if _, ok := FindAnyMatch(tokens, rows, cols); ok {
		t.Error("exhausted board should have no match")
	}
}

func TestShuffleRemainingPreservesMultisetAndPositions(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	tokens, err := Generate(rng, FullShape(6, 8), DefaultAlphabet())
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	for i := 0; i < len(tokens); i += 5 {
		tokens[i].Removed = true
	}
	before := Clone(tokens)

	for round := range 10 {
		ShuffleRemaining(rng, tokens)

		if got, want := liveSymbols(tokens), liveSymbols(before); !reflect.DeepEqual(got, want) {
			t.Fatalf("round %d: live multiset changed: %v vs %v", round, got, want)
		}
		for i := range tokens {
			if tokens[i].Pos != before[i].Pos {
				t.Fatalf("round %d: token %d moved", round, i)
			}
			if tokens[i].Removed != before[i].Removed {
				t.Fatalf("round %d: token %d removed flag changed", round, i)
			}
			if tokens[i].Removed && tokens[i].Symbol != before[i].Symbol {
				t.Fatalf("round %d: removed token %d changed symbol", round, i)
			}
		}
	}
}

func TestBends(t *testing.T) {
	tests := []struct {
		path []Position
		want int
	}{
		{[]Position{P(0, 0), P(0, 3)}, 0},
		{[]Position{P(0, 0), P(0, 2), P(2, 2)}, 1},
		{[]Position{P(0, 0), P(-1, 0), P(-1, 2), P(0, 2)}, 2},
		{[]Position{P(0, 0), P(0, -1), P(0, -1), P(0, 2)}, 0},
	}
	for _, tc := range tests {
		if got := Bends(tc.path); got != tc.want {
			t.Errorf("Bends(%v) = %d, want %d", tc.path, got, tc.want)
		}
	}
}

func liveSymbols(tokens []Token) []Symbol {
	var out []Symbol
	for _, t := range tokens {
		if !t.Removed {
			out = append(out, t.Symbol)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
