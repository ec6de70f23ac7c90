package pathfind

import (
	"errors"
	"math/rand/v2"
	"reflect"
	"testing"

	"github.com/danieljhkim/gridcmd/internal/grid"
)

func mustGrid(t *testing.T, w, h int, start grid.Coord) *grid.Grid {
	t.Helper()
	g, err := grid.New(w, h, start)
	if err != nil {
		t.Fatalf("grid.New() error = %v", err)
	}
	return g
}

// bfsDistance is the reference shortest distance over Empty cells.
func bfsDistance(g *grid.Grid, start, target grid.Coord) (int, bool) {
	dist := map[grid.Coord]int{start: 0}
	queue := []grid.Coord{start}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == target {
			return dist[c], true
		}
		for _, n := range Successors(g, c) {
			if _, ok := dist[n]; ok {
				continue
			}
			dist[n] = dist[c] + 1
			queue = append(queue, n)
		}
	}
	return 0, false
}

func TestFind_EmptyGridScenario(t *testing.T) {
	g := mustGrid(t, 3, 3, grid.C(0, 0))

	path, ok := Find(g, g.Agent(), grid.C(2, 2))
	if !ok {
		t.Fatal("expected a path")
	}
	want := Path{grid.C(0, 0), grid.C(1, 0), grid.C(2, 0), grid.C(2, 1), grid.C(2, 2)}
	if !reflect.DeepEqual(path, want) {
		t.Errorf("Find() = %v, want %v", path, want)
	}
}

func TestFind_OccupiedTarget(t *testing.T) {
	for _, state := range []grid.CellState{grid.Tile, grid.Enemy} {
		t.Run(state.String(), func(t *testing.T) {
			g := mustGrid(t, 3, 3, grid.C(0, 0))
			if err := g.ToggleMarker(grid.C(2, 2), state); err != nil {
				t.Fatalf("ToggleMarker() error = %v", err)
			}
			if path, ok := Find(g, g.Agent(), grid.C(2, 2)); ok {
				t.Errorf("expected no path, got %v", path)
			}
		})
	}

	t.Run("adjacent obstacle", func(t *testing.T) {
		g := mustGrid(t, 3, 1, grid.C(0, 0))
		_ = g.SetCell(grid.C(1, 0), grid.Tile)
		if _, ok := Find(g, g.Agent(), grid.C(1, 0)); ok {
			t.Error("expected no path to adjacent tile")
		}
	})
}

func TestFind_Unreachable(t *testing.T) {
	g := mustGrid(t, 5, 5, grid.C(0, 0))
	// wall off column 2 entirely
	for y := 0; y < 5; y++ {
		_ = g.SetCell(grid.C(2, y), grid.Tile)
	}
	if path, ok := Find(g, g.Agent(), grid.C(4, 4)); ok {
		t.Errorf("expected no path, got %v", path)
	}
}

func TestFind_StartEqualsTarget(t *testing.T) {
	t.Run("agent cell", func(t *testing.T) {
		g := mustGrid(t, 3, 3, grid.C(1, 1))
		path, ok := Find(g, g.Agent(), g.Agent())
		if !ok {
			t.Fatal("expected single-element path")
		}
		if !reflect.DeepEqual(path, Path{grid.C(1, 1)}) {
			t.Errorf("Find() = %v, want [(1,1)]", path)
		}
		if path.Len() != 0 {
			t.Errorf("Len() = %d, want 0", path.Len())
		}
	})

	t.Run("agent cell cleared by toggling", func(t *testing.T) {
		g := mustGrid(t, 3, 3, grid.C(1, 1))
		_ = g.ToggleMarker(grid.C(1, 1), grid.Tile)
		_ = g.ToggleMarker(grid.C(1, 1), grid.Tile)
		path, ok := Find(g, g.Agent(), g.Agent())
		if !ok || len(path) != 1 {
			t.Errorf("expected single-element path on empty cell, got %v, %v", path, ok)
		}
	})

	t.Run("obstacle toggled onto agent", func(t *testing.T) {
		g := mustGrid(t, 3, 3, grid.C(1, 1))
		_ = g.ToggleMarker(grid.C(1, 1), grid.Enemy)
		if _, ok := Find(g, g.Agent(), g.Agent()); ok {
			t.Error("expected no path when the target holds an obstacle")
		}
	})
}

func TestFind_StartIsAlwaysOrigin(t *testing.T) {
	// a tile on the agent's cell does not stop the search leaving it
	g := mustGrid(t, 3, 1, grid.C(0, 0))
	_ = g.ToggleMarker(grid.C(0, 0), grid.Tile)
	path, ok := Find(g, g.Agent(), grid.C(2, 0))
	if !ok {
		t.Fatal("expected a path from an overwritten origin")
	}
	if path.Len() != 2 {
		t.Errorf("Len() = %d, want 2", path.Len())
	}
}

func TestFind_OutOfBounds(t *testing.T) {
	g := mustGrid(t, 3, 3, grid.C(0, 0))
	if _, ok := Find(g, g.Agent(), grid.C(3, 0)); ok {
		t.Error("expected no path for out-of-bounds target")
	}
	if _, ok := Find(g, grid.C(-1, 0), grid.C(1, 1)); ok {
		t.Error("expected no path for out-of-bounds start")
	}
}

func TestFind_Detour(t *testing.T) {
	// .@..
	// ###.
	// X...
	g := mustGrid(t, 4, 3, grid.C(1, 0))
	for x := 0; x < 3; x++ {
		_ = g.SetCell(grid.C(x, 1), grid.Tile)
	}

	path, ok := Find(g, g.Agent(), grid.C(0, 2))
	if !ok {
		t.Fatal("expected a path around the wall")
	}
	if err := path.Valid(); err != nil {
		t.Fatalf("Valid() error = %v", err)
	}
	if path.Len() != 7 {
		t.Errorf("Len() = %d, want 7 (path %v)", path.Len(), path)
	}
}

func TestFind_Deterministic(t *testing.T) {
	g := mustGrid(t, 19, 13, grid.C(0, 0))
	rng := rand.New(rand.NewPCG(7, 11))
	for i := 0; i < 40; i++ {
		c := grid.C(rng.IntN(19), rng.IntN(13))
		if c == g.Agent() {
			continue
		}
		_ = g.SetCell(c, grid.Tile)
	}

	target := grid.C(18, 12)
	_ = g.SetCell(target, grid.Empty)
	first, firstOK := Find(g, g.Agent(), target)
	for i := 0; i < 10; i++ {
		again, ok := Find(g, g.Agent(), target)
		if ok != firstOK || !reflect.DeepEqual(again, first) {
			t.Fatalf("run %d produced %v (%v), want %v (%v)", i, again, ok, first, firstOK)
		}
	}
}

func TestFind_MatchesBreadthFirstDistance(t *testing.T) {
	const w, h = 12, 9
	rng := rand.New(rand.NewPCG(2024, 1))

	for trial := 0; trial < 60; trial++ {
		start := grid.C(rng.IntN(w), rng.IntN(h))
		g := mustGrid(t, w, h, start)
		for i := 0; i < 30; i++ {
			c := grid.C(rng.IntN(w), rng.IntN(h))
			if c == start {
				continue
			}
			marker := grid.Tile
			if rng.IntN(2) == 0 {
				marker = grid.Enemy
			}
			_ = g.SetCell(c, marker)
		}
		target := grid.C(rng.IntN(w), rng.IntN(h))
		if target == start {
			continue
		}

		want, reachable := bfsDistance(g, start, target)
		path, ok := Find(g, start, target)
		if ok != reachable {
			t.Fatalf("trial %d: Find ok = %v, reference reachable = %v\n%s", trial, ok, reachable, g.Render())
		}
		if !ok {
			continue
		}
		if err := path.Valid(); err != nil {
			t.Fatalf("trial %d: invalid path: %v", trial, err)
		}
		if path.Start() != start || path.Target() != target {
			t.Fatalf("trial %d: endpoints %v..%v, want %v..%v", trial, path.Start(), path.Target(), start, target)
		}
		if path.Len() != want {
			t.Fatalf("trial %d: Len() = %d, want %d\n%s", trial, path.Len(), want, g.RenderPath(path))
		}
		for _, c := range path[1:] {
			if s, _ := g.Query(c); s != grid.Empty {
				t.Fatalf("trial %d: path enters %v cell at %v", trial, s, c)
			}
		}
	}
}

func TestFind_ObstacleFreeIsManhattan(t *testing.T) {
	g := mustGrid(t, 19, 13, grid.C(4, 6))
	targets := []grid.Coord{grid.C(0, 0), grid.C(18, 12), grid.C(4, 0), grid.C(10, 6), grid.C(5, 7)}
	for _, target := range targets {
		path, ok := Find(g, g.Agent(), target)
		if !ok {
			t.Fatalf("expected path to %v", target)
		}
		if path.Len() != g.Agent().Manhattan(target) {
			t.Errorf("path to %v has %d steps, want %d", target, path.Len(), g.Agent().Manhattan(target))
		}
	}
}

func TestSuccessors_Order(t *testing.T) {
	g := mustGrid(t, 3, 3, grid.C(0, 0))
	got := Successors(g, grid.C(1, 1))
	want := []grid.Coord{grid.C(0, 1), grid.C(2, 1), grid.C(1, 2), grid.C(1, 0)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Successors() = %v, want %v", got, want)
	}

	// next to the agent: Left is blocked, Up is off the grid
	got = Successors(g, grid.C(1, 0))
	want = []grid.Coord{grid.C(2, 0), grid.C(1, 1)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Successors() = %v, want %v", got, want)
	}
}

func TestPath_Valid(t *testing.T) {
	tests := []struct {
		name    string
		path    Path
		wantErr error
	}{
		{name: "single", path: Path{grid.C(0, 0)}},
		{name: "straight", path: Path{grid.C(0, 0), grid.C(1, 0), grid.C(2, 0)}},
		{name: "empty", path: Path{}, wantErr: ErrEmptyPath},
		{name: "diagonal", path: Path{grid.C(0, 0), grid.C(1, 1)}, wantErr: ErrBrokenPath},
		{name: "jump", path: Path{grid.C(0, 0), grid.C(2, 0)}, wantErr: ErrBrokenPath},
		{name: "revisit", path: Path{grid.C(0, 0), grid.C(1, 0), grid.C(0, 0)}, wantErr: ErrRepeatedCell},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.path.Valid()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Valid() error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Valid() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
