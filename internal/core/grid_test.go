package core

import (
	"errors"
	"testing"
)

type constSource bool

func (c constSource) Alive() bool { return bool(c) }

func TestNewGridRejectsNonPositive(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 3}} {
		if _, err := NewGrid(dims[0], dims[1]); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("NewGrid(%d,%d) err = %v, want ErrInvalidConfig", dims[0], dims[1], err)
		}
	}
}

func TestGetOutOfBounds(t *testing.T) {
	g, err := NewGrid(4, 3)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range []Point{{-1, 0}, {0, -1}, {4, 0}, {0, 3}} {
		if _, err := g.Get(p.X, p.Y); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Get(%d,%d) err = %v, want ErrOutOfBounds", p.X, p.Y, err)
		}
	}
}

func TestSetIgnoresOutOfBounds(t *testing.T) {
	g, _ := NewGrid(3, 3)
	g.Set(-1, 1, Alive)
	g.Set(3, 1, Alive)
	g.Set(1, 3, Alive)
	if got := g.Population(); got != 0 {
		t.Fatalf("population after out of bounds writes = %d, want 0", got)
	}
	g.Set(2, 1, Alive)
	c, err := g.Get(2, 1)
	if err != nil || c != Alive {
		t.Fatalf("Get(2,1) = %v, %v, want alive", c, err)
	}
}

func TestResizeClear(t *testing.T) {
	g, _ := NewGrid(2, 2)
	g.Set(1, 1, Alive)
	if err := g.Resize(7, 5, PatternClear, nil); err != nil {
		t.Fatal(err)
	}
	if g.Size() != (Size{W: 7, H: 5}) {
		t.Fatalf("size = %+v, want 7x5", g.Size())
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 7; x++ {
			c, err := g.Get(x, y)
			if err != nil {
				t.Fatal(err)
			}
			if c != Dead {
				t.Fatalf("cell (%d,%d) = %v after clear", x, y, c)
			}
		}
	}
}

func TestResizeRandomNotUniform(t *testing.T) {
	src, err := NewRandomSource(7, DefaultLiveChance)
	if err != nil {
		t.Fatal(err)
	}
	g, _ := NewGrid(1, 1)
	if err := g.Resize(32, 32, PatternRandom, src); err != nil {
		t.Fatal(err)
	}
	pop := g.Population()
	if pop == 0 || pop == 32*32 {
		t.Fatalf("random fill produced uniform grid (population %d)", pop)
	}
}

func TestResizeInvalidKeepsState(t *testing.T) {
	g, _ := NewGrid(3, 3)
	g.Set(1, 1, Alive)
	if err := g.Resize(0, 3, PatternClear, nil); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("Resize(0,3) err = %v, want ErrInvalidConfig", err)
	}
	if err := g.Resize(3, 3, PatternRandom, nil); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("Resize random without source err = %v, want ErrInvalidConfig", err)
	}
	if g.Size() != (Size{W: 3, H: 3}) || !g.IsAlive(1, 1) {
		t.Fatal("rejected resize mutated the grid")
	}
}

func TestFillRandomUsesSource(t *testing.T) {
	g, _ := NewGrid(4, 4)
	g.Fill(PatternRandom, constSource(true))
	if got := g.Population(); got != 16 {
		t.Fatalf("population = %d, want 16", got)
	}
	g.Fill(PatternClear, nil)
	if got := g.Population(); got != 0 {
		t.Fatalf("population after clear = %d, want 0", got)
	}
}

func TestEachRowMajor(t *testing.T) {
	g, _ := NewGrid(3, 2)
	g.Set(2, 1, Alive)
	var seen []Point
	alive := 0
	g.Each(func(x, y int, c Cell) {
		seen = append(seen, Point{x, y})
		if c == Alive {
			alive++
			if x != 2 || y != 1 {
				t.Errorf("unexpected alive cell at (%d,%d)", x, y)
			}
		}
	})
	if len(seen) != 6 || seen[0] != (Point{0, 0}) || seen[3] != (Point{0, 1}) {
		t.Fatalf("iteration order = %v", seen)
	}
	if alive != 1 {
		t.Fatalf("alive cells seen = %d, want 1", alive)
	}
}

func TestCloneIndependent(t *testing.T) {
	g, _ := NewGrid(3, 3)
	g.Set(0, 0, Alive)
	cp := g.Clone()
	if !cp.Equal(g) {
		t.Fatal("clone differs from source")
	}
	cp.Set(1, 1, Alive)
	if g.IsAlive(1, 1) {
		t.Fatal("writing to clone changed the source")
	}
	if cp.Equal(g) {
		t.Fatal("Equal ignored differing cell")
	}
}

func TestEnumStrings(t *testing.T) {
	if Alive.String() != "alive" || Dead.String() != "dead" {
		t.Errorf("cell strings = %q, %q", Alive, Dead)
	}
	if PatternClear.String() != "clear" || PatternRandom.String() != "random" {
		t.Errorf("pattern strings = %q, %q", PatternClear, PatternRandom)
	}
}
