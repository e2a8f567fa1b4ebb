package core

import (
	"errors"
	"testing"
)

func TestRandomSourceChanceBounds(t *testing.T) {
	for _, c := range []float64{-0.1, 1.5} {
		if _, err := NewRandomSource(1, c); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("NewRandomSource(chance=%v) err = %v, want ErrInvalidConfig", c, err)
		}
	}
}

func TestRandomSourceExtremes(t *testing.T) {
	never, _ := NewRandomSource(3, 0)
	always, _ := NewRandomSource(3, 1)
	for i := 0; i < 1000; i++ {
		if never.Alive() {
			t.Fatal("chance 0 produced a live cell")
		}
		if !always.Alive() {
			t.Fatal("chance 1 produced a dead cell")
		}
	}
}

func TestRandomSourceDeterministic(t *testing.T) {
	a, _ := NewRandomSource(42, DefaultLiveChance)
	b, _ := NewRandomSource(42, DefaultLiveChance)
	for i := 0; i < 256; i++ {
		if a.Alive() != b.Alive() {
			t.Fatalf("sequences diverged at %d", i)
		}
	}
	a.Seed(9)
	b.Seed(9)
	if a.Alive() != b.Alive() {
		t.Fatal("reseeded sources diverged")
	}
}

func TestRandomSourceBias(t *testing.T) {
	src, _ := NewRandomSource(5, 1.0/3.0)
	alive := 0
	const n = 30000
	for i := 0; i < n; i++ {
		if src.Alive() {
			alive++
		}
	}
	ratio := float64(alive) / n
	if ratio < 0.30 || ratio > 0.37 {
		t.Fatalf("live ratio = %.3f, want about 0.333", ratio)
	}
}

func TestRandomSourceSetChance(t *testing.T) {
	src, _ := NewRandomSource(1, 0)
	if err := src.SetChance(2); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("SetChance(2) err = %v", err)
	}
	if src.Chance() != 0 {
		t.Fatalf("chance = %v after rejected update", src.Chance())
	}
	if err := src.SetChance(1); err != nil {
		t.Fatal(err)
	}
	if !src.Alive() {
		t.Fatal("chance 1 produced a dead cell")
	}
}
