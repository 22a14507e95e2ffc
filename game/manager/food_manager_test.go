package manager

import (
	"testing"

	"golang.org/x/exp/rand"

	"snake-classic/game/entity"
	"snake-classic/game/types"
)

func TestSpawnAvoidsOccupiedCells(t *testing.T) {
	grid := types.Grid{Width: 6, Height: 6}
	fm := NewFoodManager(grid, 42)
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 200; i++ {
		// random occupancy leaving at least one free cell
		occupied := make(map[types.Point]struct{})
		cells := grid.Cells()
		n := rng.Intn(len(cells))
		for _, idx := range rng.Perm(len(cells))[:n] {
			occupied[cells[idx]] = struct{}{}
		}

		food := fm.Spawn(occupied)
		if _, taken := occupied[food.Position]; taken {
			t.Fatalf("food spawned on occupied cell %v", food.Position)
		}
		if !grid.InBounds(food.Position) {
			t.Fatalf("food spawned out of bounds at %v", food.Position)
		}
	}
}

func TestSpawnSingleFreeCell(t *testing.T) {
	grid := types.Grid{Width: 3, Height: 3}
	fm := NewFoodManager(grid, 1)

	free := types.Point{X: 2, Y: 1}
	occupied := make(map[types.Point]struct{})
	for _, c := range grid.Cells() {
		if c != free {
			occupied[c] = struct{}{}
		}
	}

	for i := 0; i < 20; i++ {
		if got := fm.Spawn(occupied).Position; got != free {
			t.Fatalf("expected %v, got %v", free, got)
		}
	}
}

func TestSpawnFullGridFallsBack(t *testing.T) {
	grid := types.Grid{Width: 2, Height: 2}
	fm := NewFoodManager(grid, 1)

	occupied := make(map[types.Point]struct{})
	for _, c := range grid.Cells() {
		occupied[c] = struct{}{}
	}

	if got := fm.Spawn(occupied).Position; got != FallbackFoodPosition {
		t.Errorf("expected fallback %v, got %v", FallbackFoodPosition, got)
	}
}

func TestSpawnTierDistribution(t *testing.T) {
	fm := NewFoodManager(types.DefaultGrid, 2024)

	const draws = 20000
	counts := make(map[entity.Tier]int)
	for i := 0; i < draws; i++ {
		counts[fm.Spawn(nil).Tier]++
	}

	check := func(tier entity.Tier, want float64) {
		got := float64(counts[tier]) / draws
		if got < want-0.02 || got > want+0.02 {
			t.Errorf("%s: frequency %.3f, want about %.2f", tier, got, want)
		}
	}
	check(entity.Super, 0.05)
	check(entity.Bonus, 0.10)
	check(entity.Normal, 0.85)
}

func TestSpawnSameSeedSameSequence(t *testing.T) {
	a := NewFoodManager(types.DefaultGrid, 99)
	b := NewFoodManager(types.DefaultGrid, 99)
	for i := 0; i < 50; i++ {
		if fa, fb := a.Spawn(nil), b.Spawn(nil); fa != fb {
			t.Fatalf("draw %d differs: %+v vs %+v", i, fa, fb)
		}
	}
}
