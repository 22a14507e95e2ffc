package manager

import (
	"time"

	"golang.org/x/exp/rand"

	"snake-classic/game/entity"
	"snake-classic/game/types"
)

// Cumulative tier odds for a single uniform draw in [0, 1)
const (
	superChance = 0.05
	bonusChance = 0.15
)

// FallbackFoodPosition is used when every cell is occupied
var FallbackFoodPosition = types.Point{X: 0, Y: 0}

type FoodManager struct {
	grid types.Grid
	rng  *rand.Rand
}

// NewFoodManager creates a spawner for grid. A zero seed picks a time-based one.
func NewFoodManager(grid types.Grid, seed uint64) *FoodManager {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &FoodManager{
		grid: grid,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Spawn picks a free cell uniformly and an independent tier
func (fm *FoodManager) Spawn(occupied map[types.Point]struct{}) entity.Food {
	pos := fm.freeCell(occupied)
	return entity.NewFood(pos, fm.tier())
}

func (fm *FoodManager) freeCell(occupied map[types.Point]struct{}) types.Point {
	free := make([]types.Point, 0, fm.grid.Width*fm.grid.Height)
	for _, cell := range fm.grid.Cells() {
		if _, taken := occupied[cell]; !taken {
			free = append(free, cell)
		}
	}

	if len(free) == 0 {
		return FallbackFoodPosition
	}
	return free[fm.rng.Intn(len(free))]
}

func (fm *FoodManager) tier() entity.Tier {
	r := fm.rng.Float64()
	switch {
	case r < superChance:
		return entity.Super
	case r < bonusChance:
		return entity.Bonus
	default:
		return entity.Normal
	}
}
