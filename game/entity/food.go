package entity

import "snake-classic/game/types"

// Tier is the food category; it decides points and spawn odds
type Tier uint8

const (
	Normal Tier = iota
	Bonus
	Super
)

var tierPoints = map[Tier]int{
	Normal: 10,
	Bonus:  50,
	Super:  100,
}

func (t Tier) Points() int {
	return tierPoints[t]
}

func (t Tier) String() string {
	switch t {
	case Bonus:
		return "bonus"
	case Super:
		return "super"
	}
	return "normal"
}

// Food is the single active item on the grid
type Food struct {
	Position types.Point
	Tier     Tier
}

func NewFood(pos types.Point, tier Tier) Food {
	return Food{Position: pos, Tier: tier}
}

func (f Food) Points() int {
	return f.Tier.Points()
}
