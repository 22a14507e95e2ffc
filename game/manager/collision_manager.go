package manager

import (
	"snake-classic/game/entity"
	"snake-classic/game/types"
)

// CollisionType represents the outcome of a post-move check
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
	FoodCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	case FoodCollision:
		return "food"
	}
	return "none"
}

// Fatal reports whether the collision ends the game
func (c CollisionType) Fatal() bool {
	return c == WallCollision || c == SelfCollision
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckCollision classifies the snake's current head position.
// Wall is checked before self; a fatal hit short-circuits the food check.
func (cm *CollisionManager) CheckCollision(snake *entity.Snake, food entity.Food) CollisionType {
	if snake.CheckWallCollision(cm.grid) {
		return WallCollision
	}
	if snake.CheckSelfCollision() {
		return SelfCollision
	}
	if snake.CheckFoodCollision(food) {
		return FoodCollision
	}
	return NoCollision
}
