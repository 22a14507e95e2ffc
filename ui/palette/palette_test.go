package palette

import (
	"testing"

	"snake-classic/game/entity"
)

func TestLookup(t *testing.T) {
	for _, name := range []string{"classic", "neon", "dark", "nature"} {
		if p := Lookup(name); p.Name != name {
			t.Errorf("Lookup(%q) returned %q", name, p.Name)
		}
	}
	if p := Lookup("sepia"); p.Name != Default {
		t.Errorf("unknown theme should fall back to %s, got %s", Default, p.Name)
	}
	if !Lookup("neon").Glow || Lookup("dark").Glow {
		t.Error("only neon glows")
	}
}

func TestNextCycles(t *testing.T) {
	seen := map[string]bool{}
	name := Default
	for i := 0; i < len(Names()); i++ {
		seen[name] = true
		name = Next(name)
	}
	if name != Default || len(seen) != 4 {
		t.Errorf("cycle visited %v and ended on %s", seen, name)
	}
	if Next("sepia") != Default {
		t.Error("unknown theme should cycle to the default")
	}
}

func TestSegmentFade(t *testing.T) {
	p := Lookup("dark")
	if p.Segment(0) != p.Snake {
		t.Error("head should use the full snake colour")
	}
	// 90% and 30% of 255, give or take rounding
	if a := p.Segment(2).A; a < 228 || a > 230 {
		t.Errorf("segment 2 alpha: got %d", a)
	}
	if a := p.Segment(40).A; a < 75 || a > 77 {
		t.Errorf("tail alpha should floor at 30%%, got %d", a)
	}
}

func TestFoodColor(t *testing.T) {
	if FoodColor(entity.Super) == FoodColor(entity.Normal) {
		t.Error("tiers should be distinguishable")
	}
	if FoodColor(entity.Tier(99)) != FoodColor(entity.Normal) {
		t.Error("unknown tier should draw as normal")
	}
}

func TestOver(t *testing.T) {
	white, black := RGB(255, 255, 255), RGB(0, 0, 0)
	if got := white.Over(black); got != white {
		t.Errorf("opaque colour should win, got %+v", got)
	}
	if got := white.WithAlpha(0).Over(black); got != black {
		t.Errorf("transparent colour should vanish, got %+v", got)
	}
	half := white.WithAlpha(0.5).Over(black)
	if half.R < 126 || half.R > 128 || half.A != 255 {
		t.Errorf("half blend: got %+v", half)
	}
}
