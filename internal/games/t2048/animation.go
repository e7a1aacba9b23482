package t2048

import (
	"fmt"

	"github.com/vovakirdan/tui-2048/internal/games/t2048/engine"
)

// AnimationMode selects tile animation speed.
type AnimationMode string

const (
	AnimationNormal AnimationMode = "normal"
	AnimationFast   AnimationMode = "fast"
	AnimationOff    AnimationMode = "off"
)

// AnimationModes lists the selectable modes in display order.
var AnimationModes = []AnimationMode{AnimationNormal, AnimationFast, AnimationOff}

// ParseAnimationMode validates a mode name.
func ParseAnimationMode(s string) (AnimationMode, error) {
	for _, m := range AnimationModes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("t2048: unknown animation mode %q", s)
}

// durations returns the slide and pop lengths in ticks (60 ticks/sec).
func (m AnimationMode) durations() (slide, pop int) {
	switch m {
	case AnimationFast:
		return 3, 2
	case AnimationOff:
		return 0, 0
	default:
		return 8, 6 // ~133ms / ~100ms
	}
}

// TileAnimation represents an animated tile.
type TileAnimation struct {
	Value    int     // Tile value
	FromX    int     // Start position X (in cells)
	FromY    int     // Start position Y (in cells)
	ToX      int     // End position X (in cells)
	ToY      int     // End position Y (in cells)
	Progress float64 // 0.0 → 1.0
	Merged   bool    // Source of a merge (for visual effect)
	IsNew    bool    // New or merged result tile (for pop effect)
}

// AnimationPhase represents the current phase of animation.
type AnimationPhase int

const (
	PhaseNone AnimationPhase = iota
	PhaseSlide
	PhasePop
)

// animator drives slide then pop animations derived from the tile
// markers the engine sets on a move result.
type animator struct {
	mode    AnimationMode
	phase   AnimationPhase
	ticks   int
	tiles   []TileAnimation
	pending []TileAnimation // Pop animations started after the slide
}

// start builds animations for the move from prev to next.
func (a *animator) start(prev, next engine.Board) {
	a.clear()
	slide, _ := a.mode.durations()
	if slide == 0 {
		return
	}

	prevPos := make(map[string]engine.Position)
	for _, row := range prev {
		for _, t := range row {
			if t != nil {
				prevPos[t.ID] = t.Pos
			}
		}
	}

	for _, row := range next {
		for _, t := range row {
			if t == nil {
				continue
			}
			switch {
			case t.MergedFrom != nil:
				for _, src := range t.MergedFrom {
					a.tiles = append(a.tiles, slideOf(src.Value, src.Pos, t.Pos, true))
				}
				a.pending = append(a.pending, popOf(t))
			case t.IsNew:
				a.pending = append(a.pending, popOf(t))
			default:
				from, ok := prevPos[t.ID]
				if !ok {
					from = t.Pos
				}
				a.tiles = append(a.tiles, slideOf(t.Value, from, t.Pos, false))
			}
		}
	}

	a.phase = PhaseSlide
}

func slideOf(value int, from, to engine.Position, merged bool) TileAnimation {
	return TileAnimation{
		Value:  value,
		FromX:  from.Col,
		FromY:  from.Row,
		ToX:    to.Col,
		ToY:    to.Row,
		Merged: merged,
	}
}

func popOf(t *engine.Tile) TileAnimation {
	return TileAnimation{
		Value: t.Value,
		FromX: t.Pos.Col,
		FromY: t.Pos.Row,
		ToX:   t.Pos.Col,
		ToY:   t.Pos.Row,
		IsNew: true,
	}
}

// update advances the animation by one tick.
// Returns true if animation is still in progress.
func (a *animator) update() bool {
	if a.phase == PhaseNone {
		return false
	}

	a.ticks++

	slide, pop := a.mode.durations()
	duration := slide
	if a.phase == PhasePop {
		duration = pop
	}
	if duration <= 0 {
		a.clear()
		return false
	}

	progress := min(float64(a.ticks)/float64(duration), 1.0)
	for i := range a.tiles {
		a.tiles[i].Progress = progress
	}

	if a.ticks >= duration {
		a.finish()
		return a.phase != PhaseNone
	}
	return true
}

// finish completes the current animation phase.
func (a *animator) finish() {
	if a.phase == PhaseSlide && len(a.pending) > 0 {
		a.tiles = a.pending
		a.pending = nil
		a.phase = PhasePop
		a.ticks = 0
		return
	}
	a.clear()
}

func (a *animator) clear() {
	a.phase = PhaseNone
	a.ticks = 0
	a.tiles = nil
	a.pending = nil
}

// active reports whether an animation is running.
func (a *animator) active() bool {
	return a.phase != PhaseNone
}

// easeOutQuad provides smooth deceleration for animation.
func easeOutQuad(t float64) float64 {
	return t * (2 - t)
}

// interpolatePosition calculates the current position during animation.
func (a *TileAnimation) interpolatePosition() (x, y float64) {
	t := easeOutQuad(a.Progress)
	x = float64(a.FromX) + (float64(a.ToX)-float64(a.FromX))*t
	y = float64(a.FromY) + (float64(a.ToY)-float64(a.FromY))*t
	return x, y
}
