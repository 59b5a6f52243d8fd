package mirror

// TargetPhase is a step in the target's lifecycle.
type TargetPhase int

const (
	TargetHidden       TargetPhase = iota // Light is off
	TargetAppearing                       // Frames run up to the last one
	TargetVisible                         // Can be hit
	TargetDisappearing                    // Hit; frames run back down
	TargetGone                            // Level solved
)

// String returns the phase name.
func (p TargetPhase) String() string {
	switch p {
	case TargetHidden:
		return "hidden"
	case TargetAppearing:
		return "appearing"
	case TargetVisible:
		return "visible"
	case TargetDisappearing:
		return "disappearing"
	case TargetGone:
		return "gone"
	default:
		return "unknown"
	}
}

// targetAnim steps the target animation one tick at a time.
type targetAnim struct {
	phase      TargetPhase
	frame      int
	timer      int
	frames     int // Frame count, last frame is fully shown
	frameTicks int // Ticks per frame
}

func newTargetAnim(frames, frameTicks int) targetAnim {
	return targetAnim{
		frames:     max(1, frames),
		frameTicks: max(1, frameTicks),
	}
}

// start begins the appearing animation from the first frame.
func (a *targetAnim) start() {
	a.phase = TargetAppearing
	a.frame = 0
	a.timer = 0
}

// hit begins the disappearing animation from the last frame.
// Only a visible target can be hit.
func (a *targetAnim) hit() bool {
	if a.phase != TargetVisible {
		return false
	}
	a.phase = TargetDisappearing
	a.frame = a.frames - 1
	a.timer = 0
	return true
}

// advance moves the animation by one tick.
func (a *targetAnim) advance() {
	if a.phase != TargetAppearing && a.phase != TargetDisappearing {
		return
	}

	a.timer++
	if a.timer < a.frameTicks {
		return
	}
	a.timer = 0

	switch a.phase {
	case TargetAppearing:
		if a.frame < a.frames-1 {
			a.frame++
		} else {
			a.phase = TargetVisible
		}
	case TargetDisappearing:
		if a.frame > 0 {
			a.frame--
		} else {
			a.phase = TargetGone
		}
	}
}

// traceable reports whether the ray can hit the target right now.
func (a targetAnim) traceable() bool {
	return a.phase == TargetVisible
}

// shown reports whether the target should be drawn.
func (a targetAnim) shown() bool {
	return a.phase == TargetAppearing || a.phase == TargetVisible || a.phase == TargetDisappearing
}
