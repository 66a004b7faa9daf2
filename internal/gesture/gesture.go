package gesture

import "math"

// Kind is the classification emitted when a gesture ends.
type Kind int

const (
	// None means the gesture was released without crossing any threshold.
	// The caller must reset its visual state to neutral.
	None Kind = iota
	Tap
	SwipeLeft
	SwipeRight
)

func (k Kind) String() string {
	switch k {
	case Tap:
		return "tap"
	case SwipeLeft:
		return "swipe-left"
	case SwipeRight:
		return "swipe-right"
	default:
		return "none"
	}
}

const (
	// DefaultThreshold is the minimum horizontal displacement for a
	// directional swipe.
	DefaultThreshold = 100.0
	// DefaultDelta is the maximum total displacement that still counts
	// as a tap.
	DefaultDelta = 10.0

	// indicatorDistance is where the like/reject hints start showing
	// while a drag is in progress.
	indicatorDistance = 30.0
)

// Tracker converts a stream of pointer positions into a live horizontal
// displacement and, on release, exactly one gesture classification.
// The zero value is not usable; call NewTracker.
type Tracker struct {
	threshold float64
	delta     float64

	startX, startY     float64
	currentX, currentY float64
	active             bool
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithThreshold overrides the swipe threshold.
func WithThreshold(threshold float64) Option {
	return func(t *Tracker) { t.threshold = threshold }
}

// WithDelta overrides the tap tolerance.
func WithDelta(delta float64) Option {
	return func(t *Tracker) { t.delta = delta }
}

// NewTracker returns a Tracker with the default threshold and delta
// unless overridden.
func NewTracker(opts ...Option) *Tracker {
	t := &Tracker{threshold: DefaultThreshold, delta: DefaultDelta}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Start begins a gesture at the given pointer position.
func (t *Tracker) Start(x, y float64) {
	t.startX, t.startY = x, y
	t.currentX, t.currentY = x, y
	t.active = true
}

// Move updates the current pointer position. Ignored unless a gesture
// is active.
func (t *Tracker) Move(x, y float64) {
	if !t.active {
		return
	}
	t.currentX, t.currentY = x, y
}

// Active reports whether a gesture is in progress.
func (t *Tracker) Active() bool { return t.active }

// Distance returns the live horizontal displacement of the active
// gesture. Zero when idle.
func (t *Tracker) Distance() float64 {
	if !t.active {
		return 0
	}
	return t.currentX - t.startX
}

// Rotation returns the card rotation, in degrees, derived from the
// current displacement. Part of the observable feedback contract.
func (t *Tracker) Rotation() float64 {
	return t.Distance() * 0.05
}

// Opacity returns the card opacity derived from the current
// displacement, floored at 0.1.
func (t *Tracker) Opacity() float64 {
	return math.Max(0.1, 1-math.Abs(t.Distance())/400)
}

// ShowLikeIndicator reports whether the drag has moved far enough right
// to hint at an accept.
func (t *Tracker) ShowLikeIndicator() bool {
	return t.Distance() > indicatorDistance
}

// ShowRejectIndicator reports whether the drag has moved far enough
// left to hint at a reject.
func (t *Tracker) ShowRejectIndicator() bool {
	return t.Distance() < -indicatorDistance
}

// End finishes the gesture and returns its classification. At most one
// of tap, swipe-left, swipe-right fires per gesture; releases exactly
// at the threshold resolve to None. The tracker returns to idle.
func (t *Tracker) End() Kind {
	if !t.active {
		return None
	}
	dx := t.currentX - t.startX
	dy := t.currentY - t.startY
	t.active = false
	t.startX, t.startY = 0, 0
	t.currentX, t.currentY = 0, 0

	total := math.Sqrt(dx*dx + dy*dy)
	if total < t.delta {
		return Tap
	}
	if math.Abs(dx) > math.Abs(dy) && math.Abs(dx) > t.delta {
		if dx > t.threshold {
			return SwipeRight
		}
		if dx < -t.threshold {
			return SwipeLeft
		}
	}
	return None
}

// Classify is a convenience for callers that already know the start and
// end positions of a completed gesture.
func Classify(dx, dy, threshold, delta float64) Kind {
	t := NewTracker(WithThreshold(threshold), WithDelta(delta))
	t.Start(0, 0)
	t.Move(dx, dy)
	return t.End()
}
