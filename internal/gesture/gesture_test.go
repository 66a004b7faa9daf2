package gesture

import (
	"math"
	"testing"
)

func TestClassification(t *testing.T) {
	tests := []struct {
		name     string
		dx, dy   float64
		expected Kind
	}{
		{"right swipe past threshold", 150, 20, SwipeRight},
		{"left swipe past threshold", -150, -20, SwipeLeft},
		{"exactly at threshold is not a swipe", 100, 0, None},
		{"one past threshold is a swipe", 101, 0, SwipeRight},
		{"exactly at negative threshold is not a swipe", -100, 0, None},
		{"one past negative threshold is a swipe", -101, 0, SwipeLeft},
		{"tiny movement is a tap", 3, 4, Tap},
		{"zero movement is a tap", 0, 0, Tap},
		{"vertical-dominant movement is nothing", 40, 80, None},
		{"horizontal below threshold is nothing", 50, 10, None},
		{"diagonal past threshold but vertical-dominant", 120, 200, None},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.dx, tt.dy, DefaultThreshold, DefaultDelta)
			if got != tt.expected {
				t.Errorf("Classify(%v, %v) = %v, expected %v", tt.dx, tt.dy, got, tt.expected)
			}
		})
	}
}

func TestTapNeverBecomesSwipe(t *testing.T) {
	// Total movement of 5 with delta 10 is always a tap, whatever the
	// direction.
	for _, angle := range []float64{0, 45, 90, 135, 180, 225, 270, 315} {
		rad := angle * math.Pi / 180
		dx := 5 * math.Cos(rad)
		dy := 5 * math.Sin(rad)
		if got := Classify(dx, dy, DefaultThreshold, DefaultDelta); got != Tap {
			t.Errorf("Classify at angle %v = %v, expected Tap", angle, got)
		}
	}
}

func TestOnlyOneOutcomePerGesture(t *testing.T) {
	tr := NewTracker()
	tr.Start(10, 10)
	tr.Move(200, 30)
	if got := tr.End(); got != SwipeRight {
		t.Fatalf("End() = %v, expected SwipeRight", got)
	}
	// The gesture is consumed; a second End without Start emits nothing.
	if got := tr.End(); got != None {
		t.Errorf("second End() = %v, expected None", got)
	}
}

func TestLiveDisplacement(t *testing.T) {
	tr := NewTracker()
	if tr.Distance() != 0 {
		t.Errorf("idle Distance() = %v, expected 0", tr.Distance())
	}

	tr.Start(100, 100)
	tr.Move(160, 110)
	if tr.Distance() != 60 {
		t.Errorf("Distance() = %v, expected 60", tr.Distance())
	}
	if got := tr.Rotation(); math.Abs(got-3) > 1e-9 {
		t.Errorf("Rotation() = %v, expected 3", got)
	}
	if got := tr.Opacity(); math.Abs(got-0.85) > 1e-9 {
		t.Errorf("Opacity() = %v, expected 0.85", got)
	}
	if !tr.ShowLikeIndicator() || tr.ShowRejectIndicator() {
		t.Error("expected like indicator only at +60")
	}

	tr.Move(-300, 100)
	if got := tr.Opacity(); got != 0.1 {
		t.Errorf("Opacity() floored = %v, expected 0.1", got)
	}
	if !tr.ShowRejectIndicator() {
		t.Error("expected reject indicator at -400")
	}
}

func TestMoveIgnoredWhenIdle(t *testing.T) {
	tr := NewTracker()
	tr.Move(500, 0)
	if tr.Distance() != 0 {
		t.Errorf("Distance() after idle Move = %v, expected 0", tr.Distance())
	}
	if got := tr.End(); got != None {
		t.Errorf("End() without Start = %v, expected None", got)
	}
}

func TestCustomThresholds(t *testing.T) {
	tr := NewTracker(WithThreshold(50), WithDelta(5))
	tr.Start(0, 0)
	tr.Move(60, 0)
	if got := tr.End(); got != SwipeRight {
		t.Errorf("End() = %v, expected SwipeRight with threshold 50", got)
	}

	tr.Start(0, 0)
	tr.Move(4, 0)
	if got := tr.End(); got != Tap {
		t.Errorf("End() = %v, expected Tap with delta 5", got)
	}
}
