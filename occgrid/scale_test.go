package occgrid

import (
	"testing"

	"github.com/roboviz/gridtransport/msgs"
)

func TestScaledSize(t *testing.T) {
	tests := []struct {
		width, height  uint32
		oldRes, newRes float64
		wantW, wantH   uint32
	}{
		{100, 100, 0.1, 0.2, 50, 50},
		// 101 * 0.5 = 50.5 truncates to 50, it is not rounded up.
		{101, 101, 0.1, 0.2, 50, 50},
		{100, 100, 0.1, 0.1, 100, 100},
		{50, 50, 0.2, 0.1, 100, 100},
		{640, 480, 0.05, 0.25, 128, 96},
	}
	for _, test := range tests {
		w, h := ScaledSize(test.width, test.height, test.oldRes, test.newRes)
		if w != test.wantW || h != test.wantH {
			t.Errorf("ScaledSize(%d, %d, %f, %f): expected (%d, %d), got (%d, %d)\n",
				test.width, test.height, test.oldRes, test.newRes,
				test.wantW, test.wantH, w, h)
		}
	}
}

func TestScaledMetadata(t *testing.T) {
	info := msgs.MapMetaData{
		MapLoadTime: msgs.Time{Sec: 1234, Nsec: 5678},
		Resolution:  0.1,
		Width:       100,
		Height:      40,
		Origin: msgs.Pose{
			Position:    msgs.Point{X: -5, Y: 2.5},
			Orientation: msgs.Quaternion{W: 1},
		},
	}
	scaled := ScaledMetadata(info, 0.2)
	if scaled.Width != 50 || scaled.Height != 20 {
		t.Errorf("Expected 50 x 20 metadata, got %d x %d\n", scaled.Width, scaled.Height)
	}
	if scaled.Resolution != 0.2 {
		t.Errorf("Expected resolution 0.2, got %f\n", scaled.Resolution)
	}
	if scaled.MapLoadTime != info.MapLoadTime {
		t.Errorf("Load time should carry over unchanged\n")
	}
	if scaled.Origin != info.Origin {
		t.Errorf("Origin pose should carry over unchanged\n")
	}
}

func TestChooseResolution(t *testing.T) {
	// Width needs more coarsening than height, so the width-driven candidate
	// (0.2) must win over the height-driven one (0.1).
	resolution := ChooseResolution(50, 100, 100, 100, 0.1)
	if resolution != 0.2 {
		t.Errorf("Expected resolution 0.2, got %f\n", resolution)
	}

	resolution = ChooseResolution(100, 100, 100, 100, 0.1)
	if resolution != 0.1 {
		t.Errorf("Expected unchanged resolution 0.1, got %f\n", resolution)
	}

	// The chosen resolution always fits the goal on both axes.
	resolution = ChooseResolution(30, 40, 100, 200, 0.05)
	w, h := ScaledSize(100, 200, 0.05, resolution)
	if w > 30 || h > 40 {
		t.Errorf("Scaled size (%d, %d) exceeds goal (30, 40)\n", w, h)
	}
}
