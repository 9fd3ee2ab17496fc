package controls

import (
	"sync"
	"testing"
)

func TestTrackerHandleKey(t *testing.T) {
	tr := NewTracker(ArrowCodes)

	if !tr.HandleKey(37, true) {
		t.Fatal("arrow left should be tracked")
	}
	if !tr.Pressed(Left) {
		t.Error("left should be pressed after key-down")
	}

	tr.HandleKey(37, false)
	if tr.Pressed(Left) {
		t.Error("left should be released after key-up")
	}
}

func TestTrackerIgnoresUnknownCodes(t *testing.T) {
	tr := NewTracker(ArrowCodes)

	if tr.HandleKey(65, true) {
		t.Error("code 65 is not in the table and must not be tracked")
	}
	if len(tr.Snapshot()) != 0 {
		t.Errorf("snapshot should be empty, got %v", tr.Snapshot())
	}
}

func TestTrackerIsLive(t *testing.T) {
	tr := NewTracker(ArrowCodes)
	var keys Keys = tr

	tr.HandleKey(38, true)
	if !keys.Pressed(Up) {
		t.Error("reader should observe writes made after it was handed out")
	}
	tr.HandleKey(38, false)
	if keys.Pressed(Up) {
		t.Error("reader should observe the release")
	}
}

func TestTrackerCopiesTable(t *testing.T) {
	codes := map[int]Direction{1: Left}
	tr := NewTracker(codes)
	codes[2] = Right

	if tr.Tracks(2) {
		t.Error("tracker must not see later edits to the caller's table")
	}
}

func TestTrackerReset(t *testing.T) {
	tr := NewTracker(ArrowCodes)
	for code := range ArrowCodes {
		tr.HandleKey(code, true)
	}
	tr.Reset()
	for _, d := range ArrowCodes {
		if tr.Pressed(d) {
			t.Errorf("%s still pressed after Reset", d)
		}
	}
}

func TestAxis(t *testing.T) {
	tests := []struct {
		name        string
		left, right bool
		want        float64
	}{
		{"none", false, false, 0},
		{"left", true, false, -1},
		{"right", false, true, 1},
		{"both", true, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTracker(ArrowCodes)
			tr.HandleKey(37, tt.left)
			tr.HandleKey(39, tt.right)
			if got := Axis(tr, Left, Right); got != tt.want {
				t.Errorf("Axis = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTrackerConcurrentAccess(t *testing.T) {
	tr := NewTracker(ArrowCodes)
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			tr.HandleKey(39, i%2 == 0)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			_ = tr.Pressed(Right)
		}
	}()
	wg.Wait()

	if tr.Pressed(Right) {
		t.Error("last write was a release")
	}
}
