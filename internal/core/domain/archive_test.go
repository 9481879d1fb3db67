package domain

import "testing"

func TestProgressMeterRoundsAndEndsAtHundred(t *testing.T) {
	var reports []int
	meter := NewProgressMeter(func(p int) { reports = append(reports, p) })

	total := 3
	for i := 1; i <= total; i++ {
		meter.Step(i, total)
	}

	expected := []int{33, 67, 100}
	if len(reports) != len(expected) {
		t.Fatalf("report count mismatch: got %v, expected %v", reports, expected)
	}
	for i, p := range expected {
		if reports[i] != p {
			t.Errorf("report %d mismatch: got %d, expected %d", i, reports[i], p)
		}
	}
}

func TestProgressMeterNeverDecreases(t *testing.T) {
	var reports []int
	meter := NewProgressMeter(func(p int) { reports = append(reports, p) })

	meter.Step(2, 4)
	meter.Step(1, 4) // out-of-order step must be suppressed
	meter.Step(4, 4)

	last := -1
	for _, p := range reports {
		if p < last {
			t.Fatalf("progress decreased: %v", reports)
		}
		last = p
	}
	if last != 100 {
		t.Errorf("final report: got %d, expected 100", last)
	}
}

func TestProgressMeterIgnoresNilCallbackAndZeroTotal(t *testing.T) {
	meter := NewProgressMeter(nil)
	meter.Step(1, 1) // must not panic

	called := false
	meter = NewProgressMeter(func(int) { called = true })
	meter.Step(1, 0)
	if called {
		t.Error("report emitted for zero total")
	}
}

func TestProgressMeterDone(t *testing.T) {
	var reports []int
	meter := NewProgressMeter(func(p int) { reports = append(reports, p) })

	// Without any steps, Done still delivers the final report.
	meter.Done()
	if len(reports) != 1 || reports[0] != 100 {
		t.Fatalf("reports mismatch: got %v, expected [100]", reports)
	}

	// A second Done, or one after Step already reached 100, is silent.
	meter.Done()
	if len(reports) != 1 {
		t.Errorf("duplicate final report: %v", reports)
	}

	reports = nil
	meter = NewProgressMeter(func(p int) { reports = append(reports, p) })
	meter.Step(1, 1)
	meter.Done()
	if len(reports) != 1 || reports[0] != 100 {
		t.Errorf("reports mismatch: got %v, expected [100]", reports)
	}

	NewProgressMeter(nil).Done() // must not panic
}

func TestDispatchComplete(t *testing.T) {
	called := false
	DispatchComplete(nil, func() { called = true })
	if !called {
		t.Error("callback not invoked with default dispatcher")
	}

	DispatchComplete(nil, nil) // must not panic

	dispatched := 0
	d := dispatcherFunc(func(fn func()) { dispatched++; fn() })
	called = false
	DispatchComplete(d, func() { called = true })
	if dispatched != 1 || !called {
		t.Errorf("custom dispatcher: dispatched=%d called=%v", dispatched, called)
	}
}

type dispatcherFunc func(fn func())

func (d dispatcherFunc) Dispatch(fn func()) { d(fn) }
