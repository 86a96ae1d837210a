package dsp

import "testing"

func TestFanOutHold_SharedOutputInvariant(t *testing.T) {
	const fanOut = 3
	var h FanOutHold
	logical := 0

	compute := func() Sample {
		logical++
		return Sample(logical)
	}

	var got []Sample
	for pull := 0; pull < fanOut*4; pull++ {
		if h.Advance(fanOut) {
			got = append(got, h.Cached())
			continue
		}
		got = append(got, h.Cache(compute()))
	}

	want := []Sample{1, 1, 1, 2, 2, 2, 3, 3, 3, 4, 4, 4}
	if len(got) != len(want) {
		t.Fatalf("got %d samples, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sample %d: got %v, want %v (full: %v)", i, got[i], want[i], got)
		}
	}
}

func TestFanOutHold_NoFanOutComputesEveryCall(t *testing.T) {
	var h FanOutHold
	for i := 0; i < 5; i++ {
		if h.Advance(1) {
			t.Fatalf("pull %d: expected compute, got hold", i)
		}
		h.Cache(Sample(i))
	}
}
