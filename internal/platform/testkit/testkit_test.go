package testkit

import "testing"

func TestMustPanicAndNot(t *testing.T) {
	MustPanic(t, func() { panic("boom") })
	MustNotPanic(t, func() {})
}

func TestMustContain(t *testing.T) {
	MustContain(t, "the quick brown fox", "quick")
}

func TestSwap(t *testing.T) {
	Serial(t)
	target := func() int { return 1 }
	t.Run("swapped", func(t *testing.T) {
		Swap(t, &target, func() int { return 2 })
		if target() != 2 {
			t.Fatalf("Swap did not replace the seam")
		}
	})
	if target() != 1 {
		t.Fatalf("Swap did not restore the seam")
	}
}
