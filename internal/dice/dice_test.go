package dice

import (
	"testing"

	"github.com/lgbarn/ludo-go/internal/testutil"
)

func TestDie_Range(t *testing.T) {
	d := NewDie(DefaultSides, 1)
	seen := make(map[int]int)
	for i := 0; i < 6000; i++ {
		v := d.Roll()
		if v < 1 || v > DefaultSides {
			t.Fatalf("Roll() = %d, out of 1..%d", v, DefaultSides)
		}
		seen[v]++
	}
	for face := 1; face <= DefaultSides; face++ {
		if seen[face] < 800 {
			t.Errorf("face %d rolled %d times in 6000; distribution looks skewed", face, seen[face])
		}
	}
}

func TestDie_Deterministic(t *testing.T) {
	a, b := NewDie(6, 99), NewDie(6, 99)
	for i := 0; i < 100; i++ {
		if x, y := a.Roll(), b.Roll(); x != y {
			t.Fatalf("roll %d: %d != %d with equal seeds", i, x, y)
		}
	}
}

func TestDie_DefaultsSides(t *testing.T) {
	testutil.AssertEqual(t, NewDie(0, 3).Sides(), DefaultSides)
	testutil.AssertEqual(t, NewDie(4, 3).Sides(), 4)
}

func TestSequence(t *testing.T) {
	s := NewSequence(6, 1, 3)
	var got []int
	for i := 0; i < 5; i++ {
		got = append(got, s.Roll())
	}
	testutil.AssertEqual(t, got, []int{6, 1, 3, 6, 1})
	testutil.AssertEqual(t, s.Used(), 2)
}

func TestNewSequence_EmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewSequence() did not panic")
		}
	}()
	NewSequence()
}
