package floatx

import (
	"github.com/gonum/floats"
	"testing"
)

func TestMakeFloat2D(t *testing.T) {

	s := MakeFloat2D(3, 2)
	n1, n2 := Check2D(s)
	if n1 != 3 || n2 != 2 {
		t.Fatalf("wrong shape. expected [3,2], got [%d,%d]", n1, n2)
	}

	s[1][1] = 42
	Clear2D(s)
	for i := range s {
		if !floats.Equal(s[i], []float64{0, 0}) {
			t.Fatalf("Clear2D failed. row %d is %+v", i, s[i])
		}
	}
}

func TestFillInt2D(t *testing.T) {

	s := MakeInt2D(2, 3)
	FillInt2D(s, -1)
	for i := range s {
		for j := range s[i] {
			if s[i][j] != -1 {
				t.Fatalf("FillInt2D failed. s[%d][%d] is %d", i, j, s[i][j])
			}
		}
	}
}

func TestCheck2DPanic(t *testing.T) {

	defer func() {
		if r := recover(); r != ErrZeroLength {
			t.Fatalf("expected panic with ErrZeroLength, got %v", r)
		}
	}()
	Check2D([][]float64{})
}
