package floatx

type Error string

func (err Error) Error() string { return string(err) }

const (
	ErrZeroLength = Error("floatx: zero length in slice definition")
)

func MakeFloat2D(n1, n2 int) [][]float64 {

	s := make([][]float64, n1)
	for i := 0; i < n1; i++ {
		s[i] = make([]float64, n2)
	}

	return s
}

func MakeInt2D(n1, n2 int) [][]int {

	s := make([][]int, n1)
	for i := 0; i < n1; i++ {
		s[i] = make([]int, n2)
	}

	return s
}

func Check2D(s [][]float64) (n1, n2 int) {

	n1 = len(s)
	if n1 == 0 {
		panic(ErrZeroLength)
	}

	n2 = len(s[0])
	if n2 == 0 {
		panic(ErrZeroLength)
	}

	return n1, n2
}

// Set all values to v.
func FillInt2D(s [][]int, v int) {

	for _, row := range s {
		for j := range row {
			row[j] = v
		}
	}
}

// Set all values to zero.
func Clear(s []float64) {

	for i := range s {
		s[i] = 0
	}
}

// Set all values to zero.
func Clear2D(s [][]float64) {

	for _, slice := range s {
		Clear(slice)
	}
}
