package hmm

import (
	"github.com/golang/glog"
	"github.com/gonum/floats"
	"github.com/sjs2109/hmm/floatx"
)

// Marks back-pointer cells that have no predecessor.
const undefinedState = -1

// calcStateProb computes one candidate joint probability for the Viterbi
// recursion:
//
//	p = base(prev, t) a(prev,cur) b(cur, o(t))
//
// where base is 1 for the starting state at t = 0, 0 for any other state
// at t = 0, and seqProb[t-1][prev] afterwards.
func (m *Model) calcStateProb(t, prevState, curState, curSymbol int, seqProb [][]float64) float64 {

	var base float64
	switch {
	case t == 0 && prevState == 0:
		base = beginStateProb
	case t == 0:
		base = 0
	default:
		base = seqProb[t-1][prevState]
	}

	return base * m.transProb[prevState][curState] * m.emitProb[curState][curSymbol]
}

// bestTransitionSource finds the predecessor state that maximizes the
// candidate probability for curState at step t. Scan order is ascending
// and only a strictly greater value replaces the incumbent, so equal
// scores keep the lowest index. At t = 0 the predecessor is the starting
// state by definition and the search is skipped.
func (m *Model) bestTransitionSource(t, curState, curSymbol int, seqProb [][]float64) int {

	if t == 0 {
		return 0
	}

	best := m.calcStateProb(t, 0, curState, curSymbol, seqProb)
	argmax := 0
	for prevState := 1; prevState < len(m.stateNames); prevState++ {
		p := m.calcStateProb(t, prevState, curState, curSymbol, seqProb)
		if p > best {
			best = p
			argmax = prevState
		}
	}
	return argmax
}

// Decode computes the most probable sequence of hidden states for the
// observation trace using the Viterbi algorithm.
//
// Recursion. seqProb [maxtime x nstates]:
//
//	seqProb(t,j)   = max_i [ base(i,t) a(i,j) b(j, o(t)) ]
//	prevState(t,j) = argmax_i [ base(i,t) a(i,j) b(j, o(t)) ]
//
// Recovery. z is the output sequence [maxtime x 1]:
//
//	z(maxtime-1) = argmax_j seqProb(maxtime-1, j)
//	z(t-1)       = prevState(t, z(t))
//
// Probabilities are plain products, not logs. Long traces can underflow
// to zero; see the package notes on numeric precision.
//
// The returned slice has one state index per time step and belongs to the
// caller. The DP tables are allocated per call, so independent calls may
// run concurrently. An empty trace decodes to an empty sequence.
func (m *Model) Decode(data *ExperimentData) []int {

	nstates := len(m.stateNames)
	maxtime := len(data.timeStateSymbol)

	seq := make([]int, maxtime)
	if maxtime == 0 {
		return seq
	}

	seqProb := floatx.MakeFloat2D(maxtime, nstates)
	prevState := floatx.MakeInt2D(maxtime, nstates)
	floatx.FillInt2D(prevState, undefinedState)

	for t := 0; t < maxtime; t++ {
		curSymbol := data.timeStateSymbol[t].Symbol
		for curState := 0; curState < nstates; curState++ {
			best := m.bestTransitionSource(t, curState, curSymbol, seqProb)
			seqProb[t][curState] = m.calcStateProb(t, best, curState, curSymbol, seqProb)
			prevState[t][curState] = best
		}
		if glog.V(4) {
			glog.Infof("t: %4d | seqProb: %v", t, seqProb[t])
		}
	}

	// First maximal entry of the last column wins.
	curState := floats.MaxIdx(seqProb[maxtime-1])
	seq[maxtime-1] = curState
	for t := maxtime - 1; t > 0; t-- {
		curState = prevState[t][curState]
		seq[t-1] = curState
	}

	glog.V(3).Infof("decoded sequence: %v, prob: %e", seq, seqProb[maxtime-1][seq[maxtime-1]])
	return seq
}

// DecodeNames runs Decode and translates the result to state names.
func (m *Model) DecodeNames(data *ExperimentData) []string {

	path := m.Decode(data)
	names := make([]string, len(path))
	for i, s := range path {
		names[i] = m.stateNames[s]
	}
	return names
}

// FBProb is a forward/backward probability pair for one (time, state)
// cell.
type FBProb struct {
	Forward  float64
	Backward float64
}

// ForwardBackward is a placeholder for soft decoding. It always returns
// ErrNotImplemented.
func (m *Model) ForwardBackward(data *ExperimentData) ([][]FBProb, error) {
	return nil, ErrNotImplemented
}
