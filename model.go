/*
Package hmm implements decoding of discrete-symbol hidden Markov models.

A model is a set of named states with a state-transition probability
matrix and a symbol emission probability matrix. The first state is a
non-emitting starting state and the last state is a non-emitting ending
state; only interior states emit symbols. Decoding finds the single most
probable sequence of hidden states for an observation trace using the
Viterbi algorithm.
*/
package hmm

import (
	"fmt"

	"github.com/golang/glog"
	"github.com/sjs2109/hmm/floatx"
)

// Probability of being in the starting state before the first observation.
const beginStateProb = 1.0

// Error reports a violation of the model structure rules.
type Error string

func (err Error) Error() string { return string(err) }

const (
	ErrNumStates        = Error("hmm: model needs at least a starting and an ending state")
	ErrAlphabetSize     = Error("hmm: emission alphabet must not be empty")
	ErrEndTransition    = Error("hmm: transition from the ending state is forbidden")
	ErrStartTransition  = Error("hmm: transition to the starting state is forbidden")
	ErrBoundaryEmission = Error("hmm: symbol emission from the starting or the ending state is forbidden")
	ErrSymbolRange      = Error("hmm: symbol is outside the emission alphabet")
	ErrNotImplemented   = Error("hmm: forward-backward probabilities are not implemented")
)

// UnknownStateError reports a state name missing from a model's registry.
// It is distinct from Error so callers can tell bad observation data from
// a bad model.
type UnknownStateError string

func (err UnknownStateError) Error() string {
	return fmt.Sprintf("hmm: unknown state name [%s]", string(err))
}

// Model is a discrete-symbol hidden Markov model.
//
// q(t) is the state at time t.
// States are labeled {0,1,...,N-1} in first-seen order.
// State 0 is the starting state, state N-1 is the ending state.
// Immutable once built.
type Model struct {

	// State name -> dense state index.
	stateIndex map[string]int

	// Dense state index -> name, in assignment order.
	stateNames []string

	// Number of symbols in the emission alphabet.
	alphabetSize int

	// State-transition probability distribution matrix. [nstates x nstates]
	// a(i,j) = P[q(t+1) = j | q(t) = i]; 0 <= i,j <= N-1
	// forbidden transitions keep the zero value.
	transProb [][]float64

	// Symbol emission probability distribution matrix. [nstates x alphabetSize]
	// b(j,k) = P[o(t) = k | q(t) = j]
	emitProb [][]float64
}

// NewModel builds a Model from a descriptor. It fails when the descriptor
// declares a transition from the ending state, a transition into the
// starting state, or an emission for either boundary state. All structure
// checks run here; decoding trusts the model.
func NewModel(d *Descriptor) (*Model, error) {

	if len(d.States) < 2 {
		return nil, ErrNumStates
	}
	if d.AlphabetSize < 1 {
		return nil, ErrAlphabetSize
	}

	m := &Model{
		stateIndex:   make(map[string]int, len(d.States)),
		stateNames:   make([]string, 0, len(d.States)),
		alphabetSize: d.AlphabetSize,
		transProb:    floatx.MakeFloat2D(len(d.States), len(d.States)),
		emitProb:     floatx.MakeFloat2D(len(d.States), d.AlphabetSize),
	}

	for _, name := range d.States {
		if _, ok := m.stateIndex[name]; ok {
			return nil, fmt.Errorf("hmm: duplicate state name [%s]", name)
		}
		m.stateIndex[name] = len(m.stateNames)
		m.stateNames = append(m.stateNames, name)
	}

	nstates := len(m.stateNames)

	for _, tr := range d.Transitions {
		from, ok := m.stateIndex[tr.From]
		if !ok {
			return nil, UnknownStateError(tr.From)
		}
		to, ok := m.stateIndex[tr.To]
		if !ok {
			return nil, UnknownStateError(tr.To)
		}
		if from == nstates-1 {
			return nil, ErrEndTransition
		}
		if to == 0 {
			return nil, ErrStartTransition
		}
		m.transProb[from][to] = tr.Prob
	}

	for _, em := range d.Emissions {
		state, ok := m.stateIndex[em.State]
		if !ok {
			return nil, UnknownStateError(em.State)
		}
		symbol, e := m.symbolIndex(em.Symbol)
		if e != nil {
			return nil, e
		}
		if state == 0 || state == nstates-1 {
			return nil, ErrBoundaryEmission
		}
		m.emitProb[state][symbol] = em.Prob
	}

	glog.V(2).Infof("new model. num states = %d, alphabet size = %d", nstates, m.alphabetSize)
	glog.V(4).Infof("trans. probs: %v", m.transProb)
	glog.V(4).Infof("emission probs: %v", m.emitProb)

	return m, nil
}

// symbolIndex maps a single-character symbol to its dense index.
// Symbols are lowercase ASCII letters, index = symbol - 'a'.
func (m *Model) symbolIndex(symbol string) (int, error) {

	if len(symbol) != 1 || symbol[0] < 'a' || symbol[0] > 'z' {
		return 0, ErrSymbolRange
	}
	k := int(symbol[0] - 'a')
	if k >= m.alphabetSize {
		return 0, ErrSymbolRange
	}
	return k, nil
}

// NStates returns the total number of states, boundary states included.
func (m *Model) NStates() int { return len(m.stateNames) }

// AlphabetSize returns the number of symbols in the emission alphabet.
func (m *Model) AlphabetSize() int { return m.alphabetSize }

// StateIndex resolves a state name to its dense index.
func (m *Model) StateIndex(name string) (int, bool) {
	i, ok := m.stateIndex[name]
	return i, ok
}

// StateName translates a dense state index back to its name.
func (m *Model) StateName(i int) string { return m.stateNames[i] }

// TransProb returns the probability of moving from state i to state j.
func (m *Model) TransProb(i, j int) float64 { return m.transProb[i][j] }

// EmitProb returns the probability that state j emits symbol k.
func (m *Model) EmitProb(j, k int) float64 { return m.emitProb[j][k] }
