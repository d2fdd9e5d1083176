package hmm

import (
	"strings"
	"testing"
)

const descriptorYAML string = `
states: [begin, rainy, sunny, end]
alphabet_size: 2
transitions:
  - {from: begin, to: rainy, prob: 0.6}
  - {from: begin, to: sunny, prob: 0.4}
  - {from: rainy, to: rainy, prob: 0.55}
  - {from: rainy, to: sunny, prob: 0.25}
  - {from: rainy, to: end, prob: 0.2}
  - {from: sunny, to: rainy, prob: 0.25}
  - {from: sunny, to: sunny, prob: 0.55}
  - {from: sunny, to: end, prob: 0.2}
emissions:
  - {state: rainy, symbol: a, prob: 0.2}
  - {state: rainy, symbol: b, prob: 0.8}
  - {state: sunny, symbol: a, prob: 0.7}
  - {state: sunny, symbol: b, prob: 0.3}
`

const traceYAML string = `
steps:
  - {step: 0, state: sunny, symbol: a}
  - {step: 1, state: sunny, symbol: a}
  - {step: 2, state: rainy, symbol: b}
`

func TestReadDescriptor(t *testing.T) {

	d, e := ReadDescriptorReader(strings.NewReader(descriptorYAML))
	CheckError(t, e)

	t.Logf("Descriptor: %+v", d)

	if len(d.States) != 4 || d.States[1] != "rainy" {
		t.Fatalf("wrong states: %v", d.States)
	}
	if d.AlphabetSize != 2 {
		t.Fatalf("wrong alphabet size. Expected: [2], Got: [%d]", d.AlphabetSize)
	}
	if len(d.Transitions) != 8 || len(d.Emissions) != 4 {
		t.Fatalf("wrong table sizes: %d transitions, %d emissions",
			len(d.Transitions), len(d.Emissions))
	}
	if d.Transitions[0].From != "begin" || d.Transitions[0].To != "rainy" {
		t.Fatalf("wrong first transition: %+v", d.Transitions[0])
	}
	if !Comparef64(0.7, d.Emissions[2].Prob, 0.0001) {
		t.Fatalf("wrong emission prob. Expected: [0.7], Got: [%f]", d.Emissions[2].Prob)
	}

	// The descriptor must build a working model.
	m, e := NewModel(d)
	CheckError(t, e)
	if m.NStates() != 4 {
		t.Fatalf("wrong number of states. Expected: [4], Got: [%d]", m.NStates())
	}
}

func TestReadTrace(t *testing.T) {

	trace, e := ReadTraceReader(strings.NewReader(traceYAML))
	CheckError(t, e)

	t.Logf("Trace: %+v", trace)

	if len(trace.Steps) != 3 {
		t.Fatalf("wrong number of steps. Expected: [3], Got: [%d]", len(trace.Steps))
	}
	if trace.Steps[2].Step != 2 || trace.Steps[2].State != "rainy" || trace.Steps[2].Symbol != "b" {
		t.Fatalf("wrong last step: %+v", trace.Steps[2])
	}
}

// End to end: read both files and decode.
func TestReadAndDecode(t *testing.T) {

	d, e := ReadDescriptorReader(strings.NewReader(descriptorYAML))
	CheckError(t, e)
	m, e := NewModel(d)
	CheckError(t, e)

	trace, e := ReadTraceReader(strings.NewReader(traceYAML))
	CheckError(t, e)
	data, e := NewExperimentData(m, trace)
	CheckError(t, e)

	seq := m.Decode(data)
	CompareSliceInt(t, []int{2, 2, 1}, seq, "decoded yaml trace")
}
