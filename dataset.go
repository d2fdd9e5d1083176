package hmm

import (
	"io"
	"io/ioutil"
	"os"

	"gopkg.in/yaml.v2"
)

// Descriptor is the on-file description of a model: the state names in
// assignment order, the alphabet size, and the sparse transition and
// emission tables. It is the contract between the text formats and
// NewModel; no validation happens here.
type Descriptor struct {
	States       []string     `yaml:"states"`
	AlphabetSize int          `yaml:"alphabet_size"`
	Transitions  []Transition `yaml:"transitions"`
	Emissions    []Emission   `yaml:"emissions"`
}

// Transition declares P[from -> to].
type Transition struct {
	From string  `yaml:"from"`
	To   string  `yaml:"to"`
	Prob float64 `yaml:"prob"`
}

// Emission declares the probability that a state emits a single-character
// symbol.
type Emission struct {
	State  string  `yaml:"state"`
	Symbol string  `yaml:"symbol"`
	Prob   float64 `yaml:"prob"`
}

// Trace is an on-file observation sequence. State names are resolved
// against a model by NewExperimentData.
type Trace struct {
	Steps []TraceStep `yaml:"steps"`
}

// TraceStep is one observation: the step number, the reference state name
// and the emitted symbol.
type TraceStep struct {
	Step   int    `yaml:"step"`
	State  string `yaml:"state"`
	Symbol string `yaml:"symbol"`
}

// Reads a model descriptor from a file. See ReadDescriptorReader().
func ReadDescriptor(fn string) (d *Descriptor, e error) {

	f, e := os.Open(fn)
	if e != nil {
		return
	}
	defer f.Close()
	d, e = ReadDescriptorReader(f)
	return
}

// Reads a model descriptor from an io.Reader.
func ReadDescriptorReader(r io.Reader) (d *Descriptor, e error) {

	var b []byte
	b, e = ioutil.ReadAll(r)
	if e != nil {
		return
	}
	e = yaml.Unmarshal(b, &d)
	return
}

// Reads an observation trace from a file. See ReadTraceReader().
func ReadTrace(fn string) (trace *Trace, e error) {

	f, e := os.Open(fn)
	if e != nil {
		return
	}
	defer f.Close()
	trace, e = ReadTraceReader(f)
	return
}

// Reads an observation trace from an io.Reader.
func ReadTraceReader(r io.Reader) (trace *Trace, e error) {

	var b []byte
	b, e = ioutil.ReadAll(r)
	if e != nil {
		return
	}
	e = yaml.Unmarshal(b, &trace)
	return
}
