package hmm

// TimeStateSymbol ties one observed time step to a reference state index
// and the emitted symbol index. The state is auxiliary bookkeeping (the
// ground truth when the trace has one); decoding reads only the symbol.
type TimeStateSymbol struct {
	Time   int
	State  int
	Symbol int
}

// ExperimentData is an observation trace resolved against a model's state
// registry. Build once, read-only afterward.
type ExperimentData struct {
	timeStateSymbol []TimeStateSymbol
}

// NewExperimentData resolves every step of a trace against the model. It
// fails with UnknownStateError when a step names a state the model does
// not have.
func NewExperimentData(m *Model, trace *Trace) (*ExperimentData, error) {

	data := &ExperimentData{
		timeStateSymbol: make([]TimeStateSymbol, 0, len(trace.Steps)),
	}

	for _, step := range trace.Steps {
		state, ok := m.stateIndex[step.State]
		if !ok {
			return nil, UnknownStateError(step.State)
		}
		symbol, e := m.symbolIndex(step.Symbol)
		if e != nil {
			return nil, e
		}
		data.timeStateSymbol = append(data.timeStateSymbol, TimeStateSymbol{
			Time:   step.Step,
			State:  state,
			Symbol: symbol,
		})
	}

	return data, nil
}

// NumSteps returns the number of observed time steps.
func (data *ExperimentData) NumSteps() int { return len(data.timeStateSymbol) }

// Steps returns the resolved trace in step order.
func (data *ExperimentData) Steps() []TimeStateSymbol { return data.timeStateSymbol }

// RefNames translates the reference state indices back to names using the
// model the data was built with.
func (data *ExperimentData) RefNames(m *Model) []string {

	names := make([]string, len(data.timeStateSymbol))
	for i, tss := range data.timeStateSymbol {
		names[i] = m.stateNames[tss.State]
	}
	return names
}
