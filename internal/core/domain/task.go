package domain

// EstimationTask pairs an operator with the circuit preparing the state
// it is measured against, and the number of shots requested for the
// measurement. Tasks are immutable: the With* methods return copies.
type EstimationTask struct {
	Operator IsingOperator
	Circuit  Circuit
	Shots    int
}

// NewEstimationTask creates an estimation task.
func NewEstimationTask(operator IsingOperator, circuit Circuit, shots int) EstimationTask {
	return EstimationTask{Operator: operator, Circuit: circuit, Shots: shots}
}

// WithShots returns a copy of the task with a new shot count.
func (t EstimationTask) WithShots(shots int) EstimationTask {
	return EstimationTask{Operator: t.Operator, Circuit: t.Circuit, Shots: shots}
}

// WithCircuit returns a copy of the task with a new circuit.
func (t EstimationTask) WithCircuit(circuit Circuit) EstimationTask {
	return EstimationTask{Operator: t.Operator, Circuit: circuit, Shots: t.Shots}
}

// Equal reports whether two tasks have equal operators, structurally
// equal circuits and the same shot count.
func (t EstimationTask) Equal(other EstimationTask) bool {
	return t.Shots == other.Shots &&
		t.Operator.Equal(other.Operator) &&
		t.Circuit.Equal(other.Circuit)
}
