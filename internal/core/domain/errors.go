package domain

import "go.trai.ch/zerr"

var (
	// ErrNegativeShots is returned when a shot budget is negative.
	ErrNegativeShots = zerr.New("number of shots must not be negative")

	// ErrSymbolMapCount is returned when the number of symbol maps does not match the number of tasks.
	ErrSymbolMapCount = zerr.New("number of symbol maps must match number of tasks")

	// ErrExactNotSupported is returned when exact expectation values are requested from a backend without simulator capability.
	ErrExactNotSupported = zerr.New("backend does not support exact expectation values")

	// ErrMeasurableShots is returned when a task with measurable terms and non-zero shots reaches the non-measured evaluator.
	ErrMeasurableShots = zerr.New("task with measurable terms and non-zero shots passed to non-measured evaluation")

	// ErrIndexPartition is returned when merge index lists do not partition the original task positions.
	ErrIndexPartition = zerr.New("result indices do not partition the original task order")

	// ErrUnboundSymbols is returned when a circuit with free symbols reaches execution.
	ErrUnboundSymbols = zerr.New("circuit has unbound symbolic parameters")

	// ErrUnknownGate is returned when a circuit contains a gate the simulator does not implement.
	ErrUnknownGate = zerr.New("unknown gate")

	// ErrJobReadFailed is returned when a job file cannot be read.
	ErrJobReadFailed = zerr.New("failed to read job file")

	// ErrJobParseFailed is returned when a job file cannot be parsed.
	ErrJobParseFailed = zerr.New("failed to parse job file")

	// ErrNoJobsSpecified is returned when a job file contains no jobs.
	ErrNoJobsSpecified = zerr.New("no estimation jobs specified")
)
