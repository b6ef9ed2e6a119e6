// Package config provides the estimation job file loader.
package config

import (
	"os"
	"slices"
	"strings"

	"go.orqa.ch/estim/internal/core/domain"
	"go.orqa.ch/estim/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.JobLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

var _ ports.JobLoader = (*Loader)(nil)

// Load reads a job file from the given path and returns the parsed
// tasks with their execution defaults.
func (l *Loader) Load(path string) (*ports.JobFile, error) {
	// #nosec G304 -- path comes from the command line
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrJobReadFailed, err.Error()), "path", path)
	}

	var dto JobDTO
	if parseErr := yaml.Unmarshal(raw, &dto); parseErr != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrJobParseFailed, parseErr.Error()), "path", path)
	}

	if len(dto.Tasks) == 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrNoJobsSpecified, "invalid job file"), "path", path)
	}

	job := &ports.JobFile{
		Tasks:      make([]domain.EstimationTask, 0, len(dto.Tasks)),
		SymbolMaps: make([]domain.SymbolMap, 0, len(dto.Tasks)),
	}
	if dto.Shots != nil {
		job.TotalShots = *dto.Shots
		job.HasTotalShots = true
	}
	if dto.Seed != nil {
		job.Seed = *dto.Seed
		job.HasSeed = true
	}

	for i, taskDTO := range dto.Tasks {
		task, symbols, err := buildTask(taskDTO)
		if err != nil {
			return nil, zerr.With(err, "task_index", i)
		}
		job.Tasks = append(job.Tasks, task)
		job.SymbolMaps = append(job.SymbolMaps, symbols)
	}

	return job, nil
}

func buildTask(dto *TaskDTO) (domain.EstimationTask, domain.SymbolMap, error) {
	operator, err := domain.ParseIsing(dto.Operator)
	if err != nil {
		parseErr := zerr.Wrap(domain.ErrJobParseFailed, err.Error())
		return domain.EstimationTask{}, nil, zerr.With(parseErr, "operator", dto.Operator)
	}

	gates := make([]domain.Gate, 0, len(dto.Circuit))
	for _, gateDTO := range dto.Circuit {
		gate, err := buildGate(gateDTO)
		if err != nil {
			return domain.EstimationTask{}, nil, err
		}
		gates = append(gates, gate)
	}

	// Sorted for a stable binding order; YAML maps carry no duplicates,
	// so ordering only affects reproducibility of diagnostics.
	names := make([]string, 0, len(dto.Symbols))
	for name := range dto.Symbols {
		names = append(names, name)
	}
	slices.Sort(names)
	symbols := make(domain.SymbolMap, 0, len(names))
	for _, name := range names {
		symbols = append(symbols, domain.SymbolBinding{Symbol: name, Value: dto.Symbols[name]})
	}

	task := domain.NewEstimationTask(operator, domain.NewCircuit(gates...), dto.Shots)
	return task, symbols, nil
}

//nolint:cyclop // one arm per supported gate
func buildGate(dto *GateDTO) (domain.Gate, error) {
	name := strings.ToUpper(strings.TrimSpace(dto.Gate))

	oneQubit := func() (int, error) {
		if len(dto.Qubits) != 1 {
			err := zerr.With(zerr.Wrap(domain.ErrJobParseFailed, "invalid gate"), "gate", name)
			return 0, zerr.With(err, "qubits", len(dto.Qubits))
		}
		return dto.Qubits[0], nil
	}
	twoQubits := func() (int, int, error) {
		if len(dto.Qubits) != 2 {
			err := zerr.With(zerr.Wrap(domain.ErrJobParseFailed, "invalid gate"), "gate", name)
			return 0, 0, zerr.With(err, "qubits", len(dto.Qubits))
		}
		return dto.Qubits[0], dto.Qubits[1], nil
	}

	switch name {
	case "H", "X", "Y", "Z", "S", "T":
		q, err := oneQubit()
		if err != nil {
			return domain.Gate{}, err
		}
		return domain.Gate{Name: name, Qubits: []int{q}}, nil

	case "RX", "RY", "RZ":
		q, err := oneQubit()
		if err != nil {
			return domain.Gate{}, err
		}
		var thetaNode *yaml.Node
		if dto.Theta.Kind != 0 {
			thetaNode = &dto.Theta
		}
		theta, err := buildTheta(name, thetaNode)
		if err != nil {
			return domain.Gate{}, err
		}
		return domain.Gate{Name: name, Qubits: []int{q}, Params: []domain.Param{theta}}, nil

	case "CNOT", "CZ":
		control, target, err := twoQubits()
		if err != nil {
			return domain.Gate{}, err
		}
		return domain.Gate{Name: name, Qubits: []int{control, target}}, nil

	default:
		return domain.Gate{}, zerr.With(zerr.Wrap(domain.ErrUnknownGate, "invalid gate"), "gate", dto.Gate)
	}
}

// buildTheta reads a rotation angle: a numeric literal becomes a bound
// value, a bare string a free symbol.
func buildTheta(gate string, node *yaml.Node) (domain.Param, error) {
	if node == nil {
		err := zerr.With(zerr.Wrap(domain.ErrJobParseFailed, "invalid rotation angle"), "gate", gate)
		return domain.Param{}, zerr.With(err, "theta", "missing")
	}

	switch node.Tag {
	case "!!int", "!!float":
		var v float64
		if err := node.Decode(&v); err != nil {
			parseErr := zerr.Wrap(domain.ErrJobParseFailed, err.Error())
			return domain.Param{}, zerr.With(parseErr, "gate", gate)
		}
		return domain.Value(v), nil
	case "!!str":
		if strings.TrimSpace(node.Value) == "" {
			err := zerr.With(zerr.Wrap(domain.ErrJobParseFailed, "invalid rotation angle"), "gate", gate)
			return domain.Param{}, zerr.With(err, "theta", "empty symbol")
		}
		return domain.Symbol(node.Value), nil
	default:
		err := zerr.With(zerr.Wrap(domain.ErrJobParseFailed, "invalid rotation angle"), "gate", gate)
		return domain.Param{}, zerr.With(err, "theta", node.Tag)
	}
}
