package config

import "gopkg.in/yaml.v3"

// JobDTO represents the structure of an estimation job file. Shots is
// a pointer so an absent file-level budget can be told apart from an
// explicit zero: without a budget, per-task shot counts are honored.
type JobDTO struct {
	Version string     `yaml:"version"`
	Shots   *int       `yaml:"shots"`
	Seed    *uint64    `yaml:"seed"`
	Tasks   []*TaskDTO `yaml:"tasks"`
}

// TaskDTO represents one estimation task in the job file.
type TaskDTO struct {
	Operator string             `yaml:"operator"`
	Circuit  []*GateDTO         `yaml:"circuit"`
	Shots    int                `yaml:"shots"`
	Symbols  map[string]float64 `yaml:"symbols"`
}

// GateDTO represents a single gate in a task's circuit. Theta is kept
// as a raw node so a numeric literal and a symbol name can be told
// apart. It is a value rather than a pointer because yaml.v3 only
// decodes into value-typed yaml.Node fields; an absent theta leaves
// the zero Node (Kind == 0).
type GateDTO struct {
	Gate   string    `yaml:"gate"`
	Qubits []int     `yaml:"qubits"`
	Theta  yaml.Node `yaml:"theta"`
}
