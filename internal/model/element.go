package model

import "encoding/json"

// DependencyKind distinguishes the categories of premises.
type DependencyKind string

const (
	// DependencyPremise is a lemma or definition referenced by a tactic.
	DependencyPremise DependencyKind = "premise"
	// DependencyHypothesis is a name bound in the local goal context.
	DependencyHypothesis DependencyKind = "hypothesis"
	// DependencyModule is a module brought in by a Require command.
	DependencyModule DependencyKind = "module"
)

// Element is a theorem with its verbatim statement and location.
type Element struct {
	Origin    string `json:"origin"`
	Name      string `json:"name"`
	Statement string `json:"statement"`
	Range     Range  `json:"range"`
}

// Dependency is a premise used by a step or by a file's load path.
type Dependency struct {
	Origin string         `json:"origin"`
	Name   string         `json:"name"`
	Range  *Range         `json:"range"`
	Kind   DependencyKind `json:"kind"`
}

// Step is one atomic tactic with the goal states around it. StateIn and
// StateOut are kept exactly as returned by the replay service.
type Step struct {
	Step         string          `json:"step"`
	Range        Range           `json:"range"`
	StateIn      json.RawMessage `json:"state_in"`
	StateOut     json.RawMessage `json:"state_out"`
	Dependencies []Dependency    `json:"dependencies"`
}

// LoadPath maps logical roots to physical directories.
type LoadPath map[string]string
