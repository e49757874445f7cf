package fmea

import "fmt"

// Scope selects the FMEA variant being performed.
type Scope string

const (
	ScopeDesign  Scope = "design"
	ScopeProcess Scope = "process"
	ScopeSystem  Scope = "system"
)

// ComponentSpec is a single component or subsystem to analyze.
type ComponentSpec struct {
	Name     string `json:"name" yaml:"name"`
	Function string `json:"function" yaml:"function"`
}

// AnalysisRequest is the input contract for one FMEA run.
type AnalysisRequest struct {
	SystemName        string          `json:"system_name" yaml:"system_name"`
	SystemDescription string          `json:"system_description" yaml:"system_description"`
	Components        []ComponentSpec `json:"components" yaml:"components"`
	Scope             Scope           `json:"scope,omitempty" yaml:"scope,omitempty"`
}

// Validate checks the request and fills in the default scope. It runs before
// any model call so a malformed payload never costs an API round trip.
func (r *AnalysisRequest) Validate() error {
	if r.SystemName == "" {
		return &ValidationError{Field: "system_name", Msg: "must not be empty"}
	}
	if r.SystemDescription == "" {
		return &ValidationError{Field: "system_description", Msg: "must not be empty"}
	}
	if len(r.Components) == 0 {
		return &ValidationError{Field: "components", Msg: "at least one component is required"}
	}
	for i, c := range r.Components {
		if c.Name == "" {
			return &ValidationError{Field: fmt.Sprintf("components[%d].name", i), Msg: "must not be empty"}
		}
		if c.Function == "" {
			return &ValidationError{Field: fmt.Sprintf("components[%d].function", i), Msg: "must not be empty"}
		}
	}
	switch r.Scope {
	case "":
		r.Scope = ScopeDesign
	case ScopeDesign, ScopeProcess, ScopeSystem:
	default:
		return &ValidationError{Field: "scope", Msg: fmt.Sprintf("unknown scope %q (must be design, process, or system)", r.Scope)}
	}
	return nil
}
