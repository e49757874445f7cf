package fmea

import (
	"fmt"
	"strings"
)

// ValidationError reports a single field that violated the entry or request
// contract. It carries the field name so callers can surface which invariant
// broke rather than a generic failure.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

// FailureModeEntry is a single row in the FMEA matrix.
type FailureModeEntry struct {
	ID                string    `json:"id"`
	Component         string    `json:"component"`
	Function          string    `json:"function"`
	FailureMode       string    `json:"failure_mode"`
	FailureEffect     string    `json:"failure_effect"`
	FailureCause      string    `json:"failure_cause"`
	Severity          int       `json:"severity"`
	Occurrence        int       `json:"occurrence"`
	Detection         int       `json:"detection"`
	RPN               int       `json:"rpn"`
	RecommendedAction string    `json:"recommended_action"`
	RiskLevel         RiskLevel `json:"risk_level"`
}

// NewEntry builds an entry from its input fields, computing RPN and risk
// level internally. This is the only construction path used for untrusted
// model output: it cannot produce an entry whose derived fields disagree
// with its ratings.
func NewEntry(id, component, function, failureMode, failureEffect, failureCause string, severity, occurrence, detection int, recommendedAction string) (FailureModeEntry, error) {
	rpn := ComputeRPN(severity, occurrence, detection)
	entry := FailureModeEntry{
		ID:                strings.TrimSpace(id),
		Component:         strings.TrimSpace(component),
		Function:          strings.TrimSpace(function),
		FailureMode:       strings.TrimSpace(failureMode),
		FailureEffect:     strings.TrimSpace(failureEffect),
		FailureCause:      strings.TrimSpace(failureCause),
		Severity:          severity,
		Occurrence:        occurrence,
		Detection:         detection,
		RPN:               rpn,
		RecommendedAction: strings.TrimSpace(recommendedAction),
		RiskLevel:         ClassifyRisk(rpn),
	}
	if err := entry.Validate(); err != nil {
		return FailureModeEntry{}, err
	}
	return entry, nil
}

// Validate re-checks every invariant on an already-populated entry. This is
// the path for round-tripping serialized entries: a mismatch between RPN or
// risk level and the ratings fails loudly instead of being corrected.
func (e FailureModeEntry) Validate() error {
	for _, f := range []struct {
		name  string
		value string
	}{
		{"id", e.ID},
		{"component", e.Component},
		{"function", e.Function},
		{"failure_mode", e.FailureMode},
		{"failure_effect", e.FailureEffect},
		{"failure_cause", e.FailureCause},
		{"recommended_action", e.RecommendedAction},
	} {
		if strings.TrimSpace(f.value) == "" {
			return &ValidationError{Field: f.name, Msg: "must not be empty"}
		}
	}

	for _, r := range []struct {
		name  string
		value int
	}{
		{"severity", e.Severity},
		{"occurrence", e.Occurrence},
		{"detection", e.Detection},
	} {
		if r.value < 1 || r.value > 10 {
			return &ValidationError{Field: r.name, Msg: fmt.Sprintf("rating %d out of range [1, 10]", r.value)}
		}
	}

	if e.RPN < 1 || e.RPN > 1000 {
		return &ValidationError{Field: "rpn", Msg: fmt.Sprintf("RPN %d out of range [1, 1000]", e.RPN)}
	}
	if expected := ComputeRPN(e.Severity, e.Occurrence, e.Detection); e.RPN != expected {
		return &ValidationError{
			Field: "rpn",
			Msg:   fmt.Sprintf("RPN %d does not match S×O×D = %d×%d×%d = %d", e.RPN, e.Severity, e.Occurrence, e.Detection, expected),
		}
	}
	if expected := ClassifyRisk(e.RPN); e.RiskLevel != expected {
		return &ValidationError{
			Field: "risk_level",
			Msg:   fmt.Sprintf("risk_level %q does not match expected %q for RPN=%d", e.RiskLevel, expected, e.RPN),
		}
	}
	return nil
}
