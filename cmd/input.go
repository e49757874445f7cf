package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/helmcode/fmea-ai/pkg/fmea"
	"gopkg.in/yaml.v3"
)

// exampleRequest is the built-in automotive brake system used when no input
// is supplied. Handy for trying the tool without writing an input file.
var exampleRequest = fmea.AnalysisRequest{
	SystemName: "Automotive Disc Brake System",
	SystemDescription: "A hydraulic disc brake system used in a passenger vehicle to decelerate " +
		"and stop the vehicle safely. The system operates under temperatures ranging " +
		"from -40°C to +300°C (rotor surface) and must meet ISO 26262 ASIL-B requirements.",
	Components: []fmea.ComponentSpec{
		{Name: "Brake Caliper", Function: "Apply clamping force to the brake disc to generate braking torque"},
		{Name: "Brake Disc (Rotor)", Function: "Convert kinetic energy to heat through friction with brake pads"},
		{Name: "Brake Pads", Function: "Provide controlled friction surface against the rotor to slow rotation"},
		{Name: "Hydraulic Master Cylinder", Function: "Convert driver pedal force into hydraulic pressure throughout the brake circuit"},
		{Name: "ABS Control Unit", Function: "Modulate brake pressure to prevent wheel lock-up during emergency braking"},
	},
	Scope: fmea.ScopeDesign,
}

// loadRequestFromFile reads and validates an analysis request from a JSON or
// YAML file, chosen by extension.
func loadRequestFromFile(path string) (fmea.AnalysisRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmea.AnalysisRequest{}, fmt.Errorf("read input file: %w", err)
	}

	var req fmea.AnalysisRequest
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &req); err != nil {
			return fmea.AnalysisRequest{}, fmt.Errorf("invalid YAML in %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &req); err != nil {
			return fmea.AnalysisRequest{}, fmt.Errorf("invalid JSON in %s: %w", path, err)
		}
	}

	if err := req.Validate(); err != nil {
		return fmea.AnalysisRequest{}, fmt.Errorf("invalid input in %s: %w", path, err)
	}
	return req, nil
}

// loadRequestFromReader reads a JSON request from piped stdin.
func loadRequestFromReader(r io.Reader) (fmea.AnalysisRequest, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmea.AnalysisRequest{}, fmt.Errorf("read stdin: %w", err)
	}

	var req fmea.AnalysisRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return fmea.AnalysisRequest{}, fmt.Errorf("invalid JSON on stdin: %w", err)
	}
	if err := req.Validate(); err != nil {
		return fmea.AnalysisRequest{}, fmt.Errorf("invalid input on stdin: %w", err)
	}
	return req, nil
}
