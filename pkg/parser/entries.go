package parser

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/helmcode/fmea-ai/pkg/fmea"
)

const snippetLen = 500

// ExtractionError means no usable entry array could be recovered from the
// model's reply. Snippet holds a bounded prefix of the offending text for
// diagnosis.
type ExtractionError struct {
	Reason  string
	Snippet string
}

func (e *ExtractionError) Error() string {
	if e.Snippet == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s\nresponse (first %d chars): %s", e.Reason, snippetLen, e.Snippet)
}

// EntryError is a non-fatal diagnostic for one element of the model's array
// that failed validation and was skipped. Index is 1-based array position.
type EntryError struct {
	Index int
	Err   error
}

func (e EntryError) Error() string {
	return fmt.Sprintf("entry %d: %v", e.Index, e.Err)
}

// fenceRe matches markdown code fences (optionally language-tagged), which
// the model sometimes emits despite being told not to.
var fenceRe = regexp.MustCompile("```[a-zA-Z]*\n|```")

var requiredKeys = []string{
	"component", "function", "failure_mode", "failure_effect",
	"failure_cause", "severity", "occurrence", "detection",
	"recommended_action",
}

// ParseEntries extracts a JSON array of failure-mode entries from the raw
// model reply and validates each element. Elements that fail validation are
// skipped and reported as EntryError diagnostics; the call only fails when
// no array can be located or no element survives validation.
//
// Array location is a deliberately permissive heuristic: after stripping code
// fences, the substring from the first '[' to the last ']' is taken as the
// candidate array. That tolerates narration around the array but assumes the
// reply does not contain unrelated bracketed text outside it.
func ParseEntries(raw string) ([]fmea.FailureModeEntry, []EntryError, error) {
	cleaned := strings.TrimSpace(fenceRe.ReplaceAllString(raw, ""))

	start := strings.Index(cleaned, "[")
	end := strings.LastIndex(cleaned, "]")
	if start == -1 || end == -1 || end < start {
		return nil, nil, &ExtractionError{
			Reason:  "model response does not contain a JSON array",
			Snippet: truncate(raw, snippetLen),
		}
	}
	candidate := cleaned[start : end+1]

	var decoded interface{}
	if err := json.Unmarshal([]byte(candidate), &decoded); err != nil {
		return nil, nil, &ExtractionError{
			Reason:  fmt.Sprintf("failed to parse JSON from model response: %v", err),
			Snippet: truncate(candidate, snippetLen),
		}
	}

	elements, ok := decoded.([]interface{})
	if !ok {
		return nil, nil, &ExtractionError{
			Reason: fmt.Sprintf("expected a JSON array, got %s", jsonTypeName(decoded)),
		}
	}

	var entries []fmea.FailureModeEntry
	var diags []EntryError
	for i, element := range elements {
		entry, err := buildEntry(fmt.Sprintf("DFMEA-%03d", i+1), element)
		if err != nil {
			diags = append(diags, EntryError{Index: i + 1, Err: err})
			continue
		}
		entries = append(entries, entry)
	}

	if len(entries) == 0 {
		return nil, diags, &ExtractionError{
			Reason: fmt.Sprintf("no valid FMEA entries could be extracted: encountered %d validation errors", len(diags)),
		}
	}
	return entries, diags, nil
}

// buildEntry converts one untrusted array element into a validated entry via
// the trusted factory, so RPN and risk level are always derived here rather
// than trusted from the model.
func buildEntry(id string, element interface{}) (fmea.FailureModeEntry, error) {
	obj, ok := element.(map[string]interface{})
	if !ok {
		return fmea.FailureModeEntry{}, fmt.Errorf("expected a JSON object, got %s", jsonTypeName(element))
	}
	for _, key := range requiredKeys {
		if _, present := obj[key]; !present {
			return fmea.FailureModeEntry{}, fmt.Errorf("missing required field %q", key)
		}
	}

	texts := make(map[string]string, 6)
	for _, key := range []string{"component", "function", "failure_mode", "failure_effect", "failure_cause", "recommended_action"} {
		s, ok := obj[key].(string)
		if !ok {
			return fmea.FailureModeEntry{}, fmt.Errorf("field %q must be a string, got %s", key, jsonTypeName(obj[key]))
		}
		texts[key] = s
	}

	ratings := make(map[string]int, 3)
	for _, key := range []string{"severity", "occurrence", "detection"} {
		n, err := coerceInt(obj[key])
		if err != nil {
			return fmea.FailureModeEntry{}, fmt.Errorf("field %q: %v", key, err)
		}
		ratings[key] = n
	}

	return fmea.NewEntry(
		id,
		texts["component"],
		texts["function"],
		texts["failure_mode"],
		texts["failure_effect"],
		texts["failure_cause"],
		ratings["severity"],
		ratings["occurrence"],
		ratings["detection"],
		texts["recommended_action"],
	)
}

// coerceInt accepts JSON numbers that are integral and strings that parse as
// base-10 integers. Fractional values are rejected rather than truncated.
func coerceInt(v interface{}) (int, error) {
	switch n := v.(type) {
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("value %v is not an integer", n)
		}
		return int(n), nil
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, fmt.Errorf("value %q is not an integer", n)
		}
		return i, nil
	default:
		return 0, fmt.Errorf("expected an integer, got %s", jsonTypeName(v))
	}
}

func jsonTypeName(v interface{}) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "bool"
	case float64:
		return "number"
	case string:
		return "string"
	case []interface{}:
		return "array"
	case map[string]interface{}:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
