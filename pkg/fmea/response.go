package fmea

// DefaultDOIReference is the peer-reviewed methodology source cited on every
// generated analysis.
const DefaultDOIReference = "10.3390/su12010077"

// AnalysisResponse is the full output of one FMEA run. HTMLReport stays
// empty until the caller explicitly renders a report; the omitempty tag keeps
// it out of the serialized form entirely when absent.
type AnalysisResponse struct {
	SystemName   string             `json:"system_name"`
	AnalysisDate string             `json:"analysis_date"`
	DOIReference string             `json:"doi_reference"`
	Scope        Scope              `json:"scope"`
	Entries      []FailureModeEntry `json:"entries"`
	Summary      AnalysisSummary    `json:"summary"`
	HTMLReport   string             `json:"html_report,omitempty"`
}
