package fmea

import "math"

// AnalysisSummary aggregates statistics over a set of entries. It is always
// derived via Summarize, never hand-edited.
type AnalysisSummary struct {
	TotalEntries  int     `json:"total_entries"`
	CriticalCount int     `json:"critical_count"`
	HighCount     int     `json:"high_count"`
	MediumCount   int     `json:"medium_count"`
	LowCount      int     `json:"low_count"`
	MaxRPN        int     `json:"max_rpn"`
	AvgRPN        float64 `json:"avg_rpn"`
}

// Summarize reduces entries into per-tier counts and RPN statistics. An
// empty input yields the all-zero summary with AvgRPN exactly 0.0. AvgRPN is
// rounded to two decimals, half away from zero.
func Summarize(entries []FailureModeEntry) AnalysisSummary {
	if len(entries) == 0 {
		return AnalysisSummary{}
	}

	s := AnalysisSummary{TotalEntries: len(entries)}
	sum := 0
	for _, e := range entries {
		switch e.RiskLevel {
		case RiskCritical:
			s.CriticalCount++
		case RiskHigh:
			s.HighCount++
		case RiskMedium:
			s.MediumCount++
		case RiskLow:
			s.LowCount++
		}
		if e.RPN > s.MaxRPN {
			s.MaxRPN = e.RPN
		}
		sum += e.RPN
	}
	s.AvgRPN = math.Round(float64(sum)/float64(len(entries))*100) / 100
	return s
}
