package fmea_test

import (
	"testing"

	"github.com/helmcode/fmea-ai/pkg/fmea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustEntry(t *testing.T, id string, s, o, d int) fmea.FailureModeEntry {
	t.Helper()
	e, err := fmea.NewEntry(id, "Component", "Function", "Mode", "Effect", "Cause", s, o, d, "Action")
	require.NoError(t, err)
	return e
}

func TestSummarize_Empty(t *testing.T) {
	s := fmea.Summarize(nil)
	assert.Equal(t, fmea.AnalysisSummary{}, s)
	assert.Equal(t, 0, s.TotalEntries)
	assert.Equal(t, 0, s.MaxRPN)
	assert.Equal(t, 0.0, s.AvgRPN)
}

func TestSummarize_CountsByTier(t *testing.T) {
	entries := []fmea.FailureModeEntry{
		mustEntry(t, "DFMEA-001", 6, 8, 1),  // 48 low
		mustEntry(t, "DFMEA-002", 5, 5, 6),  // 150 medium
		mustEntry(t, "DFMEA-003", 5, 7, 8),  // 280 high
		mustEntry(t, "DFMEA-004", 8, 5, 10), // 400 critical
	}
	s := fmea.Summarize(entries)
	assert.Equal(t, 4, s.TotalEntries)
	assert.Equal(t, 1, s.LowCount)
	assert.Equal(t, 1, s.MediumCount)
	assert.Equal(t, 1, s.HighCount)
	assert.Equal(t, 1, s.CriticalCount)
	assert.Equal(t, s.TotalEntries, s.LowCount+s.MediumCount+s.HighCount+s.CriticalCount)
}

func TestSummarize_MaxAndAvgRPN(t *testing.T) {
	entries := []fmea.FailureModeEntry{
		mustEntry(t, "DFMEA-001", 2, 2, 2),   // 8
		mustEntry(t, "DFMEA-002", 4, 5, 5),   // 100
		mustEntry(t, "DFMEA-003", 10, 10, 10), // 1000
	}
	s := fmea.Summarize(entries)
	assert.Equal(t, 1000, s.MaxRPN)
	// mean of 8, 100, 1000 = 369.333..., rounded half away from zero
	assert.Equal(t, 369.33, s.AvgRPN)
}

func TestSummarize_RoundsToTwoDecimals(t *testing.T) {
	entries := []fmea.FailureModeEntry{
		mustEntry(t, "DFMEA-001", 1, 1, 1), // 1
		mustEntry(t, "DFMEA-002", 1, 1, 2), // 2
		mustEntry(t, "DFMEA-003", 1, 1, 2), // 2
	}
	// 5/3 = 1.666... rounds half away from zero to 1.67
	s := fmea.Summarize(entries)
	assert.Equal(t, 1.67, s.AvgRPN)
}

func TestSummarize_DoesNotMutateEntries(t *testing.T) {
	entries := []fmea.FailureModeEntry{mustEntry(t, "DFMEA-001", 5, 5, 5)}
	before := entries[0]
	_ = fmea.Summarize(entries)
	assert.Equal(t, before, entries[0])
}
