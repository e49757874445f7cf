package formatter

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/helmcode/fmea-ai/pkg/fmea"
	"gopkg.in/yaml.v3"
)

// DisplayResults formats and displays the analysis results
func DisplayResults(resp *fmea.AnalysisResponse, format string) error {
	switch format {
	case "json":
		return displayJSON(resp)
	case "yaml":
		return displayYAML(resp)
	case "human":
		fallthrough
	default:
		displayHuman(resp)
	}
	return nil
}

func displayJSON(resp *fmea.AnalysisResponse) error {
	output, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(output))
	return nil
}

func displayYAML(resp *fmea.AnalysisResponse) error {
	output, err := yaml.Marshal(resp)
	if err != nil {
		return err
	}
	fmt.Println(string(output))
	return nil
}

func displayHuman(resp *fmea.AnalysisResponse) {
	cyan := color.New(color.FgCyan, color.Bold)
	white := color.New(color.FgWhite, color.Bold)

	fmt.Println()
	cyan.Printf("📋 DFMEA: %s\n", resp.SystemName)
	fmt.Printf("   Date: %s   Scope: %s   Methodology DOI: %s\n\n", resp.AnalysisDate, resp.Scope, resp.DOIReference)

	s := resp.Summary
	white.Println("📊 SUMMARY:")
	fmt.Printf("   Total failure modes : %d\n", s.TotalEntries)
	fmt.Printf("   🔴 Critical (≥400)  : %d\n", s.CriticalCount)
	fmt.Printf("   🟠 High (200–399)   : %d\n", s.HighCount)
	fmt.Printf("   🟡 Medium (100–199) : %d\n", s.MediumCount)
	fmt.Printf("   🟢 Low (<100)       : %d\n", s.LowCount)
	fmt.Printf("   Max RPN             : %d\n", s.MaxRPN)
	fmt.Printf("   Avg RPN             : %.2f\n\n", s.AvgRPN)

	white.Println("⚠️  FAILURE MODES:")
	for _, e := range resp.Entries {
		tierColor := getRiskColor(e.RiskLevel)
		fmt.Printf("   %s %s — %s\n", getRiskIcon(e.RiskLevel), e.ID, e.Component)
		fmt.Printf("      Mode:   %s\n", e.FailureMode)
		fmt.Printf("      Effect: %s\n", e.FailureEffect)
		fmt.Printf("      Cause:  %s\n", e.FailureCause)
		fmt.Printf("      S=%d O=%d D=%d → RPN %d ", e.Severity, e.Occurrence, e.Detection, e.RPN)
		tierColor.Printf("[%s]\n", strings.ToUpper(string(e.RiskLevel)))
		fmt.Printf("      Action: %s\n\n", e.RecommendedAction)
	}

	fmt.Println(strings.Repeat("─", 80))
	fmt.Printf("💡 %s\n", color.HiBlackString("Run with -o json or -o yaml for machine-readable output"))
}

func getRiskColor(level fmea.RiskLevel) *color.Color {
	switch level {
	case fmea.RiskCritical:
		return color.New(color.FgRed, color.Bold)
	case fmea.RiskHigh:
		return color.New(color.FgRed)
	case fmea.RiskMedium:
		return color.New(color.FgYellow)
	case fmea.RiskLow:
		return color.New(color.FgGreen)
	default:
		return color.New(color.FgWhite)
	}
}

func getRiskIcon(level fmea.RiskLevel) string {
	switch level {
	case fmea.RiskCritical:
		return "🔴"
	case fmea.RiskHigh:
		return "🟠"
	case fmea.RiskMedium:
		return "🟡"
	case fmea.RiskLow:
		return "🟢"
	default:
		return "⚪"
	}
}
