package fmea

// RiskLevel classifies an RPN into an ordinal risk tier.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// ComputeRPN returns the Risk Priority Number (Severity × Occurrence ×
// Detection) per IEC 60812:2018. Range checking is the caller's job — the
// entry constructors enforce the 1–10 rating bounds.
func ComputeRPN(severity, occurrence, detection int) int {
	return severity * occurrence * detection
}

// ClassifyRisk maps an RPN to a risk tier using AIAG-VDA FMEA thresholds:
// critical ≥ 400, high ≥ 200, medium ≥ 100, low below that.
func ClassifyRisk(rpn int) RiskLevel {
	switch {
	case rpn >= 400:
		return RiskCritical
	case rpn >= 200:
		return RiskHigh
	case rpn >= 100:
		return RiskMedium
	default:
		return RiskLow
	}
}
