package score

import (
	"strings"
	"testing"

	"github.com/nnamdi-udeh/dealdesk/internal/analyze"
)

func TestFinancialReasoningTemplates(t *testing.T) {
	a := analyze.EmptyResult()
	a.FinancialMetrics.Revenue = append(a.FinancialMetrics.Revenue,
		analyze.FinancialMetric{Type: "revenue", Amount: 1})

	got := financialReasoning(a, 80)
	if !strings.HasPrefix(got, "Strong financial indicators: ") {
		t.Errorf("high-score reasoning = %q", got)
	}
	if !strings.Contains(got, "Revenue data available") {
		t.Errorf("reasoning should cite revenue evidence: %q", got)
	}

	if got := financialReasoning(analyze.EmptyResult(), 55); got != "Moderate financial health: Limited financial data" {
		t.Errorf("mid-score fallback = %q", got)
	}
	if got := financialReasoning(analyze.EmptyResult(), 30); got != "Financial concerns: Insufficient financial information" {
		t.Errorf("low-score fallback = %q", got)
	}
}

func TestKeyStrengths(t *testing.T) {
	a := analyze.EmptyResult()
	a.FinancialMetrics.Revenue = append(a.FinancialMetrics.Revenue,
		analyze.FinancialMetric{Type: "revenue", Amount: 1})
	a.TeamInformation.Founders = []analyze.Founder{
		{Name: "A", Role: "founder"}, {Name: "B", Role: "founder"},
	}

	strengths := keyStrengths(a, map[string]float64{
		"financial": 80, "market": 60, "team": 75, "product": 40,
	})

	if len(strengths) == 0 {
		t.Fatal("expected strengths")
	}
	// dimensions at or above 75 come first, in fixed order
	if strengths[0] != "Strong financial performance (80.0/100)" {
		t.Errorf("first strength = %q", strengths[0])
	}
	if strengths[1] != "Strong team performance (75.0/100)" {
		t.Errorf("second strength = %q", strengths[1])
	}

	joined := strings.Join(strengths, "|")
	if !strings.Contains(joined, "Revenue generation demonstrated") {
		t.Errorf("strengths missing revenue evidence: %v", strengths)
	}
	if !strings.Contains(joined, "Co-founder team") {
		t.Errorf("strengths missing co-founder evidence: %v", strengths)
	}
	if len(strengths) > 5 {
		t.Errorf("strengths = %d entries, want at most 5", len(strengths))
	}
}

func TestKeyConcerns(t *testing.T) {
	risks := RiskAssessment{
		MarketRisk:      50,
		FinancialRisk:   80,
		OperationalRisk: 50,
		RegulatoryRisk:  50,
		TechnologyRisk:  50,
		TeamRisk:        50,
		RiskFactors: []AssessedRisk{
			{Category: "financial", Severity: "high", Description: "burn rate exceeds runway", Score: 80},
			{Category: "market", Severity: "medium", Description: "crowded segment", Score: 50},
		},
	}

	concerns := keyConcerns(risks, map[string]float64{
		"financial": 35, "market": 60, "team": 60, "product": 60,
	})

	if concerns[0] != "Weak financial indicators (35.0/100)" {
		t.Errorf("first concern = %q", concerns[0])
	}

	joined := strings.Join(concerns, "|")
	if !strings.Contains(joined, "High financial risk (80.0/100)") {
		t.Errorf("concerns missing category risk: %v", concerns)
	}
	if !strings.Contains(joined, "financial risk: burn rate exceeds runway...") {
		t.Errorf("concerns missing severe factor: %v", concerns)
	}
	if strings.Contains(joined, "crowded segment") {
		t.Errorf("medium-severity factors should not be listed: %v", concerns)
	}
	if len(concerns) > 5 {
		t.Errorf("concerns = %d entries, want at most 5", len(concerns))
	}
}

func TestTruncate(t *testing.T) {
	long := strings.Repeat("x", 80)
	if got := truncate(long, 50); len(got) != 50 {
		t.Errorf("truncate length = %d, want 50", len(got))
	}
	if got := truncate("short", 50); got != "short" {
		t.Errorf("truncate(short) = %q", got)
	}
}
