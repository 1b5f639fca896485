package score

import (
	"context"
	"reflect"
	"testing"

	"github.com/nnamdi-udeh/dealdesk/constants"
	"github.com/nnamdi-udeh/dealdesk/internal/analyze"
)

func newTestEngine() *Engine {
	return NewEngine(DefaultConfig(), nil)
}

func TestRecommendBoundaries(t *testing.T) {
	e := newTestEngine()
	cases := []struct {
		overall float64
		want    constants.Recommendation
	}{
		{85.0, constants.RecommendationStrongBuy},
		{84.99, constants.RecommendationBuy},
		{70.0, constants.RecommendationBuy},
		{69.99, constants.RecommendationHold},
		{50.0, constants.RecommendationHold},
		{49.99, constants.RecommendationPass},
		{0, constants.RecommendationPass},
		{100, constants.RecommendationStrongBuy},
	}
	for _, tc := range cases {
		if got := e.recommend(tc.overall); got != tc.want {
			t.Errorf("recommend(%v) = %s, want %s", tc.overall, got, tc.want)
		}
	}
}

func TestScoreEmptyAnalysis(t *testing.T) {
	e := newTestEngine()
	result, err := e.Score(context.Background(), analyze.EmptyResult(), "")
	if err != nil {
		t.Fatalf("Score: %v", err)
	}

	// every dimension: neutral 50 discounted by the neutral risk of 50
	// at the 0.3 max reduction, so 50 * 0.85
	for name, got := range map[string]float64{
		"financial": result.FinancialScore,
		"market":    result.MarketScore,
		"team":      result.TeamScore,
		"product":   result.ProductScore,
	} {
		if got != 42.5 {
			t.Errorf("%s score = %v, want 42.5", name, got)
		}
	}
	if result.OverallScore != 42.5 {
		t.Errorf("overall = %v, want 42.5", result.OverallScore)
	}
	if result.RiskScore != 50 {
		t.Errorf("risk = %v, want neutral 50", result.RiskScore)
	}
	if result.Recommendation != constants.RecommendationPass {
		t.Errorf("recommendation = %s, want pass", result.Recommendation)
	}
	if result.ConfidenceLower != 22.5 || result.ConfidenceUpper != 62.5 {
		t.Errorf("confidence interval = [%v, %v], want [22.5, 62.5]",
			result.ConfidenceLower, result.ConfidenceUpper)
	}
}

func TestScoreNilAnalysis(t *testing.T) {
	e := newTestEngine()
	if _, err := e.Score(context.Background(), nil, ""); err == nil {
		t.Fatal("expected error for nil analysis")
	}
}

func TestFinancialScoreBonuses(t *testing.T) {
	a := analyze.EmptyResult()
	a.FinancialMetrics.Revenue = append(a.FinancialMetrics.Revenue,
		analyze.FinancialMetric{Type: "revenue", Amount: 2_000_000})
	a.FinancialMetrics.Funding = append(a.FinancialMetrics.Funding,
		analyze.FinancialMetric{Type: "funding", Amount: 6, Unit: "m"})
	a.BusinessInsights.RevenueModel = "subscription"

	// 50 base, +15 revenue, +10 above $1M, +10 funding, +15 at $5M+,
	// +15 subscription model = 115, capped at 100
	if got := financialScore(a); got != 100 {
		t.Errorf("financial score = %v, want capped 100", got)
	}
}

func TestFinancialScoreUnitNormalizedRevenueTier(t *testing.T) {
	a := analyze.EmptyResult()
	// 2000 with a k suffix is $2M, so the $1M tier applies
	a.FinancialMetrics.Revenue = append(a.FinancialMetrics.Revenue,
		analyze.FinancialMetric{Type: "revenue", Amount: 2000, Unit: "k"})
	if got := financialScore(a); got != 75 {
		t.Errorf("financial score = %v, want 75 (revenue bonus plus the $1M tier)", got)
	}

	b := analyze.EmptyResult()
	b.FinancialMetrics.Revenue = append(b.FinancialMetrics.Revenue,
		analyze.FinancialMetric{Type: "revenue", Amount: 900, Unit: "k"})
	if got := financialScore(b); got != 65 {
		t.Errorf("financial score = %v, want 65 (no $1M tier at 900k)", got)
	}
}

func TestMarketScoreSizeTiers(t *testing.T) {
	cases := []struct {
		amount float64
		unit   string
		want   float64
	}{
		{12, "b", 50 + 15 + 20},
		{2, "b", 50 + 15 + 15},
		{200, "m", 50 + 15 + 10},
		{5, "m", 50 + 15},
	}
	for _, tc := range cases {
		a := analyze.EmptyResult()
		a.MarketAnalysis.MarketSize = append(a.MarketAnalysis.MarketSize,
			analyze.MarketSize{Amount: tc.amount, Unit: tc.unit})
		if got := marketScore(a); got != tc.want {
			t.Errorf("marketScore(%v%s) = %v, want %v", tc.amount, tc.unit, got, tc.want)
		}
	}
}

func TestMarketScoreCompetitorCount(t *testing.T) {
	for _, tc := range []struct {
		n    int
		want float64
	}{
		{2, 65}, {5, 60}, {9, 55},
	} {
		a := analyze.EmptyResult()
		for i := 0; i < tc.n; i++ {
			a.MarketAnalysis.Competitors = append(a.MarketAnalysis.Competitors, "Rival")
		}
		if got := marketScore(a); got != tc.want {
			t.Errorf("marketScore with %d competitors = %v, want %v", tc.n, got, tc.want)
		}
	}
}

func TestTeamScore(t *testing.T) {
	a := analyze.EmptyResult()
	a.TeamInformation.Founders = []analyze.Founder{
		{Name: "Jane Doe", Role: "founder", Context: "founded by Jane Doe, former Stripe engineer"},
		{Name: "John Smith", Role: "founder"},
	}
	a.TeamInformation.TeamSize = 12
	a.Entities.Organizations = []analyze.Entity{{Text: "Stripe", Label: "ORG"}}

	// 50 +15 founders +10 second founder +10 experience marker
	// +15 team size in 5..20 +10 prestigious org = 110 capped
	if got := teamScore(a); got != 100 {
		t.Errorf("team score = %v, want capped 100", got)
	}

	b := analyze.EmptyResult()
	b.TeamInformation.TeamSize = 60
	if got := teamScore(b); got != 55 {
		t.Errorf("team score for a 60-person team = %v, want 55", got)
	}
}

func TestProductScoreDevelopmentStage(t *testing.T) {
	a := analyze.EmptyResult()

	// first indicator in order wins: "mvp" before "customers"
	if got := productScore(a, "our mvp has paying customers"); got != 60 {
		t.Errorf("product score = %v, want 60 (mvp bonus only)", got)
	}
	if got := productScore(a, "launched, built to scale, with strong customer feedback"); got != 50+15+10+10 {
		t.Errorf("product score = %v, want 85", got)
	}
}

func TestProductScoreTechnologyRelevance(t *testing.T) {
	a := analyze.EmptyResult()
	a.KeyTopics = []analyze.Topic{{Topic: "technology", RelevanceScore: 0.5, KeywordMatches: 3}}
	if got := productScore(a, ""); got != 60 {
		t.Errorf("product score = %v, want 60 (0.5 relevance * 20)", got)
	}
}

func TestAssessRisks(t *testing.T) {
	a := analyze.EmptyResult()
	a.RiskFactors = []analyze.RiskFactor{
		{Category: "financial", Keyword: "burn rate", Severity: "high"},
		{Category: "financial", Keyword: "funding", Severity: "low"},
		{Category: "", Keyword: "unlabeled", Severity: "made-up"},
	}

	risks := assessRisks(a)
	if risks.FinancialRisk != 50 {
		t.Errorf("financial risk = %v, want mean(80, 20) = 50", risks.FinancialRisk)
	}
	// blank category lands in operational; unknown severity reads medium
	if risks.OperationalRisk != 50 {
		t.Errorf("operational risk = %v, want 50", risks.OperationalRisk)
	}
	if risks.MarketRisk != 50 {
		t.Errorf("untouched category = %v, want neutral 50", risks.MarketRisk)
	}
	if len(risks.RiskFactors) != 3 {
		t.Errorf("assessed factors = %d, want 3", len(risks.RiskFactors))
	}
}

func TestConfidenceIntervalClamped(t *testing.T) {
	e := newTestEngine()

	lower, upper := e.confidenceInterval(95, 0)
	if lower != 75 || upper != 100 {
		t.Errorf("interval = [%v, %v], want [75, 100]", lower, upper)
	}

	lower, upper = e.confidenceInterval(5, 0)
	if lower != 0 || upper != 25 {
		t.Errorf("interval = [%v, %v], want [0, 25]", lower, upper)
	}

	lower, upper = e.confidenceInterval(60, 1)
	if lower != 60 || upper != 60 {
		t.Errorf("full-confidence interval = [%v, %v], want degenerate [60, 60]", lower, upper)
	}
}

func TestWeightsSumToOne(t *testing.T) {
	w := DefaultConfig().Weights
	if sum := w.Financial + w.Market + w.Team + w.Product; sum != 1.0 {
		t.Errorf("weights sum = %v, want 1.0", sum)
	}
}

func TestScoreDeterministic(t *testing.T) {
	e := newTestEngine()
	a := analyze.EmptyResult()
	a.FinancialMetrics.Revenue = append(a.FinancialMetrics.Revenue,
		analyze.FinancialMetric{Type: "revenue", Amount: 500_000})

	first, err := e.Score(context.Background(), a, "beta traction")
	if err != nil {
		t.Fatal(err)
	}
	second, err := e.Score(context.Background(), a, "beta traction")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs should produce identical results")
	}
}
