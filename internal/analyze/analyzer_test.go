package analyze

import (
	"context"
	"reflect"
	"testing"
)

func newTestAnalyzer() *Analyzer {
	return NewAnalyzer(DefaultConfig(), nil)
}

func TestAnalyzeEmptyInput(t *testing.T) {
	a := newTestAnalyzer()
	for _, text := range []string{"", "   ", "\n\t"} {
		got, err := a.Analyze(context.Background(), text, "general")
		if err != nil {
			t.Fatalf("Analyze(%q): %v", text, err)
		}
		if !reflect.DeepEqual(got, EmptyResult()) {
			t.Errorf("Analyze(%q) = %+v, want the canonical empty result", text, got)
		}
	}
}

func TestAnalyzeFinancialMetrics(t *testing.T) {
	a := newTestAnalyzer()
	text := "Revenue: $2,000,000. Raised $6M Series A. Founders: Jane Doe, John Smith."

	got, err := a.Analyze(context.Background(), text, "general")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if len(got.FinancialMetrics.Revenue) != 1 {
		t.Fatalf("revenue metrics = %+v, want exactly one", got.FinancialMetrics.Revenue)
	}
	rev := got.FinancialMetrics.Revenue[0]
	if rev.Amount != 2000000 || rev.Unit != "" {
		t.Errorf("revenue = %v unit %q, want 2000000 with no unit", rev.Amount, rev.Unit)
	}

	if len(got.FinancialMetrics.Funding) != 1 {
		t.Fatalf("funding metrics = %+v, want exactly one", got.FinancialMetrics.Funding)
	}
	fund := got.FinancialMetrics.Funding[0]
	if fund.Amount != 6 || fund.Unit != "m" {
		t.Errorf("funding = %v unit %q, want 6 with unit m", fund.Amount, fund.Unit)
	}
	if fund.ActualAmount() != 6e6 {
		t.Errorf("funding actual amount = %v, want 6e6", fund.ActualAmount())
	}

	if len(got.TeamInformation.Founders) == 0 {
		t.Fatal("expected at least one founder mention")
	}
	f := got.TeamInformation.Founders[0]
	if f.Name != "Jane Doe" || f.Role != "founder" {
		t.Errorf("founder = %q role %q, want Jane Doe / founder", f.Name, f.Role)
	}
}

func TestExtractMarketAnalysis(t *testing.T) {
	a := newTestAnalyzer()
	market := a.extractMarketAnalysis("Market size: $10B. Competitors: Acme Corp, Beta Labs")

	if len(market.MarketSize) != 1 {
		t.Fatalf("market sizes = %+v, want one", market.MarketSize)
	}
	if got := market.MarketSize[0].ActualAmount(); got != 10e9 {
		t.Errorf("market size = %v, want 10e9", got)
	}

	want := []string{"Acme Corp", "Beta Labs"}
	if !reflect.DeepEqual(market.Competitors, want) {
		t.Errorf("competitors = %v, want %v", market.Competitors, want)
	}
}

func TestExtractBusinessInsightsFirstMatchWins(t *testing.T) {
	a := newTestAnalyzer()
	// "saas" and "marketplace" both present; dictionary order keeps saas
	insights := a.extractBusinessInsights("a saas marketplace with subscription pricing for our target market of dentists")

	if insights.BusinessModel != "saas" {
		t.Errorf("business model = %q, want saas", insights.BusinessModel)
	}
	if insights.RevenueModel != "subscription" {
		t.Errorf("revenue model = %q, want subscription", insights.RevenueModel)
	}
	if len(insights.TargetMarket) != 1 {
		t.Errorf("target market mentions = %v, want one context window", insights.TargetMarket)
	}
}

func TestExtractTeamSizeFirstPatternWins(t *testing.T) {
	a := newTestAnalyzer()
	team := a.extractTeamInformation("A team of 12 supported by 40 employees.")
	if team.TeamSize != 12 {
		t.Errorf("team size = %d, want 12 (first pattern wins)", team.TeamSize)
	}
}

func TestIdentifyRiskFactors(t *testing.T) {
	a := newTestAnalyzer()
	risks := a.identifyRiskFactors("Our burn rate is high and hiring senior engineers is hard. The burn rate may worsen.")

	byKeyword := map[string]RiskFactor{}
	for _, r := range risks {
		byKeyword[r.Keyword] = r
	}

	burn, ok := byKeyword["burn rate"]
	if !ok {
		t.Fatalf("risks = %+v, want a burn rate hit", risks)
	}
	if burn.Category != "financial" {
		t.Errorf("burn rate category = %q, want financial", burn.Category)
	}
	if burn.Severity != "medium" || burn.Confidence != 0.7 {
		t.Errorf("burn rate severity/confidence = %q/%v, want medium/0.7", burn.Severity, burn.Confidence)
	}
	if burn.Context == "" {
		t.Error("risk context window should not be empty")
	}

	if hire, ok := byKeyword["hiring"]; !ok || hire.Category != "team" {
		t.Errorf("expected a team/hiring risk, got %+v", risks)
	}

	// a keyword is reported once even when it recurs
	count := 0
	for _, r := range risks {
		if r.Keyword == "burn rate" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("burn rate reported %d times, want 1", count)
	}
}

func TestAnalyzeSentiment(t *testing.T) {
	a := newTestAnalyzer()

	pos := a.analyzeSentiment("strong growth and excellent success")
	if pos.Label != "positive" || pos.PositiveIndicators != 4 {
		t.Errorf("positive case = %+v", pos)
	}

	neg := a.analyzeSentiment("decline and loss made this a difficult problem")
	if neg.Label != "negative" || neg.NegativeIndicators != 4 {
		t.Errorf("negative case = %+v", neg)
	}

	neutral := a.analyzeSentiment("the cat sat on the mat")
	if neutral.Label != "neutral" || neutral.Confidence != 0.5 {
		t.Errorf("neutral case = %+v", neutral)
	}
}

func TestClassifyDocument(t *testing.T) {
	a := newTestAnalyzer()

	pitch := a.classifyDocument("this pitch deck presentation slide covers our round")
	if pitch.DocumentType != "pitch_deck" {
		t.Errorf("document type = %q, want pitch_deck", pitch.DocumentType)
	}
	if pitch.Confidence != 0.8 {
		t.Errorf("confidence = %v, want 0.8 (4 of 5 keywords)", pitch.Confidence)
	}
	if _, ok := pitch.AllScores["pitch_deck"]; !ok {
		t.Errorf("all scores = %v, want a pitch_deck entry", pitch.AllScores)
	}

	general := a.classifyDocument("wholly unrelated prose about gardening")
	if general.DocumentType != "general" || general.Confidence != 0.5 {
		t.Errorf("fallback = %+v, want general at 0.5", general)
	}
	if len(general.AllScores) != 0 {
		t.Errorf("fallback all scores = %v, want empty", general.AllScores)
	}
}

func TestExtractKeyTopicsRanking(t *testing.T) {
	a := newTestAnalyzer()
	topics := a.extractKeyTopics("revenue profit growth market customer sales with some funding")

	if len(topics) == 0 {
		t.Fatal("expected topics")
	}
	if topics[0].Topic != "business" || topics[0].RelevanceScore != 1.0 {
		t.Errorf("top topic = %+v, want business at 1.0", topics[0])
	}
	for i := 1; i < len(topics); i++ {
		if topics[i].RelevanceScore > topics[i-1].RelevanceScore {
			t.Errorf("topics not sorted by relevance: %+v", topics)
		}
	}
	if len(topics) > a.cfg.TopTopics {
		t.Errorf("got %d topics, want at most %d", len(topics), a.cfg.TopTopics)
	}
}

func TestPreprocess(t *testing.T) {
	got := preprocess("a   b\tc@#d  ")
	if got != "a b cd" {
		t.Errorf("preprocess = %q, want %q", got, "a b cd")
	}
}

func TestReadabilityBounds(t *testing.T) {
	texts := []string{
		"Short words. Tiny lines.",
		"supercalifragilisticexpialidocious pneumonoultramicroscopicsilicovolcanoconiosis floccinaucinihilipilification",
		"One very long run on sentence that never seems to end because it keeps adding words and clauses without a single stop in sight for a while longer still",
	}
	for _, text := range texts {
		got := readability(text)
		if got < 0 || got > 1 {
			t.Errorf("readability(%q) = %v, want within [0,1]", text, got)
		}
	}
	if got := readability(""); got != 0 {
		t.Errorf("readability(empty) = %v, want 0", got)
	}
}

func TestOverallConfidence(t *testing.T) {
	a := newTestAnalyzer()

	if got := a.overallConfidence(EmptyResult()); got != a.cfg.BaselineConfidence {
		t.Errorf("no-signal confidence = %v, want baseline %v", got, a.cfg.BaselineConfidence)
	}

	r := EmptyResult()
	for i := 0; i < 10; i++ {
		r.Entities.Organizations = append(r.Entities.Organizations, Entity{Text: "Org", Label: "ORG"})
	}
	r.FinancialMetrics.Revenue = append(r.FinancialMetrics.Revenue, FinancialMetric{Amount: 1})
	// factors: entities 10/10 = 1.0, metrics 1/5 = 0.2; mean 0.6
	if got := a.overallConfidence(r); got != 0.6 {
		t.Errorf("confidence = %v, want 0.6", got)
	}
}
