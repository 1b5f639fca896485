// Package analyze is the rule-based text miner: it turns extracted
// document text into a fixed-shape AnalysisResult of entities,
// financial metrics, business insights, market and team signal, risks,
// sentiment, classification, and topics. Every heuristic is a
// dictionary or regex table; runs are deterministic for a given text.
package analyze

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
)

// Analyzer mines one text at a time. Safe for concurrent use; all
// state is the immutable config and the shared pattern tables.
type Analyzer struct {
	cfg    Config
	logger *slog.Logger
}

func NewAnalyzer(cfg Config, logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{cfg: cfg.withDefaults(), logger: logger}
}

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	// strip everything outside word chars, whitespace, and the
	// punctuation set the patterns rely on
	specialCharsRe = regexp.MustCompile(`[^\w\s.,!?;:()$%-]`)
	sentenceEndRe  = regexp.MustCompile(`[.!?]+`)
)

// Analyze runs every sub-extraction over the text and assembles the
// complete result. Empty or whitespace-only input returns the
// canonical empty result, never an error; documentType is a caller
// hint recorded in logs only, classification is always recomputed.
func (a *Analyzer) Analyze(ctx context.Context, text, documentType string) (*AnalysisResult, error) {
	if documentType == "" {
		documentType = "general"
	}
	a.logger.InfoContext(ctx, "starting text analysis",
		"document_type", documentType,
		"length", len(text))

	if strings.TrimSpace(text) == "" {
		return EmptyResult(), nil
	}

	cleaned := preprocess(text)

	result := &AnalysisResult{
		Entities:         a.extractEntities(cleaned),
		FinancialMetrics: a.extractFinancialMetrics(cleaned),
		BusinessInsights: a.extractBusinessInsights(cleaned),
		MarketAnalysis:   a.extractMarketAnalysis(cleaned),
		TeamInformation:  a.extractTeamInformation(cleaned),
		RiskFactors:      a.identifyRiskFactors(cleaned),
		Sentiment:        a.analyzeSentiment(cleaned),
		Classification:   a.classifyDocument(cleaned),
		KeyTopics:        a.extractKeyTopics(cleaned),
	}
	result.TextStats = TextStats{
		OriginalLength:   len(text),
		ProcessedLength:  len(cleaned),
		WordCount:        len(strings.Fields(cleaned)),
		SentenceCount:    len(splitSentences(cleaned)),
		Language:         "en",
		ReadabilityScore: readability(cleaned),
	}
	result.ConfidenceScore = a.overallConfidence(result)

	a.logger.InfoContext(ctx, "text analysis complete",
		"document_type", documentType,
		"entities", result.Entities.Count(),
		"financial_metrics", result.FinancialMetrics.Count(),
		"risk_factors", len(result.RiskFactors),
		"confidence", result.ConfidenceScore)
	return result, nil
}

// preprocess collapses whitespace and strips characters outside the
// retained punctuation set.
func preprocess(text string) string {
	text = whitespaceRe.ReplaceAllString(text, " ")
	text = specialCharsRe.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

func splitSentences(text string) []string {
	var sentences []string
	for _, s := range sentenceEndRe.Split(text, -1) {
		if s = strings.TrimSpace(s); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// readability maps average sentence and word length onto [0, 1];
// shorter sentences and words read as more readable.
func readability(text string) float64 {
	words := strings.Fields(text)
	sentences := splitSentences(text)
	if len(words) == 0 || len(sentences) == 0 {
		return 0.0
	}

	avgSentenceLength := float64(len(words)) / float64(len(sentences))
	totalChars := 0
	for _, w := range words {
		totalChars += len(w)
	}
	avgWordLength := float64(totalChars) / float64(len(words))

	score := 1 - avgSentenceLength/20 - avgWordLength/10
	if score < 0 {
		return 0.0
	}
	return min(score, 1.0)
}

// overallConfidence averages the confidence factors of the extractions
// that produced signal: entity count over 10, financial metric count
// over 5, insight fields over 3, each capped at 1. No signal at all
// yields the baseline.
func (a *Analyzer) overallConfidence(r *AnalysisResult) float64 {
	var factors []float64
	if n := r.Entities.Count(); n > 0 {
		factors = append(factors, min(float64(n)/10, 1.0))
	}
	if n := r.FinancialMetrics.Count(); n > 0 {
		factors = append(factors, min(float64(n)/5, 1.0))
	}
	if n := r.BusinessInsights.FoundCount(); n > 0 {
		factors = append(factors, min(float64(n)/3, 1.0))
	}

	if len(factors) == 0 {
		return a.cfg.BaselineConfidence
	}
	sum := 0.0
	for _, f := range factors {
		sum += f
	}
	return sum / float64(len(factors))
}
