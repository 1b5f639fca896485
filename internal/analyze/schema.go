package analyze

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// resultSchema is the JSON Schema every serialized AnalysisResult must
// satisfy before it is persisted. It pins the fixed category keys and
// the confidence range rather than every leaf field.
func resultSchema() map[string]any {
	category := func(required ...string) map[string]any {
		req := make([]any, len(required))
		for i, r := range required {
			req[i] = r
		}
		return map[string]any{
			"type":     "object",
			"required": req,
		}
	}
	return map[string]any{
		"type": "object",
		"required": []any{
			"text_analysis", "entities", "financial_metrics",
			"business_insights", "market_analysis", "team_information",
			"risk_factors", "sentiment", "document_classification",
			"key_topics", "confidence_score",
		},
		"properties": map[string]any{
			"text_analysis": category("original_length", "word_count", "readability_score"),
			"entities": category(
				"organizations", "people", "locations",
				"money", "dates", "products", "technologies"),
			"financial_metrics": category(
				"revenue_metrics", "funding_metrics", "profitability_metrics",
				"growth_metrics", "valuation_metrics"),
			"business_insights": category("target_market", "value_proposition", "competitive_advantages"),
			"market_analysis":   category("market_size", "competitors", "market_trends", "opportunities"),
			"team_information":  category("founders", "key_personnel", "experience_highlights"),
			"risk_factors":      map[string]any{"type": "array"},
			"sentiment":         category("sentiment", "confidence"),
			"document_classification": category("document_type", "confidence"),
			"key_topics":              map[string]any{"type": "array"},
			"confidence_score": map[string]any{
				"type":    "number",
				"minimum": 0,
				"maximum": 1,
			},
		},
	}
}

// ValidateResultJSON checks a serialized analysis payload against the
// result schema. Persisting an invalid payload is a bug upstream, so
// callers treat a failure as fatal for the run.
func ValidateResultJSON(data []byte) error {
	b, err := json.Marshal(resultSchema())
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("analysis.schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("analysis.schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal analysis payload: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("analysis payload does not match schema: %w", err)
	}
	return nil
}
