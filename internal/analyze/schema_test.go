package analyze

import (
	"encoding/json"
	"testing"
)

func TestValidateResultJSON(t *testing.T) {
	data, err := json.Marshal(EmptyResult())
	if err != nil {
		t.Fatal(err)
	}
	if err := ValidateResultJSON(data); err != nil {
		t.Errorf("canonical empty result should validate: %v", err)
	}
}

func TestValidateResultJSONRejectsMissingCategory(t *testing.T) {
	var m map[string]any
	data, _ := json.Marshal(EmptyResult())
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	delete(m, "entities")
	data, _ = json.Marshal(m)

	if err := ValidateResultJSON(data); err == nil {
		t.Error("payload without entities should fail validation")
	}
}

func TestValidateResultJSONRejectsOutOfRangeConfidence(t *testing.T) {
	var m map[string]any
	data, _ := json.Marshal(EmptyResult())
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	m["confidence_score"] = 1.5
	data, _ = json.Marshal(m)

	if err := ValidateResultJSON(data); err == nil {
		t.Error("confidence above 1 should fail validation")
	}
}

func TestValidateResultJSONRejectsMalformedPayload(t *testing.T) {
	if err := ValidateResultJSON([]byte("{not json")); err == nil {
		t.Error("malformed JSON should fail validation")
	}
}
