package utils

import (
	"strings"
	"testing"
)

func TestEnumValidator(t *testing.T) {
	validate := EnumValidator("PENDING", "PROCESSING", "COMPLETED", "FAILED")

	for _, v := range []string{"PENDING", "FAILED"} {
		if err := validate(v); err != nil {
			t.Errorf("%s should be accepted: %v", v, err)
		}
	}

	err := validate("DONE")
	if err == nil {
		t.Fatal("unknown value should be rejected")
	}
	if !strings.Contains(err.Error(), "DONE") {
		t.Errorf("error should name the rejected value: %v", err)
	}
}
