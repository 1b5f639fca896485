package constants

import "testing"

func TestMapMIMEToFormat(t *testing.T) {
	cases := []struct {
		mime string
		want DocumentFormat
	}{
		{"application/pdf", PDF},
		{"application/vnd.openxmlformats-officedocument.wordprocessingml.document", WORD},
		{"application/msword", WORD},
		{"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", SPREADSHEET},
		{"application/vnd.ms-excel", SPREADSHEET},
		{"application/vnd.openxmlformats-officedocument.presentationml.presentation", SLIDES},
		{"application/vnd.ms-powerpoint", SLIDES},
		{"text/plain", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := MapMIMEToFormat(tc.mime); got != tc.want {
			t.Errorf("MapMIMEToFormat(%q) = %q, want %q", tc.mime, got, tc.want)
		}
	}
}

func TestMapExtToMIME(t *testing.T) {
	if got := MapExtToMIME(".PDF"); got != "application/pdf" {
		t.Errorf("MapExtToMIME(.PDF) = %q", got)
	}
	if got := MapExtToMIME("xlsx"); got != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Errorf("MapExtToMIME(xlsx) = %q", got)
	}
	if got := MapExtToMIME(".txt"); got != "" {
		t.Errorf("MapExtToMIME(.txt) = %q, want empty", got)
	}
}

func TestNormalizeExt(t *testing.T) {
	if got := NormalizeExt(".DocX"); got != "docx" {
		t.Errorf("NormalizeExt(.DocX) = %q", got)
	}
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range ProcessingStatuses {
		if !IsValidStatus(s) {
			t.Errorf("IsValidStatus(%q) = false", s)
		}
	}
	for _, s := range []string{"", "pending", "DONE"} {
		if IsValidStatus(s) {
			t.Errorf("IsValidStatus(%q) = true", s)
		}
	}
}

func TestIsTerminal(t *testing.T) {
	if StatusPending.IsTerminal() || StatusProcessing.IsTerminal() {
		t.Error("pending and processing are not terminal")
	}
	if !StatusCompleted.IsTerminal() || !StatusFailed.IsTerminal() {
		t.Error("completed and failed are terminal")
	}
}
