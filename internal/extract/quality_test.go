package extract

import "testing"

func TestTextQualityEmpty(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t  "} {
		if got := TextQuality(text); got != 0 {
			t.Errorf("TextQuality(%q) = %v, want 0", text, got)
		}
	}
}

func TestTextQualityBounds(t *testing.T) {
	texts := []string{
		"Normal readable sentence with plain words.",
		"x",
		"!!!@@@###$$$%%%",
		"A mix of words and 12345 numbers, punctuation; and $ symbols.",
		"supercalifragilisticexpialidocious pneumonoultramicroscopicsilicovolcanoconiosis",
	}
	for _, text := range texts {
		got := TextQuality(text)
		if got < 0 || got > 1 {
			t.Errorf("TextQuality(%q) = %v, want within [0,1]", text, got)
		}
	}
}

func TestTextQualityReadablePlainText(t *testing.T) {
	// mostly letters and spaces, short words: both factors should land high
	got := TextQuality("the team has a very strong plan to grow the new market")
	if got < 0.7 {
		t.Errorf("TextQuality(plain text) = %v, want >= 0.7", got)
	}

	noisy := TextQuality("@@## $$%% ^^&& (())")
	if noisy >= got {
		t.Errorf("noisy text scored %v, want below plain text score %v", noisy, got)
	}
}

func TestWordAndCharCount(t *testing.T) {
	text := "one two  three\nfour"
	if got := wordCount(text); got != 4 {
		t.Errorf("wordCount = %d, want 4", got)
	}
	if got := charCount("héllo"); got != 5 {
		t.Errorf("charCount = %d, want 5 runes", got)
	}
}
