package extract

import (
	"strings"
	"unicode"
)

// TextQuality scores extracted text in [0,1]. It rewards text that is
// mostly letters and whitespace over symbol noise, and penalizes
// degenerate single-character "words" via the average word length.
//
//	readability_ratio = alpha_or_space_chars / total_chars
//	word_length_score = min((chars/words)/6, 1.0)
//	quality           = min(0.6*readability + 0.4*word_length, 1.0)
func TextQuality(text string) float64 {
	if strings.TrimSpace(text) == "" {
		return 0.0
	}

	chars := charCount(text)
	words := wordCount(text)

	readable := 0
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsSpace(r) {
			readable++
		}
	}
	readabilityRatio := 0.0
	if chars > 0 {
		readabilityRatio = float64(readable) / float64(chars)
	}

	wordLengthScore := 0.0
	if words > 0 {
		avgWordLength := float64(chars) / float64(words)
		wordLengthScore = avgWordLength / 6
		if wordLengthScore > 1.0 {
			wordLengthScore = 1.0
		}
	}

	quality := readabilityRatio*0.6 + wordLengthScore*0.4
	if quality > 1.0 {
		quality = 1.0
	}
	return quality
}

func charCount(text string) int {
	return len([]rune(text))
}

func wordCount(text string) int {
	return len(strings.Fields(text))
}
