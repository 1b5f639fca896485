package analyze

import (
	"strconv"
	"strings"
)

// extractTeamInformation collects founder mentions and the first
// matching team-size figure.
func (a *Analyzer) extractTeamInformation(text string) TeamInformation {
	team := TeamInformation{
		Founders:             []Founder{},
		KeyPersonnel:         []string{},
		ExperienceHighlights: []string{},
	}

	for _, re := range founderPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			team.Founders = append(team.Founders, Founder{
				Name:    strings.TrimSpace(m[1]),
				Role:    "founder",
				Context: m[0],
			})
		}
	}

	for _, re := range teamSizePatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				team.TeamSize = n
			}
			break
		}
	}

	return team
}
