package skills

import (
	"github.com/jonathan/assessment-agent/internal/parsing"
	"github.com/jonathan/assessment-agent/internal/types"
)

const (
	// Seed weights for declared skills (baseline proficiency claim)
	coreSkillSeed   = 0.8
	domainSkillSeed = 0.7

	// Bonus applied once per responsibility line mentioning the skill
	mentionBonus = 0.1

	// Weights saturate here
	maxWeight = 1.0
)

// ExtractSkillMap builds a SkillMap from a candidate profile.
//
// Declared languages seed core skills at 0.8 and declared frameworks seed
// domain skills at 0.7. Each experience responsibility line that mentions a
// declared skill raises its weight by 0.1, clamped to 1.0; the bonus applies
// once per line but accumulates across lines. Project detail lines validate
// skills without altering weights. Inferred skills stay empty unless an
// external inference collaborator fills them in later.
func ExtractSkillMap(profile *types.CandidateProfile) (*types.SkillMap, error) {
	if profile.TechnicalSkills == nil {
		return nil, &InvalidProfileError{Message: "technical_skills section is missing"}
	}

	languages := parsing.NormalizeSkillTokens(profile.TechnicalSkills.Languages)
	frameworks := parsing.NormalizeSkillTokens(profile.TechnicalSkills.FrameworksTechnologies)

	coreSkills := make(map[string]float64, len(languages))
	for _, token := range languages {
		coreSkills[token] = coreSkillSeed
	}

	domainSkills := make(map[string]float64, len(frameworks))
	for _, token := range frameworks {
		domainSkills[token] = domainSkillSeed
	}

	// Experience mentions boost declared skill weights.
	for _, exp := range profile.Experience {
		for _, responsibility := range exp.Responsibilities {
			words := parsing.WordSet(responsibility)
			for _, token := range languages {
				if words[token] {
					coreSkills[token] = clamp(coreSkills[token] + mentionBonus)
				}
			}
			for _, token := range frameworks {
				if words[token] {
					domainSkills[token] = clamp(domainSkills[token] + mentionBonus)
				}
			}
		}
	}

	// Project mentions validate skills without changing weights.
	validated := make([]string, 0)
	seen := make(map[string]bool)
	for _, project := range profile.Projects {
		for _, detail := range project.Details {
			words := parsing.WordSet(detail)
			for _, token := range languages {
				if words[token] && !seen[token] {
					seen[token] = true
					validated = append(validated, token)
				}
			}
			for _, token := range frameworks {
				if words[token] && !seen[token] {
					seen[token] = true
					validated = append(validated, token)
				}
			}
		}
	}

	return &types.SkillMap{
		CoreSkills:             coreSkills,
		DomainSkills:           domainSkills,
		InferredSkills:         map[string]float64{},
		ProjectValidatedSkills: validated,
	}, nil
}

func clamp(weight float64) float64 {
	if weight > maxWeight {
		return maxWeight
	}
	return weight
}
