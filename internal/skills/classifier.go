package skills

import (
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/assessment-agent/internal/types"
)

// Accrued years per parsed experience entry. The duration heuristic is
// deliberately coarse: the contract is the threshold behavior below, not
// calendar arithmetic.
const (
	yearsPerPastRole    = 0.25
	yearsPerCurrentRole = 0.5
)

// Experience level thresholds in accrued years.
const (
	midThreshold    = 1.0
	seniorThreshold = 3.0
)

// domainKeywords pairs each domain tag with the skill tokens that signal it.
// Evaluation order is fixed; each domain is tested once so duplicates cannot
// occur.
var domainKeywords = []struct {
	tag      string
	keywords []string
}{
	{"machine_learning", []string{"python", "pytorch", "tensorflow", "machine learning", "data science", "pandas", "numpy"}},
	{"web_development", []string{"javascript", "html", "css", "react", "node", "web development", "flask", "django"}},
	{"data_engineering", []string{"sql", "database", "data engineering", "etl", "spark", "hadoop"}},
}

// Analyzer turns candidate profiles into normalized candidates.
type Analyzer struct {
	log *zap.Logger
}

// NewAnalyzer creates an Analyzer. A nil logger disables logging.
func NewAnalyzer(log *zap.Logger) *Analyzer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Analyzer{log: log}
}

// Normalize analyzes a profile into a NormalizedCandidate: skill map,
// experience level, and domain expertise tags.
func (a *Analyzer) Normalize(profile *types.CandidateProfile) (*types.NormalizedCandidate, error) {
	skillMap, err := ExtractSkillMap(profile)
	if err != nil {
		return nil, err
	}

	level := a.ClassifyExperienceLevel(profile)
	domains := ClassifyDomainExpertise(skillMap)

	a.log.Info("analyzed candidate profile",
		zap.String("name", profile.Name),
		zap.String("experience_level", string(level)),
		zap.Strings("domain_expertise", domains),
	)

	return &types.NormalizedCandidate{
		CandidateID:     uuid.NewString(),
		Profile:         *profile,
		SkillMap:        *skillMap,
		ExperienceLevel: level,
		DomainExpertise: domains,
	}, nil
}

// ClassifyExperienceLevel accrues years from experience duration strings and
// maps the total onto entry/mid/senior bands. A duration parses as a
// "start – end" span (en-dash separated); entries that fail to parse are
// logged and skipped.
func (a *Analyzer) ClassifyExperienceLevel(profile *types.CandidateProfile) types.ExperienceLevel {
	totalYears := 0.0
	for _, exp := range profile.Experience {
		if exp.Duration == "" {
			continue
		}
		years, ok := accrueYears(exp.Duration)
		if !ok {
			a.log.Warn("skipping unparseable experience duration",
				zap.String("duration", exp.Duration),
				zap.String("company", exp.Company),
			)
			continue
		}
		totalYears += years
	}

	switch {
	case totalYears < midThreshold:
		return types.LevelEntry
	case totalYears < seniorThreshold:
		return types.LevelMid
	default:
		return types.LevelSenior
	}
}

// accrueYears parses a "start – end" duration span. Past roles accrue a
// quarter year; roles still held ("Present") accrue half a year.
func accrueYears(duration string) (float64, bool) {
	parts := strings.Split(duration, "–")
	if len(parts) != 2 {
		return 0, false
	}
	start := strings.TrimSpace(parts[0])
	end := strings.TrimSpace(parts[1])
	if start == "" || end == "" {
		return 0, false
	}
	if strings.Contains(end, "Present") {
		return yearsPerCurrentRole, true
	}
	return yearsPerPastRole, true
}

// ClassifyDomainExpertise returns the domain tags whose keyword sets
// intersect the candidate's core or domain skill tokens, in fixed list order.
func ClassifyDomainExpertise(skillMap *types.SkillMap) []string {
	domains := make([]string, 0, len(domainKeywords))
	for _, domain := range domainKeywords {
		for _, keyword := range domain.keywords {
			_, inCore := skillMap.CoreSkills[keyword]
			_, inDomain := skillMap.DomainSkills[keyword]
			if inCore || inDomain {
				domains = append(domains, domain.tag)
				break
			}
		}
	}
	return domains
}
