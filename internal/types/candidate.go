// Package types provides type definitions for structured data used throughout the assessment-agent system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ContactInfo holds a candidate's contact fields.
type ContactInfo struct {
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Twitter  string `json:"twitter,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

// Education represents a single education entry on a candidate profile.
type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree,omitempty"`
	Board       string `json:"board,omitempty"`
	Location    string `json:"location,omitempty"`
	Duration    string `json:"duration,omitempty"`
}

// Experience represents a single work experience entry with free-text responsibility lines.
type Experience struct {
	Title            string   `json:"title"`
	Company          string   `json:"company"`
	Location         string   `json:"location,omitempty"`
	Duration         string   `json:"duration,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty"`
}

// Project represents a personal or academic project with free-text detail lines.
type Project struct {
	Name    string   `json:"name"`
	Details []string `json:"details,omitempty"`
}

// TechnicalSkills groups declared skills into named categories.
type TechnicalSkills struct {
	Languages              []string `json:"languages,omitempty"`
	FrameworksTechnologies []string `json:"frameworks_technologies,omitempty"`
	DeveloperTools         []string `json:"developer_tools,omitempty"`
	DataAnalysis           []string `json:"data_analysis,omitempty"`
	Mathematics            []string `json:"mathematics,omitempty"`
	ResearchDocumentation  []string `json:"research_documentation,omitempty"`
}

// CandidateProfile is the source of truth for candidate analysis.
// It is immutable once loaded.
type CandidateProfile struct {
	Name            string           `json:"name"`
	Contact         ContactInfo      `json:"contact"`
	Education       []Education      `json:"education,omitempty"`
	Experience      []Experience     `json:"experience,omitempty"`
	Projects        []Project        `json:"projects,omitempty"`
	TechnicalSkills *TechnicalSkills `json:"technical_skills"`
}

// SkillMap holds weighted skill tokens derived from a candidate profile.
// Weights lie in [0,1]; a re-analysis produces a new SkillMap rather than
// mutating an existing one.
type SkillMap struct {
	CoreSkills             map[string]float64 `json:"core_skills"`
	DomainSkills           map[string]float64 `json:"domain_skills"`
	InferredSkills         map[string]float64 `json:"inferred_skills"`
	ProjectValidatedSkills []string           `json:"project_validated_skills"`
}

// ExperienceLevel classifies a candidate by accrued years of experience.
type ExperienceLevel string

// Experience level values.
const (
	LevelEntry  ExperienceLevel = "entry"
	LevelMid    ExperienceLevel = "mid"
	LevelSenior ExperienceLevel = "senior"
)

// NormalizedCandidate is a candidate profile enriched with its analyzed
// skill map and classification. It is created once per pipeline run and
// read-only downstream.
type NormalizedCandidate struct {
	CandidateID     string           `json:"candidate_id"`
	Profile         CandidateProfile `json:"profile"`
	SkillMap        SkillMap         `json:"skill_map"`
	ExperienceLevel ExperienceLevel  `json:"experience_level"`
	DomainExpertise []string         `json:"domain_expertise"`
}
