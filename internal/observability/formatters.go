// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/assessment-agent/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintCandidate outputs a human-readable summary of the analyzed candidate.
func (p *Printer) PrintCandidate(candidate *types.NormalizedCandidate) {
	if candidate == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:       %s\n", candidate.Profile.Name))
	sb.WriteString(fmt.Sprintf("Level:      %s\n", candidate.ExperienceLevel))
	if len(candidate.DomainExpertise) > 0 {
		domains := strings.Join(candidate.DomainExpertise, ", ")
		sb.WriteString(fmt.Sprintf("Domains:    %s\n", domains))
	}
	sb.WriteString(fmt.Sprintf("Projects:   %d\n", len(candidate.Profile.Projects)))
	sb.WriteString(fmt.Sprintf("Positions:  %d", len(candidate.Profile.Experience)))

	p.printBox("CANDIDATE PROFILE", sb.String())
}

// PrintSkillMap outputs the weighted skill map, strongest skills first.
func (p *Printer) PrintSkillMap(skillMap *types.SkillMap) {
	if skillMap == nil {
		return
	}

	var sb strings.Builder

	writeSkillGroup(&sb, "Core Skills", skillMap.CoreSkills)
	writeSkillGroup(&sb, "Domain Skills", skillMap.DomainSkills)

	if len(skillMap.ProjectValidatedSkills) > 0 {
		sb.WriteString("Project-validated:\n")
		count := min(len(skillMap.ProjectValidatedSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", skillMap.ProjectValidatedSkills[i]))
		}
		if len(skillMap.ProjectValidatedSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(skillMap.ProjectValidatedSkills)-maxItemsToShow))
		}
	}

	p.printBox("SKILL MAP", strings.TrimSuffix(sb.String(), "\n"))
}

func writeSkillGroup(sb *strings.Builder, title string, skills map[string]float64) {
	if len(skills) == 0 {
		return
	}

	names := make([]string, 0, len(skills))
	for name := range skills {
		names = append(names, name)
	}
	// Strongest first; ties break alphabetically for stable output.
	sort.Slice(names, func(i, j int) bool {
		if skills[names[i]] != skills[names[j]] {
			return skills[names[i]] > skills[names[j]]
		}
		return names[i] < names[j]
	})

	sb.WriteString(title + ":\n")
	count := min(len(names), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  %-20s %.2f\n", names[i], skills[names[i]]))
	}
	if len(names) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(names)-maxItemsToShow))
	}
	sb.WriteString("\n")
}

// PrintQuestions outputs the generated questions with difficulty and type tags.
func (p *Printer) PrintQuestions(questions []types.Question) {
	if len(questions) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Generated %d questions:\n\n", len(questions)))

	count := min(len(questions), maxItemsToShow)
	for i := 0; i < count; i++ {
		question := questions[i]
		content := question.Content
		if len(content) > 50 {
			content = content[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("#%d  [%s/%s]\n", i+1, question.QuestionType, question.Difficulty))
		sb.WriteString(fmt.Sprintf("    %s\n", content))
		if len(question.SkillsTested) > 0 {
			skills := strings.Join(question.SkillsTested, ", ")
			if len(skills) > 40 {
				skills = skills[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Skills: %s\n", skills))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(questions) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more questions", len(questions)-maxItemsToShow))
	}

	p.printBox("ASSESSMENT QUESTIONS", sb.String())
}

// PrintEvaluation outputs the aggregated assessment evaluation.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintEvaluation(evaluation *types.AssessmentEvaluation) {
	if evaluation == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall Score: %.1f / 100\n", evaluation.OverallScore))
	sb.WriteString(fmt.Sprintf("Questions:     %d\n", len(evaluation.QuestionEvaluations)))
	sb.WriteString("\n")

	count := min(len(evaluation.QuestionEvaluations), maxItemsToShow)
	for i := 0; i < count; i++ {
		qe := evaluation.QuestionEvaluations[i]
		sb.WriteString(fmt.Sprintf("#%d  %.1f\n", i+1, qe.Score))
		feedback := qe.Feedback
		if len(feedback) > 50 {
			feedback = feedback[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("    %s\n", feedback))
	}
	if len(evaluation.QuestionEvaluations) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(evaluation.QuestionEvaluations)-maxItemsToShow))
	}

	if len(evaluation.Strengths) > 0 {
		sb.WriteString("\nStrengths:\n")
		for _, s := range evaluation.Strengths {
			sb.WriteString(fmt.Sprintf("  ✓ %s\n", s))
		}
	}
	if len(evaluation.AreasForImprovement) > 0 {
		sb.WriteString("\nAreas for Improvement:\n")
		for _, a := range evaluation.AreasForImprovement {
			sb.WriteString(fmt.Sprintf("  ⚠ %s\n", a))
		}
	}

	p.printBox("ASSESSMENT EVALUATION", strings.TrimSuffix(sb.String(), "\n"))
}
