package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/assessment-agent/internal/types"
)

// SeedSampleData writes a sample resume, job description, question template
// catalog, and responses file under dir for development and testing.
func SeedSampleData(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create sample directory: %w", err)
	}

	resume := sampleResume()
	if err := writeJSON(filepath.Join(dir, "sample_resume.json"), resume); err != nil {
		return err
	}

	job := sampleJobDescription()
	if err := writeJSON(filepath.Join(dir, "sample_jd.json"), job); err != nil {
		return err
	}

	templatesDir := filepath.Join(dir, "templates")
	for _, template := range sampleTemplates() {
		path := filepath.Join(templatesDir, template.TemplateID+".json")
		if err := writeJSON(path, template); err != nil {
			return err
		}
	}

	fmt.Printf("Sample data written to %s\n", dir)
	return nil
}

func sampleResume() *types.CandidateProfile {
	return &types.CandidateProfile{
		Name: "Priya Raman",
		Contact: types.ContactInfo{
			Email:  "priya.raman@example.com",
			GitHub: "github.com/priyaraman",
		},
		Education: []types.Education{
			{
				Institution: "National Institute of Technology Trichy",
				Degree:      "Bachelor of Technology in Computer Science",
				Location:    "Tiruchirappalli",
				Duration:    "Aug 2021 – Present",
			},
		},
		Experience: []types.Experience{
			{
				Title:    "Machine Learning Intern",
				Company:  "Nimbus Analytics",
				Location: "Bengaluru, India",
				Duration: "May 2024 – July 2024",
				Responsibilities: []string{
					"Built churn prediction models in Python with PyTorch and scikit-learn.",
					"Cleaned and aggregated customer datasets with Pandas and SQL.",
					"Deployed inference endpoints with Flask and Docker.",
				},
			},
		},
		Projects: []types.Project{
			{
				Name: "Ticket Triage Bot",
				Details: []string{
					"Classified support tickets with a fine-tuned transformer in PyTorch.",
					"Served predictions from a Flask API backed by PostgreSQL.",
				},
			},
			{
				Name: "Market Basket Explorer",
				Details: []string{
					"Mined association rules over retail transactions using Pandas and NumPy.",
					"Visualized itemset lift with Matplotlib dashboards.",
				},
			},
		},
		TechnicalSkills: &types.TechnicalSkills{
			Languages: []string{"Python", "SQL", "C++"},
			FrameworksTechnologies: []string{
				"PyTorch", "TensorFlow", "Pandas", "NumPy", "Matplotlib", "Flask",
			},
			DeveloperTools: []string{"Git", "Docker", "Linux"},
			DataAnalysis:   []string{"Machine Learning", "Statistical Analysis", "Data Visualization"},
		},
	}
}

func sampleJobDescription() *types.JobDescription {
	return &types.JobDescription{
		Title:       "Machine Learning Engineer",
		Company:     "TechInnovate",
		Location:    "Remote",
		Description: "We are looking for a Machine Learning Engineer to join our team and help us build intelligent applications.",
		Requirements: []string{
			"Bachelor's or Master's degree in Computer Science, Data Science, or a related field",
			"Strong programming skills in Python",
			"Experience with machine learning frameworks such as TensorFlow or PyTorch",
			"Understanding of data structures, algorithms, and software design principles",
			"Experience with data processing and analysis libraries like Pandas and NumPy",
			"Knowledge of database systems",
		},
		Responsibilities: []string{
			"Design and implement machine learning models",
			"Analyze and preprocess large datasets",
			"Deploy and monitor machine learning systems",
			"Collaborate with cross-functional teams",
		},
		RequiredSkills: []string{
			"python", "machine_learning", "tensorflow", "pytorch", "pandas", "numpy",
			"data_analysis", "algorithms",
		},
		PreferredSkills: []string{
			"flask", "docker", "cloud_computing", "nlp", "computer_vision",
		},
	}
}

func sampleTemplates() []types.QuestionTemplate {
	return []types.QuestionTemplate{
		{
			TemplateID:   "core_cs_dsa_001",
			Category:     types.CategoryCoreCS,
			Subcategory:  "dsa",
			QuestionType: types.TypeCoding,
			Difficulty:   types.DifficultyMedium,
			TemplateText: "Write a function to find the {order} element in a linked list.",
			Variables: map[string][]string{
				"order": {"kth", "middle", "last", "third-to-last"},
			},
			RequiresSkills: []string{"algorithms", "data_structures", "linked_lists"},
		},
		{
			TemplateID:   "core_cs_dbms_001",
			Category:     types.CategoryCoreCS,
			Subcategory:  "dbms",
			QuestionType: types.TypeOpenEnded,
			Difficulty:   types.DifficultyMedium,
			TemplateText: "Explain the difference between {concept1} and {concept2} in database management systems. Provide examples of when you would use each.",
			Variables: map[string][]string{
				"concept1": {"normalization", "ACID properties", "indexing", "transactions"},
				"concept2": {"denormalization", "BASE properties", "partitioning", "stored procedures"},
			},
			RequiresSkills: []string{"database", "sql"},
		},
		{
			TemplateID:   "domain_specific_ml_001",
			Category:     types.CategoryDomainSpecific,
			Subcategory:  "machine_learning",
			QuestionType: types.TypeShortAnswer,
			Difficulty:   types.DifficultyHard,
			TemplateText: "Describe how you would implement {algorithm} from scratch. What are the key challenges?",
			Variables: map[string][]string{
				"algorithm": {"gradient descent", "backpropagation", "k-means clustering", "random forest"},
			},
			RequiresSkills: []string{"machine_learning", "algorithms", "mathematics"},
		},
		{
			TemplateID:   "domain_specific_ml_002",
			Category:     types.CategoryDomainSpecific,
			Subcategory:  "machine_learning",
			QuestionType: types.TypeMultipleChoice,
			Difficulty:   types.DifficultyMedium,
			TemplateText: "Which of the following is NOT a common way to address overfitting in machine learning models?\n\nA) {option_a}\nB) {option_b}\nC) {option_c}\nD) {option_d}",
			Variables: map[string][]string{
				"option_a": {"Regularization"},
				"option_b": {"Cross-validation"},
				"option_c": {"Feature engineering"},
				"option_d": {"Increasing model complexity"},
			},
			RequiresSkills: []string{"machine_learning", "model_evaluation"},
		},
	}
}
