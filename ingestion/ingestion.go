package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"edusight-server/models"
)

// questionFile is the on-disk shape of one YAML bank file.
type questionFile struct {
	Subject   string            `yaml:"subject"`
	Questions []models.Question `yaml:"questions"`
}

// LoadQuestionBank reads every *.yaml/*.yml file under dir, validates
// the questions, and returns them sorted by ID. Question IDs must be
// unique across the whole bank.
func LoadQuestionBank(dir string) ([]models.Question, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read question bank directory %s: %w", dir, err)
	}

	seen := make(map[string]string) // question ID -> file it came from
	questions := []models.Question{}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		path := filepath.Join(dir, entry.Name())

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		var file questionFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}

		for i, q := range file.Questions {
			// File-level subject is the default for its questions.
			if q.Subject == "" {
				q.Subject = file.Subject
			}
			if err := validateQuestion(q); err != nil {
				return nil, fmt.Errorf("%s question %d: %w", path, i+1, err)
			}
			if prev, dup := seen[q.ID]; dup {
				return nil, fmt.Errorf("%s: duplicate question ID %q (first seen in %s)", path, q.ID, prev)
			}
			seen[q.ID] = path
			questions = append(questions, q)
		}
	}

	sort.Slice(questions, func(i, j int) bool { return questions[i].ID < questions[j].ID })
	return questions, nil
}

func validateQuestion(q models.Question) error {
	switch {
	case q.ID == "":
		return fmt.Errorf("missing id")
	case q.Subject == "":
		return fmt.Errorf("question %s: missing subject", q.ID)
	case q.Topic == "":
		return fmt.Errorf("question %s: missing topic", q.ID)
	case q.Text == "":
		return fmt.Errorf("question %s: missing text", q.ID)
	case q.CorrectAnswer == "" && len(q.CorrectAnswers) == 0:
		return fmt.Errorf("question %s: needs correct_answer or correct_answers", q.ID)
	case q.MaxMarks <= 0:
		return fmt.Errorf("question %s: max_marks must be positive", q.ID)
	}
	return nil
}
