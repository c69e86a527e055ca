package quizlog

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nao1215/quizreport/internal/model"
)

// ErrLogNotFound is returned when a quiz log file does not exist.
var ErrLogNotFound = errors.New("quiz log file not found")

// Load reads and validates the quiz log stored at path.
func Load(path string) (*model.QuizLog, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided log path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", path, ErrLogNotFound)
		}
		return nil, err
	}

	return Parse(data)
}

// Parse decodes and validates a quiz log from YAML or JSON data.
func Parse(data []byte) (*model.QuizLog, error) {
	quizLog := model.NewQuizLog()
	if err := yaml.Unmarshal(data, quizLog); err != nil {
		return nil, fmt.Errorf("failed to parse quiz log: %w", err)
	}
	if quizLog.Entries == nil {
		quizLog.Entries = []model.Entry{}
	}

	if err := quizLog.Validate(); err != nil {
		return nil, fmt.Errorf("invalid quiz log: %w", err)
	}

	return quizLog, nil
}
