package model

import "fmt"

// Question is a quiz question as it was shown to the respondent.
type Question struct {
	// Text is the question wording.
	Text string `json:"text" yaml:"text"`

	// Options are the answer options in display order.
	// Option i is addressed by the 1-based index i+1.
	Options []string `json:"options,omitempty" yaml:"options,omitempty"`
}

// Entry is one evaluated question within a QuizLog.
type Entry struct {
	// Number is the 1-based position of the question in the session.
	Number int `json:"number" yaml:"number"`

	// Question is the question that was asked.
	Question Question `json:"question" yaml:"question"`

	// Answers are the 1-based option indices chosen by the respondent,
	// in the order they were given. May be empty.
	Answers []int `json:"answers" yaml:"answers"`

	// Successful reports whether the answers were judged correct.
	Successful bool `json:"successful" yaml:"successful"`
}

// QuizLog is the completed record of a quiz session.
//
// A QuizLog must not be modified once it has been handed to a report
// generator. Total and Successful are derived from Entries on every call,
// so Total() >= Successful() >= 0 always holds.
type QuizLog struct {
	// Entries are the evaluated questions in session order.
	Entries []Entry `json:"entries" yaml:"entries"`
}

// NewQuizLog creates a QuizLog from the given entries.
// The entries are kept in the order given.
func NewQuizLog(entries ...Entry) *QuizLog {
	if entries == nil {
		entries = []Entry{}
	}
	return &QuizLog{Entries: entries}
}

// Total returns the number of entries in the log.
func (l *QuizLog) Total() int {
	if l == nil {
		return 0
	}
	return len(l.Entries)
}

// Successful returns the number of entries marked successful.
func (l *QuizLog) Successful() int {
	if l == nil {
		return 0
	}
	count := 0
	for _, e := range l.Entries {
		if e.Successful {
			count++
		}
	}
	return count
}

// IsEmpty reports whether the log has no entries.
func (l *QuizLog) IsEmpty() bool {
	return l.Total() == 0
}

// Validate checks that entry numbers are positive, unique and ascending,
// and that every answer refers to an existing option.
// Questions without options accept any answer index.
//
// The report engine does not call Validate; it renders whatever it is given.
// Loaders call it before handing a log over.
func (l *QuizLog) Validate() error {
	if l == nil {
		return nil
	}

	seen := make(map[int]bool, len(l.Entries))
	prev := 0
	for _, e := range l.Entries {
		if e.Number < 1 {
			return fmt.Errorf("entry %d: %w", e.Number, ErrInvalidEntryNumber)
		}
		if seen[e.Number] {
			return fmt.Errorf("entry %d: %w", e.Number, ErrDuplicateEntryNumber)
		}
		if e.Number < prev {
			return fmt.Errorf("entry %d: %w", e.Number, ErrEntryOutOfOrder)
		}
		seen[e.Number] = true
		prev = e.Number

		if len(e.Question.Options) == 0 {
			continue
		}
		for _, a := range e.Answers {
			if a < 1 || a > len(e.Question.Options) {
				return fmt.Errorf("entry %d: answer %d: %w", e.Number, a, ErrAnswerOutOfRange)
			}
		}
	}

	return nil
}
