package model

import "errors"

// Quiz log validation errors.
// These errors are returned by QuizLog.Validate() wrapped with the number
// of the offending entry, so callers can use errors.Is().
var (
	// ErrInvalidEntryNumber is returned when an entry number is less than 1.
	ErrInvalidEntryNumber = errors.New("invalid entry number: must be 1 or greater")

	// ErrDuplicateEntryNumber is returned when two entries share a number.
	ErrDuplicateEntryNumber = errors.New("duplicate entry number")

	// ErrEntryOutOfOrder is returned when entry numbers are not ascending.
	// The report engine never re-sorts entries, so an unordered log would
	// produce an unordered report.
	ErrEntryOutOfOrder = errors.New("entries are not in ascending number order")

	// ErrAnswerOutOfRange is returned when an answer refers to an option
	// that the question does not have.
	ErrAnswerOutOfRange = errors.New("answer refers to a non-existent option")
)
