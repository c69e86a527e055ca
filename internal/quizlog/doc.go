// Package quizlog loads completed quiz logs from disk.
//
// A quiz log file is YAML (JSON is accepted as well, being a YAML subset):
//
//	entries:
//	  - number: 1
//	    question:
//	      text: "2+2?"
//	      options: ["3", "4", "5"]
//	    answers: [2]
//	    successful: true
//
// Loaded logs are validated with model.QuizLog.Validate before they are
// returned, so the report engine only ever sees well-formed logs from here.
//
// BatchLoader reads several files concurrently using errgroup and returns
// the logs in the order the paths were given.
package quizlog
