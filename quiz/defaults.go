package quiz

import (
	"encoding/json"

	"github.com/Alexander2005-rgb/Quiz-application/models"
)

// DefaultQuizID names the quiz seeded on first run.
const DefaultQuizID = "default"

type seedQuestion struct {
	question string
	options  []string
	answer   int
}

var defaultQuestions = []seedQuestion{
	{
		question: "JavaScript is an _______ language?",
		options:  []string{"Object-Oriented", "Object-Based", "Procedural"},
		answer:   0,
	},
	{
		question: "Which method can be used to display data in some form in JavaScript?",
		options:  []string{"document.write()", "document.display()", "document.show()"},
		answer:   0,
	},
	{
		question: "When an operand is NULL, the typeof returned by the unary operator is:",
		options:  []string{"Boolean", "Undefined", "Object"},
		answer:   2,
	},
	{
		question: "Which keyword declares a block-scoped variable?",
		options:  []string{"var", "let", "static"},
		answer:   1,
	},
	{
		question: "Which built-in method returns the character at the specified index?",
		options:  []string{"characterAt()", "getCharAt()", "charAt()"},
		answer:   2,
	},
}

// defaultQuiz builds a fresh copy of the built-in question set, ready to
// insert.
func defaultQuiz() *models.Quiz {
	q := &models.Quiz{QuizID: DefaultQuizID}
	for i, seed := range defaultQuestions {
		options, _ := json.Marshal(seed.options)
		q.Questions = append(q.Questions, models.Question{
			Seq:           i + 1,
			Question:      seed.question,
			Options:       string(options),
			CorrectAnswer: seed.answer,
		})
	}
	return q
}
