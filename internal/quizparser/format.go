package quizparser

import (
	"fmt"
	"strings"
)

const optionLetters = "ABCDEFGH"

// Format renders questions in the numbered layout Parse understands.
// Options past the eighth are dropped.
func Format(questions []QuizQuestion) string {
	var b strings.Builder
	for i, q := range questions {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%d. %s\n", i+1, q.Question)
		for j, opt := range q.Options {
			if j >= len(optionLetters) {
				break
			}
			fmt.Fprintf(&b, "%c. %s\n", optionLetters[j], opt)
		}
		if q.CorrectAnswer != "" {
			fmt.Fprintf(&b, "Answer: %s\n", q.CorrectAnswer)
		}
		if q.Explanation != "" {
			fmt.Fprintf(&b, "Explanation: %s\n", q.Explanation)
		}
	}
	return b.String()
}
