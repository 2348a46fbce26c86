package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/saulo-duarte/tutor-lambda/internal/quizparser"
)

var sampleQuiz = []quizparser.QuizQuestion{
	{
		Question:      "What is the primary function of an operating system?",
		Options:       []string{"To compile code", "To manage computer hardware and software resources", "To design websites", "To create databases"},
		CorrectAnswer: "B",
		Explanation:   "The operating system manages hardware and software resources.",
	},
	{
		Question:      "Which data structure serves elements in first-in, first-out order?",
		Options:       []string{"Stack", "Queue", "Binary tree", "Hash map"},
		CorrectAnswer: "B",
		Explanation:   "A queue removes elements in the order they were added.",
	},
	{
		Question:      "What is the worst-case time complexity of binary search?",
		Options:       []string{"O(1)", "O(n)", "O(log n)", "O(n log n)"},
		CorrectAnswer: "C",
		Explanation:   "Each comparison halves the remaining search space.",
	},
}

// MockProvider returns canned text and never calls the network.
type MockProvider struct{}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (MockProvider) Name() string {
	return "mock"
}

func (MockProvider) SendPrompt(_ context.Context, _ string, user string) (string, error) {
	if strings.Contains(strings.ToLower(user), "multiple-choice") {
		return quizparser.Format(sampleQuiz), nil
	}

	excerpt := user
	if runes := []rune(excerpt); len(runes) > 50 {
		excerpt = string(runes[:50]) + "..."
	}
	return fmt.Sprintf(`This is a mock response for your request: %q

No language model is configured, so this text was generated locally.
To get real answers, configure one of:
- OPENAI_API_KEY or GOOGLE_API_KEY
- a local Ollama server (OLLAMA_URL)
- HUGGINGFACEHUB_API_TOKEN`, strings.TrimSpace(excerpt)), nil
}
