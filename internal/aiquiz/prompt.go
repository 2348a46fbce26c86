package aiquiz

import "fmt"

const systemPrompt = `You are an expert tutor who writes multiple-choice quizzes for final year computer science students preparing for placements.
Write clear, educational questions with exactly one correct answer and plausible distractors of similar length.
Never reveal the answer inside the question text. Reply with the quiz only, no introduction or closing remarks.`

const userPromptTemplate = `Create %d multiple-choice questions about %s at %s level.

Format each question EXACTLY as follows:

1. What is the primary function of an operating system?
A. To compile code
B. To manage computer hardware and software resources
C. To design websites
D. To create databases
Answer: B
Explanation: The operating system manages hardware and software resources, which is its primary function. Compiling code is done by compilers, website design by web developers, and database creation by database designers.

Follow this EXACT format for all questions:
- Number each question (1., 2., 3., etc.)
- Options A, B, C, D on separate lines starting with the letter and a period
- "Answer:" followed by the correct letter
- "Explanation:" followed by a detailed explanation

Ensure the questions cover key concepts, practical applications, and real-world scenarios relevant to %s.`

// BuildQuizPrompt returns the system and user prompts for a normalized request.
func BuildQuizPrompt(req QuizRequest) (string, string) {
	user := fmt.Sprintf(userPromptTemplate, req.NumQuestions, req.Topic, req.Difficulty, req.Topic)
	return systemPrompt, user
}
