// Package quizparser turns free-form LLM quiz output into structured questions.
//
// Parsing is best effort: the scanner recognizes numbered questions, lettered
// options and "Answer:"/"Explanation:" lines, and in lenient mode falls back to
// paragraph splitting and finally to a single placeholder record. Parse never
// fails and is safe for concurrent use.
package quizparser

import (
	"fmt"
	"regexp"
	"strings"
)

type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
}

type Strictness int

const (
	// Lenient applies the paragraph and placeholder fallbacks when no
	// question markers are found.
	Lenient Strictness = iota
	// Strict returns an empty result instead.
	Strict
)

func (s Strictness) String() string {
	switch s {
	case Strict:
		return "strict"
	default:
		return "lenient"
	}
}

func ParseStrictness(value string) (Strictness, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "lenient":
		return Lenient, nil
	case "strict":
		return Strict, nil
	default:
		return Lenient, fmt.Errorf("unknown quiz parser strictness %q", value)
	}
}

type Options struct {
	Strictness Strictness
}

const (
	placeholderQuestion    = "No quiz questions could be extracted from the model response."
	placeholderOption      = "No options available"
	placeholderAnswer      = "N/A"
	placeholderExplanation = "The model response did not follow a recognizable quiz format. Try generating the quiz again."
)

// Placeholder is the record returned when nothing structured can be recovered.
func Placeholder() QuizQuestion {
	return QuizQuestion{
		Question:      placeholderQuestion,
		Options:       []string{placeholderOption},
		CorrectAnswer: placeholderAnswer,
		Explanation:   placeholderExplanation,
	}
}

// Each pattern captures the text that follows the marker.
var (
	questionMarkers = []*regexp.Regexp{
		regexp.MustCompile(`^\d{1,2}\.\s*(\D.*)?$`),
		regexp.MustCompile(`^Q\d*\s*[.:)]\s*(.*)$`),
		regexp.MustCompile(`^Q\d+\s+(.*)$`),
		regexp.MustCompile(`^(?i:question)\s*\d*\s*[.:)]\s*(.*)$`),
	}
	optionMarkers = []*regexp.Regexp{
		regexp.MustCompile(`^\([A-Ha-h]\)\s*(.*)$`),
		regexp.MustCompile(`^[A-H][.:)]\s*(.*)$`),
		regexp.MustCompile(`^[a-h]\)\s*(.*)$`),
	}
	answerMarker      = regexp.MustCompile(`^(?i:correct\s+answer|correct|answer)\s*:\s*(.*)$`)
	explanationMarker = regexp.MustCompile(`^(?i:explanation)\s*:\s*(.*)$`)
	blankLines        = regexp.MustCompile(`\n[ \t]*\n`)
)

type Parser struct {
	opts Options
}

func NewParser(strictness Strictness) *Parser {
	return &Parser{opts: Options{Strictness: strictness}}
}

func (p *Parser) Strictness() Strictness {
	return p.opts.Strictness
}

func (p *Parser) Parse(raw string) []QuizQuestion {
	return Parse(raw, p.opts)
}

// Parse extracts quiz questions from raw model output.
func Parse(raw string, opts Options) []QuizQuestion {
	text := normalizeNewlines(raw)

	questions := scanLines(text)
	if len(questions) > 0 {
		return questions
	}
	if opts.Strictness == Strict {
		return []QuizQuestion{}
	}

	if blocks := splitParagraphs(text); len(blocks) > 1 {
		questions = make([]QuizQuestion, 0, len(blocks))
		for _, block := range blocks {
			questions = append(questions, QuizQuestion{Question: block, Options: []string{}})
		}
		return questions
	}

	return []QuizQuestion{Placeholder()}
}

// accumulator is the question currently being filled.
type accumulator struct {
	q QuizQuestion
	// bareMarker is set when the question line held only its marker; the
	// next unclassified line becomes the question text.
	bareMarker bool
}

func scanLines(text string) []QuizQuestion {
	questions := []QuizQuestion{}
	var current *accumulator

	flush := func() {
		if current != nil {
			questions = append(questions, current.q)
			current = nil
		}
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if rest, ok := matchAny(questionMarkers, line); ok {
			flush()
			current = &accumulator{q: QuizQuestion{Question: rest, Options: []string{}}}
			if rest == "" {
				current.q.Question = line
				current.bareMarker = true
			}
			continue
		}

		if current == nil {
			continue
		}

		if rest, ok := matchAny(optionMarkers, line); ok {
			current.q.Options = append(current.q.Options, rest)
		} else if m := answerMarker.FindStringSubmatch(line); m != nil {
			current.q.CorrectAnswer = strings.TrimSpace(m[1])
		} else if m := explanationMarker.FindStringSubmatch(line); m != nil {
			current.q.Explanation = strings.TrimSpace(m[1])
		} else if current.bareMarker {
			current.q.Question = line
		}
		current.bareMarker = false
	}
	flush()

	return questions
}

func matchAny(patterns []*regexp.Regexp, line string) (string, bool) {
	for _, re := range patterns {
		if m := re.FindStringSubmatch(line); m != nil {
			return strings.TrimSpace(m[1]), true
		}
	}
	return "", false
}

func splitParagraphs(text string) []string {
	var blocks []string
	for _, block := range blankLines.Split(text, -1) {
		if block = strings.TrimSpace(block); block != "" {
			blocks = append(blocks, block)
		}
	}
	return blocks
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
