package tutor

import "fmt"

const systemPrompt = "You are an expert AI tutor. Explain topics accurately and clearly, adapting to the requested learning style."

var templates = map[Style]string{
	StyleInDepth: `Provide a comprehensive, in-depth explanation of the following topic:
%s

Please include:
- Detailed background information
- Key concepts and principles
- Real-world applications
- Step-by-step reasoning
- Common misconceptions and clarifications
- Relevant examples and case studies`,

	StyleVisual: `Create a visual learning experience for the following topic:
%s

Please provide:
- A conceptual diagram or flowchart description
- Visual metaphors and analogies
- Step-by-step visual breakdowns
- Suggested diagrams to draw
- How to visualize the concept mentally`,

	StyleHandsOn: `Create a hands-on learning experience for the following topic:
%s

Please provide:
- Practical exercises and coding examples
- Step-by-step implementation guides
- Real-world problem-solving scenarios
- Debugging tips and common errors
- Practice problems with solutions`,
}

func BuildPrompt(style Style, query string) (string, string) {
	tmpl, ok := templates[style]
	if !ok {
		tmpl = templates[StyleInDepth]
	}
	return systemPrompt, fmt.Sprintf(tmpl, query)
}
