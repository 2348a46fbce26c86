package tutor

import "strings"

type Style string

const (
	StyleInDepth Style = "in_depth"
	StyleVisual  Style = "visual"
	StyleHandsOn Style = "hands_on"
)

// ParseStyle returns StyleInDepth for empty or unrecognized values.
func ParseStyle(value string) Style {
	switch s := Style(strings.ToLower(strings.TrimSpace(value))); s {
	case StyleVisual, StyleHandsOn:
		return s
	default:
		return StyleInDepth
	}
}

type ExplainRequest struct {
	Query string `json:"query" validate:"required" example:"How does TCP congestion control work?"`
	Style string `json:"style" example:"in_depth"`
}

type ExplainResponse struct {
	Response string `json:"response"`
	Style    Style  `json:"style"`
	Provider string `json:"provider"`
}
