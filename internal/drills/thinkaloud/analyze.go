package thinkaloud

import (
	"strings"

	"github.com/cortexprime/cortex/internal/core"
)

// Score bounds for the evaluation. MinScore is guaranteed regardless
// of how little the response earns.
const (
	MinScore = 20
	MaxScore = 100
)

// Marker vocabularies. A single occurrence of any marker earns the
// check's points.
var (
	reasoningMarkers   = []string{"because", "therefore", "however", "although", "since", "thus", "consequently"}
	perspectiveMarkers = []string{"other hand", "alternatively", "some people", "different", "another way", "perspective"}
	exampleMarkers     = []string{"example", "instance", "such as", "like when", "for instance"}
)

// Evaluate scores a free-text response. The function is pure: no
// randomness, no external calls, and identical input always yields an
// identical evaluation. The five checks are independent of each other;
// only the final clamp and default fill depend on their combined
// outcome.
func Evaluate(text string) core.TextEvaluation {
	words := strings.Fields(text)
	lower := strings.ToLower(text)

	score := 0
	var strengths, improvements []string

	// Length
	switch wordCount := len(words); {
	case wordCount >= 100:
		score += 30
		strengths = append(strengths, "Thorough and detailed response")
	case wordCount >= 50:
		score += 20
		strengths = append(strengths, "Good level of detail")
	case wordCount >= 25:
		score += 10
		improvements = append(improvements, "Try to elaborate more on your ideas")
	default:
		improvements = append(improvements, "Expand your response with more details")
	}

	// Logical reasoning
	if containsAny(lower, reasoningMarkers) {
		score += 20
		strengths = append(strengths, "Good use of logical reasoning")
	} else {
		improvements = append(improvements, "Try using words like 'because' or 'therefore' to explain your reasoning")
	}

	// Multiple perspectives
	if containsAny(lower, perspectiveMarkers) {
		score += 20
		strengths = append(strengths, "Considers multiple perspectives")
	} else {
		improvements = append(improvements, "Consider presenting alternative viewpoints")
	}

	// Concrete examples
	if containsAny(lower, exampleMarkers) {
		score += 15
		strengths = append(strengths, "Uses concrete examples")
	} else {
		improvements = append(improvements, "Add specific examples to support your points")
	}

	// Sentence structure
	if strings.Count(text, ".") >= 3 {
		score += 15
		strengths = append(strengths, "Well-structured response")
	} else {
		improvements = append(improvements, "Break your response into clear sentences")
	}

	// Clamp, then fill defaults. Order matters: defaults reflect the
	// check outcomes, not the clamped score.
	score = clamp(score, MinScore, MaxScore)

	if len(strengths) == 0 {
		strengths = append(strengths, "You attempted the challenge")
	}
	if len(improvements) == 0 {
		improvements = append(improvements, "Keep practicing critical thinking")
	}

	var feedback string
	switch {
	case score >= 70:
		feedback = "Excellent thinking! You demonstrated strong analytical skills."
	case score >= 50:
		feedback = "Good effort! Your response shows promise. Keep developing your ideas."
	default:
		feedback = "Nice start! Focus on expanding your thoughts and adding more depth."
	}

	return core.TextEvaluation{
		Score:        score,
		Strengths:    strengths,
		Improvements: improvements,
		Feedback:     feedback,
	}
}

func containsAny(text string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(text, m) {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
