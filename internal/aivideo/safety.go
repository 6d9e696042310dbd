package aivideo

import (
	"regexp"
	"strings"
)

const maxPromptLength = 1000

// Keyword filter over prompt text. This is the cheap deterministic first
// line of defense before any external job is created; a vendor moderation
// call can be layered on top without changing the contract.
var blockedPatterns = []*regexp.Regexp{
	// violence
	regexp.MustCompile(`(?i)\b(kill|murder|assault|attack|stab|shoot|blood|gore|violent|weapon|gun|knife|bomb|explod)`),
	// sexual content
	regexp.MustCompile(`(?i)\b(nude|naked|porn|sex|erotic|nsfw|hentai|xxx|strip|undress)`),
	// hate / discrimination
	regexp.MustCompile(`(?i)\b(racist|racial slur|hate speech|supremac)`),
	// self-harm
	regexp.MustCompile(`(?i)\b(suicide|self.?harm|cut my|hurt myself)`),
	// child safety
	regexp.MustCompile(`(?i)\b(child abuse|minor|underage)`),
}

type SafetyCheckResult struct {
	Safe   bool   `json:"safe"`
	Reason string `json:"reason,omitempty"`
}

// CheckPromptSafety validates a prompt before a generation job is started.
// Pure and synchronous; the first matching rejection wins.
func CheckPromptSafety(prompt string) SafetyCheckResult {
	if strings.TrimSpace(prompt) == "" {
		return SafetyCheckResult{Safe: false, Reason: "Prompt is empty"}
	}

	if len(prompt) > maxPromptLength {
		return SafetyCheckResult{Safe: false, Reason: "Prompt is too long (max 1000 characters)"}
	}

	for _, pattern := range blockedPatterns {
		if pattern.MatchString(prompt) {
			return SafetyCheckResult{
				Safe:   false,
				Reason: "Your prompt contains content that violates our community guidelines. Please rephrase and try again.",
			}
		}
	}

	return SafetyCheckResult{Safe: true}
}
