// Package agent implements the LLM-backed roundtable roles: the
// reviewer (critic), the moderator, and the meta-planner that designs
// the reviewer panel. All three are plain structs parameterized by
// data; there is no role hierarchy.
package agent

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/roundtable-ai/roundtable/pkg/models"
)

// reviewSchemaInstructions is appended to every reviewer exchange so
// the model answers in the structure the parser expects. Severity
// names are matched case-insensitively.
const reviewSchemaInstructions = `You must respond with a JSON object in this EXACT format:
{
  "issues": [
    {
      "category": "Issue category (e.g., 'Clarity', 'Technical Feasibility', 'Security')",
      "description": "Detailed description of the issue",
      "severity": "High|Medium|Low",
      "suggested_fix": "Suggested fix or improvement (optional)",
      "reviewer": "Your name"
    }
  ],
  "overall_assessment": "Overall assessment and summary"
}

All fields are required except suggested_fix which may be null.`

// buildReviewPrompt renders the user prompt for a reviewer call. The
// document is delimited so instructions and content cannot be confused.
func buildReviewPrompt(doc *models.DocumentVersion) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Review the following %s:\n\n", doc.DocumentType)
	fmt.Fprintf(&b, "Title: %s\n", doc.Title)
	fmt.Fprintf(&b, "Version: %d\n\n", doc.Version)
	b.WriteString("<document>\n")
	b.WriteString(doc.Content)
	b.WriteString("\n</document>\n\n")
	b.WriteString("Provide your expert review following the instructions in your system prompt.\n")
	b.WriteString("Focus on your specific area of expertise and flag any issues you identify.\n\n")
	b.WriteString(reviewSchemaInstructions)
	return b.String()
}

// salvagePrompt asks the model to reformat its prior malformed answer.
const salvagePrompt = `Your previous answer was not valid JSON and could not be parsed.
Reformat your previous answer as a single valid JSON object matching the required schema exactly.
Output ONLY the JSON object, with no surrounding prose or code fences.`

// moderatorSystemPrompt renders the moderator's system prompt. The
// resolution policy is fixed; the focus directive comes from the
// planner.
func moderatorSystemPrompt(focus string) string {
	var b strings.Builder
	b.WriteString(`You are a skilled moderator synthesizing expert reviews into an improved document.

Rules:
- You MUST resolve every High severity issue.
- You SHOULD resolve Medium issues when doing so materially improves clarity or feasibility.
- You MAY ignore Low issues.
- You MUST preserve the document's overall purpose and any section explicitly declared in scope.
- You MUST NOT invent facts beyond what the document and the reviews contain. When required information is missing, insert a placeholder section that explicitly calls out the gap.
- Output ONLY the full revised document text, with no commentary before or after it.`)
	if focus != "" {
		b.WriteString("\n\nRefinement focus:\n")
		b.WriteString(focus)
	}
	return b.String()
}

// buildModeratorPrompt renders the moderator's user prompt. Reviews are
// passed as a structured list so the moderator can see which reviewer
// raised which issue.
func buildModeratorPrompt(doc *models.DocumentVersion, reviews []*models.Review, goal string) (string, error) {
	reviewsJSON, err := json.MarshalIndent(reviews, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal reviews for moderator prompt: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Current %s (version %d):\n\n", doc.DocumentType, doc.Version)
	b.WriteString("<document>\n")
	b.WriteString(doc.Content)
	b.WriteString("\n</document>\n\n")
	if goal != "" {
		fmt.Fprintf(&b, "Session goal: %s\n\n", goal)
	}
	fmt.Fprintf(&b, "Reviews for version %d (structured):\n\n", doc.Version)
	b.Write(reviewsJSON)
	b.WriteString("\n\nProduce the next version of the document, applying the rules from your system prompt.")
	return b.String(), nil
}
