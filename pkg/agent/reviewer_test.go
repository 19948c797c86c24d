package agent

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roundtable-ai/roundtable/pkg/llm"
	"github.com/roundtable-ai/roundtable/pkg/models"
)

func testDoc() *models.DocumentVersion {
	return &models.DocumentVersion{
		Version:      1,
		Title:        "Payments Service PRD",
		DocumentType: "prd",
		Content:      "# Payments Service\n\nWe will build a payments service.",
	}
}

func testSpec(name string) models.RoleSpec {
	return models.RoleSpec{
		Name:         name,
		Role:         "reviews things",
		SystemPrompt: "You are " + name + ".\n" + reviewSchemaInstructions,
	}
}

const validReviewJSON = `{
  "issues": [
    {"category": "Security", "description": "No auth story", "severity": "High", "suggested_fix": "Add an auth section"},
    {"category": "Clarity", "description": "Scope is vague", "severity": "medium"}
  ],
  "overall_assessment": "Needs work"
}`

func TestReviewerParsesWellFormedReview(t *testing.T) {
	client := llm.NewScriptedClient()
	client.Script("Principal Engineer", llm.StaticResponse(validReviewJSON, 40))

	r := NewReviewer(testSpec("Principal Engineer"), client, "gpt-test")
	review, salvaged, err := r.Review(context.Background(), "sess-1", testDoc())

	require.NoError(t, err)
	assert.False(t, salvaged)
	assert.Equal(t, "Principal Engineer", review.ReviewerName)
	require.Len(t, review.Issues, 2)
	assert.Equal(t, models.SeverityHigh, review.Issues[0].Severity)
	assert.Equal(t, models.SeverityMedium, review.Issues[1].Severity)
	assert.Equal(t, "Needs work", review.OverallAssessment)
	assert.Equal(t, 40, review.Tokens.Total)
	assert.Equal(t, 1, client.Calls("Principal Engineer"))
}

func TestReviewerToleratesFieldAliases(t *testing.T) {
	aliased := `{
	  "issues": [
	    {"section": "Metrics", "issue": "No success metrics", "severity": "High", "fix": "Define KPIs", "reviewer": "Someone Else"}
	  ],
	  "overall_assessment": "ok"
	}`
	client := llm.NewScriptedClient()
	client.Script("PM", llm.StaticResponse(aliased, 10))

	r := NewReviewer(testSpec("PM"), client, "gpt-test")
	review, _, err := r.Review(context.Background(), "sess-1", testDoc())

	require.NoError(t, err)
	require.Len(t, review.Issues, 1)
	issue := review.Issues[0]
	assert.Equal(t, "Metrics", issue.Category)
	assert.Equal(t, "No success metrics", issue.Description)
	assert.Equal(t, "Define KPIs", issue.SuggestedFix)
	// The reviewer identity is never taken from model output.
	assert.Equal(t, "PM", issue.ReviewerName)
}

func TestReviewerDefaultsMissingFields(t *testing.T) {
	sparse := `{"issues": [{"description": "Something is off"}], "overall_assessment": "fine"}`
	client := llm.NewScriptedClient()
	client.Script("PM", llm.StaticResponse(sparse, 10))

	r := NewReviewer(testSpec("PM"), client, "gpt-test")
	review, _, err := r.Review(context.Background(), "sess-1", testDoc())

	require.NoError(t, err)
	require.Len(t, review.Issues, 1)
	assert.Equal(t, "General", review.Issues[0].Category)
	assert.Equal(t, models.SeverityLow, review.Issues[0].Severity)
}

func TestReviewerStripsCodeFences(t *testing.T) {
	client := llm.NewScriptedClient()
	client.Script("PM", llm.StaticResponse("```json\n"+validReviewJSON+"\n```", 10))

	r := NewReviewer(testSpec("PM"), client, "gpt-test")
	review, salvaged, err := r.Review(context.Background(), "sess-1", testDoc())

	require.NoError(t, err)
	assert.False(t, salvaged)
	assert.Len(t, review.Issues, 2)
}

func TestReviewerSalvagesMalformedOutput(t *testing.T) {
	client := llm.NewScriptedClient()
	client.Script("PM", llm.ResponseSequence(
		llm.StaticResponse("Sure! Here is my review: the doc is missing metrics.", 20),
		llm.StaticResponse(validReviewJSON, 30),
	))

	r := NewReviewer(testSpec("PM"), client, "gpt-test")
	review, salvaged, err := r.Review(context.Background(), "sess-1", testDoc())

	require.NoError(t, err)
	assert.True(t, salvaged)
	assert.Len(t, review.Issues, 2)
	// Both calls' tokens are attributed to the review.
	assert.Equal(t, 50, review.Tokens.Total)
	assert.Equal(t, 2, client.Calls("PM"))

	// The salvage call replays the malformed answer as prior context.
	reqs := client.Requests()
	require.Len(t, reqs, 2)
	require.Len(t, reqs[1].Prior, 2)
	assert.Equal(t, "assistant", reqs[1].Prior[1].Role)
	assert.Contains(t, reqs[1].Prior[1].Content, "missing metrics")
	assert.Equal(t, salvagePrompt, reqs[1].UserPrompt)
}

func TestReviewerMalformedAfterSalvage(t *testing.T) {
	client := llm.NewScriptedClient()
	client.Default = llm.StaticResponse("still not json", 5)

	r := NewReviewer(testSpec("PM"), client, "gpt-test")
	review, salvaged, err := r.Review(context.Background(), "sess-1", testDoc())

	require.Error(t, err)
	assert.Nil(t, review)
	assert.False(t, salvaged)

	var malformed *MalformedReviewError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "PM", malformed.ReviewerName)
	assert.Contains(t, malformed.Raw, "still not json")
	// The raw output rides along in the error string so it survives
	// into the session's error message.
	assert.Contains(t, err.Error(), "still not json")
	assert.Equal(t, 2, client.Calls("PM"))
}

func TestMalformedReviewErrorTruncatesRaw(t *testing.T) {
	long := strings.Repeat("x", rawErrorLimit+500)
	err := &MalformedReviewError{
		ReviewerName: "PM",
		Raw:          long,
		Cause:        errors.New("invalid review JSON"),
	}
	msg := err.Error()
	assert.Contains(t, msg, "...(truncated)")
	assert.Less(t, len(msg), rawErrorLimit+200)
}

func TestReviewerRejectsUnknownSeverity(t *testing.T) {
	bad := `{"issues": [{"description": "x", "severity": "Critical"}], "overall_assessment": "ok"}`
	client := llm.NewScriptedClient()
	client.Default = llm.StaticResponse(bad, 5)

	r := NewReviewer(testSpec("PM"), client, "gpt-test")
	_, _, err := r.Review(context.Background(), "sess-1", testDoc())

	var malformed *MalformedReviewError
	require.ErrorAs(t, err, &malformed)
}

func TestReviewerPropagatesLLMError(t *testing.T) {
	wantErr := &llm.Error{Code: "auth", Message: "bad key"}
	client := llm.NewScriptedClient()
	client.Default = func(*llm.Request) (*llm.Response, error) { return nil, wantErr }

	r := NewReviewer(testSpec("PM"), client, "gpt-test")
	_, _, err := r.Review(context.Background(), "sess-1", testDoc())

	require.Error(t, err)
	assert.True(t, errors.Is(err, wantErr) || errors.As(err, &wantErr))
	var malformed *MalformedReviewError
	assert.False(t, errors.As(err, &malformed))
}

func TestReviewerModelOverride(t *testing.T) {
	spec := testSpec("PM")
	spec.ModelID = "model-b"
	client := llm.NewScriptedClient()
	client.Default = llm.StaticResponse(validReviewJSON, 10)

	r := NewReviewer(spec, client, "model-a")
	assert.Equal(t, "model-b", r.Model())

	_, _, err := r.Review(context.Background(), "sess-1", testDoc())
	require.NoError(t, err)
	assert.Equal(t, "model-b", client.Requests()[0].Model)
}
