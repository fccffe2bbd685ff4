package services

import (
	"strings"
	"testing"

	"github.com/Tomas-vilte/MateReview/internal/domain/models"
	"github.com/stretchr/testify/assert"
)

func TestParseVerdict_CleanJSON(t *testing.T) {
	raw := `{"summary": "Looks good", "comments": [{"path": "main.go", "issue": "nil deref", "comment": "check the pointer"}], "labels": ["code-logic-issue"]}`

	verdict := ParseVerdict(raw)

	assert.Equal(t, "Looks good", verdict.Summary)
	assert.Len(t, verdict.Comments, 1)
	assert.Equal(t, "main.go", verdict.Comments[0].Path)
	assert.Equal(t, "nil deref", verdict.Comments[0].Issue)
	assert.Equal(t, "check the pointer", verdict.Comments[0].Explanation)
	assert.Equal(t, []string{"code-logic-issue"}, verdict.Labels)
}

func TestParseVerdict_JSONEmbeddedInProse(t *testing.T) {
	raw := "Here is the JSON you asked for:\n\n" +
		`{"summary": "ok", "comments": [], "labels": ["style-issue"]}` +
		"\n\nLet me know if you need anything else."

	verdict := ParseVerdict(raw)

	assert.Equal(t, "ok", verdict.Summary)
	assert.Empty(t, verdict.Comments)
	assert.Equal(t, []string{"style-issue"}, verdict.Labels)
}

func TestParseVerdict_MarkdownFences(t *testing.T) {
	raw := "```json\n{\"summary\": \"fenced\", \"comments\": [], \"labels\": []}\n```"

	verdict := ParseVerdict(raw)

	assert.Equal(t, "fenced", verdict.Summary)
	assert.Empty(t, verdict.Comments)
	assert.Empty(t, verdict.Labels)
}

func TestParseVerdict_NoBracesFallsBackToLiteral(t *testing.T) {
	verdict := ParseVerdict("Sorry, I cannot comply.")

	assert.Equal(t, "Sorry, I cannot comply.", verdict.Summary)
	assert.Empty(t, verdict.Comments)
	assert.Empty(t, verdict.Labels)
}

func TestParseVerdict_FallbackTrimsWhitespace(t *testing.T) {
	verdict := ParseVerdict("  \n no JSON here \n ")

	assert.Equal(t, "no JSON here", verdict.Summary)
	assert.Empty(t, verdict.Comments)
	assert.Empty(t, verdict.Labels)
}

func TestParseVerdict_MissingFieldsAreEmpty(t *testing.T) {
	verdict := ParseVerdict(`{"summary": "only summary"}`)

	assert.Equal(t, "only summary", verdict.Summary)
	assert.NotNil(t, verdict.Comments)
	assert.Empty(t, verdict.Comments)
	assert.NotNil(t, verdict.Labels)
	assert.Empty(t, verdict.Labels)
}

func TestParseVerdict_MistypedFieldsAreTreatedAsAbsent(t *testing.T) {
	verdict := ParseVerdict(`{"summary": 42, "comments": "not a list", "labels": {"a": 1}}`)

	assert.Equal(t, "", verdict.Summary)
	assert.Empty(t, verdict.Comments)
	assert.Empty(t, verdict.Labels)
}

func TestParseVerdict_CommentsOverLimitAreTolerated(t *testing.T) {
	// El límite de 6 comentarios es una instrucción al modelo, no del parser.
	comments := make([]string, 0, 10)
	for i := 0; i < 10; i++ {
		comments = append(comments, `{"path": "f.go", "issue": "x"}`)
	}
	raw := `{"summary": "s", "comments": [` + strings.Join(comments, ",") + `], "labels": []}`

	verdict := ParseVerdict(raw)

	assert.Len(t, verdict.Comments, 10)
}

func TestParseVerdict_MultipleObjectsUseOuterSpan(t *testing.T) {
	// Entre la primera '{' y la última '}' queda "{"a": 1} texto {"b": 2}",
	// que no es JSON válido: se cae al intento 2 y después al fallback.
	raw := `{"a": 1} texto {"b": 2}`

	verdict := ParseVerdict(raw)

	assert.Equal(t, raw, verdict.Summary)
	assert.Empty(t, verdict.Comments)
	assert.Empty(t, verdict.Labels)
}

func TestParseVerdict_TopLevelArrayFallsBack(t *testing.T) {
	verdict := ParseVerdict(`["summary", "comments"]`)

	assert.Equal(t, `["summary", "comments"]`, verdict.Summary)
	assert.Empty(t, verdict.Comments)
	assert.Empty(t, verdict.Labels)
}

func TestFilterLabels(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "mixed known and unknown",
			input:    []string{"security-issue", "made-up-label", "perf-issue"},
			expected: []string{"security-issue", "perf-issue"},
		},
		{
			name:     "all unknown",
			input:    []string{"made-up", "another-one"},
			expected: []string{},
		},
		{
			name:     "empty input",
			input:    []string{},
			expected: []string{},
		},
		{
			name:     "normalizes case and whitespace",
			input:    []string{" Security-Issue ", "OTHER"},
			expected: []string{"security-issue", "other"},
		},
		{
			name:     "drops duplicates preserving order",
			input:    []string{"docs-issue", "docs-issue", "build-issue"},
			expected: []string{"docs-issue", "build-issue"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FilterLabels(tt.input))
		})
	}
}

func TestFormatReviewBody_FullComment(t *testing.T) {
	verdict := models.ReviewVerdict{
		Summary: "Decent PR with one problem",
		Comments: []models.ReviewComment{
			{
				Path:          "pkg/db.go",
				Block:         "db.Query(userInput)",
				Issue:         "SQL injection",
				CorrectedCode: "db.Query(\"SELECT ?\", userInput)",
				Explanation:   "parameterize the query",
			},
		},
	}

	body := FormatReviewBody(verdict)

	assert.Contains(t, body, "### 🤖 Automated Review Summary")
	assert.Contains(t, body, "Decent PR with one problem")
	assert.Contains(t, body, "### 📝 Detailed Comments:")
	assert.Contains(t, body, "**File:** `pkg/db.go`")
	assert.Contains(t, body, "- **Issue:** SQL injection")
	assert.Contains(t, body, "- **Problematic Code:**\n```\ndb.Query(userInput)\n```")
	assert.Contains(t, body, "- **Suggested Fix:**")
	assert.Contains(t, body, "- **Explanation:** parameterize the query")
}

func TestFormatReviewBody_OmitsEmptyFields(t *testing.T) {
	verdict := models.ReviewVerdict{
		Summary: "fine",
		Comments: []models.ReviewComment{
			{Path: "a.go", Issue: "typo"},
		},
	}

	body := FormatReviewBody(verdict)

	assert.Contains(t, body, "- **Issue:** typo")
	assert.NotContains(t, body, "Problematic Code")
	assert.NotContains(t, body, "Suggested Fix")
	assert.NotContains(t, body, "Explanation")
}

func TestFormatReviewBody_EmptyCommentsStillHasSummary(t *testing.T) {
	verdict := models.ReviewVerdict{Summary: "all good"}

	body := FormatReviewBody(verdict)

	assert.Contains(t, body, "all good")
	assert.Contains(t, body, "### 📝 Detailed Comments:")
	assert.NotContains(t, body, "**File:**")
}

func TestFormatReviewBody_UnknownPathPlaceholder(t *testing.T) {
	verdict := models.ReviewVerdict{
		Comments: []models.ReviewComment{{Issue: "something"}},
	}

	body := FormatReviewBody(verdict)

	assert.Contains(t, body, "**File:** `<unknown>`")
}
