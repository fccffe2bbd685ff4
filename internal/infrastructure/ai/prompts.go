package ai

import (
	"fmt"
	"strings"

	"github.com/Tomas-vilte/MateReview/internal/domain/models"
)

// Template del rol system: persona de reviewer + contrato de salida JSON estricto.
const reviewSystemPrompt = "You are a senior software engineer and security expert. " +
	"Produce a clear, concise review of the pull request. " +
	"Return output strictly as JSON with keys: \n" +
	"  - summary (short text summary of the PR quality),\n" +
	"  - comments (list of objects with {path, block, issue, corrected_code, comment}),\n" +
	"  - labels (list of strings).\n\n" +
	"For each comment:\n" +
	"  - path: filename where the issue occurs.\n" +
	"  - block: the specific code block (few lines) where the issue exists.\n" +
	"  - issue: concise description of the problem.\n" +
	"  - corrected_code: corrected code snippet that fixes the issue.\n" +
	"  - comment: a clear explanation of the issue and how the fix resolves it.\n\n" +
	"Important rules:\n" +
	"- Output ONLY valid JSON (no extra text).\n" +
	"- Maximum 6 comments.\n" +
	"- Labels must be chosen from: security-issue, code-logic-issue, build-issue, " +
	"docs-issue, style-issue, perf-issue, other."

// BuildReviewPrompt arma el prompt de dos mensajes para el modelo.
// Es una función pura: siempre emite ambos roles, incluso con descripción
// o lista de archivos vacías.
func BuildReviewPrompt(pr models.PRData) []models.PromptMessage {
	var user strings.Builder

	user.WriteString(fmt.Sprintf("\nPR title: %s\n", pr.Title))
	user.WriteString(fmt.Sprintf("Author: %s\n", pr.Author))
	user.WriteString(fmt.Sprintf("Branch: %s -> %s\n", pr.HeadBranch, pr.BaseBranch))
	user.WriteString(fmt.Sprintf("\nDescription:\n%s\n", pr.Description))
	user.WriteString(fmt.Sprintf("\nChanged files (up to %d):\n", len(pr.Files)))

	for _, file := range pr.Files {
		user.WriteString(fmt.Sprintf("\n---\nFile: %s (status: %s, changes: %d)\n%s\n",
			file.Path, file.Status, file.Changes, file.Excerpt))
	}

	user.WriteString("\nInstructions:\n" +
		"- Review for correctness, code logic, security issues, architecture/design concerns, and potential build/test problems.\n" +
		"- Produce up to 6 actionable comments.\n" +
		"- Suggest labels chosen from: security-issue, code-logic-issue, build-issue, docs-issue, style-issue, perf-issue, other.\n" +
		"- Output ONLY valid JSON.\n")

	return []models.PromptMessage{
		{Role: models.PromptRoleSystem, Content: reviewSystemPrompt},
		{Role: models.PromptRoleUser, Content: user.String()},
	}
}
