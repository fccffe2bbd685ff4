package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Tomas-vilte/MateReview/internal/domain/models"
)

// allowedReviewLabels es el allow-list fijo de etiquetas que se pueden
// aplicar al PR. Las etiquetas desconocidas se descartan en silencio.
var allowedReviewLabels = map[string]struct{}{
	"security-issue":   {},
	"code-logic-issue": {},
	"build-issue":      {},
	"docs-issue":       {},
	"style-issue":      {},
	"perf-issue":       {},
	"other":            {},
}

// rawVerdict difiere el parseo de cada campo para poder leerlos de forma
// permisiva: un campo ausente o con forma incorrecta no tira el veredicto.
type rawVerdict struct {
	Summary  json.RawMessage `json:"summary"`
	Comments json.RawMessage `json:"comments"`
	Labels   json.RawMessage `json:"labels"`
}

// ParseVerdict convierte el texto crudo del modelo en un veredicto.
// Nunca falla: una respuesta malformada no puede abortar el pipeline.
//
// El orden de intentos es:
//  1. El substring entre la primera '{' y la última '}' (incluidas),
//     parseado como JSON estricto. Maneja el caso común de JSON envuelto
//     en prosa o en fences de markdown.
//  2. El texto completo sin modificar, como JSON estricto.
//  3. Veredicto sintetizado: el texto crudo recortado como summary,
//     sin comentarios ni etiquetas.
//
// Si el texto tiene varias llaves, solo se intenta el span exterior entre la
// primera '{' y la última '}'; una '}' colgante dentro de un string puede
// hacer fallar el intento 1 y caer al 2/3. Es comportamiento aceptado.
func ParseVerdict(raw string) models.ReviewVerdict {
	if bounded, ok := braceBound(raw); ok {
		if verdict, ok := tryParseVerdict(bounded); ok {
			return verdict
		}
	}

	if verdict, ok := tryParseVerdict(raw); ok {
		return verdict
	}

	return models.ReviewVerdict{
		Summary:  strings.TrimSpace(raw),
		Comments: []models.ReviewComment{},
		Labels:   []string{},
	}
}

func braceBound(raw string) (string, bool) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || start >= end {
		return "", false
	}
	return raw[start : end+1], true
}

func tryParseVerdict(text string) (models.ReviewVerdict, bool) {
	var parsed rawVerdict
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return models.ReviewVerdict{}, false
	}

	verdict := models.ReviewVerdict{
		Comments: []models.ReviewComment{},
		Labels:   []string{},
	}

	if len(parsed.Summary) > 0 {
		var summary string
		if err := json.Unmarshal(parsed.Summary, &summary); err == nil {
			verdict.Summary = summary
		}
	}
	if len(parsed.Comments) > 0 {
		var comments []models.ReviewComment
		if err := json.Unmarshal(parsed.Comments, &comments); err == nil && comments != nil {
			verdict.Comments = comments
		}
	}
	if len(parsed.Labels) > 0 {
		var labels []string
		if err := json.Unmarshal(parsed.Labels, &labels); err == nil && labels != nil {
			verdict.Labels = labels
		}
	}

	return verdict, true
}

// FilterLabels intersecta las etiquetas del veredicto con el allow-list.
// Preserva el orden, normaliza a minúsculas y descarta duplicados.
func FilterLabels(labels []string) []string {
	filtered := make([]string, 0, len(labels))
	seen := make(map[string]struct{}, len(labels))
	for _, label := range labels {
		cleaned := strings.ToLower(strings.TrimSpace(label))
		if _, allowed := allowedReviewLabels[cleaned]; !allowed {
			continue
		}
		if _, dup := seen[cleaned]; dup {
			continue
		}
		seen[cleaned] = struct{}{}
		filtered = append(filtered, cleaned)
	}
	return filtered
}

// FormatReviewBody arma el cuerpo markdown de la review de forma
// determinista a partir del veredicto. Cada línea de un comentario se emite
// solo si el campo correspondiente no está vacío.
func FormatReviewBody(verdict models.ReviewVerdict) string {
	var body strings.Builder

	body.WriteString("### 🤖 Automated Review Summary\n\n")
	body.WriteString(verdict.Summary)
	body.WriteString("\n\n### 📝 Detailed Comments:\n")

	for _, comment := range verdict.Comments {
		path := comment.Path
		if path == "" {
			path = "<unknown>"
		}

		body.WriteString(fmt.Sprintf("\n**File:** `%s`\n", path))
		if comment.Issue != "" {
			body.WriteString(fmt.Sprintf("- **Issue:** %s\n", comment.Issue))
		}
		if comment.Block != "" {
			body.WriteString(fmt.Sprintf("- **Problematic Code:**\n```\n%s\n```\n", comment.Block))
		}
		if comment.CorrectedCode != "" {
			body.WriteString(fmt.Sprintf("- **Suggested Fix:**\n```\n%s\n```\n", comment.CorrectedCode))
		}
		if comment.Explanation != "" {
			body.WriteString(fmt.Sprintf("- **Explanation:** %s\n", comment.Explanation))
		}
	}

	return body.String()
}
