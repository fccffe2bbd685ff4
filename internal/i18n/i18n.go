package i18n

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

type Translations struct {
	bundle   *i18n.Bundle
	localize *i18n.Localizer
}

// NewTranslations arma el bundle con los mensajes por defecto embebidos y,
// si localesDir no es vacío, carga los archivos locales/active.*.toml.
func NewTranslations(defaultLang string, localesDir string) (*Translations, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	bundle.MustParseMessageFileBytes([]byte(defaultMessages), "default.en.toml")

	if localesDir != "" {
		files, err := filepath.Glob(filepath.Join(localesDir, "active.*.toml"))
		if err != nil {
			return nil, fmt.Errorf("error reading locales: %w", err)
		}

		for _, file := range files {
			if _, err := bundle.LoadMessageFile(file); err != nil {
				return nil, fmt.Errorf("error loading locale file %s: %w", file, err)
			}
		}
	}

	localize := i18n.NewLocalizer(bundle, defaultLang)

	return &Translations{
		bundle:   bundle,
		localize: localize,
	}, nil
}

func (t *Translations) SetLanguage(lang string) error {
	for _, tag := range t.bundle.LanguageTags() {
		if tag.String() == lang {
			t.localize = i18n.NewLocalizer(t.bundle, lang)
			return nil
		}
	}
	return fmt.Errorf("language '%s' not supported", lang)
}

func (t *Translations) GetMessage(messageID string, count int, templateData map[string]interface{}) string {
	localized, err := t.localize.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{
			ID: messageID,
		},
		PluralCount:  count,
		TemplateData: templateData,
	})
	if err != nil {
		return "Translation missing: " + messageID
	}
	return localized
}

var defaultMessages = `
	[app_usage]
	other = "Automated pull request reviews with AI"

	[app_description]
	other = "MateReview fetches a pull request, asks an AI model for a structured review and posts the verdict back to GitHub as a review comment plus labels"

	[serve_command_usage]
	other = "Start the HTTP server that accepts review requests"

	[review_command_usage]
	other = "Review a single pull request URL and exit"

	[error.invalid_pr_url]
	other = "Invalid GitHub PR URL. Expected: https://github.com/owner/repo/pull/123"

	[error.missing_pr_url]
	other = "pr_url is required"

	[error.missing_token]
	other = "No GitHub token provided. Set GITHUB_TOKEN env var or provide token in form."

	[error.fetch_pr]
	other = "Failed to fetch PR from GitHub"

	[error.generate_review]
	other = "AI review failed"

	[error.publish_review]
	other = "Failed to post review/labels to GitHub"

	[error_missing_api_key]
	other = "API key for provider '{{.Provider}}' is not configured"

	[ai_service.error_ai_client]
	other = "Could not create the AI client: {{.Error}}"

	[review.posted]
	other = "Review posted: {{.URL}}"

	[review.labels_applied]
	other = "Labels applied: {{.Labels}}"

	[review.no_labels]
	other = "No labels to apply"

	[server.listening]
	other = "Listening on {{.Addr}}"
`
