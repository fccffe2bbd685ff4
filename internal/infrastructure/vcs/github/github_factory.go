package github

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/MateReview/internal/domain/ports"
	"github.com/Tomas-vilte/MateReview/internal/i18n"
)

// GitHubProviderFactory implementa VCSProviderFactory para GitHub
type GitHubProviderFactory struct{}

// NewGitHubProviderFactory crea una nueva factory para GitHub
func NewGitHubProviderFactory() *GitHubProviderFactory {
	return &GitHubProviderFactory{}
}

// CreateClient crea un cliente GitHub ligado a un owner/repo
func (f *GitHubProviderFactory) CreateClient(
	_ context.Context,
	owner, repo, token string,
	trans *i18n.Translations,
) (ports.VCSClient, error) {
	if token == "" {
		return nil, fmt.Errorf("token de github necesario")
	}
	return NewGitHubClient(owner, repo, token, trans), nil
}

// Name retorna el nombre del proveedor
func (f *GitHubProviderFactory) Name() string {
	return "github"
}
