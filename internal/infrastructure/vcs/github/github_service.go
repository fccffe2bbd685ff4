package github

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"unicode/utf8"

	"github.com/Tomas-vilte/MateReview/internal/domain/models"
	"github.com/Tomas-vilte/MateReview/internal/domain/ports"
	"github.com/Tomas-vilte/MateReview/internal/i18n"
	"github.com/Tomas-vilte/MateReview/internal/infrastructure/httpclient"
	"github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"
)

var _ ports.VCSClient = (*GitHubClient)(nil)

type PullRequestsService interface {
	Get(ctx context.Context, owner, repo string, number int) (*github.PullRequest, *github.Response, error)
	ListFiles(ctx context.Context, owner, repo string, number int, opts *github.ListOptions) ([]*github.CommitFile, *github.Response, error)
	CreateReview(ctx context.Context, owner, repo string, number int, review *github.PullRequestReviewRequest) (*github.PullRequestReview, *github.Response, error)
}

type IssuesService interface {
	AddLabelsToIssue(ctx context.Context, owner, repo string, number int, labels []string) ([]*github.Label, *github.Response, error)
}

type GitHubClient struct {
	prService     PullRequestsService
	issuesService IssuesService
	owner         string
	repo          string
	trans         *i18n.Translations
	httpClient    httpclient.HTTPClient
}

func NewGitHubClient(owner, repo, token string, trans *i18n.Translations) *GitHubClient {
	var httpClient *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	client := github.NewClient(httpClient)
	rawClient := httpclient.NewDefaultHTTPClient()
	return &GitHubClient{
		prService:     client.PullRequests,
		issuesService: client.Issues,
		owner:         owner,
		repo:          repo,
		trans:         trans,
		httpClient:    rawClient,
	}
}

func NewGitHubClientWithServices(
	prService PullRequestsService,
	issuesService IssuesService,
	rawClient httpclient.HTTPClient,
	owner string,
	repo string,
	trans *i18n.Translations,
) *GitHubClient {
	return &GitHubClient{
		prService:     prService,
		issuesService: issuesService,
		owner:         owner,
		repo:          repo,
		trans:         trans,
		httpClient:    rawClient,
	}
}

func (ghc *GitHubClient) GetPRData(ctx context.Context, prNumber int, opts models.FetchOptions) (models.PRData, error) {
	pr, _, err := ghc.prService.Get(ctx, ghc.owner, ghc.repo, prNumber)
	if err != nil {
		return models.PRData{}, fmt.Errorf("%s: %w", ghc.trans.GetMessage("error.fetch_pr", 0, nil), err)
	}

	files, _, err := ghc.prService.ListFiles(ctx, ghc.owner, ghc.repo, prNumber, &github.ListOptions{PerPage: 100})
	if err != nil {
		return models.PRData{}, fmt.Errorf("%s: %w", ghc.trans.GetMessage("error.fetch_pr", 0, nil), err)
	}

	// Los archivos más allá del límite se omiten en silencio.
	if len(files) > opts.MaxFiles {
		files = files[:opts.MaxFiles]
	}

	changed := make([]models.ChangedFile, len(files))
	var wg sync.WaitGroup
	for i, file := range files {
		changed[i] = models.ChangedFile{
			Path:    file.GetFilename(),
			Status:  file.GetStatus(),
			Changes: file.GetChanges(),
		}

		wg.Add(1)
		go func(i int, rawURL string) {
			defer wg.Done()
			changed[i].Excerpt = ghc.fetchFileExcerpt(ctx, rawURL, opts.MaxCharsPerFile)
		}(i, file.GetRawURL())
	}
	wg.Wait()

	return models.PRData{
		Number:      prNumber,
		Title:       pr.GetTitle(),
		Author:      pr.GetUser().GetLogin(),
		HeadBranch:  pr.GetHead().GetRef(),
		BaseBranch:  pr.GetBase().GetRef(),
		Description: pr.GetBody(),
		Files:       changed,
	}, nil
}

// fetchFileExcerpt baja el contenido crudo del archivo y lo trunca al límite.
// Un archivo que no se puede bajar nunca aborta el fetch del PR: se sustituye
// por el placeholder fijo.
func (ghc *GitHubClient) fetchFileExcerpt(ctx context.Context, rawURL string, maxChars int) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return models.FailedFetchPlaceholder
	}

	resp, err := ghc.httpClient.Do(req)
	if err != nil {
		return models.FailedFetchPlaceholder
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= 400 {
		return models.FailedFetchPlaceholder
	}

	// Nunca se necesita más que el excerpt: el body se lee acotado a los
	// bytes que pueden ocupar maxChars caracteres (UTF-8 usa hasta 4 por rune),
	// así un archivo gigante no infla la memoria.
	limit := int64(maxChars)*utf8.UTFMax + 1
	body, err := io.ReadAll(io.LimitReader(resp.Body, limit))
	if err != nil {
		return models.FailedFetchPlaceholder
	}

	// El límite es en caracteres, no en bytes: un archivo no-ASCII se corta
	// en el mismo punto que uno ASCII y nunca a mitad de un rune.
	runes := []rune(string(body))
	if len(runes) > maxChars {
		return string(runes[:maxChars]) + models.TruncationMarker
	}
	return string(body)
}

func (ghc *GitHubClient) PostReview(ctx context.Context, prNumber int, body string) (models.ReviewReceipt, error) {
	review := &github.PullRequestReviewRequest{
		Body:  github.Ptr(body),
		Event: github.Ptr("COMMENT"),
	}

	posted, _, err := ghc.prService.CreateReview(ctx, ghc.owner, ghc.repo, prNumber, review)
	if err != nil {
		return models.ReviewReceipt{}, fmt.Errorf("%s: %w", ghc.trans.GetMessage("error.publish_review", 0, nil), err)
	}

	return models.ReviewReceipt{
		ID:      posted.GetID(),
		HTMLURL: posted.GetHTMLURL(),
		State:   posted.GetState(),
	}, nil
}

func (ghc *GitHubClient) AddLabels(ctx context.Context, prNumber int, labels []string) ([]string, error) {
	applied, _, err := ghc.issuesService.AddLabelsToIssue(ctx, ghc.owner, ghc.repo, prNumber, labels)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ghc.trans.GetMessage("error.publish_review", 0, nil), err)
	}

	names := make([]string, 0, len(applied))
	for _, label := range applied {
		names = append(names, label.GetName())
	}
	return names, nil
}
