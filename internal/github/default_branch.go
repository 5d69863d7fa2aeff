// Package github looks up remote metadata through the GitHub API. It is used
// as a best-effort fallback when the repository has no stored remote HEAD;
// every failure here is non-fatal.
package github

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"
)

// Client answers default-branch queries for one repository.
type Client struct {
	gh    *github.Client
	owner string
	repo  string
}

// NewClient creates a client for the repository a remote URL points at.
// It returns an error when the URL is not a GitHub URL or no token is
// available in the environment.
func NewClient(ctx context.Context, remoteURL string) (*Client, error) {
	owner, repo, err := ParseRepoURL(remoteURL)
	if err != nil {
		return nil, err
	}

	token := Token()
	if token == "" {
		return nil, fmt.Errorf("no GitHub token in environment")
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(ctx, ts)

	return &Client{gh: github.NewClient(tc), owner: owner, repo: repo}, nil
}

// WithBaseURL points the client at a different API endpoint. Used by tests.
func (c *Client) WithBaseURL(baseURL string) error {
	gh, err := c.gh.WithEnterpriseURLs(baseURL, baseURL)
	if err != nil {
		return err
	}
	c.gh = gh
	return nil
}

// DefaultBranch returns the repository's default branch name.
func (c *Client) DefaultBranch(ctx context.Context) (string, error) {
	repo, _, err := c.gh.Repositories.Get(ctx, c.owner, c.repo)
	if err != nil {
		return "", fmt.Errorf("failed to get repository %s/%s: %w", c.owner, c.repo, err)
	}
	if repo.GetDefaultBranch() == "" {
		return "", fmt.Errorf("repository %s/%s has no default branch", c.owner, c.repo)
	}
	return repo.GetDefaultBranch(), nil
}

// Token returns the GitHub token from the environment, or "".
func Token() string {
	for _, key := range []string{"GITHUB_TOKEN", "GH_TOKEN"} {
		if token := os.Getenv(key); token != "" {
			return token
		}
	}
	return ""
}

// ParseRepoURL extracts owner and repository name from a github.com remote
// URL, in either https or ssh form:
//
//	https://github.com/owner/repo.git
//	git@github.com:owner/repo.git
func ParseRepoURL(url string) (owner, repo string, err error) {
	trimmed := strings.TrimSuffix(url, ".git")

	switch {
	case strings.HasPrefix(trimmed, "https://github.com/"), strings.HasPrefix(trimmed, "http://github.com/"):
		trimmed = trimmed[strings.Index(trimmed, "github.com/")+len("github.com/"):]
	case strings.HasPrefix(trimmed, "git@github.com:"):
		trimmed = strings.TrimPrefix(trimmed, "git@github.com:")
	case strings.HasPrefix(trimmed, "ssh://git@github.com/"):
		trimmed = strings.TrimPrefix(trimmed, "ssh://git@github.com/")
	default:
		return "", "", fmt.Errorf("not a GitHub URL: %s", url)
	}

	parts := strings.Split(trimmed, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid GitHub URL: %s", url)
	}
	return parts[0], parts[1], nil
}
