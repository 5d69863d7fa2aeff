package github

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRepoURL(t *testing.T) {
	tests := []struct {
		url   string
		owner string
		repo  string
		ok    bool
	}{
		{"https://github.com/acme/widgets.git", "acme", "widgets", true},
		{"https://github.com/acme/widgets", "acme", "widgets", true},
		{"http://github.com/acme/widgets.git", "acme", "widgets", true},
		{"git@github.com:acme/widgets.git", "acme", "widgets", true},
		{"ssh://git@github.com/acme/widgets.git", "acme", "widgets", true},
		{"https://gitlab.com/acme/widgets.git", "", "", false},
		{"https://github.com/acme", "", "", false},
		{"https://github.com/acme/widgets/extra", "", "", false},
		{"/home/user/repos/widgets", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			owner, repo, err := ParseRepoURL(tt.url)
			if !tt.ok {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.owner, owner)
			require.Equal(t, tt.repo, repo)
		})
	}
}

func TestToken(t *testing.T) {
	t.Run("prefers GITHUB_TOKEN", func(t *testing.T) {
		t.Setenv("GITHUB_TOKEN", "gh-primary")
		t.Setenv("GH_TOKEN", "gh-secondary")
		require.Equal(t, "gh-primary", Token())
	})

	t.Run("falls back to GH_TOKEN", func(t *testing.T) {
		t.Setenv("GITHUB_TOKEN", "")
		t.Setenv("GH_TOKEN", "gh-secondary")
		require.Equal(t, "gh-secondary", Token())
	})

	t.Run("empty without either", func(t *testing.T) {
		t.Setenv("GITHUB_TOKEN", "")
		t.Setenv("GH_TOKEN", "")
		require.Equal(t, "", Token())
	})
}

func TestNewClient(t *testing.T) {
	t.Run("fails without a token", func(t *testing.T) {
		t.Setenv("GITHUB_TOKEN", "")
		t.Setenv("GH_TOKEN", "")

		_, err := NewClient(context.Background(), "https://github.com/acme/widgets.git")
		require.Error(t, err)
	})

	t.Run("fails for non-GitHub remotes", func(t *testing.T) {
		t.Setenv("GITHUB_TOKEN", "token")

		_, err := NewClient(context.Background(), "/tmp/some/local/path")
		require.Error(t, err)
	})
}

func TestDefaultBranch(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "token")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v3/repos/acme/widgets" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, `{"name":"widgets","default_branch":"trunk"}`)
	}))
	defer server.Close()

	client, err := NewClient(context.Background(), "https://github.com/acme/widgets.git")
	require.NoError(t, err)
	require.NoError(t, client.WithBaseURL(server.URL))

	name, err := client.DefaultBranch(context.Background())
	require.NoError(t, err)
	require.Equal(t, "trunk", name)
}
