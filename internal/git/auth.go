package git

import (
	"os"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/transport"
	githttp "github.com/go-git/go-git/v5/plumbing/transport/http"
	gitssh "github.com/go-git/go-git/v5/plumbing/transport/ssh"
)

// authFor picks a credential method for a remote URL: token auth for https
// remotes when a token is in the environment, the ssh agent for ssh remotes,
// and nil otherwise so go-git falls back to its own defaults.
func authFor(url string) transport.AuthMethod {
	switch {
	case strings.HasPrefix(url, "https://"), strings.HasPrefix(url, "http://"):
		if token := tokenFromEnv(); token != "" {
			return &githttp.BasicAuth{Username: "x-access-token", Password: token}
		}
	case strings.HasPrefix(url, "git@"), strings.HasPrefix(url, "ssh://"):
		if auth, err := gitssh.NewSSHAgentAuth(sshUser(url)); err == nil {
			return auth
		}
	}
	return nil
}

func tokenFromEnv() string {
	for _, key := range []string{"GITHUB_TOKEN", "GH_TOKEN"} {
		if token := os.Getenv(key); token != "" {
			return token
		}
	}
	return ""
}

func sshUser(url string) string {
	if rest, ok := strings.CutPrefix(url, "ssh://"); ok {
		if at := strings.IndexByte(rest, '@'); at > 0 {
			return rest[:at]
		}
	}
	if at := strings.IndexByte(url, '@'); at > 0 && !strings.Contains(url[:at], "/") {
		return url[:at]
	}
	return "git"
}
