package sync

import (
	"testing"

	"github.com/stretchr/testify/require"

	"hubsync.dev/hubsync/internal/config"
	"hubsync.dev/hubsync/testhelpers"
)

func TestResolveRunPrefersStoredRemoteHead(t *testing.T) {
	scene := testhelpers.NewScene(t)
	require.NoError(t, scene.Upstream.CreateBranch("master"))
	require.NoError(t, scene.Local.Fetch("origin"))
	require.NoError(t, scene.Local.RunGitCommand(
		"symbolic-ref", "refs/remotes/origin/HEAD", "refs/remotes/origin/master"))

	ctx, _ := testContext(t)
	branches, err := ctx.Repo.LocalBranches()
	require.NoError(t, err)

	// the stored HEAD wins even though a local main exists
	res, err := resolveRun(ctx, &config.RepoConfig{}, "origin", branches)
	require.NoError(t, err)
	require.Equal(t, "master", res.DefaultName)
	require.Empty(t, res.AlternateRemote)

	target, err := scene.Local.RevParse("refs/remotes/origin/master")
	require.NoError(t, err)
	require.Equal(t, target, res.DefaultHead.String())
}

func TestResolveRunConfigOverride(t *testing.T) {
	scene := testhelpers.NewScene(t)
	require.NoError(t, scene.Upstream.CreateBranch("trunk"))
	require.NoError(t, scene.Local.Fetch("origin"))

	ctx, _ := testContext(t)
	branches, err := ctx.Repo.LocalBranches()
	require.NoError(t, err)

	// the configured name beats the stored remote HEAD
	trunk := "trunk"
	cfg := &config.RepoConfig{DefaultBranch: &trunk}
	res, err := resolveRun(ctx, cfg, "origin", branches)
	require.NoError(t, err)
	require.Equal(t, "trunk", res.DefaultName)

	target, err := scene.Local.RevParse("refs/remotes/origin/trunk")
	require.NoError(t, err)
	require.Equal(t, target, res.DefaultHead.String())
}

func TestResolveRunHeuristic(t *testing.T) {
	t.Run("falls back to a local main", func(t *testing.T) {
		scene := testhelpers.NewScene(t)
		require.NoError(t, scene.Local.RunGitCommand("symbolic-ref", "--delete", "refs/remotes/origin/HEAD"))

		ctx, _ := testContext(t)
		branches, err := ctx.Repo.LocalBranches()
		require.NoError(t, err)

		res, err := resolveRun(ctx, &config.RepoConfig{}, "origin", branches)
		require.NoError(t, err)
		require.Equal(t, "main", res.DefaultName)
		require.Equal(t, "main", res.LocalDefault)

		target, err := scene.Local.RevParse("refs/remotes/origin/main")
		require.NoError(t, err)
		require.Equal(t, target, res.DefaultHead.String())
	})

	t.Run("then to a local master", func(t *testing.T) {
		scene := testhelpers.NewScene(t)
		require.NoError(t, scene.Local.RunGitCommand("symbolic-ref", "--delete", "refs/remotes/origin/HEAD"))
		require.NoError(t, scene.Local.RunGitCommand("branch", "-m", "main", "master"))

		ctx, _ := testContext(t)
		branches, err := ctx.Repo.LocalBranches()
		require.NoError(t, err)

		res, err := resolveRun(ctx, &config.RepoConfig{}, "origin", branches)
		require.NoError(t, err)
		require.Equal(t, "master", res.DefaultName)
		require.Equal(t, "master", res.LocalDefault)
	})

	t.Run("records an alternate remote when the match tracks elsewhere", func(t *testing.T) {
		scene := testhelpers.NewScene(t)
		require.NoError(t, scene.Local.RunGitCommand("symbolic-ref", "--delete", "refs/remotes/origin/HEAD"))
		require.NoError(t, scene.Local.RunGitCommand("remote", "add", "other", scene.Upstream.Dir))
		require.NoError(t, scene.Local.SetConfig("branch.main.remote", "other"))

		ctx, _ := testContext(t)
		branches, err := ctx.Repo.LocalBranches()
		require.NoError(t, err)

		res, err := resolveRun(ctx, &config.RepoConfig{}, "origin", branches)
		require.NoError(t, err)
		require.Equal(t, "main", res.DefaultName)
		require.Equal(t, "other", res.AlternateRemote)

		// other was never fetched, so the local tip stands in
		tip, err := scene.Local.RevParse("main")
		require.NoError(t, err)
		require.Equal(t, tip, res.DefaultHead.String())
	})

	t.Run("resolves nothing without a candidate", func(t *testing.T) {
		scene := testhelpers.NewScene(t)
		require.NoError(t, scene.Local.RunGitCommand("symbolic-ref", "--delete", "refs/remotes/origin/HEAD"))
		require.NoError(t, scene.Local.RunGitCommand("branch", "-m", "main", "dev"))

		ctx, _ := testContext(t)
		branches, err := ctx.Repo.LocalBranches()
		require.NoError(t, err)

		res, err := resolveRun(ctx, &config.RepoConfig{}, "origin", branches)
		require.NoError(t, err)
		require.Empty(t, res.DefaultName)
		require.Empty(t, res.LocalDefault)
	})
}
