package adapter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "rocqtrace.dev/pkg/rocqtrace/internal/model"
)

func newResolverSandbox(t *testing.T, docker *fakeDocker) Sandbox {
	t.Helper()

	sandbox, err := NewDockerSandboxAdapterWithClient(docker).Start(context.Background(), SandboxSpec{Image: "img"})
	require.NoError(t, err)

	return sandbox
}

func TestSandboxPackageResolver_ListFiles(t *testing.T) {
	docker := newFakeDocker()
	docker.replies["sh -lc opam show 'coq-actuary'"] = `name coq-actuary
tags "logpath:Actuary" "category:Mathematics"`
	docker.replies["sh -lc find '/opam/lib/coq/user-contrib/Actuary'"] = `/opam/lib/coq/user-contrib/Actuary
/opam/lib/coq/user-contrib/Actuary/Premium.v
/opam/lib/coq/user-contrib/Actuary/Premium.vo
/opam/lib/coq/user-contrib/Actuary/Sub/Annuity.v
`

	cfg := m.PackageConfig{OpamEnvPath: "/opam"}
	resolver := NewSandboxPackageResolver(newResolverSandbox(t, docker), cfg)

	library, err := resolver.ListFiles(context.Background(), "coq-actuary")
	require.NoError(t, err)

	assert.Equal(t, "Actuary", library.FQN)
	assert.Equal(t, "coq-actuary", library.PackageName)
	assert.Equal(t, m.Path("/opam/lib/coq/user-contrib/"), library.Root)
	assert.Equal(t, []m.Path{
		"/opam/lib/coq/user-contrib/Actuary/Premium.v",
		"/opam/lib/coq/user-contrib/Actuary/Sub/Annuity.v",
	}, library.Subfiles)
	assert.Contains(t, library.OpamShow, "logpath:Actuary")
}

func TestSandboxPackageResolver_ResolveFQN(t *testing.T) {
	docker := newFakeDocker()
	docker.replies["sh -lc opam show 'coq-mathcomp-ssreflect'"] = `name coq-mathcomp-ssreflect`
	docker.replies["sh -lc opam show 'coq-unknown'"] = `name coq-unknown`

	cfg := m.PackageConfig{InfoPath: map[string]string{"coq-mathcomp-ssreflect": "mathcomp.ssreflect"}}
	resolver := NewSandboxPackageResolver(newResolverSandbox(t, docker), cfg)

	fqn, _, err := resolver.ResolveFQN(context.Background(), "coq-mathcomp-ssreflect")
	require.NoError(t, err)
	assert.Equal(t, "mathcomp.ssreflect", fqn)

	_, _, err = resolver.ResolveFQN(context.Background(), "coq-unknown")
	require.ErrorIs(t, err, m.ErrConfiguration)
}

func TestSandboxPackageResolver_FetchContent(t *testing.T) {
	docker := newFakeDocker()
	docker.replies["cat -- /opam/A.v"] = "Lemma a : True.\n"

	resolver := NewSandboxPackageResolver(newResolverSandbox(t, docker), m.PackageConfig{})

	source, err := resolver.FetchContent(context.Background(), "/opam/A.v")
	require.NoError(t, err)
	assert.Equal(t, m.Source{Path: "/opam/A.v", Content: "Lemma a : True.\n"}, source)
}

func TestShellQuote(t *testing.T) {
	assert.Equal(t, `'a b'`, ShellQuote("a b"))
	assert.Equal(t, `'it'\''s'`, ShellQuote("it's"))
}
