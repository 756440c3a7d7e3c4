package adapter

import (
	"context"
	"fmt"
	"path"
	"regexp"
	"strings"

	m "rocqtrace.dev/pkg/rocqtrace/internal/model"
)

const userContribDir = "lib/coq/user-contrib"

var logPathPattern = regexp.MustCompile(`"logpath:([A-Za-z0-9_.-]+)"`)

// PackageResolver locates the files of an installed package and reads them.
type PackageResolver interface {
	// ResolveFQN returns the logical root of pkg and the raw package
	// description it was read from.
	ResolveFQN(ctx context.Context, pkg string) (fqn string, description string, err error)
	ListFiles(ctx context.Context, pkg string) (m.Library, error)
	FetchContent(ctx context.Context, path m.Path) (m.Source, error)
}

// ResolverFactory builds the resolver of a package set bound to sandbox.
type ResolverFactory func(sandbox Sandbox, cfg m.PackageConfig) PackageResolver

// SandboxPackageResolver resolves packages with opam inside a sandbox.
type SandboxPackageResolver struct {
	sandbox     Sandbox
	opamEnvPath string
	infoPath    map[string]string
}

// NewSandboxPackageResolver returns a resolver for the packages of cfg.
func NewSandboxPackageResolver(sandbox Sandbox, cfg m.PackageConfig) PackageResolver {
	return &SandboxPackageResolver{
		sandbox:     sandbox,
		opamEnvPath: cfg.OpamEnvPath,
		infoPath:    cfg.InfoPath,
	}
}

// ResolveFQN implements PackageResolver. The logical root comes from the
// logpath tag of the opam description, or from the configured info path.
func (r *SandboxPackageResolver) ResolveFQN(ctx context.Context, pkg string) (string, string, error) {
	description, err := r.sandbox.Exec(ctx, "opam show "+ShellQuote(pkg))
	if err != nil {
		return "", "", err
	}

	if match := logPathPattern.FindStringSubmatch(description); match != nil {
		return match[1], description, nil
	}

	if fqn := strings.TrimSpace(r.infoPath[pkg]); fqn != "" {
		return fqn, description, nil
	}

	return "", description, fmt.Errorf("%w: no logpath for %s, add it to info_path", m.ErrConfiguration, pkg)
}

// ListFiles implements PackageResolver.
func (r *SandboxPackageResolver) ListFiles(ctx context.Context, pkg string) (m.Library, error) {
	fqn, description, err := r.ResolveFQN(ctx, pkg)
	if err != nil {
		return m.Library{}, err
	}

	root := path.Join(r.opamEnvPath, userContribDir) + "/"
	dir := path.Join(root, strings.ReplaceAll(fqn, ".", "/"))

	out, err := r.sandbox.Exec(ctx, "find "+ShellQuote(dir))
	if err != nil {
		return m.Library{}, err
	}

	var subfiles []m.Path

	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasSuffix(line, ".v") {
			subfiles = append(subfiles, m.Path(line))
		}
	}

	return m.Library{
		FQN:         fqn,
		PackageName: pkg,
		Root:        m.Path(root),
		Subfiles:    subfiles,
		OpamShow:    description,
	}, nil
}

// FetchContent implements PackageResolver.
func (r *SandboxPackageResolver) FetchContent(ctx context.Context, path m.Path) (m.Source, error) {
	content, err := r.sandbox.ReadFile(ctx, path)
	if err != nil {
		return m.Source{}, err
	}

	return m.Source{Path: path, Content: content}, nil
}

// ShellQuote quotes s for a POSIX shell.
func ShellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
