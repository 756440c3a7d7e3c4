package adapter

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"strconv"
	"strings"
	"sync"
	"time"

	cerrdefs "github.com/containerd/errdefs"
	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/api/types/network"
	"github.com/docker/docker/client"
	"github.com/docker/docker/pkg/stdcopy"
	"github.com/google/uuid"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"

	m "rocqtrace.dev/pkg/rocqtrace/internal/model"
)

// SessionLabelKey is the container label carrying the owning package name.
const SessionLabelKey = "rocqtrace.session"

const (
	replayLogPath     = "/tmp/pet.log"
	replayPIDPath     = "/tmp/pet.pid"
	replayPollEvery   = 200 * time.Millisecond
	replayDialTimeout = time.Second
	replayLogTail     = 200
)

// SandboxSpec describes the container to start.
type SandboxSpec struct {
	Image      string
	User       string
	Label      string
	KillClones bool
}

// Sandbox is one running container.
type Sandbox interface {
	ID() string
	// Exec runs script with a login shell and returns its standard output.
	Exec(ctx context.Context, script string) (string, error)
	// ExecStream runs script with a login shell and copies its output to out.
	ExecStream(ctx context.Context, script string, out io.Writer) error
	// ReadFile returns the content of path inside the container.
	ReadFile(ctx context.Context, path m.Path) (string, error)
	// StartReplayServer launches the replay server on port and waits until
	// it accepts connections.
	StartReplayServer(ctx context.Context, port int, timeout time.Duration) error
	// Commit saves the container file system as image.
	Commit(ctx context.Context, image string) error
	Close(ctx context.Context) error
}

// SandboxAdapter starts and reclaims sandboxes.
type SandboxAdapter interface {
	ImageExists(ctx context.Context, image string) (bool, error)
	Start(ctx context.Context, spec SandboxSpec) (Sandbox, error)
	// Prune removes every container carrying label.
	Prune(ctx context.Context, label string) error
}

// DockerAPI is the part of the docker engine client the sandboxes use.
type DockerAPI interface {
	ImageInspect(ctx context.Context, imageID string, opts ...client.ImageInspectOption) (image.InspectResponse, error)
	ContainerCreate(ctx context.Context, config *container.Config, hostConfig *container.HostConfig,
		networkingConfig *network.NetworkingConfig, platform *ocispec.Platform, containerName string) (container.CreateResponse, error)
	ContainerStart(ctx context.Context, containerID string, options container.StartOptions) error
	ContainerList(ctx context.Context, options container.ListOptions) ([]container.Summary, error)
	ContainerKill(ctx context.Context, containerID, signal string) error
	ContainerRemove(ctx context.Context, containerID string, options container.RemoveOptions) error
	ContainerExecCreate(ctx context.Context, containerID string, options container.ExecOptions) (container.ExecCreateResponse, error)
	ContainerExecAttach(ctx context.Context, execID string, config container.ExecAttachOptions) (types.HijackedResponse, error)
	ContainerExecInspect(ctx context.Context, execID string) (container.ExecInspect, error)
	ContainerCommit(ctx context.Context, containerID string, options container.CommitOptions) (container.CommitResponse, error)
}

// DockerSandboxAdapter drives containers through the docker engine API.
type DockerSandboxAdapter struct {
	docker func() (DockerAPI, error)
	dial   func(ctx context.Context, address string) error
}

// NewDockerSandboxAdapter returns an adapter connecting to the daemon named
// by the DOCKER_* environment on first use.
func NewDockerSandboxAdapter() *DockerSandboxAdapter {
	return &DockerSandboxAdapter{
		docker: sync.OnceValues(func() (DockerAPI, error) {
			cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
			if err != nil {
				return nil, fmt.Errorf("%w: docker client: %w", m.ErrConfiguration, err)
			}

			return cli, nil
		}),
		dial: dialTCP,
	}
}

// NewDockerSandboxAdapterWithClient returns an adapter issuing its calls
// through api.
func NewDockerSandboxAdapterWithClient(api DockerAPI) *DockerSandboxAdapter {
	return &DockerSandboxAdapter{
		docker: func() (DockerAPI, error) { return api, nil },
		dial:   dialTCP,
	}
}

func dialTCP(ctx context.Context, address string) error {
	dialer := net.Dialer{Timeout: replayDialTimeout}

	conn, err := dialer.DialContext(ctx, "tcp", address)
	if err != nil {
		return err
	}

	return conn.Close()
}

// ImageExists implements SandboxAdapter.
func (d *DockerSandboxAdapter) ImageExists(ctx context.Context, ref string) (bool, error) {
	api, err := d.docker()
	if err != nil {
		return false, err
	}

	if _, err := api.ImageInspect(ctx, ref); err != nil {
		if cerrdefs.IsNotFound(err) {
			return false, nil
		}

		return false, fmt.Errorf("%w: inspect image %s: %w", m.ErrService, ref, err)
	}

	return true, nil
}

// Start implements SandboxAdapter.
func (d *DockerSandboxAdapter) Start(ctx context.Context, spec SandboxSpec) (Sandbox, error) {
	api, err := d.docker()
	if err != nil {
		return nil, err
	}

	if spec.KillClones {
		if err := d.killClones(ctx, api, spec.Image); err != nil {
			return nil, err
		}
	}

	name := "rocqtrace-" + uuid.NewString()[:8]

	config := &container.Config{
		Image: spec.Image,
		User:  spec.User,
		Cmd:   []string{"sleep", "infinity"},
	}
	if spec.Label != "" {
		config.Labels = map[string]string{SessionLabelKey: spec.Label}
	}

	created, err := api.ContainerCreate(ctx, config, &container.HostConfig{NetworkMode: "host"}, nil, nil, name)
	if err != nil {
		return nil, fmt.Errorf("%w: create container from %s: %w", m.ErrService, spec.Image, err)
	}

	if err := api.ContainerStart(ctx, created.ID, container.StartOptions{}); err != nil {
		if rmErr := api.ContainerRemove(ctx, created.ID, container.RemoveOptions{Force: true}); rmErr != nil {
			slog.Warn("failed to remove unstarted sandbox", "container", name, "error", rmErr)
		}

		return nil, fmt.Errorf("%w: start container from %s: %w", m.ErrService, spec.Image, err)
	}

	slog.Info("started sandbox", "container", name, "id", shortID(created.ID), "image", spec.Image, "label", spec.Label)

	return &dockerSandbox{adapter: d, api: api, id: created.ID, name: name}, nil
}

func (d *DockerSandboxAdapter) killClones(ctx context.Context, api DockerAPI, ref string) error {
	clones, err := api.ContainerList(ctx, container.ListOptions{
		Filters: filters.NewArgs(filters.Arg("ancestor", ref), filters.Arg("status", "running")),
	})
	if err != nil {
		return fmt.Errorf("%w: list clones of %s: %w", m.ErrService, ref, err)
	}

	if len(clones) == 0 {
		return nil
	}

	slog.Info("killing clone sandboxes", "image", ref, "count", len(clones))

	for _, clone := range clones {
		if err := api.ContainerKill(ctx, clone.ID, "KILL"); err != nil {
			return fmt.Errorf("%w: kill clone %s of %s: %w", m.ErrService, shortID(clone.ID), ref, err)
		}
	}

	return nil
}

// Prune implements SandboxAdapter.
func (d *DockerSandboxAdapter) Prune(ctx context.Context, label string) error {
	api, err := d.docker()
	if err != nil {
		return err
	}

	stale, err := api.ContainerList(ctx, container.ListOptions{
		All:     true,
		Filters: filters.NewArgs(filters.Arg("label", SessionLabelKey+"="+label)),
	})
	if err != nil {
		return fmt.Errorf("%w: list sandboxes: %w", m.ErrService, err)
	}

	if len(stale) == 0 {
		return nil
	}

	slog.Info("pruning sandboxes", "label", label, "count", len(stale))

	for _, c := range stale {
		if err := api.ContainerRemove(ctx, c.ID, container.RemoveOptions{Force: true}); err != nil {
			return fmt.Errorf("%w: remove sandbox %s: %w", m.ErrService, shortID(c.ID), err)
		}
	}

	return nil
}

type dockerSandbox struct {
	adapter *DockerSandboxAdapter
	api     DockerAPI
	id      string
	name    string
}

func (s *dockerSandbox) ID() string {
	return s.id
}

// run executes cmd in the container and copies its output streams. A non
// zero exit code is an error carrying the tail of stderr.
func (s *dockerSandbox) run(ctx context.Context, cmd []string, stdout, stderr io.Writer) error {
	created, err := s.api.ContainerExecCreate(ctx, s.id, container.ExecOptions{
		Cmd:          cmd,
		AttachStdout: true,
		AttachStderr: true,
	})
	if err != nil {
		return fmt.Errorf("create exec: %w", err)
	}

	attached, err := s.api.ContainerExecAttach(ctx, created.ID, container.ExecAttachOptions{})
	if err != nil {
		return fmt.Errorf("attach exec: %w", err)
	}
	defer attached.Close()

	stop := context.AfterFunc(ctx, attached.Close)
	defer stop()

	var errOut bytes.Buffer

	if _, err := stdcopy.StdCopy(stdout, io.MultiWriter(stderr, &errOut), attached.Reader); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		return fmt.Errorf("read exec output: %w", err)
	}

	inspect, err := s.api.ContainerExecInspect(ctx, created.ID)
	if err != nil {
		return fmt.Errorf("inspect exec: %w", err)
	}

	if inspect.ExitCode != 0 {
		return fmt.Errorf("%s exited with code %d: %s", cmd[0], inspect.ExitCode, strings.TrimSpace(errOut.String()))
	}

	return nil
}

func (s *dockerSandbox) Exec(ctx context.Context, script string) (string, error) {
	var out bytes.Buffer

	if err := s.run(ctx, []string{"sh", "-lc", script}, &out, io.Discard); err != nil {
		return out.String(), fmt.Errorf("%w: exec in %s: %w", m.ErrService, s.name, err)
	}

	return out.String(), nil
}

func (s *dockerSandbox) ExecStream(ctx context.Context, script string, out io.Writer) error {
	if err := s.run(ctx, []string{"sh", "-lc", script}, out, out); err != nil {
		return fmt.Errorf("%w: exec in %s: %w", m.ErrService, s.name, err)
	}

	return nil
}

func (s *dockerSandbox) ReadFile(ctx context.Context, path m.Path) (string, error) {
	var out bytes.Buffer

	if err := s.run(ctx, []string{"cat", "--", string(path)}, &out, io.Discard); err != nil {
		return "", fmt.Errorf("%w: read %s: %w", m.ErrService, path, err)
	}

	return out.String(), nil
}

func (s *dockerSandbox) StartReplayServer(ctx context.Context, port int, timeout time.Duration) error {
	launch := fmt.Sprintf("eval $(opam env) && nohup pet-server -p %d >%s 2>&1 & echo $! >%s",
		port, replayLogPath, replayPIDPath)
	if _, err := s.Exec(ctx, launch); err != nil {
		return err
	}

	address := net.JoinHostPort("127.0.0.1", strconv.Itoa(port))
	deadline := time.Now().Add(timeout)

	for {
		err := s.adapter.dial(ctx, address)
		if err == nil {
			slog.Info("replay server is up", "container", s.name, "address", address)
			return nil
		}

		if ctx.Err() != nil {
			return ctx.Err()
		}

		if time.Now().After(deadline) {
			break
		}

		time.Sleep(replayPollEvery)
	}

	logTail, _ := s.Exec(ctx, fmt.Sprintf("tail -n %d %s || true", replayLogTail, replayLogPath))

	return fmt.Errorf("%w: replay server did not start on port %d within %s\n%s",
		m.ErrService, port, timeout, strings.TrimSpace(logTail))
}

func (s *dockerSandbox) Commit(ctx context.Context, ref string) error {
	if _, err := s.api.ContainerCommit(ctx, s.id, container.CommitOptions{Reference: ref}); err != nil {
		return fmt.Errorf("%w: commit %s as %s: %w", m.ErrService, s.name, ref, err)
	}

	slog.Info("committed sandbox", "container", s.name, "image", ref)

	return nil
}

func (s *dockerSandbox) Close(ctx context.Context) error {
	if err := s.api.ContainerRemove(ctx, s.id, container.RemoveOptions{Force: true}); err != nil && !cerrdefs.IsNotFound(err) {
		return fmt.Errorf("%w: remove %s: %w", m.ErrService, s.name, err)
	}

	slog.Info("closed sandbox", "container", s.name)

	return nil
}

func shortID(id string) string {
	const shortLen = 12
	if len(id) > shortLen {
		return id[:shortLen]
	}

	return id
}
