package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net"
	"strconv"
	"time"

	"github.com/sourcegraph/jsonrpc2"

	m "rocqtrace.dev/pkg/rocqtrace/internal/model"
)

// Petanque method names.
const (
	methodStart = "petanque/start"
	methodRun   = "petanque/run"
	methodGoals = "petanque/goals"
	methodAST   = "petanque/ast"
	methodTOC   = "petanque/toc"
)

// FeedbackInfo is the level of informational messages such as the output
// of About or Locate.
const FeedbackInfo = 3

// ReplayDialer opens connections to one replay server.
type ReplayDialer interface {
	Dial(ctx context.Context) (ReplayConn, error)
	Address() string
}

// DialerFactory returns the dialer of the replay server listening on port.
type DialerFactory func(port int) ReplayDialer

// ReplayConn is one connection to the replay server. A connection is used by
// a single caller at a time.
type ReplayConn interface {
	// Start opens the proof of theorem in the file at path.
	Start(ctx context.Context, path m.Path, theorem string) (ReplayState, error)
	// Run executes a command in state st. A positive timeout is forwarded to
	// the server.
	Run(ctx context.Context, st ReplayState, command string, timeout time.Duration) (ReplayState, error)
	// Goals returns the open goals of st, each as the raw server object.
	Goals(ctx context.Context, st ReplayState) ([]json.RawMessage, error)
	// AST parses text in the context of st. It returns nil when the text
	// has no syntax tree.
	AST(ctx context.Context, st ReplayState, text string) (json.RawMessage, error)
	// TOC returns the table of contents of the file at path.
	TOC(ctx context.Context, path m.Path) ([]TOCEntry, error)
	Close() error
}

// Feedback is one message attached to a state.
type Feedback struct {
	Level   int
	Message string
}

// UnmarshalJSON decodes the [level, message] pair sent by the server.
func (f *Feedback) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}

	if len(pair) != 2 {
		return fmt.Errorf("feedback has %d elements, want 2", len(pair))
	}

	if err := json.Unmarshal(pair[0], &f.Level); err != nil {
		return err
	}

	return json.Unmarshal(pair[1], &f.Message)
}

// MarshalJSON encodes f as a [level, message] pair.
func (f Feedback) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{f.Level, f.Message})
}

// ReplayState is a handle on a proof state kept by the server.
type ReplayState struct {
	ID            int
	ProofFinished bool
	Feedback      []Feedback
}

type replayStateObject struct {
	ST            int        `json:"st"`
	ProofFinished bool       `json:"proof_finished"`
	Feedback      []Feedback `json:"feedback"`
}

// UnmarshalJSON accepts both a bare state number and a state object.
func (s *ReplayState) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] != '{' {
		return json.Unmarshal(data, &s.ID)
	}

	var obj replayStateObject
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}

	*s = ReplayState{ID: obj.ST, ProofFinished: obj.ProofFinished, Feedback: obj.Feedback}

	return nil
}

// TOCDetail describes one declaration of a table of contents entry.
type TOCDetail struct {
	Detail string  `json:"detail"`
	Range  m.Range `json:"range"`
}

// TOCEntry is a named entry of a table of contents.
type TOCEntry struct {
	Name    string
	Details []TOCDetail
}

// UnmarshalJSON decodes the [name, [detail...]] pair sent by the server.
func (e *TOCEntry) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}

	if len(pair) != 2 {
		return fmt.Errorf("toc entry has %d elements, want 2", len(pair))
	}

	if err := json.Unmarshal(pair[0], &e.Name); err != nil {
		return err
	}

	return json.Unmarshal(pair[1], &e.Details)
}

// PetanqueDialer dials a petanque server over TCP.
type PetanqueDialer struct {
	address string
	timeout time.Duration
}

// NewPetanqueDialer returns a dialer for the server on the local port.
func NewPetanqueDialer(port int) ReplayDialer {
	return &PetanqueDialer{
		address: net.JoinHostPort("127.0.0.1", strconv.Itoa(port)),
		timeout: 5 * time.Second,
	}
}

// Address implements ReplayDialer.
func (d *PetanqueDialer) Address() string {
	return d.address
}

// Dial implements ReplayDialer.
func (d *PetanqueDialer) Dial(ctx context.Context) (ReplayConn, error) {
	dialer := net.Dialer{Timeout: d.timeout}

	conn, err := dialer.DialContext(ctx, "tcp", d.address)
	if err != nil {
		return nil, fmt.Errorf("%w: dial %s: %w", m.ErrService, d.address, err)
	}

	return newPetanqueConn(ctx, conn), nil
}

// petanqueConn speaks JSON-RPC 2.0 with one JSON object per line.
type petanqueConn struct {
	rpc *jsonrpc2.Conn
}

func newPetanqueConn(ctx context.Context, conn net.Conn) *petanqueConn {
	rpc := jsonrpc2.NewConn(context.WithoutCancel(ctx), jsonrpc2.NewPlainObjectStream(conn), serverMessages{})

	return &petanqueConn{rpc: rpc}
}

// serverMessages handles what the server sends on its own. Notifications
// are logged; requests are refused.
type serverMessages struct{}

func (serverMessages) Handle(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	if req.Notif {
		slog.Debug("skipping replay notification", "method", req.Method)
		return
	}

	err := conn.ReplyWithError(ctx, req.ID, &jsonrpc2.Error{
		Code:    jsonrpc2.CodeMethodNotFound,
		Message: "client handles no requests",
	})
	if err != nil {
		slog.Warn("failed to refuse server request", "method", req.Method, "error", err)
	}
}

func fileURI(path m.Path) string {
	return "file://" + string(path)
}

func (c *petanqueConn) Start(ctx context.Context, path m.Path, theorem string) (ReplayState, error) {
	var st ReplayState

	err := c.call(ctx, methodStart, map[string]any{"uri": fileURI(path), "thm": theorem}, &st)

	return st, err
}

func (c *petanqueConn) Run(ctx context.Context, st ReplayState, command string, timeout time.Duration) (ReplayState, error) {
	params := map[string]any{"st": st.ID, "tac": command}
	if timeout > 0 {
		params["opts"] = map[string]any{"timeout": int(math.Ceil(timeout.Seconds()))}
	}

	var next ReplayState

	err := c.call(ctx, methodRun, params, &next)

	return next, err
}

func (c *petanqueConn) Goals(ctx context.Context, st ReplayState) ([]json.RawMessage, error) {
	var result struct {
		Goals []json.RawMessage `json:"goals"`
	}

	if err := c.call(ctx, methodGoals, map[string]any{"st": st.ID}, &result); err != nil {
		return nil, err
	}

	if result.Goals == nil {
		return []json.RawMessage{}, nil
	}

	return result.Goals, nil
}

func (c *petanqueConn) AST(ctx context.Context, st ReplayState, text string) (json.RawMessage, error) {
	var result json.RawMessage

	if err := c.call(ctx, methodAST, map[string]any{"st": st.ID, "text": text}, &result); err != nil {
		return nil, err
	}

	if len(result) == 0 || string(result) == "null" {
		return nil, nil
	}

	return result, nil
}

func (c *petanqueConn) TOC(ctx context.Context, path m.Path) ([]TOCEntry, error) {
	var entries []TOCEntry

	err := c.call(ctx, methodTOC, map[string]any{"uri": fileURI(path)}, &entries)

	return entries, err
}

func (c *petanqueConn) Close() error {
	if err := c.rpc.Close(); err != nil && !errors.Is(err, jsonrpc2.ErrClosed) {
		return err
	}

	return nil
}

// call sends one request and waits for its response or for ctx to end.
func (c *petanqueConn) call(ctx context.Context, method string, params any, result any) error {
	err := c.rpc.Call(ctx, method, params, result)
	if err == nil {
		return nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("%s: %w", method, ctxErr)
	}

	var rpcErr *jsonrpc2.Error
	if errors.As(err, &rpcErr) {
		return fmt.Errorf("%w: %s: %w", m.ErrService, method, rpcErr)
	}

	if errors.Is(err, jsonrpc2.ErrClosed) {
		return fmt.Errorf("%w: %s: connection closed: %w", m.ErrService, method, err)
	}

	return fmt.Errorf("%w: %s: %w", m.ErrService, method, err)
}
