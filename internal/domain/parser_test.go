package domain_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"rocqtrace.dev/pkg/rocqtrace/internal/adapter"
	adaptermocks "rocqtrace.dev/pkg/rocqtrace/internal/adapter/mocks"
	"rocqtrace.dev/pkg/rocqtrace/internal/domain"
	m "rocqtrace.dev/pkg/rocqtrace/internal/model"
)

const actuarySource = "Require Import Arith.\n" +
	"Lemma add0 : forall n, n + 0 = n.\n" +
	"Proof. intros n. auto. Qed.\n" +
	"Definition two := 2.\n" +
	"Theorem t : True.\n" +
	"Proof. exact I. Qed.\n"

func actuary() m.Source {
	return m.Source{Path: "/lib/Actuary/A.v", Content: actuarySource}
}

func span(startLine, startChar, endLine, endChar int) m.Range {
	return m.Range{
		Start: m.Position{Line: startLine, Character: startChar},
		End:   m.Position{Line: endLine, Character: endChar},
	}
}

func connDialer(conn adapter.ReplayConn) *adaptermocks.MockReplayDialer {
	dialer := new(adaptermocks.MockReplayDialer)
	dialer.EXPECT().Dial(mock.Anything).Return(conn, nil)

	return dialer
}

func info(message string) []adapter.Feedback {
	return []adapter.Feedback{{Level: adapter.FeedbackInfo, Message: message}}
}

func TestParser_ExtractTOC(t *testing.T) {
	conn := new(adaptermocks.MockReplayConn)
	conn.EXPECT().TOC(mock.Anything, m.Path("/lib/Actuary/A.v")).Return([]adapter.TOCEntry{
		{Name: "add0", Details: []adapter.TOCDetail{{Detail: "Lemma", Range: span(1, 0, 1, 33)}}},
		{Name: "two", Details: []adapter.TOCDetail{{Detail: "Definition", Range: span(3, 0, 3, 20)}}},
		{Name: "empty"},
		{Name: "t", Details: []adapter.TOCDetail{{Detail: "Lemma", Range: span(0, 0, 0, 1)}, {Detail: "Theorem", Range: span(4, 0, 4, 17)}}},
		{Name: "ghost", Details: []adapter.TOCDetail{{Detail: "Theorem", Range: span(40, 0, 41, 2)}}},
	}, nil)
	conn.EXPECT().Close().Return(nil)

	theorems, err := domain.NewParser(time.Second).ExtractTOC(context.Background(), connDialer(conn), actuary())
	require.NoError(t, err)

	require.Len(t, theorems, 3)
	assert.Equal(t, m.Element{
		Origin:    "/lib/Actuary/A.v",
		Name:      "add0",
		Statement: "Lemma add0 : forall n, n + 0 = n.",
		Range:     span(1, 0, 1, 33),
	}, theorems[0])
	assert.Equal(t, "Theorem t : True.", theorems[1].Statement)
	assert.Empty(t, theorems[2].Statement, "a range past the end degrades to an empty statement")

	conn.AssertExpectations(t)
}

func TestParser_ExtractTOC_ServiceError(t *testing.T) {
	conn := new(adaptermocks.MockReplayConn)
	conn.EXPECT().TOC(mock.Anything, mock.Anything).Return(nil, m.ErrService)
	conn.EXPECT().Close().Return(nil)

	_, err := domain.NewParser(time.Second).ExtractTOC(context.Background(), connDialer(conn), actuary())
	require.ErrorIs(t, err, m.ErrService)
}

func TestParser_ExtractDependencies(t *testing.T) {
	theorems := []m.Element{{Name: "broken"}, {Name: "add0"}}
	st := adapter.ReplayState{ID: 7}

	conn := new(adaptermocks.MockReplayConn)
	conn.EXPECT().Start(mock.Anything, m.Path("/lib/Actuary/A.v"), "broken").Return(adapter.ReplayState{}, m.ErrService)
	conn.EXPECT().Start(mock.Anything, m.Path("/lib/Actuary/A.v"), "add0").Return(st, nil)
	conn.EXPECT().Run(mock.Anything, st, "Print LoadPath.", time.Duration(0)).
		Return(adapter.ReplayState{ID: 8, Feedback: info("Coq /lib/coq/theories\nActuary /lib/Actuary")}, nil)
	conn.EXPECT().Run(mock.Anything, st, "Locate Arith.", time.Duration(0)).
		Return(adapter.ReplayState{ID: 9, Feedback: info("Module Coq.Arith.Arith")}, nil)
	conn.EXPECT().Close().Return(nil)

	loadPath, dependencies, err := domain.NewParser(time.Second).ExtractDependencies(context.Background(), connDialer(conn), actuary(), theorems)
	require.NoError(t, err)

	assert.Equal(t, m.LoadPath{"Coq": "/lib/coq/theories", "Actuary": "/lib/Actuary"}, loadPath)

	requireSpan := span(0, 0, 0, 21)
	assert.Equal(t, []m.Dependency{{Origin: "Arith", Name: "Coq.Arith.Arith", Range: &requireSpan, Kind: m.DependencyModule}}, dependencies)

	conn.AssertExpectations(t)
}

func TestParser_ExtractDependencies_Failures(t *testing.T) {
	t.Run("no theorem starts", func(t *testing.T) {
		conn := new(adaptermocks.MockReplayConn)
		conn.EXPECT().Start(mock.Anything, mock.Anything, mock.Anything).Return(adapter.ReplayState{}, m.ErrService)
		conn.EXPECT().Close().Return(nil)

		theorems := make([]m.Element, 12)
		_, _, err := domain.NewParser(time.Second).ExtractDependencies(context.Background(), connDialer(conn), actuary(), theorems)
		require.ErrorIs(t, err, m.ErrService)
		conn.AssertNumberOfCalls(t, "Start", 10)
	})

	t.Run("ambiguous answer", func(t *testing.T) {
		conn := new(adaptermocks.MockReplayConn)
		conn.EXPECT().Start(mock.Anything, mock.Anything, mock.Anything).Return(adapter.ReplayState{ID: 1}, nil)
		conn.EXPECT().Run(mock.Anything, mock.Anything, "Print LoadPath.", mock.Anything).
			Return(adapter.ReplayState{Feedback: append(info("a"), info("b")...)}, nil)
		conn.EXPECT().Close().Return(nil)

		_, _, err := domain.NewParser(time.Second).ExtractDependencies(context.Background(), connDialer(conn), actuary(), []m.Element{{Name: "add0"}})
		require.ErrorIs(t, err, m.ErrService)
	})
}

func TestParser_Replay(t *testing.T) {
	theorem := m.Element{Name: "t", Range: span(4, 0, 4, 17)}
	open := json.RawMessage(`{"ty":"True","hyps":[]}`)

	s0 := adapter.ReplayState{ID: 1}
	s1 := adapter.ReplayState{ID: 2}
	s2 := adapter.ReplayState{ID: 3, ProofFinished: true}
	s3 := adapter.ReplayState{ID: 4, ProofFinished: true}

	conn := new(adaptermocks.MockReplayConn)
	conn.EXPECT().Start(mock.Anything, m.Path("/lib/Actuary/A.v"), "t").Return(s0, nil)
	conn.EXPECT().Goals(mock.Anything, s0).Return([]json.RawMessage{open}, nil)

	conn.EXPECT().AST(mock.Anything, s0, "Proof.").Return(nil, nil)
	conn.EXPECT().Run(mock.Anything, s0, "Proof.", 30*time.Second).Return(s1, nil)
	conn.EXPECT().Goals(mock.Anything, s1).Return([]json.RawMessage{open}, nil)

	ast := json.RawMessage(`{"v":{"expr":["VernacExtend",["Ser_Qualid",["DirPath",[]],["Id","I"]]]}}`)
	conn.EXPECT().AST(mock.Anything, s1, "exact I.").Return(ast, nil)
	conn.EXPECT().Run(mock.Anything, s1, "About I.", time.Duration(0)).
		Return(adapter.ReplayState{Feedback: info("I : True\nDeclared in library Coq.Init.Logic, line 22, characters 2-3")}, nil)
	conn.EXPECT().Run(mock.Anything, s1, "exact I.", 30*time.Second).Return(s2, nil)
	conn.EXPECT().Goals(mock.Anything, s2).Return([]json.RawMessage{}, nil)

	conn.EXPECT().AST(mock.Anything, s2, "Qed.").Return(nil, nil)
	conn.EXPECT().Run(mock.Anything, s2, "Qed.", 30*time.Second).Return(s3, nil)
	conn.EXPECT().Goals(mock.Anything, s3).Return([]json.RawMessage{}, nil)
	conn.EXPECT().Close().Return(nil)

	steps, err := domain.NewParser(30*time.Second).Replay(context.Background(), connDialer(conn), theorem, nil, actuary())
	require.NoError(t, err)
	require.Len(t, steps, 3)

	assert.Equal(t, "Proof.", steps[0].Step)
	assert.Equal(t, span(5, 0, 5, 6), steps[0].Range)
	assert.JSONEq(t, `[{"ty":"True","hyps":[]}]`, string(steps[0].StateIn))
	assert.Empty(t, steps[0].Dependencies)

	assert.Equal(t, "exact I.", steps[1].Step)
	assert.JSONEq(t, `[]`, string(steps[1].StateOut))
	require.Len(t, steps[1].Dependencies, 1)
	assert.Equal(t, "Coq.Init.Logic", steps[1].Dependencies[0].Origin)
	assert.Equal(t, m.DependencyPremise, steps[1].Dependencies[0].Kind)

	assert.Equal(t, "Qed.", steps[2].Step)

	conn.AssertExpectations(t)
}

func TestParser_Replay_Incomplete(t *testing.T) {
	theorem := m.Element{Name: "t", Range: span(4, 0, 4, 17)}
	goal := json.RawMessage(`{"ty":"True"}`)

	conn := new(adaptermocks.MockReplayConn)
	conn.EXPECT().Start(mock.Anything, mock.Anything, "t").Return(adapter.ReplayState{ID: 1}, nil)
	conn.EXPECT().Goals(mock.Anything, mock.Anything).Return([]json.RawMessage{goal}, nil)
	conn.EXPECT().AST(mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)
	conn.EXPECT().Run(mock.Anything, mock.Anything, mock.Anything, time.Second).Return(adapter.ReplayState{ID: 2}, nil)
	conn.EXPECT().Close().Return(nil)

	_, err := domain.NewParser(time.Second).Replay(context.Background(), connDialer(conn), theorem, nil, actuary())
	require.ErrorIs(t, err, m.ErrExtraction)
	assert.Contains(t, err.Error(), "incomplete")
}

func TestParser_Replay_MissingTerminator(t *testing.T) {
	source := m.Source{Path: "/lib/B.v", Content: "Lemma b : True.\nProof. exact I.\n"}
	theorem := m.Element{Name: "b", Range: span(0, 0, 0, 15)}

	dialer := new(adaptermocks.MockReplayDialer)

	_, err := domain.NewParser(time.Second).Replay(context.Background(), dialer, theorem, nil, source)
	require.ErrorIs(t, err, domain.ErrMissingTerminator)
	assert.Equal(t, m.FailureExtraction, m.Classify(err))
	dialer.AssertNotCalled(t, "Dial", mock.Anything)
}

func TestParser_Replay_DialFailure(t *testing.T) {
	dialer := new(adaptermocks.MockReplayDialer)
	dialer.EXPECT().Dial(mock.Anything).Return(nil, errors.New("connection refused"))

	theorem := m.Element{Name: "t", Range: span(4, 0, 4, 17)}

	_, err := domain.NewParser(time.Second).Replay(context.Background(), dialer, theorem, nil, actuary())
	require.Error(t, err)
	assert.Equal(t, m.FailureTransient, m.Classify(err))
}
