// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 abac-authz Contributors

package expr_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/truong-ngo-dev/abac-authz/internal/authz/domain"
	"github.com/truong-ngo-dev/abac-authz/internal/authz/expr"
)

// stubPredicate lets tests drive every ExpressionResult branch, including
// indeterminate outcomes, without going through the real grammar.
type stubPredicate struct {
	results map[string]bool
	errs    map[string]error
	calls   []string
}

func (s *stubPredicate) Evaluate(_ *domain.EvaluationContext, body string) (bool, error) {
	s.calls = append(s.calls, body)
	if err, ok := s.errs[body]; ok {
		return false, err
	}
	return s.results[body], nil
}

func TestEvaluator_Literal(t *testing.T) {
	stub := &stubPredicate{results: map[string]bool{"a": true, "b": false}, errs: map[string]error{}}
	e := expr.New(stub)

	got := e.Evaluate(&domain.EvaluationContext{}, domain.Literal("l1", "", "a"))
	assert.Equal(t, domain.Match, got.Type)

	got2 := e.Evaluate(&domain.EvaluationContext{}, domain.Literal("l2", "", "b"))
	assert.Equal(t, domain.NoMatch, got2.Type)
}

func TestEvaluator_Literal_EmptyBodyIsIndeterminate(t *testing.T) {
	stub := &stubPredicate{}
	e := expr.New(stub)

	got := e.Evaluate(&domain.EvaluationContext{}, domain.Literal("l1", "", ""))
	require.Equal(t, domain.Indeterminate, got.Type)
	assert.Empty(t, stub.calls, "predicate should not be invoked for an empty body")
}

func TestEvaluator_Literal_PredicateErrorIsIndeterminate(t *testing.T) {
	stub := &stubPredicate{errs: map[string]error{"bad": errors.New("syntax")}}
	e := expr.New(stub)

	got := e.Evaluate(&domain.EvaluationContext{}, domain.Literal("l1", "", "bad"))
	require.Equal(t, domain.Indeterminate, got.Type)
	require.NotNil(t, got.Cause)
}

func TestEvaluator_Composition_NoShortCircuit(t *testing.T) {
	stub := &stubPredicate{errs: map[string]error{"bad1": errors.New("x"), "bad2": errors.New("y")}}
	e := expr.New(stub)

	expression := domain.Composition("c1", "", domain.CombinationAnd,
		domain.Literal("a", "", "bad1"),
		domain.Literal("b", "", "bad2"),
	)

	got := e.Evaluate(&domain.EvaluationContext{}, expression)
	require.Equal(t, domain.Indeterminate, got.Type)
	require.NotNil(t, got.Cause)
	assert.Len(t, got.Cause.Children, 2, "AND must evaluate every child before collapsing, so both indeterminate causes survive")
	assert.ElementsMatch(t, []string{"bad1", "bad2"}, stub.calls)
}

func TestEvaluator_Composition_And(t *testing.T) {
	stub := &stubPredicate{results: map[string]bool{"a": true, "b": false}}
	e := expr.New(stub)

	allTrue := domain.Composition("c1", "", domain.CombinationAnd, domain.Literal("l1", "", "a"), domain.Literal("l2", "", "a"))
	assert.Equal(t, domain.Match, e.Evaluate(&domain.EvaluationContext{}, allTrue).Type)

	oneFalse := domain.Composition("c2", "", domain.CombinationAnd, domain.Literal("l1", "", "a"), domain.Literal("l2", "", "b"))
	assert.Equal(t, domain.NoMatch, e.Evaluate(&domain.EvaluationContext{}, oneFalse).Type)
}

func TestEvaluator_Composition_Or(t *testing.T) {
	stub := &stubPredicate{results: map[string]bool{"a": true, "b": false}}
	e := expr.New(stub)

	oneTrue := domain.Composition("c1", "", domain.CombinationOr, domain.Literal("l1", "", "a"), domain.Literal("l2", "", "b"))
	assert.Equal(t, domain.Match, e.Evaluate(&domain.EvaluationContext{}, oneTrue).Type)

	allFalse := domain.Composition("c2", "", domain.CombinationOr, domain.Literal("l1", "", "b"), domain.Literal("l2", "", "b"))
	assert.Equal(t, domain.NoMatch, e.Evaluate(&domain.EvaluationContext{}, allFalse).Type)
}

func TestEvaluator_Composition_EmptyChildrenIsIndeterminate(t *testing.T) {
	e := expr.New(&stubPredicate{})
	empty := &domain.Expression{ID: "c1", Kind: domain.KindComposition, CombinationType: domain.CombinationAnd}
	got := e.Evaluate(&domain.EvaluationContext{}, empty)
	assert.Equal(t, domain.Indeterminate, got.Type)
}
