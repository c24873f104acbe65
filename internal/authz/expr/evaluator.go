// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 abac-authz Contributors

// Package expr implements the three-valued expression evaluator: literal
// predicates and AND/OR compositions over the evaluation context.
package expr

import (
	"github.com/truong-ngo-dev/abac-authz/internal/authz/cause"
	"github.com/truong-ngo-dev/abac-authz/internal/authz/domain"
	"github.com/truong-ngo-dev/abac-authz/internal/authz/predicate"
)

// Evaluator evaluates Expression trees. It depends on an injected
// predicate.Predicate rather than any process-wide registry, so the XACML
// algebra can be exercised against a trivial mock language in tests.
type Evaluator struct {
	pred predicate.Predicate
}

// New constructs an Evaluator backed by pred.
func New(pred predicate.Predicate) *Evaluator {
	return &Evaluator{pred: pred}
}

// Evaluate implements the algorithm in the expression-evaluator component
// design: a literal predicate resolves via the injected Predicate; a
// composition evaluates every child (no short-circuit) before collapsing,
// so complete indeterminate provenance survives into the aggregate cause.
func (e *Evaluator) Evaluate(ctx *domain.EvaluationContext, expression *domain.Expression) domain.ExpressionResult {
	switch expression.Kind {
	case domain.KindLiteral:
		return e.evalLiteral(ctx, expression)
	case domain.KindComposition:
		return e.evalComposition(ctx, expression)
	default:
		return domain.IndeterminateResult(cause.New(cause.CodeSyntaxError, "Expression has unknown kind"))
	}
}

func (e *Evaluator) evalLiteral(ctx *domain.EvaluationContext, expression *domain.Expression) domain.ExpressionResult {
	if expression.Body == "" {
		return domain.IndeterminateResult(cause.New(cause.CodeSyntaxError, "Expression is null"))
	}
	matched, err := e.pred.Evaluate(ctx, expression.Body)
	if err != nil {
		return domain.IndeterminateResult(cause.New(cause.CodeSyntaxError, "Expression is invalid").WithContent(err.Error()))
	}
	return domain.MatchResult(matched)
}

func (e *Evaluator) evalComposition(ctx *domain.EvaluationContext, expression *domain.Expression) domain.ExpressionResult {
	if len(expression.Children) == 0 {
		return domain.IndeterminateResult(cause.New(cause.CodeSyntaxError, "Sub expression is empty"))
	}

	results := make([]domain.ExpressionResult, len(expression.Children))
	for i, child := range expression.Children {
		results[i] = e.Evaluate(ctx, child)
	}

	var causes []*cause.Cause
	hasMatch, hasNoMatch := false, false
	for _, r := range results {
		switch r.Type {
		case domain.Match:
			hasMatch = true
		case domain.NoMatch:
			hasNoMatch = true
		case domain.Indeterminate:
			causes = append(causes, r.Cause)
		}
	}

	switch expression.CombinationType {
	case domain.CombinationAnd:
		if hasNoMatch {
			return domain.MatchResult(false)
		}
		if len(causes) > 0 {
			return domain.IndeterminateResult(cause.Aggregate("AND composition could not be fully evaluated", causes))
		}
		return domain.MatchResult(true)
	case domain.CombinationOr:
		if hasMatch {
			return domain.MatchResult(true)
		}
		if len(causes) > 0 {
			return domain.IndeterminateResult(cause.Aggregate("OR composition could not be fully evaluated", causes))
		}
		return domain.MatchResult(false)
	default:
		return domain.IndeterminateResult(cause.New(cause.CodeSyntaxError, "Composition has unknown combination type"))
	}
}
