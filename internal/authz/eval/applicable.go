// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 abac-authz Contributors

// Package eval implements principle applicability, the rule evaluator, the
// policy/policy-set evaluator, and the non-mutating target-inheritance
// view, wiring the pure recursion described by the policy-evaluator and
// combining-algorithm component designs together.
package eval

import (
	"github.com/truong-ngo-dev/abac-authz/internal/authz/cause"
	"github.com/truong-ngo-dev/abac-authz/internal/authz/domain"
)

// isApplicable evaluates a principle's target. A nil target is MATCH by
// definition; an indeterminate target has its cause's description
// overwritten with the default "Target with id <id> has <code>" form,
// matching the component design's "attach a default description to the
// top cause" rule. The underlying cause is never mutated in place — a new
// Cause with the same code/content/children is constructed.
func (e *Evaluator) isApplicable(ctx *domain.EvaluationContext, p domain.Principle) domain.ExpressionResult {
	target := p.PrincipleTarget()
	if target == nil {
		return domain.MatchResult(true)
	}
	result := e.expr.Evaluate(ctx, target)
	if result.Type != domain.Indeterminate {
		return result
	}
	return domain.IndeterminateResult(withDefaultDescription("Target", target.ID, result.Cause))
}

// evalCondition evaluates a rule's condition expression (nil means MATCH),
// applying the analogous "Condition with id <id> has <code>" default
// description on an indeterminate outcome.
func (e *Evaluator) evalCondition(ctx *domain.EvaluationContext, condition *domain.Expression) domain.ExpressionResult {
	if condition == nil {
		return domain.MatchResult(true)
	}
	result := e.expr.Evaluate(ctx, condition)
	if result.Type != domain.Indeterminate {
		return result
	}
	return domain.IndeterminateResult(withDefaultDescription("Condition", condition.ID, result.Cause))
}

func withDefaultDescription(kind, id string, c *cause.Cause) *cause.Cause {
	return &cause.Cause{
		Code:        c.Code,
		Description: cause.DefaultDescription(kind, id, c.Code),
		Content:     c.Content,
		Children:    c.Children,
	}
}
