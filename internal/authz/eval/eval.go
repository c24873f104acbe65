// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 abac-authz Contributors

package eval

import (
	"github.com/truong-ngo-dev/abac-authz/internal/authz/cause"
	"github.com/truong-ngo-dev/abac-authz/internal/authz/domain"
	"github.com/truong-ngo-dev/abac-authz/internal/authz/expr"
)

// Evaluator is the pure, synchronous evaluation recursion: no locks, no
// channels, no I/O. It depends only on an expression evaluator, itself
// depending only on an injected predicate.Predicate — nothing in this
// package or its dependencies touches audit logging or metrics.
type Evaluator struct {
	expr *expr.Evaluator
}

// New constructs an Evaluator backed by the given expression evaluator.
func New(exprEvaluator *expr.Evaluator) *Evaluator {
	return &Evaluator{expr: exprEvaluator}
}

// Evaluate dispatches a principle to the rule evaluator or the
// policy/policy-set evaluator, by a type switch rather than reflection,
// per the polymorphic-principle design note.
func (e *Evaluator) Evaluate(ctx *domain.EvaluationContext, p domain.Principle) domain.EvalResult {
	switch v := p.(type) {
	case *domain.Rule:
		return e.evaluateRule(ctx, v, v.ID, v.Condition, v.Effect)
	case *EffectiveRule:
		return e.evaluateRule(ctx, v, v.Rule.ID, v.Rule.Condition, v.Rule.Effect)
	case *domain.Policy:
		return e.evaluatePolicy(ctx, v)
	case *domain.PolicySet:
		return e.evaluatePolicySet(ctx, v)
	default:
		return domain.IndeterminateEval(domain.IndeterminateResultT, cause.New(cause.CodeProcessingError, "unrecognized principle kind"))
	}
}
