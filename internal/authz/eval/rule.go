// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 abac-authz Contributors

package eval

import (
	"github.com/truong-ngo-dev/abac-authz/internal/authz/cause"
	"github.com/truong-ngo-dev/abac-authz/internal/authz/domain"
)

// evaluateRule implements the rule-evaluator truth table: target result T
// (isApplicable on p, which already carries the effective/inherited
// target when p is an *EffectiveRule), then condition result C.
func (e *Evaluator) evaluateRule(ctx *domain.EvaluationContext, p domain.Principle, id string, condition *domain.Expression, effect domain.Effect) domain.EvalResult {
	t := e.isApplicable(ctx, p)
	switch t.Type {
	case domain.NoMatch:
		return domain.NotApplicableResult()
	case domain.Indeterminate:
		return domain.IndeterminateEval(indeterminateVariant(effect), cause.Wrap("Rule", id, t.Cause))
	}

	c := e.evalCondition(ctx, condition)
	switch c.Type {
	case domain.Match:
		if effect == domain.EffectPermit {
			return domain.PermitResult()
		}
		return domain.DenyResult()
	case domain.NoMatch:
		return domain.NotApplicableResult()
	default: // Indeterminate
		return domain.IndeterminateEval(indeterminateVariant(effect), cause.Wrap("Rule", id, c.Cause))
	}
}

// indeterminateVariant picks IND_P or IND_D depending on the rule's
// effect, per the rule-evaluator component design.
func indeterminateVariant(effect domain.Effect) domain.EvalResultType {
	if effect == domain.EffectDeny {
		return domain.IndeterminateD
	}
	return domain.IndeterminateP
}
