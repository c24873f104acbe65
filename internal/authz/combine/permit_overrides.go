// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 abac-authz Contributors

package combine

import "github.com/truong-ngo-dev/abac-authz/internal/authz/domain"

// PermitOverrides returns PERMIT as soon as any child permits; otherwise
// it resolves the conflict/indeterminate precedence symmetric to
// DenyOverrides.
type PermitOverrides struct{}

func (PermitOverrides) Name() domain.CombineAlgorithmName { return domain.PermitOverrides }

func (PermitOverrides) Combine(children []domain.Principle, evaluate EvaluateFunc, _ ApplicableFunc) domain.EvalResult {
	var c collected
	for _, child := range children {
		r := evaluate(child)
		if r.Type == domain.Permit {
			return domain.PermitResult()
		}
		c.observe(r)
	}

	switch {
	case c.hasIndeterminateDP:
		return domain.IndeterminateEval(domain.IndeterminateDP, aggregateCause("Permit-Overrides combining result is indeterminate", c.causes))
	case c.hasIndeterminateP && (c.hasIndeterminateD || c.hasDeny):
		return domain.IndeterminateEval(domain.IndeterminateDP, aggregateCause("Permit-Overrides combining result is indeterminate", c.causes))
	case c.hasIndeterminateP:
		return domain.IndeterminateEval(domain.IndeterminateP, aggregateCause("Permit-Overrides combining result is indeterminate", c.causes))
	case c.hasDeny:
		return domain.DenyResult()
	case c.hasIndeterminateD:
		return domain.IndeterminateEval(domain.IndeterminateD, aggregateCause("Permit-Overrides combining result is indeterminate", c.causes))
	default:
		return domain.NotApplicableResult()
	}
}
