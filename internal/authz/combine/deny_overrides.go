// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 abac-authz Contributors

package combine

import "github.com/truong-ngo-dev/abac-authz/internal/authz/domain"

// DenyOverrides returns DENY as soon as any child denies; otherwise it
// resolves the conflict/indeterminate precedence described in the
// combining-algorithm component design.
type DenyOverrides struct{}

func (DenyOverrides) Name() domain.CombineAlgorithmName { return domain.DenyOverrides }

func (DenyOverrides) Combine(children []domain.Principle, evaluate EvaluateFunc, _ ApplicableFunc) domain.EvalResult {
	var c collected
	for _, child := range children {
		r := evaluate(child)
		if r.Type == domain.Deny {
			return domain.DenyResult()
		}
		c.observe(r)
	}

	switch {
	case c.hasIndeterminateDP:
		return domain.IndeterminateEval(domain.IndeterminateDP, aggregateCause("Deny-Overrides combining result is indeterminate", c.causes))
	case c.hasIndeterminateD && (c.hasIndeterminateP || c.hasPermit):
		return domain.IndeterminateEval(domain.IndeterminateDP, aggregateCause("Deny-Overrides combining result is indeterminate", c.causes))
	case c.hasIndeterminateD:
		return domain.IndeterminateEval(domain.IndeterminateD, aggregateCause("Deny-Overrides combining result is indeterminate", c.causes))
	case c.hasPermit:
		return domain.PermitResult()
	case c.hasIndeterminateP:
		return domain.IndeterminateEval(domain.IndeterminateP, aggregateCause("Deny-Overrides combining result is indeterminate", c.causes))
	default:
		return domain.NotApplicableResult()
	}
}
