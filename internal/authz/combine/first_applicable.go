// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 abac-authz Contributors

package combine

import (
	"github.com/truong-ngo-dev/abac-authz/internal/authz/cause"
	"github.com/truong-ngo-dev/abac-authz/internal/authz/domain"
)

// FirstApplicable returns PERMIT or DENY when the first child that is not
// NOT_APPLICABLE has that result; when that child is indeterminate (any
// variant), it returns a fresh plain INDETERMINATE result.
//
// Deviation (preserved deliberately, not a bug): when that first
// applicable result is indeterminate, the cause aggregates the
// indeterminate causes of every evaluated child, not only those
// preceding the first applicable one. A strict reading of the algorithm
// would limit the cause to children up to and including the first
// applicable one; the reference behaviour this is grounded on does not,
// and that behaviour is preserved here rather than "fixed".
type FirstApplicable struct{}

func (FirstApplicable) Name() domain.CombineAlgorithmName { return domain.FirstApplicable }

func (FirstApplicable) Combine(children []domain.Principle, evaluate EvaluateFunc, _ ApplicableFunc) domain.EvalResult {
	results := make([]domain.EvalResult, len(children))
	for i, child := range children {
		results[i] = evaluate(child)
	}

	firstIdx := -1
	for i, r := range results {
		if r.Type != domain.NotApplicable {
			firstIdx = i
			break
		}
	}
	if firstIdx == -1 {
		return domain.NotApplicableResult()
	}

	switch results[firstIdx].Type {
	case domain.Permit:
		return domain.PermitResult()
	case domain.Deny:
		return domain.DenyResult()
	default:
		return domain.IndeterminateEval(domain.IndeterminateResultT, aggregateCause("First-Applicable combining result is indeterminate", collectAllCauses(results)))
	}
}

func collectAllCauses(results []domain.EvalResult) []*cause.Cause {
	var causes []*cause.Cause
	for _, r := range results {
		if r.IsIndeterminate() {
			causes = append(causes, r.Cause)
		}
	}
	return causes
}
