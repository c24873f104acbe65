// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 abac-authz Contributors

package combine

import "github.com/truong-ngo-dev/abac-authz/internal/authz/domain"

// DenyUnlessPermit permits iff any child permits; every other outcome,
// including every indeterminate variant, collapses to DENY. This
// algorithm never produces an indeterminate result of its own.
type DenyUnlessPermit struct{}

func (DenyUnlessPermit) Name() domain.CombineAlgorithmName { return domain.DenyUnlessPermit }

func (DenyUnlessPermit) Combine(children []domain.Principle, evaluate EvaluateFunc, _ ApplicableFunc) domain.EvalResult {
	for _, child := range children {
		if evaluate(child).Type == domain.Permit {
			return domain.PermitResult()
		}
	}
	return domain.DenyResult()
}
