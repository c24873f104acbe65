// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 abac-authz Contributors

package combine

import "github.com/truong-ngo-dev/abac-authz/internal/authz/domain"

// PermitUnlessDeny denies iff any child denies; every other outcome,
// including every indeterminate variant, collapses to PERMIT.
type PermitUnlessDeny struct{}

func (PermitUnlessDeny) Name() domain.CombineAlgorithmName { return domain.PermitUnlessDeny }

func (PermitUnlessDeny) Combine(children []domain.Principle, evaluate EvaluateFunc, _ ApplicableFunc) domain.EvalResult {
	for _, child := range children {
		if evaluate(child).Type == domain.Deny {
			return domain.DenyResult()
		}
	}
	return domain.PermitResult()
}
