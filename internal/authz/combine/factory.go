// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 abac-authz Contributors

package combine

import (
	"github.com/samber/oops"

	"github.com/truong-ngo-dev/abac-authz/internal/authz/domain"
)

// For resolves a combining algorithm by its stable identifier. forRules
// must be true when the algorithm will combine a Policy's Rule list and
// false when it will combine a PolicySet's Policy/PolicySet list.
//
// Requesting Only-One-Applicable for a Rule list is a configuration error,
// not an evaluation outcome: it is rejected here, at construction time,
// before any request reaches the evaluator.
func For(name domain.CombineAlgorithmName, forRules bool) (Algorithm, error) {
	switch name {
	case domain.DenyOverrides:
		return DenyOverrides{}, nil
	case domain.PermitOverrides:
		return PermitOverrides{}, nil
	case domain.DenyUnlessPermit:
		return DenyUnlessPermit{}, nil
	case domain.PermitUnlessDeny:
		return PermitUnlessDeny{}, nil
	case domain.FirstApplicable:
		return FirstApplicable{}, nil
	case domain.OnlyOneApplicable:
		if forRules {
			return nil, oops.Code("ONLY_ONE_APPLICABLE_INVALID_TARGET").
				Errorf("only-one-applicable cannot combine a Rule list; it is valid only over Policy/PolicySet children")
		}
		return OnlyOneApplicable{}, nil
	default:
		return nil, oops.Code("UNKNOWN_COMBINE_ALGORITHM").Errorf("unknown combining algorithm %q", name)
	}
}
