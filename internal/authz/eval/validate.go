// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 abac-authz Contributors

package eval

import (
	"github.com/samber/oops"

	"github.com/truong-ngo-dev/abac-authz/internal/authz/combine"
	"github.com/truong-ngo-dev/abac-authz/internal/authz/domain"
)

// ValidateTree walks root and resolves every combining algorithm named in
// it, failing fast on a configuration error (most notably: Only-One-
// Applicable named on a Policy's Rule list) before any request is
// evaluated. This is the fatal-error channel distinct from any evaluation
// outcome described in the failure-semantics component design.
func ValidateTree(root domain.Principle) error {
	switch v := root.(type) {
	case *domain.Policy:
		if _, err := combine.For(v.CombineAlgoName, true); err != nil {
			return oops.With("policy_id", v.ID).Wrapf(err, "validating policy %q", v.ID)
		}
		return nil
	case *domain.PolicySet:
		if _, err := combine.For(v.CombineAlgoName, false); err != nil {
			return oops.With("policy_set_id", v.ID).Wrapf(err, "validating policy set %q", v.ID)
		}
		for _, child := range v.Children {
			if err := ValidateTree(child); err != nil {
				return err
			}
		}
		return nil
	case *domain.Rule:
		return nil
	default:
		return oops.Errorf("unrecognized principle kind in policy tree")
	}
}
