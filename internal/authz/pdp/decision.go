// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 abac-authz Contributors

package pdp

import "github.com/truong-ngo-dev/abac-authz/internal/authz/domain"

// Decision is the binary outcome a Strategy reduces an EvalResult to.
type Decision string

// The two possible decisions.
const (
	DecisionPermit Decision = "PERMIT"
	DecisionDeny   Decision = "DENY"
)

// AuthzDecision is the boundary output of the PDP: exactly three fields.
// Details is a cause-tree object when Decision resulted from an
// indeterminate EvalResult, the short string "No policy applicable" when
// it resulted from NOT_APPLICABLE, and nil otherwise.
type AuthzDecision struct {
	Decision  Decision
	Timestamp int64 // milliseconds since epoch, captured at construction
	Details   any
}

func detailsFor(result domain.EvalResult) any {
	switch {
	case result.IsIndeterminate():
		return result.Cause
	case result.Type == domain.NotApplicable:
		return "No policy applicable"
	default:
		return nil
	}
}
