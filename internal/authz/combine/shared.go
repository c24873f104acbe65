// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 abac-authz Contributors

package combine

import (
	"github.com/truong-ngo-dev/abac-authz/internal/authz/cause"
	"github.com/truong-ngo-dev/abac-authz/internal/authz/domain"
)

// collected tracks the flags and cause list accumulated while scanning an
// evaluated child list, shared between Deny-Overrides and Permit-Overrides.
type collected struct {
	hasPermit          bool
	hasDeny            bool
	hasIndeterminateP  bool
	hasIndeterminateD  bool
	hasIndeterminateDP bool // also set for plain INDETERMINATE: it carries no directional guarantee, so it is treated as the least-resolved case alongside DP (see DESIGN.md)
	causes             []*cause.Cause
}

func (c *collected) observe(r domain.EvalResult) {
	switch r.Type {
	case domain.Permit:
		c.hasPermit = true
	case domain.Deny:
		c.hasDeny = true
	case domain.IndeterminateP:
		c.hasIndeterminateP = true
		c.causes = append(c.causes, r.Cause)
	case domain.IndeterminateD:
		c.hasIndeterminateD = true
		c.causes = append(c.causes, r.Cause)
	case domain.IndeterminateDP, domain.IndeterminateResultT:
		c.hasIndeterminateDP = true
		c.causes = append(c.causes, r.Cause)
	}
}

func aggregateCause(description string, causes []*cause.Cause) *cause.Cause {
	return cause.Aggregate(description, causes)
}
