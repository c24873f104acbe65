// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 abac-authz Contributors

package pdp

import (
	"github.com/samber/oops"

	"github.com/truong-ngo-dev/abac-authz/internal/authz/domain"
)

// StrategyName is the stable identifier of a decision strategy.
type StrategyName string

// The three decision strategies. This is a closed enumeration; adding one
// is a breaking change to the wire contract.
const (
	StrategyDefaultDeny                      StrategyName = "default-deny"
	StrategyDefaultPermit                    StrategyName = "default-permit"
	StrategyNotApplicablePermitIndeterminateDeny StrategyName = "not-applicable-permit-indeterminate-deny"
)

// Strategy maps an EvalResult to a binary Decision. For PERMIT/DENY
// results every strategy returns that same value; they differ only in how
// they resolve NOT_APPLICABLE and the indeterminate family.
type Strategy interface {
	Name() StrategyName
	Decide(result domain.EvalResult) Decision
}

// permitDenyDecide is the pass-through shared by every strategy: a
// definite PERMIT or DENY result is never overridden.
func permitDenyDecide(result domain.EvalResult) (Decision, bool) {
	switch result.Type {
	case domain.Permit:
		return DecisionPermit, true
	case domain.Deny:
		return DecisionDeny, true
	default:
		return "", false
	}
}

// DefaultDeny resolves anything short of a definite PERMIT to DENY.
type DefaultDeny struct{}

func (DefaultDeny) Name() StrategyName { return StrategyDefaultDeny }

func (DefaultDeny) Decide(result domain.EvalResult) Decision {
	if d, ok := permitDenyDecide(result); ok {
		return d
	}
	return DecisionDeny
}

// DefaultPermit resolves anything short of a definite DENY to PERMIT.
type DefaultPermit struct{}

func (DefaultPermit) Name() StrategyName { return StrategyDefaultPermit }

func (DefaultPermit) Decide(result domain.EvalResult) Decision {
	if d, ok := permitDenyDecide(result); ok {
		return d
	}
	return DecisionPermit
}

// NotApplicablePermitIndeterminateDeny permits when no policy applies but
// denies when evaluation could not complete — the fail-open-on-silence,
// fail-closed-on-error strategy.
type NotApplicablePermitIndeterminateDeny struct{}

func (NotApplicablePermitIndeterminateDeny) Name() StrategyName {
	return StrategyNotApplicablePermitIndeterminateDeny
}

func (NotApplicablePermitIndeterminateDeny) Decide(result domain.EvalResult) Decision {
	if d, ok := permitDenyDecide(result); ok {
		return d
	}
	if result.Type == domain.NotApplicable {
		return DecisionPermit
	}
	return DecisionDeny
}

// StrategyFor resolves a Strategy by its stable identifier.
func StrategyFor(name StrategyName) (Strategy, error) {
	switch name {
	case StrategyDefaultDeny:
		return DefaultDeny{}, nil
	case StrategyDefaultPermit:
		return DefaultPermit{}, nil
	case StrategyNotApplicablePermitIndeterminateDeny:
		return NotApplicablePermitIndeterminateDeny{}, nil
	default:
		return nil, oops.Code("UNKNOWN_STRATEGY").Errorf("unknown decision strategy %q", name)
	}
}
