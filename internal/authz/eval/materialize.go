// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 abac-authz Contributors

package eval

import "github.com/truong-ngo-dev/abac-authz/internal/authz/domain"

// EffectiveRule is a non-mutating view of a Rule for the duration of one
// evaluation: if the underlying Rule has no target of its own, Target
// holds the owning Policy's target instead. domain.Rule.Target is never
// written to; target inheritance is expressed by wrapping, not mutating,
// the shared Rule.
type EffectiveRule struct {
	Rule   *domain.Rule
	Target *domain.Expression
}

func (e *EffectiveRule) PrincipleID() string          { return e.Rule.ID }
func (e *EffectiveRule) PrincipleDescription() string { return e.Rule.Description }
func (e *EffectiveRule) PrincipleTarget() *domain.Expression { return e.Target }

// MaterializeRules builds the effective-rule view for every rule of p.
// Calling it repeatedly for the same Policy is safe and cheap: it performs
// no mutation and allocates only the small wrapper slice.
func MaterializeRules(p *domain.Policy) []*EffectiveRule {
	out := make([]*EffectiveRule, len(p.Rules))
	for i, r := range p.Rules {
		target := r.Target
		if target == nil {
			target = p.Target
		}
		out[i] = &EffectiveRule{Rule: r, Target: target}
	}
	return out
}
