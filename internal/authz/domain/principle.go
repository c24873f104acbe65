// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 abac-authz Contributors

package domain

// Principle is the common contract shared by Rule, Policy, and PolicySet:
// every evaluable node in the policy tree carries an id, a description, and
// an optional target. It is implemented as a small tagged union rather than
// a class hierarchy: callers that need to dispatch on the concrete kind use
// a type switch on the Rule/Policy/PolicySet types themselves, never
// reflection.
type Principle interface {
	PrincipleID() string
	PrincipleDescription() string
	PrincipleTarget() *Expression
}

// Rule is a leaf of the policy tree: it evaluates its target and condition
// and, if both match, contributes its Effect.
type Rule struct {
	ID          string
	Description string
	Target      *Expression // nil means MATCH
	Condition   *Expression // nil means MATCH
	Effect      Effect
}

func (r *Rule) PrincipleID() string          { return r.ID }
func (r *Rule) PrincipleDescription() string { return r.Description }
func (r *Rule) PrincipleTarget() *Expression { return r.Target }

// Policy combines an ordered list of Rules under a single combining
// algorithm. Target is never nil; a Rule that omits its own target
// inherits Policy.Target for the duration of one evaluation without ever
// mutating the Rule itself (see eval.MaterializeRules).
type Policy struct {
	ID              string
	Description     string
	Target          *Expression
	CombineAlgoName CombineAlgorithmName
	Rules           []*Rule
}

func (p *Policy) PrincipleID() string          { return p.ID }
func (p *Policy) PrincipleDescription() string { return p.Description }
func (p *Policy) PrincipleTarget() *Expression { return p.Target }

// PolicySet composes an ordered list of Policy/PolicySet children under a
// single combining algorithm. Target is never nil.
type PolicySet struct {
	ID              string
	Description     string
	Target          *Expression
	CombineAlgoName CombineAlgorithmName
	Children        []Principle // each element is *Policy or *PolicySet
}

func (s *PolicySet) PrincipleID() string          { return s.ID }
func (s *PolicySet) PrincipleDescription() string { return s.Description }
func (s *PolicySet) PrincipleTarget() *Expression { return s.Target }
