// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 abac-authz Contributors

package loader

import (
	"encoding/json"

	"github.com/samber/oops"
	"gopkg.in/yaml.v3"

	"github.com/truong-ngo-dev/abac-authz/internal/authz/domain"
)

// Format is the wire encoding of a policy document.
type Format string

// The two supported document formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Load parses data in the given format, validates it against the policy
// document JSON Schema, and converts it into a domain.Principle tree ready
// for eval.ValidateTree and pdp.Engine.
func Load(data []byte, format Format) (domain.Principle, error) {
	if err := Validate(data, format); err != nil {
		return nil, oops.Code("POLICY_DOCUMENT_INVALID").Wrap(err)
	}

	var doc RootDocument
	if err := unmarshal(data, format, &doc); err != nil {
		return nil, oops.Code("POLICY_DOCUMENT_PARSE_FAILED").Wrap(err)
	}

	switch {
	case doc.Policy != nil:
		p, err := convertPolicy(doc.Policy)
		if err != nil {
			return nil, err
		}
		return p, nil
	case doc.PolicySet != nil:
		s, err := convertPolicySet(doc.PolicySet)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, oops.Code("POLICY_DOCUMENT_EMPTY").Errorf("policy document names neither a policy nor a policySet")
	}
}

func unmarshal(data []byte, format Format, v any) error {
	switch format {
	case FormatJSON:
		return json.Unmarshal(data, v)
	case FormatYAML:
		return yaml.Unmarshal(data, v)
	default:
		return oops.Code("UNKNOWN_DOCUMENT_FORMAT").Errorf("unknown policy document format %q", format)
	}
}

func convertExpression(doc *ExpressionDoc) *domain.Expression {
	if doc == nil {
		return nil
	}
	switch domain.ExpressionKind(doc.Kind) {
	case domain.KindComposition:
		children := make([]*domain.Expression, 0, len(doc.Children))
		for _, c := range doc.Children {
			children = append(children, convertExpression(c))
		}
		return domain.Composition(doc.ID, doc.Description, domain.CombinationType(doc.Combination), children...)
	default:
		return domain.Literal(doc.ID, doc.Description, doc.Body)
	}
}

func convertRule(doc *RuleDoc) *domain.Rule {
	return &domain.Rule{
		ID:          doc.ID,
		Description: doc.Description,
		Target:      convertExpression(doc.Target),
		Condition:   convertExpression(doc.Condition),
		Effect:      domain.Effect(doc.Effect),
	}
}

func convertPolicy(doc *PolicyDoc) (*domain.Policy, error) {
	if doc.Target == nil {
		return nil, oops.Code("POLICY_MISSING_TARGET").Errorf("policy %q must declare a target", doc.ID)
	}
	rules := make([]*domain.Rule, 0, len(doc.Rules))
	for _, r := range doc.Rules {
		rules = append(rules, convertRule(r))
	}
	return &domain.Policy{
		ID:              doc.ID,
		Description:     doc.Description,
		Target:          convertExpression(doc.Target),
		CombineAlgoName: domain.CombineAlgorithmName(doc.Algorithm),
		Rules:           rules,
	}, nil
}

func convertPolicySet(doc *PolicySetDoc) (*domain.PolicySet, error) {
	if doc.Target == nil {
		return nil, oops.Code("POLICY_SET_MISSING_TARGET").Errorf("policy set %q must declare a target", doc.ID)
	}
	children := make([]domain.Principle, 0, len(doc.Children))
	for _, ref := range doc.Children {
		child, err := convertChildRef(ref)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return &domain.PolicySet{
		ID:              doc.ID,
		Description:     doc.Description,
		Target:          convertExpression(doc.Target),
		CombineAlgoName: domain.CombineAlgorithmName(doc.Algorithm),
		Children:        children,
	}, nil
}

func convertChildRef(ref *ChildRefDoc) (domain.Principle, error) {
	switch {
	case ref.Policy != nil:
		return convertPolicy(ref.Policy)
	case ref.PolicySet != nil:
		return convertPolicySet(ref.PolicySet)
	default:
		return nil, oops.Code("POLICY_SET_CHILD_EMPTY").Errorf("policy set child names neither a policy nor a policySet")
	}
}
