// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 abac-authz Contributors

package combine

import (
	"fmt"

	"github.com/truong-ngo-dev/abac-authz/internal/authz/cause"
	"github.com/truong-ngo-dev/abac-authz/internal/authz/domain"
)

// OnlyOneApplicable is valid only over PolicySet/Policy children — the
// factory rejects it for Rule lists as a configuration error before any
// request is evaluated.
type OnlyOneApplicable struct{}

func (OnlyOneApplicable) Name() domain.CombineAlgorithmName { return domain.OnlyOneApplicable }

func (OnlyOneApplicable) Combine(children []domain.Principle, evaluate EvaluateFunc, isApplicable ApplicableFunc) domain.EvalResult {
	matchedIdx := -1
	for i, child := range children {
		app := isApplicable(child)
		switch app.Type {
		case domain.Indeterminate:
			return domain.IndeterminateEval(domain.IndeterminateResultT, cause.Wrap(principleKind(child), child.PrincipleID(), app.Cause))
		case domain.Match:
			if matchedIdx != -1 {
				return domain.IndeterminateEval(domain.IndeterminateResultT, cause.New(
					cause.CodeProcessingError,
					fmt.Sprintf("%s with id %s is ambiguous: more than one child is applicable", principleKind(child), child.PrincipleID()),
				))
			}
			matchedIdx = i
		case domain.NoMatch:
			continue
		}
	}

	if matchedIdx == -1 {
		return domain.NotApplicableResult()
	}
	return evaluate(children[matchedIdx])
}

func principleKind(p domain.Principle) string {
	switch p.(type) {
	case *domain.Policy:
		return "Policy"
	case *domain.PolicySet:
		return "PolicySet"
	default:
		return "Rule"
	}
}
