// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 abac-authz Contributors

package eval

import (
	"github.com/truong-ngo-dev/abac-authz/internal/authz/cause"
	"github.com/truong-ngo-dev/abac-authz/internal/authz/combine"
	"github.com/truong-ngo-dev/abac-authz/internal/authz/domain"
)

func (e *Evaluator) evaluatePolicy(ctx *domain.EvaluationContext, p *domain.Policy) domain.EvalResult {
	t := e.isApplicable(ctx, p)
	if t.Type == domain.NoMatch {
		return domain.NotApplicableResult()
	}

	effective := MaterializeRules(p)
	children := make([]domain.Principle, len(effective))
	for i, er := range effective {
		children[i] = er
	}

	combined := e.combineChildren(ctx, p.CombineAlgoName, true, children)
	return promote(t, combined, "Policy", p.ID)
}

func (e *Evaluator) evaluatePolicySet(ctx *domain.EvaluationContext, s *domain.PolicySet) domain.EvalResult {
	t := e.isApplicable(ctx, s)
	if t.Type == domain.NoMatch {
		return domain.NotApplicableResult()
	}

	combined := e.combineChildren(ctx, s.CombineAlgoName, false, s.Children)
	return promote(t, combined, "PolicySet", s.ID)
}

func (e *Evaluator) combineChildren(ctx *domain.EvaluationContext, algoName domain.CombineAlgorithmName, forRules bool, children []domain.Principle) domain.EvalResult {
	algo, err := combine.For(algoName, forRules)
	if err != nil {
		// Unreachable once the tree has passed ValidateTree; kept total
		// rather than panicking so a caller that skips validation still
		// gets a diagnosable result instead of a crash.
		return domain.IndeterminateEval(domain.IndeterminateResultT, cause.New(cause.CodeProcessingError, err.Error()))
	}
	evalFn := func(child domain.Principle) domain.EvalResult { return e.Evaluate(ctx, child) }
	appFn := func(child domain.Principle) domain.ExpressionResult { return e.isApplicable(ctx, child) }
	return algo.Combine(children, evalFn, appFn)
}

func promote(target domain.ExpressionResult, combined domain.EvalResult, kind, id string) domain.EvalResult {
	if target.Type == domain.Match {
		if combined.IsIndeterminate() {
			combined.Cause = withDefaultDescription(kind, id, combined.Cause)
		}
		return combined
	}

	// target.Type == Indeterminate: promote combined's type per the
	// matrix, discarding combined's own cause — the target's failure is
	// the only thing we can actually report.
	wrapped := cause.Wrap(kind, id, target.Cause)
	switch combined.Type {
	case domain.NotApplicable:
		return domain.NotApplicableResult()
	case domain.Permit, domain.IndeterminateP:
		return domain.IndeterminateEval(domain.IndeterminateP, wrapped)
	case domain.Deny, domain.IndeterminateD:
		return domain.IndeterminateEval(domain.IndeterminateD, wrapped)
	default: // IndeterminateDP, IndeterminateResultT
		return domain.IndeterminateEval(domain.IndeterminateDP, wrapped)
	}
}
