// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 abac-authz Contributors

package combine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/truong-ngo-dev/abac-authz/internal/authz/cause"
	"github.com/truong-ngo-dev/abac-authz/internal/authz/combine"
	"github.com/truong-ngo-dev/abac-authz/internal/authz/domain"
)

// fixedResults builds an EvaluateFunc that returns a pre-determined result
// per child, keyed by PrincipleID, so these tests exercise the combining
// logic in isolation from package eval.
func fixedResults(results map[string]domain.EvalResult) combine.EvaluateFunc {
	return func(child domain.Principle) domain.EvalResult {
		return results[child.PrincipleID()]
	}
}

func rules(ids ...string) []domain.Principle {
	out := make([]domain.Principle, len(ids))
	for i, id := range ids {
		out[i] = &domain.Rule{ID: id}
	}
	return out
}

func indeterminate(t domain.EvalResultType) domain.EvalResult {
	return domain.IndeterminateEval(t, cause.New(cause.CodeProcessingError, "boom"))
}

func TestDenyOverrides(t *testing.T) {
	algo := combine.DenyOverrides{}

	tests := []struct {
		name    string
		results map[string]domain.EvalResult
		want    domain.EvalResultType
	}{
		{"any deny wins", map[string]domain.EvalResult{"a": domain.PermitResult(), "b": domain.DenyResult()}, domain.Deny},
		{"all permit", map[string]domain.EvalResult{"a": domain.PermitResult(), "b": domain.PermitResult()}, domain.Permit},
		{"all not applicable", map[string]domain.EvalResult{"a": domain.NotApplicableResult(), "b": domain.NotApplicableResult()}, domain.NotApplicable},
		{"indeterminate DP dominates permit", map[string]domain.EvalResult{"a": domain.PermitResult(), "b": indeterminate(domain.IndeterminateDP)}, domain.IndeterminateDP},
		{"indeterminate D with permit escalates to DP", map[string]domain.EvalResult{"a": domain.PermitResult(), "b": indeterminate(domain.IndeterminateD)}, domain.IndeterminateDP},
		{"indeterminate D alone stays D", map[string]domain.EvalResult{"a": domain.NotApplicableResult(), "b": indeterminate(domain.IndeterminateD)}, domain.IndeterminateD},
		{"indeterminate P alone", map[string]domain.EvalResult{"a": domain.NotApplicableResult(), "b": indeterminate(domain.IndeterminateP)}, domain.IndeterminateP},
		{"plain indeterminate treated as DP", map[string]domain.EvalResult{"a": domain.PermitResult(), "b": indeterminate(domain.IndeterminateResultT)}, domain.IndeterminateDP},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := algo.Combine(rules("a", "b"), fixedResults(tt.results), nil)
			assert.Equal(t, tt.want, got.Type)
		})
	}
}

func TestPermitOverrides(t *testing.T) {
	algo := combine.PermitOverrides{}

	tests := []struct {
		name    string
		results map[string]domain.EvalResult
		want    domain.EvalResultType
	}{
		{"any permit wins", map[string]domain.EvalResult{"a": domain.DenyResult(), "b": domain.PermitResult()}, domain.Permit},
		{"all deny", map[string]domain.EvalResult{"a": domain.DenyResult(), "b": domain.DenyResult()}, domain.Deny},
		{"indeterminate DP dominates deny", map[string]domain.EvalResult{"a": domain.DenyResult(), "b": indeterminate(domain.IndeterminateDP)}, domain.IndeterminateDP},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := algo.Combine(rules("a", "b"), fixedResults(tt.results), nil)
			assert.Equal(t, tt.want, got.Type)
		})
	}
}

func TestDenyUnlessPermit(t *testing.T) {
	algo := combine.DenyUnlessPermit{}

	// Deny-unless-permit never produces NOT_APPLICABLE or indeterminate:
	// anything short of an explicit permit resolves to deny.
	results := map[string]domain.EvalResult{
		"a": indeterminate(domain.IndeterminateDP),
		"b": domain.NotApplicableResult(),
	}
	got := algo.Combine(rules("a", "b"), fixedResults(results), nil)
	assert.Equal(t, domain.Deny, got.Type)

	results2 := map[string]domain.EvalResult{"a": domain.DenyResult(), "b": domain.PermitResult()}
	got2 := algo.Combine(rules("a", "b"), fixedResults(results2), nil)
	assert.Equal(t, domain.Permit, got2.Type)
}

func TestPermitUnlessDeny(t *testing.T) {
	algo := combine.PermitUnlessDeny{}

	results := map[string]domain.EvalResult{
		"a": indeterminate(domain.IndeterminateDP),
		"b": domain.NotApplicableResult(),
	}
	got := algo.Combine(rules("a", "b"), fixedResults(results), nil)
	assert.Equal(t, domain.Permit, got.Type)

	results2 := map[string]domain.EvalResult{"a": domain.PermitResult(), "b": domain.DenyResult()}
	got2 := algo.Combine(rules("a", "b"), fixedResults(results2), nil)
	assert.Equal(t, domain.Deny, got2.Type)
}

func TestFirstApplicable(t *testing.T) {
	algo := combine.FirstApplicable{}

	results := map[string]domain.EvalResult{
		"a": domain.NotApplicableResult(),
		"b": domain.PermitResult(),
		"c": domain.DenyResult(),
	}
	got := algo.Combine(rules("a", "b", "c"), fixedResults(results), nil)
	assert.Equal(t, domain.Permit, got.Type)

	allNA := map[string]domain.EvalResult{"a": domain.NotApplicableResult(), "b": domain.NotApplicableResult()}
	gotNA := algo.Combine(rules("a", "b"), fixedResults(allNA), nil)
	assert.Equal(t, domain.NotApplicable, gotNA.Type)
}

func TestFirstApplicable_CauseAggregatesAllEvaluatedChildren(t *testing.T) {
	// Deliberately preserved deviation: the indeterminate cause aggregates
	// every evaluated child's cause, including "c" which is evaluated
	// after the first applicable child "a".
	algo := combine.FirstApplicable{}
	results := map[string]domain.EvalResult{
		"a": indeterminate(domain.IndeterminateD),
		"b": domain.NotApplicableResult(),
		"c": indeterminate(domain.IndeterminateP),
	}
	got := algo.Combine(rules("a", "b", "c"), fixedResults(results), nil)
	require.Equal(t, domain.IndeterminateResultT, got.Type)
	require.NotNil(t, got.Cause)
	assert.Len(t, got.Cause.Children, 2)
}

func TestOnlyOneApplicable(t *testing.T) {
	algo := combine.OnlyOneApplicable{}

	policyA := &domain.Policy{ID: "a"}
	policyB := &domain.Policy{ID: "b"}

	apps := func(m map[string]domain.ExpressionResultType) combine.ApplicableFunc {
		return func(child domain.Principle) domain.ExpressionResult {
			return domain.ExpressionResult{Type: m[child.PrincipleID()]}
		}
	}

	t.Run("single match evaluates it", func(t *testing.T) {
		results := map[string]domain.EvalResult{"a": domain.PermitResult()}
		app := apps(map[string]domain.ExpressionResultType{"a": domain.Match, "b": domain.NoMatch})
		got := algo.Combine([]domain.Principle{policyA, policyB}, fixedResults(results), app)
		assert.Equal(t, domain.Permit, got.Type)
	})

	t.Run("no match is not applicable", func(t *testing.T) {
		app := apps(map[string]domain.ExpressionResultType{"a": domain.NoMatch, "b": domain.NoMatch})
		got := algo.Combine([]domain.Principle{policyA, policyB}, fixedResults(nil), app)
		assert.Equal(t, domain.NotApplicable, got.Type)
	})

	t.Run("more than one match is indeterminate", func(t *testing.T) {
		app := apps(map[string]domain.ExpressionResultType{"a": domain.Match, "b": domain.Match})
		got := algo.Combine([]domain.Principle{policyA, policyB}, fixedResults(nil), app)
		assert.Equal(t, domain.IndeterminateResultT, got.Type)
	})
}

func TestFor(t *testing.T) {
	t.Run("resolves the five algorithms valid for rule lists", func(t *testing.T) {
		names := []domain.CombineAlgorithmName{
			domain.DenyOverrides, domain.PermitOverrides, domain.DenyUnlessPermit,
			domain.PermitUnlessDeny, domain.FirstApplicable,
		}
		for _, n := range names {
			algo, err := combine.For(n, true)
			require.NoError(t, err)
			assert.Equal(t, n, algo.Name())
		}
	})

	t.Run("only-one-applicable rejected for rule lists", func(t *testing.T) {
		_, err := combine.For(domain.OnlyOneApplicable, true)
		assert.Error(t, err)
	})

	t.Run("only-one-applicable allowed for policy-set children", func(t *testing.T) {
		algo, err := combine.For(domain.OnlyOneApplicable, false)
		require.NoError(t, err)
		assert.Equal(t, domain.OnlyOneApplicable, algo.Name())
	})

	t.Run("unknown algorithm errors", func(t *testing.T) {
		_, err := combine.For(domain.CombineAlgorithmName("nonsense"), true)
		assert.Error(t, err)
	})
}
