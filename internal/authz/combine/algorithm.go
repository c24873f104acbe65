// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 abac-authz Contributors

// Package combine implements the six combining algorithms as pure
// functions from an ordered list of principles to an EvaluationResult.
// Algorithms depend on injected callbacks to evaluate a child rather than
// importing package eval directly, breaking what would otherwise be a
// dependency cycle (eval evaluates a Policy by calling its combining
// algorithm, which must in turn evaluate each child principle).
package combine

import "github.com/truong-ngo-dev/abac-authz/internal/authz/domain"

// EvaluateFunc fully evaluates a single child principle to its
// EvalResult, using whatever dispatch (rule vs policy vs policy-set) the
// eval package implements.
type EvaluateFunc func(child domain.Principle) domain.EvalResult

// ApplicableFunc reports the applicability of a single child principle's
// target, without running its full evaluation. Only Only-One-Applicable
// uses this; other algorithms may be called with a nil ApplicableFunc.
type ApplicableFunc func(child domain.Principle) domain.ExpressionResult

// Algorithm merges the results of evaluating a list of children into a
// single EvalResult.
type Algorithm interface {
	Name() domain.CombineAlgorithmName
	Combine(children []domain.Principle, evaluate EvaluateFunc, isApplicable ApplicableFunc) domain.EvalResult
}
