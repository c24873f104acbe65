// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 abac-authz Contributors

// Package predicate implements the injectable boolean predicate language
// referenced by literal Expression bodies. The evaluation core depends only
// on the Predicate interface; Default is one concrete grammar, never a
// package-level singleton the core reaches for on its own.
package predicate

import "github.com/truong-ngo-dev/abac-authz/internal/authz/domain"

// Predicate evaluates a single predicate body against a context. A
// malformed body or an evaluation-time failure (e.g. a glob pattern that
// exceeds the safety limits) returns a non-nil error; a body that parses
// and evaluates cleanly always returns a nil error, even when comparing
// values of incompatible types (those evaluate to false, not an error).
type Predicate interface {
	Evaluate(ctx *domain.EvaluationContext, body string) (bool, error)
}
