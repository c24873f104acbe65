// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 abac-authz Contributors

// Package pdp implements the top-level orchestrator: it evaluates the root
// policy via package eval, then reduces the result to a binary decision
// via a configured Strategy.
package pdp

import (
	"github.com/samber/oops"

	"github.com/truong-ngo-dev/abac-authz/internal/authz/domain"
)

// AuthzRequest is the boundary input to the PDP: an evaluation context
// plus the root policy tree to evaluate it against.
type AuthzRequest struct {
	Subject     *domain.Subject
	Object      *domain.Resource
	Action      *domain.Action
	Environment *domain.Environment
	RootPolicy  domain.Principle
}

// NewAuthzRequest builds a request, validating the one field the PDP
// cannot proceed without.
func NewAuthzRequest(subject *domain.Subject, object *domain.Resource, action *domain.Action, environment *domain.Environment, rootPolicy domain.Principle) (*AuthzRequest, error) {
	if rootPolicy == nil {
		return nil, oops.Code("INVALID_REQUEST").Errorf("authz request requires a non-nil root policy")
	}
	return &AuthzRequest{
		Subject:     subject,
		Object:      object,
		Action:      action,
		Environment: environment,
		RootPolicy:  rootPolicy,
	}, nil
}

// Context builds the read-only EvaluationContext the evaluator runs
// against.
func (r *AuthzRequest) Context() *domain.EvaluationContext {
	return &domain.EvaluationContext{
		Subject:     r.Subject,
		Object:      r.Object,
		Action:      r.Action,
		Environment: r.Environment,
	}
}
