// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 abac-authz Contributors

package domain

// Subject is the caller an access decision is being made about.
type Subject struct {
	UserID     string
	Roles      []string
	Attributes map[string]any
}

// Resource is the thing a Subject is attempting to act on. Data is opaque
// to the evaluation core; predicate expressions may reach into it through
// the attribute-reference grammar.
type Resource struct {
	Name             string
	SubResourceNames []string
	Data             any
	Attributes       map[string]any
}

// HTTPRequestView is a read-only projection of the HTTP request that
// triggered an Action, when the action originated from one. It is
// populated by the caller before the request reaches the PDP; the
// evaluation core never mutates or re-fetches any of it.
type HTTPRequestView struct {
	Method   string
	Path     string
	Headers  map[string][]string
	Query    map[string][]string
	PathVars map[string]string
	Cookies  map[string]string
	Body     any
	Session  map[string]any
}

// Action is the operation being attempted.
type Action struct {
	Request    *HTTPRequestView
	Attributes map[string]any
}

// Environment carries ambient attributes not tied to subject, resource, or
// action: Global values apply everywhere, Service values hold
// per-deployment settings. A plain environment.<key> reference resolves
// against Global first and falls back to Service only when Global lacks
// the key.
type Environment struct {
	Global  map[string]any
	Service map[string]any
}

// EvaluationContext is the read-only view an evaluation runs against. It is
// never mutated once constructed.
type EvaluationContext struct {
	Subject     *Subject
	Object      *Resource
	Action      *Action
	Environment *Environment
}
