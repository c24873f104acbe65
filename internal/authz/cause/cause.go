// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 abac-authz Contributors

// Package cause implements the indeterminate-cause tree attached to
// evaluation results that could not be resolved to a definite outcome.
package cause

import "strings"

// Code classifies why an evaluation could not complete.
type Code string

// The two disjoint indeterminate-cause codes.
const (
	CodeSyntaxError     Code = "SYNTAX_ERROR"
	CodeProcessingError Code = "PROCESSING_ERROR"
)

// Lower returns the code in the lowercase form used by default descriptions,
// e.g. "syntax_error".
func (c Code) Lower() string {
	return strings.ToLower(string(c))
}

// Cause is a node in the indeterminate-cause tree. Trees are acyclic and
// owned by the caller that constructed them; nodes are never shared between
// two parents once they leave the recursion that built them.
type Cause struct {
	Code        Code
	Description string
	Content     any
	Children    []*Cause
}

// New builds a leaf cause.
func New(code Code, description string) *Cause {
	return &Cause{Code: code, Description: description}
}

// WithContent attaches content to a cause and returns it for chaining.
func (c *Cause) WithContent(content any) *Cause {
	c.Content = content
	return c
}

// Wrap constructs a PROCESSING_ERROR cause whose single child is sub,
// using the default description format "<kind> with id <id> has <code>".
// Used at the rule, policy and policy-set boundaries per the
// default-description rule.
func Wrap(kind, id string, sub *Cause) *Cause {
	return &Cause{
		Code:        CodeProcessingError,
		Description: DefaultDescription(kind, id, CodeProcessingError),
		Children:    []*Cause{sub},
	}
}

// Aggregate constructs a PROCESSING_ERROR cause whose children are every
// cause in causes, in the order given. Used by combining algorithms and
// expression compositions that must preserve complete provenance across
// every child evaluated, not just the first indeterminate one.
func Aggregate(description string, causes []*Cause) *Cause {
	return &Cause{
		Code:        CodeProcessingError,
		Description: description,
		Children:    causes,
	}
}

// DefaultDescription formats the standard "<kind> with id <id> has <code>"
// message used when a composition boundary enriches a child's cause.
func DefaultDescription(kind, id string, code Code) string {
	return kind + " with id " + id + " has " + code.Lower()
}
