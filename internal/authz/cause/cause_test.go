// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 abac-authz Contributors

package cause_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/truong-ngo-dev/abac-authz/internal/authz/cause"
)

func TestCode_Lower(t *testing.T) {
	assert.Equal(t, "syntax_error", cause.CodeSyntaxError.Lower())
	assert.Equal(t, "processing_error", cause.CodeProcessingError.Lower())
}

func TestDefaultDescription(t *testing.T) {
	got := cause.DefaultDescription("Rule", "r1", cause.CodeSyntaxError)
	assert.Equal(t, `Rule with id r1 has syntax_error`, got)
}

func TestWrap(t *testing.T) {
	sub := cause.New(cause.CodeSyntaxError, "target is malformed")
	wrapped := cause.Wrap("Policy", "p1", sub)

	require.Equal(t, cause.CodeProcessingError, wrapped.Code)
	assert.Equal(t, cause.DefaultDescription("Policy", "p1", cause.CodeProcessingError), wrapped.Description)
	require.Len(t, wrapped.Children, 1)
	assert.Same(t, sub, wrapped.Children[0])
}

func TestAggregate(t *testing.T) {
	c1 := cause.New(cause.CodeSyntaxError, "first")
	c2 := cause.New(cause.CodeSyntaxError, "second")

	agg := cause.Aggregate("multiple children indeterminate", []*cause.Cause{c1, c2})

	assert.Equal(t, cause.CodeProcessingError, agg.Code)
	assert.Equal(t, "multiple children indeterminate", agg.Description)
	assert.Equal(t, []*cause.Cause{c1, c2}, agg.Children)
}

func TestWithContent(t *testing.T) {
	c := cause.New(cause.CodeSyntaxError, "bad body").WithContent("age > 'abc'")
	assert.Equal(t, "age > 'abc'", c.Content)
}
