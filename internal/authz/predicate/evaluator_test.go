// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 abac-authz Contributors

package predicate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/truong-ngo-dev/abac-authz/internal/authz/domain"
	"github.com/truong-ngo-dev/abac-authz/internal/authz/predicate"
)

func evalCtx() *domain.EvaluationContext {
	return &domain.EvaluationContext{
		Subject: &domain.Subject{
			UserID: "u1",
			Roles:  []string{"admin", "editor"},
			Attributes: map[string]any{
				"department": "engineering",
				"clearance":  float64(3),
			},
		},
		Object: &domain.Resource{
			Name:             "document-42",
			SubResourceNames: []string{"comments", "attachments"},
			Attributes: map[string]any{
				"owner": "u1",
			},
		},
		Action: &domain.Action{
			Request: &domain.HTTPRequestView{
				Method: "GET",
				Path:   "/documents/42",
			},
		},
		Environment: &domain.Environment{
			Global:  map[string]any{"region": "us-east"},
			Service: map[string]any{"maintenance": false},
		},
	}
}

func TestDefault_Evaluate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    bool
		wantErr bool
	}{
		{name: "numeric comparison true", body: `subject.attributes.clearance >= 3`, want: true},
		{name: "numeric comparison false", body: `subject.attributes.clearance >= 4`, want: false},
		{name: "string equality", body: `object.name == "document-42"`, want: true},
		{name: "string inequality", body: `object.name != "document-42"`, want: false},
		{name: "and composition short-circuits to false", body: `object.name == "document-42" && subject.attributes.clearance >= 4`, want: false},
		{name: "or composition", body: `subject.attributes.clearance >= 4 || object.name == "document-42"`, want: true},
		{name: "negation", body: `!(subject.attributes.clearance >= 4)`, want: true},
		{name: "has on map", body: `subject.attributes has department`, want: true},
		{name: "has missing key", body: `subject.attributes has missingKey`, want: false},
		{name: "contains all", body: `subject.roles contains all ("admin")`, want: true},
		{name: "contains any missing", body: `subject.roles contains any ("viewer")`, want: false},
		{name: "in list match", body: `subject.userId in ("u1", "u2")`, want: true},
		{name: "in list no match", body: `subject.userId in ("u2", "u3")`, want: false},
		{name: "like glob match", body: `action.request.path like "/documents/*"`, want: true},
		{name: "like glob no match", body: `action.request.path like "/users/*"`, want: false},
		{name: "unresolvable attribute is not an error, just false", body: `subject.attributes.nonexistent == "x"`, want: false},
		{name: "type mismatch fails closed, not an error", body: `subject.attributes.clearance == "3"`, want: false},
		{name: "empty body errors", body: "", wantErr: true},
		{name: "malformed syntax errors", body: "subject.attributes.clearance >=", wantErr: true},
		{name: "reserved word as attribute segment errors", body: `subject.has == "x"`, wantErr: true},
	}

	d := predicate.NewDefault()
	ctx := evalCtx()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := d.Evaluate(ctx, tt.body)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefault_Evaluate_GlobSafetyLimits(t *testing.T) {
	d := predicate.NewDefault()
	ctx := evalCtx()

	tests := []struct {
		name    string
		pattern string
	}{
		{name: "double star rejected", pattern: `/documents/**`},
		{name: "character class rejected", pattern: `/documents/[0-9]`},
		{name: "brace expansion rejected", pattern: `/documents/{a,b}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := `action.request.path like "` + tt.pattern + `"`
			_, err := d.Evaluate(ctx, body)
			assert.Error(t, err)
		})
	}
}

func TestIsReservedWord(t *testing.T) {
	assert.True(t, predicate.IsReservedWord("has"))
	assert.True(t, predicate.IsReservedWord("contains"))
	assert.False(t, predicate.IsReservedWord("department"))
}
