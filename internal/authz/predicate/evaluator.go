// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 abac-authz Contributors

package predicate

import (
	"fmt"
	"sync"

	"github.com/gobwas/glob"
	"github.com/samber/oops"

	"github.com/truong-ngo-dev/abac-authz/internal/authz/domain"
)

const (
	maxGlobPatternLen = 100
	maxGlobWildcards  = 5
)

// Default is the participle/gobwas-glob backed Predicate implementation.
// It is stateless except for a compiled-glob cache, so a single instance
// may be shared across concurrent evaluations.
type Default struct {
	mu        sync.Mutex
	globCache map[string]glob.Glob
}

// NewDefault constructs a Default predicate evaluator.
func NewDefault() *Default {
	return &Default{globCache: make(map[string]glob.Glob)}
}

// Evaluate implements Predicate.
func (d *Default) Evaluate(ctx *domain.EvaluationContext, body string) (bool, error) {
	if body == "" {
		return false, oops.Code("PREDICATE_SYNTAX_ERROR").Errorf("predicate body is empty")
	}
	ast, err := parse(body)
	if err != nil {
		return false, err
	}
	return d.evalDisjunction(ctx, ast)
}

func (d *Default) evalDisjunction(ctx *domain.EvaluationContext, disj *Disjunction) (bool, error) {
	for _, conj := range disj.Conjunctions {
		v, err := d.evalConjunction(ctx, conj)
		if err != nil {
			return false, err
		}
		if v {
			return true, nil
		}
	}
	return false, nil
}

func (d *Default) evalConjunction(ctx *domain.EvaluationContext, conj *Conjunction) (bool, error) {
	for _, cond := range conj.Conditions {
		v, err := d.evalCondition(ctx, cond)
		if err != nil {
			return false, err
		}
		if !v {
			return false, nil
		}
	}
	return true, nil
}

func (d *Default) evalCondition(ctx *domain.EvaluationContext, c *Condition) (bool, error) {
	switch {
	case c.Negation != nil:
		v, err := d.evalCondition(ctx, c.Negation)
		if err != nil {
			return false, err
		}
		return !v, nil
	case c.Parenthesized != nil:
		return d.evalDisjunction(ctx, c.Parenthesized)
	case c.Has != nil:
		return d.evalHas(ctx, c.Has)
	case c.Contains != nil:
		return d.evalContains(ctx, c.Contains)
	case c.Like != nil:
		return d.evalLike(ctx, c.Like)
	case c.InExpr != nil:
		return d.evalIn(ctx, c.InExpr)
	case c.Comparison != nil:
		return d.evalComparison(ctx, c.Comparison)
	}
	return false, oops.Code("PREDICATE_SYNTAX_ERROR").Errorf("condition has no recognized form")
}

func (d *Default) evalComparison(ctx *domain.EvaluationContext, c *Comparison) (bool, error) {
	left, leftOK := resolveOperand(ctx, c.Left)
	right, rightOK := resolveOperand(ctx, c.Right)
	if !leftOK || !rightOK {
		return false, nil
	}

	if lf, lok := toFloat64(left); lok {
		if rf, rok := toFloat64(right); rok {
			return compareNumbers(lf, c.Op, rf), nil
		}
	}
	if ls, lok := left.(string); lok {
		if rs, rok := right.(string); rok {
			return compareStrings(ls, c.Op, rs), nil
		}
	}
	if lb, lok := left.(bool); lok {
		if rb, rok := right.(bool); rok {
			return compareBools(lb, c.Op, rb), nil
		}
	}
	return false, nil
}

func compareNumbers(l float64, op string, r float64) bool {
	switch op {
	case "==":
		return l == r
	case "!=":
		return l != r
	case "<":
		return l < r
	case "<=":
		return l <= r
	case ">":
		return l > r
	case ">=":
		return l >= r
	default:
		return false
	}
}

func compareStrings(l string, op string, r string) bool {
	switch op {
	case "==":
		return l == r
	case "!=":
		return l != r
	case "<":
		return l < r
	case "<=":
		return l <= r
	case ">":
		return l > r
	case ">=":
		return l >= r
	default:
		return false
	}
}

func compareBools(l bool, op string, r bool) bool {
	switch op {
	case "==":
		return l == r
	case "!=":
		return l != r
	default:
		return false
	}
}

func (d *Default) evalHas(ctx *domain.EvaluationContext, h *HasExpr) (bool, error) {
	base, ok := resolveOperand(ctx, h.Left)
	if !ok {
		return false, nil
	}
	m, ok := base.(map[string]any)
	if !ok {
		return false, nil
	}
	_, has := resolveMapPath(m, h.Path)
	return has, nil
}

func (d *Default) evalContains(ctx *domain.EvaluationContext, c *ContainsExpr) (bool, error) {
	left, ok := resolveOperand(ctx, c.Left)
	if !ok {
		return false, nil
	}
	haystack := toAnySlice(left)
	values := make([]any, 0, len(c.Right))
	for _, op := range c.Right {
		v, ok := resolveOperand(ctx, op)
		if !ok {
			return false, nil
		}
		values = append(values, v)
	}
	switch c.Mode {
	case "all":
		return containsAll(haystack, values), nil
	case "any":
		return containsAny(haystack, values), nil
	default:
		return false, nil
	}
}

func (d *Default) evalIn(ctx *domain.EvaluationContext, in *InExpr) (bool, error) {
	left, ok := resolveOperand(ctx, in.Left)
	if !ok {
		return false, nil
	}
	for _, op := range in.Right {
		v, ok := resolveOperand(ctx, op)
		if ok && valuesEqual(left, v) {
			return true, nil
		}
	}
	return false, nil
}

func (d *Default) evalLike(ctx *domain.EvaluationContext, l *LikeExpr) (bool, error) {
	left, ok := resolveOperand(ctx, l.Left)
	if !ok {
		return false, nil
	}
	s, ok := left.(string)
	if !ok {
		return false, nil
	}
	g, err := d.compileGlob(l.Pattern)
	if err != nil {
		return false, err
	}
	return g.Match(s), nil
}

func (d *Default) compileGlob(pattern string) (glob.Glob, error) {
	if err := validateGlobPattern(pattern); err != nil {
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if g, ok := d.globCache[pattern]; ok {
		return g, nil
	}
	g, err := glob.Compile(pattern, ':')
	if err != nil {
		return nil, oops.Code("PREDICATE_SYNTAX_ERROR").Wrapf(err, "compiling glob pattern %q", pattern)
	}
	d.globCache[pattern] = g
	return g, nil
}

func validateGlobPattern(pattern string) error {
	if len(pattern) > maxGlobPatternLen {
		return oops.Code("PREDICATE_SYNTAX_ERROR").Errorf("glob pattern exceeds maximum length of %d", maxGlobPatternLen)
	}
	wildcards := 0
	for i, r := range pattern {
		switch r {
		case '[', '{':
			return oops.Code("PREDICATE_SYNTAX_ERROR").Errorf("glob pattern contains unsupported character %q", r)
		case '*':
			wildcards++
			if i+1 < len(pattern) && pattern[i+1] == '*' {
				return oops.Code("PREDICATE_SYNTAX_ERROR").Errorf("glob pattern must not contain \"**\"")
			}
		case '?':
			wildcards++
		}
	}
	if wildcards > maxGlobWildcards {
		return oops.Code("PREDICATE_SYNTAX_ERROR").Errorf("glob pattern exceeds maximum of %d wildcards", maxGlobWildcards)
	}
	return nil
}

func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

func toAnySlice(v any) []any {
	switch s := v.(type) {
	case []any:
		return s
	case []string:
		out := make([]any, len(s))
		for i, e := range s {
			out[i] = e
		}
		return out
	default:
		return nil
	}
}

func containsAll(haystack []any, values []any) bool {
	for _, v := range values {
		if !containsValue(haystack, v) {
			return false
		}
	}
	return true
}

func containsAny(haystack []any, values []any) bool {
	for _, v := range values {
		if containsValue(haystack, v) {
			return true
		}
	}
	return false
}

func containsValue(haystack []any, v any) bool {
	for _, h := range haystack {
		if valuesEqual(h, v) {
			return true
		}
	}
	return false
}

func valuesEqual(a, b any) bool {
	if af, aok := toFloat64(a); aok {
		if bf, bok := toFloat64(b); bok {
			return af == bf
		}
	}
	return fmt.Sprintf("%v", a) == fmt.Sprintf("%v", b)
}
