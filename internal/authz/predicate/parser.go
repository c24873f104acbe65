// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 abac-authz Contributors

package predicate

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/samber/oops"
)

// MaxNestingDepth bounds how deeply parenthesized conditions may nest.
const MaxNestingDepth = 32

var reservedWords = map[string]bool{
	"has": true, "contains": true, "all": true, "any": true,
	"like": true, "in": true, "true": true, "false": true,
}

// IsReservedWord reports whether word cannot be used as an attribute
// segment because the grammar assigns it operator meaning.
func IsReservedWord(word string) bool {
	return reservedWords[word]
}

var conditionParser *participle.Parser[Disjunction]

func init() {
	var err error
	conditionParser, err = participle.Build[Disjunction](
		participle.Lexer(conditionLexer),
		participle.Unquote("String"),
		participle.UseLookahead(participle.MaxLookahead),
	)
	if err != nil {
		panic(fmt.Sprintf("failed to build predicate parser: %v", err))
	}
}

// parse parses a predicate body into its Disjunction AST and validates
// nesting depth and reserved words.
func parse(body string) (*Disjunction, error) {
	d, err := conditionParser.ParseString("", body)
	if err != nil {
		return nil, oops.Code("PREDICATE_SYNTAX_ERROR").Wrapf(err, "parsing predicate")
	}
	if err := validateDisjunction(d, 0); err != nil {
		return nil, err
	}
	return d, nil
}

func validateDisjunction(d *Disjunction, depth int) error {
	if depth > MaxNestingDepth {
		return oops.Code("PREDICATE_SYNTAX_ERROR").Errorf("nesting depth exceeds maximum of %d", MaxNestingDepth)
	}
	for _, conj := range d.Conjunctions {
		for _, cond := range conj.Conditions {
			if err := validateCondition(cond, depth); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateCondition(c *Condition, depth int) error {
	switch {
	case c.Negation != nil:
		return validateCondition(c.Negation, depth+1)
	case c.Parenthesized != nil:
		return validateDisjunction(c.Parenthesized, depth+1)
	case c.Has != nil:
		return validateOperands(c.Has.Left)
	case c.Contains != nil:
		operands := append([]*Operand{c.Contains.Left}, c.Contains.Right...)
		return validateOperands(operands...)
	case c.Like != nil:
		return validateOperands(c.Like.Left)
	case c.InExpr != nil:
		operands := append([]*Operand{c.InExpr.Left}, c.InExpr.Right...)
		return validateOperands(operands...)
	case c.Comparison != nil:
		return validateOperands(c.Comparison.Left, c.Comparison.Right)
	}
	return nil
}

func validateOperands(operands ...*Operand) error {
	for _, o := range operands {
		if o.AttrRef == nil {
			continue
		}
		for _, seg := range o.AttrRef.Path {
			if IsReservedWord(seg) {
				return oops.Code("PREDICATE_SYNTAX_ERROR").Errorf("reserved word %q cannot be used as an attribute name", seg)
			}
		}
	}
	return nil
}
