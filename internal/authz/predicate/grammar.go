// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 abac-authz Contributors

package predicate

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// conditionLexer tokenizes predicate bodies: a small ordered set of simple
// lexer rules, longest operators first so e.g. "==" is not split into two
// "=" tokens.
var conditionLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "String", Pattern: `"(\\"|[^"])*"`},
	{Name: "Number", Pattern: `[-+]?\d+(\.\d+)?`},
	{Name: "OpAnd", Pattern: `&&`},
	{Name: "OpOr", Pattern: `\|\|`},
	{Name: "OpEq", Pattern: `==`},
	{Name: "OpNe", Pattern: `!=`},
	{Name: "OpLe", Pattern: `<=`},
	{Name: "OpGe", Pattern: `>=`},
	{Name: "OpLt", Pattern: `<`},
	{Name: "OpGt", Pattern: `>`},
	{Name: "Not", Pattern: `!`},
	{Name: "Dot", Pattern: `\.`},
	{Name: "Comma", Pattern: `,`},
	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "whitespace", Pattern: `\s+`},
})

// Disjunction is an OR of Conjunctions; the top-level grammar production.
type Disjunction struct {
	Conjunctions []*Conjunction `parser:"@@ (OpOr @@)*"`
}

// Conjunction is an AND of Conditions.
type Conjunction struct {
	Conditions []*Condition `parser:"@@ (OpAnd @@)*"`
}

// Condition dispatches on whichever field is non-nil: a flat struct of
// alternatives instead of a deep alternation grammar.
type Condition struct {
	Negation      *Condition   `parser:"( Not @@"`
	Parenthesized *Disjunction `parser:"| LParen @@ RParen"`
	Has           *HasExpr     `parser:"| @@"`
	Contains      *ContainsExpr `parser:"| @@"`
	Like          *LikeExpr    `parser:"| @@"`
	InExpr        *InExpr      `parser:"| @@"`
	Comparison    *Comparison  `parser:"| @@ )"`
}

// Comparison is a binary operator applied to two operands.
type Comparison struct {
	Left  *Operand `parser:"@@"`
	Op    string   `parser:"@(OpEq | OpNe | OpLe | OpGe | OpLt | OpGt)"`
	Right *Operand `parser:"@@"`
}

// HasExpr checks whether a key path exists in a bag.
type HasExpr struct {
	Left *Operand `parser:"@@ \"has\""`
	Path []string `parser:"@Ident (Dot @Ident)*"`
}

// ContainsExpr checks membership of one or more values within a collection
// attribute; Mode is "all" or "any".
type ContainsExpr struct {
	Left  *Operand   `parser:"@@ \"contains\""`
	Mode  string     `parser:"@(\"all\" | \"any\")"`
	Right []*Operand `parser:"LParen @@ (Comma @@)* RParen"`
}

// LikeExpr matches Left against a colon-delimited glob pattern.
type LikeExpr struct {
	Left    *Operand `parser:"@@ \"like\""`
	Pattern string   `parser:"@String"`
}

// InExpr checks membership of Left within an explicit value list.
type InExpr struct {
	Left  *Operand   `parser:"@@ \"in\""`
	Right []*Operand `parser:"LParen @@ (Comma @@)* RParen"`
}

// Operand is either an attribute reference or a literal value.
type Operand struct {
	AttrRef *AttrRef `parser:"( @@"`
	Literal *Literal `parser:"| @@ )"`
}

// AttrRef is a dotted path rooted at one of subject/object/action/environment.
type AttrRef struct {
	Path []string `parser:"@Ident (Dot @Ident)+"`
}

// Literal is a string, number, or boolean constant.
type Literal struct {
	Str  *string  `parser:"( @String"`
	Num  *float64 `parser:"| @Number"`
	Bool *string  `parser:"| @(\"true\" | \"false\") )"`
}
