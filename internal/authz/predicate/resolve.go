// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 abac-authz Contributors

package predicate

import "github.com/truong-ngo-dev/abac-authz/internal/authz/domain"

// resolveOperand resolves an Operand to a runtime value. The second
// return is false when an attribute reference does not resolve to any
// value — callers treat that as "condition does not match" rather than
// as a parse or evaluation failure.
func resolveOperand(ctx *domain.EvaluationContext, o *Operand) (any, bool) {
	switch {
	case o.AttrRef != nil:
		return resolveAttrRef(ctx, o.AttrRef.Path)
	case o.Literal != nil:
		return resolveLiteral(o.Literal), true
	default:
		return nil, false
	}
}

func resolveLiteral(l *Literal) any {
	switch {
	case l.Str != nil:
		return *l.Str
	case l.Num != nil:
		return *l.Num
	case l.Bool != nil:
		return *l.Bool == "true"
	default:
		return nil
	}
}

func resolveAttrRef(ctx *domain.EvaluationContext, path []string) (any, bool) {
	if len(path) == 0 {
		return nil, false
	}
	root, rest := path[0], path[1:]
	switch root {
	case "subject":
		if ctx.Subject == nil {
			return nil, false
		}
		return resolveSubject(ctx.Subject, rest)
	case "object":
		if ctx.Object == nil {
			return nil, false
		}
		return resolveResource(ctx.Object, rest)
	case "action":
		if ctx.Action == nil {
			return nil, false
		}
		return resolveAction(ctx.Action, rest)
	case "environment":
		if ctx.Environment == nil {
			return nil, false
		}
		return resolveEnvironment(ctx.Environment, rest)
	default:
		return nil, false
	}
}

func resolveSubject(s *domain.Subject, rest []string) (any, bool) {
	if len(rest) == 0 {
		return s, true
	}
	switch rest[0] {
	case "userId":
		return s.UserID, true
	case "roles":
		return s.Roles, true
	case "attributes":
		return resolveMapPath(s.Attributes, rest[1:])
	default:
		return resolveMapPath(s.Attributes, rest)
	}
}

func resolveResource(r *domain.Resource, rest []string) (any, bool) {
	if len(rest) == 0 {
		return r, true
	}
	switch rest[0] {
	case "name":
		return r.Name, true
	case "subResourceNames":
		return r.SubResourceNames, true
	case "data":
		if m, ok := r.Data.(map[string]any); ok {
			return resolveMapPath(m, rest[1:])
		}
		if len(rest) == 1 {
			return r.Data, true
		}
		return nil, false
	case "attributes":
		return resolveMapPath(r.Attributes, rest[1:])
	default:
		return resolveMapPath(r.Attributes, rest)
	}
}

func resolveAction(a *domain.Action, rest []string) (any, bool) {
	if len(rest) == 0 {
		return a, true
	}
	switch rest[0] {
	case "request":
		if a.Request == nil {
			return nil, false
		}
		return resolveHTTPRequest(a.Request, rest[1:])
	case "attributes":
		return resolveMapPath(a.Attributes, rest[1:])
	default:
		return resolveMapPath(a.Attributes, rest)
	}
}

func resolveHTTPRequest(req *domain.HTTPRequestView, rest []string) (any, bool) {
	if len(rest) == 0 {
		return req, true
	}
	switch rest[0] {
	case "method":
		return req.Method, true
	case "path":
		return req.Path, true
	case "headers":
		return resolveStringSliceMap(req.Headers, rest[1:])
	case "query":
		return resolveStringSliceMap(req.Query, rest[1:])
	case "pathVars":
		return resolveStringMap(req.PathVars, rest[1:])
	case "cookies":
		return resolveStringMap(req.Cookies, rest[1:])
	case "body":
		if m, ok := req.Body.(map[string]any); ok {
			return resolveMapPath(m, rest[1:])
		}
		if len(rest) == 1 {
			return req.Body, true
		}
		return nil, false
	case "session":
		return resolveMapPath(req.Session, rest[1:])
	default:
		return nil, false
	}
}

func resolveEnvironment(e *domain.Environment, rest []string) (any, bool) {
	if len(rest) == 0 {
		return e, true
	}
	switch rest[0] {
	case "global":
		return resolveMapPath(e.Global, rest[1:])
	case "service":
		return resolveMapPath(e.Service, rest[1:])
	default:
		if v, ok := resolveMapPath(e.Global, rest); ok {
			return v, true
		}
		return resolveMapPath(e.Service, rest)
	}
}

func resolveMapPath(m map[string]any, rest []string) (any, bool) {
	if len(rest) == 0 {
		return m, true
	}
	v, ok := m[rest[0]]
	if !ok {
		return nil, false
	}
	if len(rest) == 1 {
		return v, true
	}
	nested, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	return resolveMapPath(nested, rest[1:])
}

func resolveStringSliceMap(m map[string][]string, rest []string) (any, bool) {
	if len(rest) == 0 {
		return m, true
	}
	v, ok := m[rest[0]]
	return v, ok
}

func resolveStringMap(m map[string]string, rest []string) (any, bool) {
	if len(rest) == 0 {
		return m, true
	}
	v, ok := m[rest[0]]
	return v, ok
}
