// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 abac-authz Contributors

package pdp

import (
	"context"
	"log/slog"
	"time"

	"github.com/samber/oops"

	"github.com/truong-ngo-dev/abac-authz/internal/authz/audit"
	"github.com/truong-ngo-dev/abac-authz/internal/authz/domain"
	"github.com/truong-ngo-dev/abac-authz/internal/authz/eval"
	"github.com/truong-ngo-dev/abac-authz/internal/authz/metrics"
)

// Engine is the top-level PDP: it validates and evaluates a policy tree,
// reduces the result to a Decision via a Strategy, and best-effort reports
// the outcome to audit and metrics.
type Engine struct {
	eval           *eval.Evaluator
	strategy       Strategy
	audit          *audit.Logger
	logger         *slog.Logger
	metricsEnabled bool
}

// NewEngine constructs an Engine. strategy is required; every other piece
// of ambient infrastructure is attached through Option and optional.
func NewEngine(evaluator *eval.Evaluator, strategy Strategy, opts ...Option) (*Engine, error) {
	if evaluator == nil {
		return nil, oops.Code("INVALID_ENGINE_CONFIG").Errorf("pdp engine requires a non-nil evaluator")
	}
	if strategy == nil {
		return nil, oops.Code("INVALID_ENGINE_CONFIG").Errorf("pdp engine requires a non-nil decision strategy")
	}
	e := &Engine{
		eval:           evaluator,
		strategy:       strategy,
		logger:         slog.Default(),
		metricsEnabled: true,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Evaluate runs the raw evaluation recursion over req's policy tree,
// without reducing it to a Decision. It validates the tree first so a
// misconfigured combining algorithm fails fast rather than surfacing as a
// spurious INDETERMINATE deep in the recursion.
func (e *Engine) Evaluate(ctx context.Context, req *AuthzRequest) (domain.EvalResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.EvalResult{}, oops.Code("REQUEST_CANCELLED").Wrap(err)
	}
	if err := eval.ValidateTree(req.RootPolicy); err != nil {
		return domain.EvalResult{}, oops.Code("INVALID_POLICY_TREE").Wrap(err)
	}
	return e.eval.Evaluate(req.Context(), req.RootPolicy), nil
}

// Authorize evaluates req and reduces the outcome to a binary Decision,
// best-effort recording an audit entry and metrics sample. A failure to
// write the audit entry or record metrics never fails the call; only a
// failure to produce a decision does.
func (e *Engine) Authorize(ctx context.Context, req *AuthzRequest) (*AuthzDecision, error) {
	start := time.Now()

	result, err := e.Evaluate(ctx, req)
	if err != nil {
		if e.metricsEnabled {
			metrics.RecordError()
		}
		return nil, err
	}

	decision := e.strategy.Decide(result)
	authzDecision := &AuthzDecision{
		Decision:  decision,
		Timestamp: time.Now().UnixMilli(),
		Details:   detailsFor(result),
	}

	duration := time.Since(start)
	if e.metricsEnabled {
		metrics.RecordEvaluation(duration, string(decision), string(result.Type))
	}
	e.writeAudit(ctx, req, result, decision, duration)

	return authzDecision, nil
}

func (e *Engine) writeAudit(ctx context.Context, req *AuthzRequest, result domain.EvalResult, decision Decision, duration time.Duration) {
	if e.audit == nil {
		return
	}
	entry := audit.Entry{
		Action:     actionName(req),
		Resource:   resourceName(req),
		Subject:    subjectID(req),
		Decision:   string(decision),
		ResultType: string(result.Type),
		Details:    detailsFor(result),
		DurationUS: duration.Microseconds(),
		Timestamp:  time.Now(),
	}
	if err := e.audit.Log(ctx, entry); err != nil {
		e.logger.Error("audit write failed", "error", err, "subject", entry.Subject, "action", entry.Action)
	}
}

func actionName(req *AuthzRequest) string {
	if req.Action == nil || req.Action.Request == nil {
		return ""
	}
	return req.Action.Request.Method + " " + req.Action.Request.Path
}

func resourceName(req *AuthzRequest) string {
	if req.Object == nil {
		return ""
	}
	return req.Object.Name
}

func subjectID(req *AuthzRequest) string {
	if req.Subject == nil {
		return ""
	}
	return req.Subject.UserID
}
