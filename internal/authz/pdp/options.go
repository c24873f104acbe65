// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 abac-authz Contributors

package pdp

import (
	"log/slog"

	"github.com/truong-ngo-dev/abac-authz/internal/authz/audit"
)

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithAuditLogger attaches an audit trail. Without one, Authorize never
// writes an audit entry.
func WithAuditLogger(l *audit.Logger) Option {
	return func(e *Engine) { e.audit = l }
}

// WithLogger overrides the engine's structured logger. Without one,
// slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// WithMetrics enables or disables Prometheus instrumentation. Enabled by
// default.
func WithMetrics(enabled bool) Option {
	return func(e *Engine) { e.metricsEnabled = enabled }
}
