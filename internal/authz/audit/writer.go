// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 abac-authz Contributors

package audit

import (
	"context"
	"log/slog"
	"sync"

	"github.com/oklog/ulid/v2"
)

// SlogWriter writes audit entries through a structured logger. It carries
// no persistence of its own; durable storage is the caller's concern, via
// whatever sink the logger's handler is configured to write to.
type SlogWriter struct {
	logger *slog.Logger
}

// NewSlogWriter builds a SlogWriter. A nil logger falls back to
// slog.Default().
func NewSlogWriter(logger *slog.Logger) *SlogWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogWriter{logger: logger}
}

func (w *SlogWriter) attrs(entry Entry) []any {
	return []any{
		"audit_id", ulid.Make().String(),
		"subject", entry.Subject,
		"action", entry.Action,
		"resource", entry.Resource,
		"decision", entry.Decision,
		"result_type", entry.ResultType,
		"details", entry.Details,
		"duration_us", entry.DurationUS,
		"timestamp", entry.Timestamp,
	}
}

// WriteSync logs entry at a level matching its decision and returns the
// logging outcome, which for slog is always nil; the signature exists so
// SlogWriter satisfies Writer alongside backends that can actually fail.
func (w *SlogWriter) WriteSync(_ context.Context, entry Entry) error {
	level := slog.LevelInfo
	if entry.Decision == "DENY" {
		level = slog.LevelWarn
	}
	w.logger.Log(context.Background(), level, "access decision", w.attrs(entry)...)
	return nil
}

// WriteAsync logs entry the same way as WriteSync. The distinction between
// sync and async delivery is Logger's concern, not the writer's.
func (w *SlogWriter) WriteAsync(entry Entry) error {
	return w.WriteSync(context.Background(), entry)
}

// Close is a no-op: SlogWriter owns no resources.
func (w *SlogWriter) Close() error { return nil }

// MemoryWriter collects entries in memory. It exists for tests and for
// embedding callers that want to inspect recent decisions without wiring a
// real sink.
type MemoryWriter struct {
	mu      sync.Mutex
	entries []Entry
}

// NewMemoryWriter builds an empty MemoryWriter.
func NewMemoryWriter() *MemoryWriter {
	return &MemoryWriter{}
}

// WriteSync appends entry.
func (w *MemoryWriter) WriteSync(_ context.Context, entry Entry) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.entries = append(w.entries, entry)
	return nil
}

// WriteAsync appends entry.
func (w *MemoryWriter) WriteAsync(entry Entry) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.entries = append(w.entries, entry)
	return nil
}

// Close is a no-op.
func (w *MemoryWriter) Close() error { return nil }

// Entries returns a snapshot of everything written so far.
func (w *MemoryWriter) Entries() []Entry {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]Entry, len(w.entries))
	copy(out, w.entries)
	return out
}
