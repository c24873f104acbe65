// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 abac-authz Contributors

// Package audit provides a structured audit trail for access-control
// decisions. It is ambient infrastructure the PDP engine may optionally
// attach; nothing in the evaluation core depends on it.
package audit

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Mode controls which decisions are logged.
type Mode string

// Audit logging modes.
const (
	ModeDenialsOnly Mode = "denials_only" // deny + default-applied-deny
	ModeAll         Mode = "all"          // everything; permits logged async
)

// Entry is a single access-control decision to be logged. Decision and
// ResultType are kept as plain strings (rather than pdp.Decision /
// domain.EvalResultType) so this package never needs to import pdp,
// which would otherwise import audit right back.
type Entry struct {
	Subject    string
	Action     string
	Resource   string
	Decision   string
	ResultType string
	Details    any
	DurationUS int64
	Timestamp  time.Time
}

// Writer is the interface for delivering audit entries to a backend.
type Writer interface {
	WriteSync(ctx context.Context, entry Entry) error
	WriteAsync(entry Entry) error
	Close() error
}

var channelFullCounter = promauto.NewCounter(prometheus.CounterOpts{
	Name: "abac_audit_channel_full_total",
	Help: "Total number of times the async audit channel was full and an entry was dropped",
})

var writeFailuresCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "abac_audit_write_failures_total",
	Help: "Total number of audit write failures",
}, []string{"mode"})

// Logger routes audit entries to a Writer based on Mode and decision.
type Logger struct {
	mode      Mode
	writer    Writer
	asyncChan chan Entry
	stopChan  chan struct{}
	wg        sync.WaitGroup
}

// NewLogger starts a Logger with a background consumer for asynchronously
// delivered entries.
func NewLogger(mode Mode, writer Writer) *Logger {
	l := &Logger{
		mode:      mode,
		writer:    writer,
		asyncChan: make(chan Entry, 1000),
		stopChan:  make(chan struct{}),
	}
	l.wg.Add(1)
	go l.asyncConsumer()
	return l
}

// Log routes entry according to the configured mode: denials are always
// written synchronously so a failure is observable to the caller; permits
// in ModeAll are delivered asynchronously and never block evaluation.
func (l *Logger) Log(ctx context.Context, entry Entry) error {
	shouldLog, useSync := l.shouldLog(entry.Decision)
	if !shouldLog {
		return nil
	}
	if useSync {
		return l.writer.WriteSync(ctx, entry)
	}
	select {
	case l.asyncChan <- entry:
		return nil
	default:
		channelFullCounter.Inc()
		return nil
	}
}

func (l *Logger) shouldLog(decision string) (shouldLog, useSync bool) {
	switch l.mode {
	case ModeDenialsOnly:
		return decision == "DENY", true
	case ModeAll:
		if decision == "DENY" {
			return true, true
		}
		return true, false
	default:
		return false, false
	}
}

func (l *Logger) asyncConsumer() {
	defer l.wg.Done()
	for {
		select {
		case entry := <-l.asyncChan:
			if err := l.writer.WriteAsync(entry); err != nil {
				slog.Error("async audit write failed", "error", err, "subject", entry.Subject, "action", entry.Action)
				writeFailuresCounter.WithLabelValues("async").Inc()
			}
		case <-l.stopChan:
			l.drainAsync()
			return
		}
	}
}

func (l *Logger) drainAsync() {
	for {
		select {
		case entry := <-l.asyncChan:
			if err := l.writer.WriteAsync(entry); err != nil {
				slog.Error("async audit write failed during drain", "error", err, "subject", entry.Subject)
				writeFailuresCounter.WithLabelValues("async").Inc()
			}
		default:
			return
		}
	}
}

// Close stops the background consumer, draining any buffered entries, and
// closes the underlying writer.
func (l *Logger) Close() error {
	close(l.stopChan)
	l.wg.Wait()
	return l.writer.Close()
}
