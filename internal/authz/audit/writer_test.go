// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 abac-authz Contributors

package audit_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/truong-ngo-dev/abac-authz/internal/authz/audit"
)

func TestSlogWriter_WriteSync(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	w := audit.NewSlogWriter(logger)

	err := w.WriteSync(context.Background(), audit.Entry{
		Subject:  "u1",
		Action:   "GET /docs",
		Resource: "doc-1",
		Decision: "DENY",
	})
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "u1", entry["subject"])
	assert.Equal(t, "DENY", entry["decision"])
	assert.Equal(t, "WARN", entry["level"])
}

func TestSlogWriter_WriteSync_PermitIsInfoLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	w := audit.NewSlogWriter(logger)

	require.NoError(t, w.WriteSync(context.Background(), audit.Entry{Decision: "PERMIT"}))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "INFO", entry["level"])
}
