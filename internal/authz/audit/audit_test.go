// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 abac-authz Contributors

package audit_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/truong-ngo-dev/abac-authz/internal/authz/audit"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestLogger_DenialsOnlyMode(t *testing.T) {
	mem := audit.NewMemoryWriter()
	logger := audit.NewLogger(audit.ModeDenialsOnly, mem)
	defer func() { require.NoError(t, logger.Close()) }()

	require.NoError(t, logger.Log(context.Background(), audit.Entry{Decision: "DENY", Subject: "u1"}))
	require.NoError(t, logger.Log(context.Background(), audit.Entry{Decision: "PERMIT", Subject: "u2"}))

	entries := mem.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "u1", entries[0].Subject)
}

func TestLogger_AllMode_PermitsDeliveredAsynchronously(t *testing.T) {
	mem := audit.NewMemoryWriter()
	logger := audit.NewLogger(audit.ModeAll, mem)
	defer func() { require.NoError(t, logger.Close()) }()

	require.NoError(t, logger.Log(context.Background(), audit.Entry{Decision: "PERMIT", Subject: "u1"}))
	require.NoError(t, logger.Log(context.Background(), audit.Entry{Decision: "DENY", Subject: "u2"}))

	require.Eventually(t, func() bool {
		return len(mem.Entries()) == 2
	}, time.Second, 5*time.Millisecond)
}

func TestLogger_Close_DrainsBufferedAsyncEntries(t *testing.T) {
	mem := audit.NewMemoryWriter()
	logger := audit.NewLogger(audit.ModeAll, mem)

	for i := 0; i < 20; i++ {
		require.NoError(t, logger.Log(context.Background(), audit.Entry{Decision: "PERMIT", Subject: "u"}))
	}
	require.NoError(t, logger.Close())

	assert.Len(t, mem.Entries(), 20)
}

func TestMemoryWriter_Entries_ReturnsSnapshot(t *testing.T) {
	mem := audit.NewMemoryWriter()
	require.NoError(t, mem.WriteSync(context.Background(), audit.Entry{Subject: "u1"}))

	snapshot := mem.Entries()
	snapshot[0].Subject = "mutated"

	assert.Equal(t, "u1", mem.Entries()[0].Subject)
}
