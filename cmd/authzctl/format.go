// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 abac-authz Contributors

package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/oops"

	"github.com/truong-ngo-dev/abac-authz/internal/authz/loader"
)

func readPolicyFile(path string) ([]byte, loader.Format, error) {
	if path == "" {
		return nil, "", oops.Code("MISSING_POLICY_FLAG").Errorf("--policy is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", oops.Code("POLICY_FILE_READ_FAILED").Wrapf(err, "reading %s", path)
	}
	return data, formatFromExt(path), nil
}

func formatFromExt(path string) loader.Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return loader.FormatYAML
	default:
		return loader.FormatJSON
	}
}
