// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 abac-authz Contributors

package main

import (
	"os"
	"path/filepath"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/truong-ngo-dev/abac-authz/internal/authz/loader"
)

var schemaOutPath string

// NewSchemaCmd creates the schema subcommand: emit the JSON Schema for
// policy documents, either to stdout or to a file.
func NewSchemaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema for policy documents",
		RunE: func(cmd *cobra.Command, _ []string) error {
			schema, err := loader.GenerateSchema()
			if err != nil {
				return err
			}

			if schemaOutPath == "" {
				cmd.Println(string(schema))
				return nil
			}

			if err := os.MkdirAll(filepath.Dir(schemaOutPath), 0o750); err != nil {
				return oops.Code("SCHEMA_WRITE_FAILED").Wrapf(err, "creating directory for %s", schemaOutPath)
			}
			if err := os.WriteFile(schemaOutPath, schema, 0o600); err != nil {
				return oops.Code("SCHEMA_WRITE_FAILED").Wrapf(err, "writing %s", schemaOutPath)
			}
			cmd.Printf("wrote %s\n", schemaOutPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&schemaOutPath, "out", "", "file to write the schema to; defaults to stdout")
	return cmd
}
