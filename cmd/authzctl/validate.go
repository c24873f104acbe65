// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 abac-authz Contributors

package main

import (
	"github.com/spf13/cobra"

	"github.com/truong-ngo-dev/abac-authz/internal/authz/eval"
	"github.com/truong-ngo-dev/abac-authz/internal/authz/loader"
)

// NewValidateCmd creates the validate subcommand: schema-validate a policy
// document and resolve every combining algorithm it names.
func NewValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate a policy document's schema and combining algorithms",
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, format, err := readPolicyFile(policyFile)
			if err != nil {
				return err
			}

			root, err := loader.Load(data, format)
			if err != nil {
				return err
			}

			if err := eval.ValidateTree(root); err != nil {
				return err
			}

			cmd.Println("policy document is valid")
			return nil
		},
	}
}
