// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 abac-authz Contributors

package main

import (
	"github.com/spf13/cobra"
)

var policyFile string

// NewRootCmd creates the root command for the authzctl CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "authzctl",
		Short: "authzctl - policy authoring and evaluation tool for abac-authz",
		Long: `authzctl validates, evaluates, and inspects access-control policy
documents without standing up a full PDP service.`,
	}

	cmd.PersistentFlags().StringVar(&policyFile, "policy", "", "path to a policy document (JSON or YAML)")

	cmd.AddCommand(NewValidateCmd())
	cmd.AddCommand(NewEvalCmd())
	cmd.AddCommand(NewSchemaCmd())

	return cmd
}
