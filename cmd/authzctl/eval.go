// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 abac-authz Contributors

package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/truong-ngo-dev/abac-authz/internal/authz/domain"
	"github.com/truong-ngo-dev/abac-authz/internal/authz/eval"
	"github.com/truong-ngo-dev/abac-authz/internal/authz/expr"
	"github.com/truong-ngo-dev/abac-authz/internal/authz/loader"
	"github.com/truong-ngo-dev/abac-authz/internal/authz/pdp"
	"github.com/truong-ngo-dev/abac-authz/internal/authz/predicate"
)

var (
	contextFile  string
	strategyName string
)

// requestContext is the wire shape of the --context file: a direct
// projection of domain.EvaluationContext's four fields.
type requestContext struct {
	Subject     *domain.Subject     `json:"subject"`
	Resource    *domain.Resource    `json:"resource"`
	Action      *domain.Action      `json:"action"`
	Environment *domain.Environment `json:"environment"`
}

// NewEvalCmd creates the eval subcommand: render a single access decision
// for a policy document against a request context, without standing up a
// PDP service.
func NewEvalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Evaluate a policy document against a request context",
		RunE: func(cmd *cobra.Command, _ []string) error {
			policyData, format, err := readPolicyFile(policyFile)
			if err != nil {
				return err
			}
			root, err := loader.Load(policyData, format)
			if err != nil {
				return err
			}

			reqCtx, err := readRequestContext(contextFile)
			if err != nil {
				return err
			}

			strategy, err := pdp.StrategyFor(pdp.StrategyName(strategyName))
			if err != nil {
				return err
			}

			evaluator := eval.New(expr.New(predicate.NewDefault()))
			engine, err := pdp.NewEngine(evaluator, strategy, pdp.WithMetrics(false))
			if err != nil {
				return err
			}

			authzReq, err := pdp.NewAuthzRequest(reqCtx.Subject, reqCtx.Resource, reqCtx.Action, reqCtx.Environment, root)
			if err != nil {
				return err
			}

			decision, err := engine.Authorize(context.Background(), authzReq)
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(decision, "", "  ")
			if err != nil {
				return oops.Code("DECISION_MARSHAL_FAILED").Wrap(err)
			}
			cmd.Println(string(out))
			return nil
		},
	}

	cmd.Flags().StringVar(&contextFile, "context", "", "path to a JSON request-context file")
	cmd.Flags().StringVar(&strategyName, "strategy", string(pdp.StrategyDefaultDeny), "decision strategy: default-deny, default-permit, or not-applicable-permit-indeterminate-deny")
	return cmd
}

func readRequestContext(path string) (*requestContext, error) {
	if path == "" {
		return nil, oops.Code("MISSING_CONTEXT_FLAG").Errorf("--context is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, oops.Code("CONTEXT_FILE_READ_FAILED").Wrapf(err, "reading %s", path)
	}
	var rc requestContext
	if err := json.Unmarshal(data, &rc); err != nil {
		return nil, oops.Code("CONTEXT_FILE_PARSE_FAILED").Wrapf(err, "parsing %s", path)
	}
	return &rc, nil
}
