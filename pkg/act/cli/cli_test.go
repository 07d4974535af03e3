// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/buildinfo/pkg/act"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Test types
type TestConfig struct {
	Name     string
	Explicit bool
}

func (c TestConfig) Validate() error {
	if c.Name == "" {
		return errors.New("name is required")
	}
	return nil
}

type TestDeps struct {
	IO IO
}

func (d *TestDeps) SetIO(cio IO) { d.IO = cio }

// Test action that writes to output
func testAction(ctx context.Context, cfg TestConfig, deps *TestDeps) (*act.NoOutput, error) {
	deps.IO.Out.Write([]byte("Hello " + cfg.Name))
	if cfg.Explicit {
		deps.IO.Out.Write([]byte("!"))
	}
	return &act.NoOutput{}, nil
}

func testInitDeps(ctx context.Context) (*TestDeps, error) {
	return &TestDeps{}, nil
}

func parseTestArgs(cfg *TestConfig, flags *pflag.FlagSet, args []string) error {
	cfg.Explicit = ExplicitFlags(flags)("name")
	return nil
}

func TestSkipArgs(t *testing.T) {
	cfg := &TestConfig{}
	err := SkipArgs(cfg, pflag.NewFlagSet("test", pflag.ContinueOnError), []string{})
	if err != nil {
		t.Errorf("SkipArgs() error = %v, wantErr %v", err, nil)
	}
}

func TestExplicitFlags(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("a", "x", "")
	flags.String("b", "y", "")
	if err := flags.Parse([]string{"--a=x"}); err != nil {
		t.Fatal(err)
	}
	explicit := ExplicitFlags(flags)
	if !explicit("a") {
		t.Error("explicit(a) = false, want true")
	}
	if explicit("b") {
		t.Error("explicit(b) = true, want false")
	}
}

func newTestCommand(cfg *TestConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use: "test",
		RunE: RunE(
			cfg,
			parseTestArgs,
			testInitDeps,
			testAction,
		),
	}
	cmd.Flags().StringVar(&cfg.Name, "name", "World", "who to greet")
	return cmd
}

func TestRunE(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"default", nil, "Hello World"},
		{"explicit", []string{"--name=Gopher"}, "Hello Gopher!"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var cfg TestConfig
			cmd := newTestCommand(&cfg)
			cmd.SetArgs(tc.args)
			var outBuf bytes.Buffer
			cmd.SetOut(&outBuf)
			if err := cmd.Execute(); err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if got := outBuf.String(); got != tc.want {
				t.Errorf("output = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRunEValidationError(t *testing.T) {
	var cfg TestConfig
	cmd := newTestCommand(&cfg)
	cmd.SetArgs([]string{"--name="})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	var outBuf bytes.Buffer
	cmd.SetOut(&outBuf)
	if err := cmd.Execute(); err == nil {
		t.Fatal("Execute() error = nil, want validation error")
	}
	if outBuf.Len() != 0 {
		t.Errorf("output = %q, want none", outBuf.String())
	}
}
