// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

package distributionmanagement

import (
	"context"
	"flag"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/google/buildinfo/internal/settings"
	"github.com/google/buildinfo/pkg/act"
	"github.com/google/buildinfo/pkg/act/cli"
	"github.com/google/buildinfo/pkg/distmgmt"
	"github.com/google/buildinfo/pkg/pom"
	"github.com/google/buildinfo/pkg/report"
	"github.com/google/buildinfo/tools/buildinfo/output"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// DefaultOutputFile is the report destination when none is configured.
const DefaultOutputFile = "distribution-management.csv"

// Config holds all configuration for the distribution-management command.
type Config struct {
	Project    string
	ConfigFile string
	settings.Report

	explicit func(string) bool
}

// Validate ensures the configuration is valid.
func (c Config) Validate() error {
	if c.Project == "" {
		return errors.New("project is required")
	}
	if c.FieldSeparator == "" {
		return errors.New("field-separator must not be empty")
	}
	return nil
}

// Deps holds dependencies for the command.
type Deps struct {
	IO cli.IO
	FS billy.Filesystem
}

func (d *Deps) SetIO(cio cli.IO) { d.IO = cio }

// InitDeps initializes Deps.
func InitDeps(context.Context) (*Deps, error) {
	return &Deps{FS: osfs.New("/")}, nil
}

func parseArgs(cfg *Config, flags *pflag.FlagSet, args []string) error {
	cfg.explicit = cli.ExplicitFlags(flags)
	return nil
}

// Handler reports the deployment repositories declared by the project.
func Handler(ctx context.Context, cfg Config, deps *Deps) (*act.NoOutput, error) {
	opts, err := output.Options(deps.FS, cfg.ConfigFile, cfg.Report, func(f *settings.File) settings.Report { return f.DistributionManagement }, cfg.explicit)
	if err != nil {
		return nil, err
	}
	format, err := output.Format(opts)
	if err != nil {
		return nil, err
	}
	dir, err := filepath.Abs(cfg.Project)
	if err != nil {
		return nil, errors.Wrap(err, "resolving project path")
	}
	p, err := pom.Load(deps.FS, dir)
	if err != nil {
		return nil, errors.Wrap(err, "loading project")
	}
	rec, ok := distmgmt.Extract(p)
	if !ok {
		output.Note(deps.IO.Err, "%s declares no distribution management, nothing to write.", p.Name())
		return &act.NoOutput{}, nil
	}
	r, err := report.Render(report.DistributionManagement(rec), format, report.Options{FieldSeparator: opts.FieldSeparator})
	if err != nil {
		return nil, err
	}
	if err := output.Emit(deps.FS, deps.IO.Out, opts.OutputFile, format, r); err != nil {
		return nil, err
	}
	return &act.NoOutput{}, nil
}

// Command creates a new distribution-management command instance.
func Command() *cobra.Command {
	cfg := Config{}
	cmd := &cobra.Command{
		Use:   "distribution-management [--project <dir>] [--output-file <file>] [--output-format <format>]",
		Short: "Reports the deployment repositories of a project",
		Long: `Reports the releases and snapshot repositories declared in the
<distributionManagement> section of a project's pom.xml. Values are reported
as declared, without property interpolation.

The output format is taken from --output-format or inferred from the
extension of --output-file: sh, json, csv, xml or yml. Use "-" as the
output file to print the report.`,
		Args: cobra.NoArgs,
		RunE: cli.RunE(
			&cfg,
			parseArgs,
			InitDeps,
			Handler,
		),
	}
	cmd.Flags().AddGoFlagSet(flagSet(cmd.Name(), &cfg))
	return cmd
}

// flagSet returns the command-line flags for the Config struct.
func flagSet(name string, cfg *Config) *flag.FlagSet {
	set := flag.NewFlagSet(name, flag.ContinueOnError)
	set.StringVar(&cfg.Project, "project", ".", "the directory of the pom.xml")
	set.StringVar(&cfg.ConfigFile, "config", "", "a TOML settings file")
	set.StringVar(&cfg.OutputFile, settings.FlagOutputFile, DefaultOutputFile, "the report destination, or - for stdout")
	set.StringVar(&cfg.OutputFormat, settings.FlagOutputFormat, "", "the report format: sh, json, csv, xml or yml")
	set.StringVar(&cfg.FieldSeparator, settings.FlagFieldSeparator, report.DefaultFieldSeparator, "the CSV field separator")
	return set
}
