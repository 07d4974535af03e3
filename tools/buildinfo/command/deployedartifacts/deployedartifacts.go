// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

package deployedartifacts

import (
	"context"
	"flag"
	"log"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/google/buildinfo/internal/settings"
	"github.com/google/buildinfo/pkg/act"
	"github.com/google/buildinfo/pkg/act/cli"
	"github.com/google/buildinfo/pkg/collect"
	"github.com/google/buildinfo/pkg/pom"
	"github.com/google/buildinfo/pkg/report"
	"github.com/google/buildinfo/tools/buildinfo/output"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// DefaultOutputFile is the report destination when none is configured.
const DefaultOutputFile = "artifacts.csv"

// Config holds all configuration for the deployed-artifacts command.
type Config struct {
	Project           string
	ConfigFile        string
	SnapshotTimestamp string
	settings.Report

	// explicit reports the flags set on the command line.
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

// Handler lists the artifacts deployed by every module of the build.
func Handler(ctx context.Context, cfg Config, deps *Deps) (*act.NoOutput, error) {
	opts, err := output.Options(deps.FS, cfg.ConfigFile, cfg.Report, func(f *settings.File) settings.Report { return f.DeployedArtifacts }, cfg.explicit)
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
	reactor, err := pom.LoadReactor(deps.FS, dir)
	if err != nil {
		return nil, errors.Wrap(err, "loading build")
	}
	var acc collect.Accumulator
	var res collect.Result
	for i, p := range reactor {
		m, err := module(deps.FS, p, cfg.SnapshotTimestamp)
		if err != nil {
			return nil, err
		}
		if m.RepositoryURL == "" {
			log.Printf("Skipping %s: no deployment repository", m.Name)
		}
		acc, res, err = acc.VisitIndexed(i, len(reactor), m)
		if err != nil {
			return nil, err
		}
	}
	if !res.Complete || res.Empty() {
		output.Note(deps.IO.Err, "No deployed artifacts in %d modules, nothing to write.", acc.Visited())
		return &act.NoOutput{}, nil
	}
	r, err := report.Render(report.Artifacts(res.Records), format, report.Options{FieldSeparator: opts.FieldSeparator})
	if err != nil {
		return nil, err
	}
	if err := output.Emit(deps.FS, deps.IO.Out, opts.OutputFile, format, r); err != nil {
		return nil, err
	}
	return &act.NoOutput{}, nil
}

func module(fs billy.Filesystem, p *pom.Project, timestamp string) (collect.Module, error) {
	primary, attached, err := p.Artifacts(fs, timestamp)
	if err != nil {
		return collect.Module{}, errors.Wrapf(err, "listing artifacts of %s", p.Name())
	}
	m := collect.Module{Name: p.Name(), Primary: primary, Attached: attached}
	if repo := p.DeploymentRepository(); repo != nil {
		m.RepositoryURL = repo.URL
	}
	return m, nil
}

// Command creates a new deployed-artifacts command instance.
func Command() *cobra.Command {
	cfg := Config{}
	cmd := &cobra.Command{
		Use:   "deployed-artifacts [--project <dir>] [--output-file <file>] [--output-format <format>]",
		Short: "Lists the artifacts deployed by a build and their repository URLs",
		Long: `Lists the primary and attached artifacts of every module of a Maven build,
each with the URL it is deployed to in the module's distribution management
repository. Modules without a deployment repository are skipped.

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
	set.StringVar(&cfg.Project, "project", ".", "the directory of the root pom.xml")
	set.StringVar(&cfg.ConfigFile, "config", "", "a TOML settings file")
	set.StringVar(&cfg.SnapshotTimestamp, "snapshot-timestamp", "", "the deployment timestamp of snapshot versions, as yyyyMMdd.HHmmss-N")
	set.StringVar(&cfg.OutputFile, settings.FlagOutputFile, DefaultOutputFile, "the report destination, or - for stdout")
	set.StringVar(&cfg.OutputFormat, settings.FlagOutputFormat, "", "the report format: sh, json, csv, xml or yml")
	set.StringVar(&cfg.FieldSeparator, settings.FlagFieldSeparator, report.DefaultFieldSeparator, "the CSV field separator")
	return set
}
