// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"carvel.dev/prepare-cspell/pkg/cmd/ui"
	"carvel.dev/prepare-cspell/pkg/cspell"
	"carvel.dev/prepare-cspell/pkg/document"
	"carvel.dev/prepare-cspell/pkg/files"
	"carvel.dev/prepare-cspell/pkg/settings"
	"carvel.dev/prepare-cspell/pkg/version"
	"github.com/cppforlife/cobrautil"
	"github.com/k14s/difflib"
	"github.com/spf13/cobra"
)

const (
	DefaultInputPath  = ".cspell.json"
	DefaultOutputPath = ".cspell.json.txt"
)

type PrepareOptions struct {
	Root  string
	Diff  bool
	Debug bool

	WebRoot             *EnvFlag
	ProjectName         *EnvFlag
	Words               *EnvFlag
	FlagWords           *EnvFlag
	IgnorePaths         *EnvFlag
	IgnoreStandardFiles *EnvFlag
}

type PrepareOutput struct {
	File files.OutputFile
	Diff string
}

func NewOptions() *PrepareOptions {
	return NewOptionsWithLookup(os.LookupEnv)
}

// NewOptionsWithLookup reads environment variables through lookupFunc
// instead of the process environment.
func NewOptionsWithLookup(lookupFunc settings.LookupFunc) *PrepareOptions {
	return &PrepareOptions{
		Root: ".",

		WebRoot:             NewEnvFlag(settings.WebRootEnv, lookupFunc),
		ProjectName:         NewEnvFlag(settings.ProjectNameEnv, lookupFunc),
		Words:               NewEnvFlag(settings.WordsEnv, lookupFunc),
		FlagWords:           NewEnvFlag(settings.FlagWordsEnv, lookupFunc),
		IgnorePaths:         NewEnvFlag(settings.IgnorePathsEnv, lookupFunc),
		IgnoreStandardFiles: NewEnvFlag(settings.IgnoreStandardFilesEnv, lookupFunc),
	}
}

func NewDefaultCmd() *cobra.Command {
	return NewCmd(NewOptions())
}

func NewCmd(o *PrepareOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prepare-cspell [input-path] [output-path]",
		Short: "prepare-cspell customizes a cspell configuration for a project",
		Long: `prepare-cspell customizes a cspell configuration for a project.

Reads input-path (default .cspell.json, '-' for stdin), adds project words,
ignore paths and dictionaries, and writes the result to output-path
(default .cspell.json.txt). Every value flag falls back to the environment
variable named in its description.`,
		Args:    cobra.MaximumNArgs(2),
		Version: version.Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.Run(args, ui.NewCustomWriterTTY(o.Debug, cmd.OutOrStdout(), cmd.ErrOrStderr()))
		},
	}

	// Affects children as well
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	// Disable docs header
	cmd.DisableAutoGenTag = true

	cmd.Flags().StringVar(&o.Root, "root", o.Root, "Project directory to scan for module descriptors and standard files")
	cmd.Flags().BoolVar(&o.Diff, "diff", false, "Print the changes made to the configuration")
	cmd.Flags().BoolVar(&o.Debug, "debug", false, "Enable debug output")

	o.envFlag(cmd, o.WebRoot, "web-root", "Web root of the project (default 'web')")
	o.envFlag(cmd, o.ProjectName, "project-name", "Project name; its part before the first '-' is an allowed word")
	o.envFlag(cmd, o.Words, "words", "Comma-separated allowed words")
	o.envFlag(cmd, o.FlagWords, "flag-words", "Comma-separated flagged words")
	o.envFlag(cmd, o.IgnorePaths, "ignore-paths", "Comma-separated additional paths to ignore")
	o.envFlag(cmd, o.IgnoreStandardFiles, "ignore-standard-files", "Set to '0' to not ignore license, changelog and similar files")

	cmd.AddCommand(NewVersionCmd(NewVersionOptions()))

	// Reconfigure Commands
	cobrautil.VisitCommands(cmd, cobrautil.ReconfigureCmdWithSubcmd,
		cobrautil.ReconfigureLeafCmds(cobrautil.DisallowExtraArgs),
		cobrautil.WrapRunEForCmd(cobrautil.ResolveFlagsForCmd))

	return cmd
}

func (o *PrepareOptions) envFlag(cmd *cobra.Command, flag *EnvFlag, name, usage string) {
	cmd.Flags().Var(flag, name, fmt.Sprintf("%s ($%s)", usage, flag.Env()))
}

func (o *PrepareOptions) Settings() settings.Settings {
	return settings.Raw{
		WebRoot:             o.WebRoot.Value(),
		ProjectName:         o.ProjectName.Value(),
		Words:               o.Words.Value(),
		FlagWords:           o.FlagWords.Value(),
		IgnorePaths:         o.IgnorePaths.Value(),
		IgnoreStandardFiles: o.IgnoreStandardFiles.Value(),
	}.Settings()
}

func (o *PrepareOptions) Run(args []string, ui ui.UI) error {
	t1 := time.Now()

	defer func() {
		ui.Debugf("total: %s\n", time.Now().Sub(t1))
	}()

	inputPath, outputPath := DefaultInputPath, DefaultOutputPath
	if len(args) > 0 {
		inputPath = args[0]
	}
	if len(args) > 1 {
		outputPath = args[1]
	}

	out, err := o.RunWithFile(files.NewFile(files.NewSource(inputPath)), outputPath, ui)
	if err != nil {
		return err
	}

	if o.Diff {
		ui.Printf("%s\n", out.Diff)
	}

	err = out.File.Create()
	if err != nil {
		return err
	}

	ui.Debugf("wrote: %s\n", out.File.Path())
	return nil
}

// RunWithFile prepares the configuration read from in. Nothing is written;
// the caller decides what to do with the returned output file.
func (o *PrepareOptions) RunWithFile(in *files.File, outputPath string, ui ui.UI) (PrepareOutput, error) {
	data, err := in.Bytes()
	if err != nil {
		return PrepareOutput{}, err
	}

	format := document.FormatJSON
	if in.Type() == files.TypeYAML {
		format = document.FormatYAML
	}

	doc, err := document.NewParser(format).ParseBytes(data, in.Description())
	if err != nil {
		return PrepareOutput{}, fmt.Errorf("Unable to read %s: %s", in.Path(), err)
	}

	original := doc.DeepCopyAsNode()

	err = cspell.NewPreparer(o.Settings(), o.Root, ui).Prepare(doc)
	if err != nil {
		return PrepareOutput{}, err
	}

	result, err := document.AsBytes(doc)
	if err != nil {
		return PrepareOutput{}, fmt.Errorf("Marshaling configuration: %s", err)
	}

	out := PrepareOutput{File: files.NewOutputFile(outputPath, result)}

	if o.Diff {
		originalBytes, err := document.AsBytes(original)
		if err != nil {
			return PrepareOutput{}, fmt.Errorf("Marshaling original configuration: %s", err)
		}
		out.Diff = difflib.PPDiff(strings.Split(string(originalBytes), "\n"), strings.Split(string(result), "\n"))
	}

	return out, nil
}
