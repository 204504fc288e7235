package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ukaji3/nbspell-go/internal/config"
	"github.com/ukaji3/nbspell-go/internal/logging"
	"github.com/ukaji3/nbspell-go/pkg/nbspell"
	"github.com/ukaji3/nbspell-go/pkg/nbspell/models"
	"github.com/ukaji3/nbspell-go/pkg/nbspell/output"
)

// errMisspelled signals a completed run that found unknown words. The report
// has already been written, so nothing else is printed for it.
var errMisspelled = errors.New("misspelled words found")

type checkFlags struct {
	configPath     string
	ignoreWords    []string
	ignoreFile     string
	extension      string
	exclude        []string
	dictionaries   []string
	noBuiltinDict  bool
	caseSensitive  bool
	markdownAware  bool
	suggest        bool
	maxSuggestions int
	format         string
	outputPath     string
	pretty         bool
	logLevel       string
	logFormat      string
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	flags := &checkFlags{}

	rootCmd := &cobra.Command{
		Use:   "nbspell [root]",
		Short: "Spell check the markdown cells of Jupyter notebooks",
		Long: `nbspell walks a directory tree, reads every notebook it finds, and checks
the words of its markdown cells against a spelling dictionary.

It exits with status 1 when any unknown word is found.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, flags, stdout, stderr)
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	f := rootCmd.Flags()
	rootCmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Configuration file path (default: nbspell.toml, .nbspell.toml or .nbspell.yaml)")
	f.StringSliceVarP(&flags.ignoreWords, "ignore", "i", nil, "Words to accept (repeatable, comma separated)")
	f.StringVar(&flags.ignoreFile, "ignore-file", "", "File with words to accept, one per line")
	f.StringVar(&flags.extension, "ext", "", "Notebook file suffix (default: .ipynb)")
	f.StringSliceVar(&flags.exclude, "exclude", nil, "Glob patterns of files and directories to skip")
	f.StringSliceVar(&flags.dictionaries, "dict", nil, "Extra dictionary files (word list, .dic, .json, .json.gz)")
	f.BoolVar(&flags.noBuiltinDict, "no-builtin-dict", false, "Do not load the embedded English dictionary")
	f.BoolVar(&flags.caseSensitive, "case-sensitive", false, "Match words case-sensitively")
	f.BoolVar(&flags.markdownAware, "markdown-aware", false, "Skip code spans, code blocks, link targets and HTML tags")
	f.BoolVar(&flags.suggest, "suggest", false, "Show correction suggestions")
	f.IntVar(&flags.maxSuggestions, "max-suggestions", 0, "Suggestions per word")
	f.StringVarP(&flags.format, "format", "f", "", "Output format: text, json, table, xlsx")
	f.StringVarP(&flags.outputPath, "output", "o", "", "Output file path (default: stdout)")
	f.BoolVar(&flags.pretty, "pretty", false, "Pretty-print JSON output")
	f.StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	f.StringVar(&flags.logFormat, "log-format", "", "Log format: console, json")

	rootCmd.AddCommand(newConfigCommand(flags, stdout))

	return rootCmd
}

func runCheck(cmd *cobra.Command, args []string, flags *checkFlags, stdout, stderr io.Writer) error {
	cfg, _, _, err := config.Read(flags.configPath)
	if err != nil {
		return err
	}
	applyFlags(cmd, cfg, flags, args)
	if err := cfg.Finalize(); err != nil {
		return err
	}

	logger, err := logging.NewFromConfig(cfg, stderr)
	if err != nil {
		return err
	}

	opts, err := cfg.CheckOptions()
	if err != nil {
		return err
	}
	opts.Logger = logger

	report, err := nbspell.Check(opts)
	if err != nil {
		return err
	}

	format, err := output.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}
	if err := writeReport(report, format, cfg, stdout); err != nil {
		return err
	}

	if !report.Empty() {
		return errMisspelled
	}
	return nil
}

// applyFlags layers explicitly set flags and the positional root over cfg.
func applyFlags(cmd *cobra.Command, cfg *config.Config, flags *checkFlags, args []string) {
	if len(args) == 1 {
		cfg.Root = args[0]
	}
	f := cmd.Flags()
	if f.Changed("ignore") {
		cfg.IgnoreWords = append(cfg.IgnoreWords, flags.ignoreWords...)
	}
	if f.Changed("ignore-file") {
		cfg.IgnoreFile = flags.ignoreFile
	}
	if f.Changed("ext") {
		cfg.Extension = flags.extension
	}
	if f.Changed("exclude") {
		cfg.Exclude = append(cfg.Exclude, flags.exclude...)
	}
	if f.Changed("dict") {
		cfg.Dictionaries = append(cfg.Dictionaries, flags.dictionaries...)
	}
	if f.Changed("no-builtin-dict") {
		cfg.BuiltinDictionary = !flags.noBuiltinDict
	}
	if f.Changed("case-sensitive") {
		cfg.CaseSensitive = flags.caseSensitive
	}
	if f.Changed("markdown-aware") {
		cfg.MarkdownAware = flags.markdownAware
	}
	if f.Changed("suggest") {
		cfg.Suggest = flags.suggest
	}
	if f.Changed("max-suggestions") {
		cfg.MaxSuggestions = flags.maxSuggestions
	}
	if f.Changed("format") {
		cfg.Output.Format = flags.format
	}
	if f.Changed("output") {
		cfg.Output.Path = flags.outputPath
	}
	if f.Changed("pretty") {
		cfg.Output.Pretty = flags.pretty
	}
	if f.Changed("log-level") {
		cfg.Logging.Level = flags.logLevel
	}
	if f.Changed("log-format") {
		cfg.Logging.Format = flags.logFormat
	}
}

func writeReport(r *models.Report, format output.Format, cfg *config.Config, stdout io.Writer) error {
	opts := output.Options{
		Format:      format,
		Pretty:      cfg.Output.Pretty,
		Suggestions: cfg.Suggest,
	}

	if cfg.Output.Path == "" {
		opts.Color = output.ShouldColorize(stdout)
		return output.Write(stdout, r, opts)
	}

	file, err := os.Create(cfg.Output.Path)
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := output.Write(file, r, opts); err != nil {
		file.Close()
		return fmt.Errorf("failed to write output: %w", err)
	}
	return file.Close()
}
