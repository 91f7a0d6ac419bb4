package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/globscope/globscope/internal/config"
	"github.com/globscope/globscope/internal/ignore"
	"github.com/globscope/globscope/internal/logging"
	"github.com/globscope/globscope/internal/pattern"
	"github.com/globscope/globscope/internal/resolver"
	"github.com/globscope/globscope/internal/rg"
	"github.com/globscope/globscope/internal/rules"
	"github.com/globscope/globscope/pkg/version"
)

var (
	flagConfig     string
	flagRoot       string
	flagRules      []string
	flagIgnores    []string
	flagIgnoreFile string
	flagGitignore  bool
	flagOutput     string // path|table|json

	// ripgrep translation modes
	flagRgFlags       bool
	flagRgIgnoreFiles []string

	flagVerbosity int
)

var rootCmd = &cobra.Command{
	Use:     "globscope",
	Short:   "Resolve which files are in scope for a search/replace run",
	Version: version.Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		logging.Setup(flagVerbosity)
		log := logging.GetLogger("cli")

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		if len(flagRgIgnoreFiles) > 0 {
			fmt.Fprintln(cmd.OutOrStdout(), rg.IgnoreGlobsString(flagRgIgnoreFiles))
			return nil
		}
		if flagRgFlags {
			fmt.Fprintln(cmd.OutOrStdout(), rg.RuleGlobsString(pattern.Normalize(cfg.Rules)))
			return nil
		}

		ignoreRules := append([]string(nil), cfg.Ignore...)
		if cfg.IgnoreFile != "" {
			loaded, err := rules.Load(cfg.IgnoreFile)
			var ifErr *rules.IgnoreFileError
			switch {
			case errors.As(err, &ifErr):
				// A missing default file is the common case and not
				// worth a warning; a missing configured file is.
				if cfg.IgnoreFile == config.DefaultIgnoreFile() {
					log.Debug().Str("path", cfg.IgnoreFile).Msg("default ignore file not present")
				} else {
					log.Warn().Str("path", cfg.IgnoreFile).Msg("ignore file not found, continuing without it")
				}
			case err != nil:
				return err
			default:
				ignoreRules = append(ignoreRules, loaded...)
			}
		}

		files, err := resolver.Resolve(cfg.Root, cfg.Rules, ignoreRules)
		if err != nil {
			return err
		}

		if cfg.RespectGitignore {
			m, err := ignore.New(ignore.Config{Root: cfg.Root, Enabled: true})
			if err != nil {
				return err
			}
			files = m.Filter(files)
		}

		if err := write(cmd.OutOrStdout(), cfg.Root, cfg.Output, files); err != nil {
			return err
		}
		if len(files) == 0 {
			os.Exit(1)
		}
		return nil
	},
}

// loadConfig merges the YAML config with the command-line flags; flags the
// user actually set take precedence.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path := flagConfig
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	fl := cmd.Flags()
	if fl.Changed("root") || cfg.Root == "" {
		cfg.Root = flagRoot
	}
	if fl.Changed("rule") || len(cfg.Rules) == 0 {
		cfg.Rules = flagRules
	}
	if fl.Changed("ignore") {
		cfg.Ignore = flagIgnores
	}
	if fl.Changed("ignore-file") || cfg.IgnoreFile == "" {
		cfg.IgnoreFile = flagIgnoreFile
	}
	if cfg.IgnoreFile == "" {
		cfg.IgnoreFile = config.DefaultIgnoreFile()
	}
	if fl.Changed("respect-gitignore") {
		cfg.RespectGitignore = flagGitignore
	}
	if fl.Changed("output") || cfg.Output == "" {
		cfg.Output = flagOutput
	}
	if len(cfg.Rules) == 0 {
		cfg.Rules = []string{"*"}
	}
	return cfg, nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "config file (default $XDG_CONFIG_HOME/globscope/config.yml)")
	rootCmd.Flags().StringVarP(&flagRoot, "root", "p", ".", "root directory to resolve against")
	rootCmd.Flags().StringSliceVarP(&flagRules, "rule", "r", nil, "include rule (repeatable), e.g. -r 'src/' -r '*.go'")
	rootCmd.Flags().StringSliceVar(&flagIgnores, "ignore", nil, "ignore rule (repeatable), '!'-prefixed rules are exceptions")
	rootCmd.Flags().StringVar(&flagIgnoreFile, "ignore-file", "", "ignore-rule file (may start with ~)")
	rootCmd.Flags().BoolVar(&flagGitignore, "respect-gitignore", false, "also drop files matched by the root's .gitignore")
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "path", "output format: path|table|json")

	rootCmd.Flags().BoolVar(&flagRgFlags, "rg-flags", false, "print the include rules as ripgrep -g flags and exit")
	rootCmd.Flags().StringSliceVar(&flagRgIgnoreFiles, "rg-ignore-file", nil, "print the ignore files as negated ripgrep -g flags and exit (repeatable)")

	rootCmd.Flags().CountVarP(&flagVerbosity, "verbose", "v", "increase log verbosity (repeatable)")
}
