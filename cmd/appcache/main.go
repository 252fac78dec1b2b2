package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/quantmind-br/appcache-go/internal/app"
	"github.com/quantmind-br/appcache-go/internal/config"
	"github.com/quantmind-br/appcache-go/internal/domain"
	"github.com/quantmind-br/appcache-go/internal/manifest"
	"github.com/quantmind-br/appcache-go/internal/target"
	"github.com/quantmind-br/appcache-go/internal/utils"
	"github.com/quantmind-br/appcache-go/pkg/version"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorMessage(err))
		os.Exit(1)
	}
}

// cli carries the state shared by every subcommand of one invocation
type cli struct {
	v       *viper.Viper
	cfgFile string
	verbose bool
}

func newRootCmd() *cobra.Command {
	c := &cli{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "appcache",
		Short: "Generate HTML5 Application Cache manifests",
		Long: `appcache builds HTML5 Application Cache manifest files from glob
patterns, literal entries, other manifests and the stylesheets and scripts
linked by HTML pages.

Every run bumps the manifest revision so clients notice the change.`,
		Version:       version.Short(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&c.cfgFile, "config", "", fmt.Sprintf("config file (default is %s)", config.ConfigFilePath()))
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "Verbose output")
	flags.Bool("dry-run", false, "Build manifests without writing them")
	flags.IntP("concurrency", "j", config.DefaultWorkers, "Number of targets generated in parallel")
	flags.String("log-format", config.DefaultLogFormat, "Log format (pretty or json)")

	_ = c.v.BindPFlag("output.dry_run", flags.Lookup("dry-run"))
	_ = c.v.BindPFlag("concurrency.workers", flags.Lookup("concurrency"))
	_ = c.v.BindPFlag("logging.format", flags.Lookup("log-format"))

	rootCmd.AddCommand(c.generateCmd())
	rootCmd.AddCommand(c.runCmd())
	rootCmd.AddCommand(c.inspectCmd())
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

func (c *cli) loadConfig() (*config.Config, error) {
	if c.cfgFile != "" {
		c.v.SetConfigFile(c.cfgFile)
	}
	cfg, err := config.LoadFrom(c.v)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func (c *cli) newOrchestrator(cmd *cobra.Command, cfg *config.Config, progress io.Writer) (*app.Orchestrator, error) {
	logLevel := cfg.Logging.Level
	if c.verbose {
		logLevel = "debug"
	}
	logger := utils.NewLogger(utils.LoggerOptions{
		Level:   logLevel,
		Format:  cfg.Logging.Format,
		Output:  cmd.ErrOrStderr(),
		Verbose: c.verbose,
	})

	return app.NewOrchestrator(app.OrchestratorOptions{
		CommonOptions: domain.CommonOptions{
			Verbose: c.verbose,
			DryRun:  cfg.Output.DryRun,
		},
		Config:   cfg,
		Logger:   logger,
		Progress: progress,
	})
}

// signalContext is cancelled on SIGINT or SIGTERM
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}

func (c *cli) generateCmd() *cobra.Command {
	var t target.Target

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one manifest",
		Example: `  appcache generate --dest public/manifest.appcache \
    --base-path public --cache 'js/**/*.js' --cache 'css/*.css' \
    --literal / --network '*' --fallback '/ /offline.html'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}

			orch, err := c.newOrchestrator(cmd, cfg, nil)
			if err != nil {
				return fmt.Errorf("failed to create orchestrator: %w", err)
			}

			ctx, cancel := signalContext()
			defer cancel()

			result, err := orch.Run(ctx, t)
			if err != nil {
				return err
			}
			if !result.Written {
				_, err = io.WriteString(cmd.OutOrStdout(), result.Content)
			}
			return err
		},
	}

	f := cmd.Flags()
	f.StringVar(&t.Dest, "dest", "", "Manifest file to write (required)")
	f.StringArrayVar(&t.Cache.Patterns, "cache", nil, "Glob pattern of files to cache, relative to --base-path")
	f.StringArrayVar(&t.Cache.Literals, "literal", nil, "Entry added to CACHE as-is")
	f.StringArrayVar(&t.Cache.PagesLinks, "pageslinks", nil, "HTML pages whose stylesheets and scripts are cached")
	f.StringArrayVar(&t.Network, "network", nil, "NETWORK entry")
	f.StringArrayVar(&t.Fallback, "fallback", nil, `FALLBACK entry ("offline online")`)
	f.StringArrayVar(&t.Includes, "include", nil, "Existing manifests whose entries are merged in")
	f.StringArrayVar(&t.Ignored, "ignored", nil, "Glob pattern of files left out of CACHE")
	f.StringVar(&t.BaseURL, "base-url", "", "URL prefixed to every matched file")
	f.String("base-path", config.DefaultBasePath, "Directory patterns are resolved against")
	f.Bool("prefer-online", config.DefaultPreferOnline, "Add the prefer-online setting")
	f.Bool("ignore-manifest", config.DefaultIgnoreManifest, "Keep the manifest out of its own CACHE section")
	_ = cmd.MarkFlagRequired("dest")

	_ = c.v.BindPFlag("defaults.base_path", f.Lookup("base-path"))
	_ = c.v.BindPFlag("defaults.prefer_online", f.Lookup("prefer-online"))
	_ = c.v.BindPFlag("defaults.ignore_manifest", f.Lookup("ignore-manifest"))

	return cmd
}

func (c *cli) runCmd() *cobra.Command {
	var progress bool

	cmd := &cobra.Command{
		Use:   "run <targets.yaml>",
		Short: "Generate every manifest listed in a target file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}

			file, err := target.NewLoader().Load(args[0])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("concurrency") {
				file.Options.Concurrency = cfg.Concurrency.Workers
			}

			var bar io.Writer
			if progress && !c.verbose {
				bar = cmd.ErrOrStderr()
			}

			orch, err := c.newOrchestrator(cmd, cfg, bar)
			if err != nil {
				return fmt.Errorf("failed to create orchestrator: %w", err)
			}

			ctx, cancel := signalContext()
			defer cancel()

			_, err = orch.RunAll(ctx, file.Targets, file.Options)
			return err
		},
	}

	cmd.Flags().BoolVar(&progress, "progress", false, "Show a progress bar")

	return cmd
}

func (c *cli) inspectCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "inspect <manifest>",
		Short: "Parse a manifest and print its structure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := manifest.ReadFile(utils.NewOSFileSystem(), args[0])
			if err != nil {
				return err
			}
			return writeManifest(cmd.OutOrStdout(), m, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "Output format (yaml or json)")

	return cmd
}

func writeManifest(w io.Writer, m *manifest.Manifest, format string) error {
	switch strings.ToLower(format) {
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(m); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(m)
	}
	return fmt.Errorf("unsupported format %q (use yaml or json)", format)
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Full())
		},
	}
}

// errorMessage names the failed target and the kind of failure when known
func errorMessage(err error) string {
	var targetErr *domain.TargetError
	if errors.As(err, &targetErr) {
		return "Error: " + err.Error()
	}
	if kind := domain.ErrorKind(err); kind != domain.KindOther {
		return fmt.Sprintf("Error (%s): %v", kind, err)
	}
	return "Error: " + err.Error()
}
