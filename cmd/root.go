package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kamal-hamza/uigen/internal/adapters/repository"
	"github.com/kamal-hamza/uigen/internal/core/services"
	"github.com/kamal-hamza/uigen/pkg/config"
	"github.com/kamal-hamza/uigen/pkg/logging"
	"github.com/kamal-hamza/uigen/pkg/ui"
)

// Version information - these can be set during build with ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	configPath string
	quiet      bool
	verbose    bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "uigen <input> <output>",
	Short: "Embed a text asset in a C/C++ source fragment",
	Long: `Read a text asset (e.g. UI markup) and write a source fragment declaring

  const char *ui_text = R"(
  <contents>
  )";

The contents are embedded verbatim. Nothing is escaped, so an asset that
contains )" will produce a fragment the compiler rejects; uigen warns about
this on stderr but still writes the file.`,
	Args:          cobra.ExactArgs(2),
	SilenceErrors: true,
	RunE:          runGenerate,
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.FormatError(err.Error()))
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate(
		ui.StyleTitle.Render("uigen") + "\n" +
			ui.RenderKeyValue("Version", Version) + "\n" +
			ui.RenderKeyValue("Commit", GitCommit) + "\n" +
			ui.RenderKeyValue("Build Date", BuildDate) + "\n")

	rootCmd.Flags().StringVar(&configPath, "config", "", "optional YAML config file")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress the success message")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	// Arguments are valid from here on; don't print usage for I/O failures
	cmd.SilenceUsage = true

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ui.SetTheme(cfg.ColorTheme)

	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	logger := logging.New(level, cmd.ErrOrStderr())
	defer logger.Sync()

	svc := services.NewEmbedService(repository.NewOsFileStore(), cfg.Mode(), logger)

	resp, err := svc.Generate(getContext(), services.GenerateRequest{
		InputPath:  args[0],
		OutputPath: args[1],
	})
	if err != nil {
		logger.Debug("generation failed", zap.Error(err))
		return err
	}

	if resp.DelimiterCollision {
		fmt.Fprintln(cmd.ErrOrStderr(), ui.FormatCollision(resp.InputPath, resp.OutputPath))
	}

	if !quiet && !cfg.Quiet {
		fmt.Fprintln(cmd.OutOrStdout(), ui.FormatGenerated(resp.OutputPath, resp.InputPath, resp.OutputBytes))
	}

	return nil
}

// loadConfig reads the --config file; without the flag, defaults apply
func loadConfig() (*config.Config, error) {
	if configPath == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// getContext returns a context for operations
func getContext() context.Context {
	return context.Background()
}
