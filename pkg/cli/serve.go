package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/devstub/devstub/pkg/config"
	"github.com/devstub/devstub/pkg/logging"
	"github.com/devstub/devstub/pkg/server"
	"github.com/spf13/cobra"
)

// serveFlags holds the flag values for the serve command.
type serveFlags struct {
	port       int
	configFile string
	uploadDir  string
	noLatency  bool
	seedUsers  int
	logLevel   string
	logFormat  string
	devMode    bool
}

// serveFlagVals is the package-level instance bound to cobra flags.
var serveFlagVals serveFlags

// serveCmd represents the serve command, the foreground server entrypoint.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the mock API server (default command)",
	Long: `Start the mock API server in the foreground.

The server seeds an in-memory dataset of users and posts, applies simulated
network latency to resource and auth endpoints, and exposes file upload,
error injection, and timeout endpoints for exercising client error paths.`,
	Example: `  # Start with defaults on port 3000
  devstub serve

  # Start with a config file on a custom port
  devstub serve --config devstub.yaml --port 4000

  # Disable latency simulation and seed 50 extra users
  devstub serve --no-latency --seed-users 50`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServeWithFlags(&serveFlagVals)
	},
}

func initServeCmd() {
	rootCmd.AddCommand(serveCmd)

	registerServeFlags(serveCmd)
	// The bare root command also starts the server, so it takes the same
	// flags bound to the same values.
	registerServeFlags(rootCmd)
}

func registerServeFlags(cmd *cobra.Command) {
	f := &serveFlagVals

	cmd.Flags().IntVarP(&f.port, "port", "p", config.DefaultPort, "HTTP server port")
	cmd.Flags().StringVarP(&f.configFile, "config", "c", "", "Path to YAML configuration file")
	cmd.Flags().StringVar(&f.uploadDir, "upload-dir", config.DefaultUploadDir, "Directory for uploaded files")
	cmd.Flags().BoolVar(&f.noLatency, "no-latency", false, "Disable simulated request latency")
	cmd.Flags().IntVar(&f.seedUsers, "seed-users", 0, "Number of generated users to add to the seed data")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&f.logFormat, "log-format", "text", "Log format (text, json)")
	cmd.Flags().BoolVar(&f.devMode, "dev", false, "Expose internal error detail in 500 responses")
}

// runServeWithFlags resolves the effective configuration (file first, then
// flag overrides) and runs the server until interrupted.
func runServeWithFlags(f *serveFlags) error {
	cfg, err := resolveConfig(f)
	if err != nil {
		return err
	}

	log := logging.New(logging.Config{
		Level:  logging.ParseLevel(cfg.LogLevel),
		Format: logging.ParseFormat(cfg.LogFormat),
	})

	srv, err := server.NewServer(cfg, server.WithLogger(log))
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	if err := srv.Start(); err != nil {
		return fmt.Errorf("start server: %w", err)
	}

	fmt.Printf("devstub listening on http://localhost:%d\n", cfg.Port)
	if cfg.Latency.Enabled {
		min, max := cfg.Latency.Bounds()
		fmt.Printf("latency simulation: %v-%v per request\n", min, max)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	sig := <-sigCh

	log.Info("shutting down", "signal", sig.String())
	if err := srv.Stop(); err != nil {
		return fmt.Errorf("stop server: %w", err)
	}
	return nil
}

// resolveConfig loads the config file when given and layers explicitly set
// flags on top of it.
func resolveConfig(f *serveFlags) (*config.Config, error) {
	cfg := config.Default()

	if f.configFile != "" {
		loaded, err := config.LoadFile(f.configFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	if f.port != config.DefaultPort {
		cfg.Port = f.port
	}
	if f.uploadDir != config.DefaultUploadDir {
		cfg.UploadDir = f.uploadDir
	}
	if f.noLatency {
		cfg.Latency.Enabled = false
	}
	if f.seedUsers > 0 {
		cfg.SeedUsers = f.seedUsers
	}
	if f.logLevel != "info" {
		cfg.LogLevel = f.logLevel
	}
	if f.logFormat != "text" {
		cfg.LogFormat = f.logFormat
	}
	if f.devMode {
		cfg.DevMode = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
