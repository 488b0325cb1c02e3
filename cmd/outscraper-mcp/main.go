package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/outscraper/outscraper-mcp/pkg/mcpserver"
	"github.com/outscraper/outscraper-mcp/pkg/outscraper"
	"github.com/outscraper/outscraper-mcp/pkg/tools"
)

const version = "0.1.0"

var (
	transportFlag string
	addrFlag      string
	configFlag    string
	verboseFlag   bool
)

var rootCmd = &cobra.Command{
	Use:   "outscraper-mcp",
	Short: "MCP server for the Outscraper data extraction API",
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the extraction tools over MCP",
	RunE:  runServe,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the server version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version)
	},
}

func init() {
	serveCmd.Flags().StringVarP(&transportFlag, "transport", "t", "stdio", "Transport to serve on: stdio or http")
	serveCmd.Flags().StringVar(&addrFlag, "addr", "127.0.0.1:8080", "Listen address for the http transport")
	serveCmd.Flags().StringVarP(&configFlag, "config", "c", "", "Path to a yaml config file")
	serveCmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable debug logging")
	rootCmd.AddCommand(serveCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	log := newLogger(verboseFlag)

	cfg, err := loadConfig(configFlag)
	if err != nil {
		return err
	}
	if cfg.APIKey == "" {
		// Startup proceeds so that tool listing still works; every tool
		// call will report a configuration error until a key is set.
		log.Warn().Msg("OUTSCRAPER_API_KEY is not set")
	}

	client := outscraper.NewClient(cfg, log)
	server := mcpserver.New(tools.DefaultRegistry(client), version, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch transportFlag {
	case "stdio":
		return server.RunStdio(ctx)
	case "http":
		return server.RunHTTP(ctx, addrFlag)
	default:
		return fmt.Errorf("unknown transport %q (want stdio or http)", transportFlag)
	}
}

func loadConfig(path string) (*outscraper.Config, error) {
	if path == "" {
		return outscraper.ConfigFromEnv(), nil
	}
	cfg, err := outscraper.LoadConfigFile(path)
	if err != nil {
		return nil, err
	}
	return outscraper.ApplyEnvDefaults(cfg), nil
}

// newLogger writes human-readable logs to stderr. Stdout is reserved for
// the stdio MCP transport.
func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}
