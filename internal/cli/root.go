package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"gpufleet/internal/config"
	"gpufleet/internal/errors"
)

// Global flags
var (
	configFlag   string
	portFlag     int
	intervalFlag time.Duration
	commandFlag  string
	timeoutFlag  time.Duration
	verboseFlag  bool
	insecureFlag bool
)

// rootCmd is the top-level command. Running it with no subcommand starts
// the dashboard.
var rootCmd = &cobra.Command{
	Use:   "gpufleet [hosts...]",
	Short: "Live GPU dashboard for a fleet of SSH hosts",
	Long: `gpufleet polls gpustat over SSH on every configured host and serves
a live dashboard in the browser.

Hosts may be plain names, user@host, host:port, or SSH config aliases.
Hosts given as arguments replace the configured host list; flags override
individual config file values.

Examples:
  gpufleet gpunode1 gpunode2
  gpufleet ops@10.0.0.5:2222 --interval 10s
  gpufleet --config fleet.yaml --port 8080
  gpufleet --command "nvidia-smi" gpunode1`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := buildConfig(cmd, args)
		if err != nil {
			return err
		}
		return serve(cfg)
	},
}

// buildConfig layers command-line flags over the loaded config file.
// Only flags the user actually set override file values.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg, err := config.LoadOrDefault(configFlag)
	if err != nil {
		return nil, err
	}

	if len(args) > 0 {
		cfg.Hosts = args
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = portFlag
	}
	if cmd.Flags().Changed("interval") {
		cfg.Interval = intervalFlag
	}
	if cmd.Flags().Changed("command") {
		cfg.Command = commandFlag
	}
	if cmd.Flags().Changed("dial-timeout") {
		cfg.DialTimeout = timeoutFlag
	}
	if verboseFlag {
		cfg.Verbose = true
	}

	if cfg.Interval < 500*time.Millisecond {
		return nil, errors.New(errors.ErrConfig,
			fmt.Sprintf("Interval too short: %s", cfg.Interval),
			"Minimum interval is 500ms to avoid overwhelming hosts")
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, errors.New(errors.ErrConfig,
			fmt.Sprintf("Invalid port: %d", cfg.Port),
			"Use a port between 1 and 65535")
	}
	return cfg, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file path (default .gpufleet.yaml)")
	rootCmd.Flags().IntVar(&portFlag, "port", config.DefaultPort, "dashboard listen port")
	rootCmd.Flags().DurationVar(&intervalFlag, "interval", 5*time.Second, "poll interval per host")
	rootCmd.Flags().StringVar(&commandFlag, "command", "", "status command to run on each host")
	rootCmd.Flags().DurationVar(&timeoutFlag, "dial-timeout", config.DefaultDialTimeout, "SSH connect timeout")
	rootCmd.Flags().BoolVar(&insecureFlag, "insecure", false, "skip host key verification")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable per-poll debug logging")
}

// Execute runs the root command. Errors are printed with their suggestion
// text and the process exits non-zero.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
