package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"gpufleet/internal/config"
	"gpufleet/internal/errors"
	"gpufleet/internal/ui"
)

var initForce bool

// initCmd creates a new .gpufleet.yaml configuration
var initCmd = &cobra.Command{
	Use:   "init [hosts...]",
	Short: "Create .gpufleet.yaml configuration",
	Long: `Initialize a new gpufleet configuration file.

Creates a .gpufleet.yaml file in the current directory with the given
hosts and default poll settings. Edit it afterwards to tune the interval,
port, or status command.

Examples:
  gpufleet init gpunode1 gpunode2
  gpufleet init ops@10.0.0.5:2222
  gpufleet init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand(args, initForce)
	},
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")
	rootCmd.AddCommand(initCmd)
}

// initCommand writes a starter config to the current directory.
func initCommand(hosts []string, force bool) error {
	path := filepath.Join(".", config.ConfigFileName)

	if _, err := os.Stat(path); err == nil && !force {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Config file already exists: %s", path),
			"Use --force to overwrite")
	}

	cfg := config.Default()
	if len(hosts) > 0 {
		cfg.Hosts = hosts
	}

	if err := config.Write(cfg, path); err != nil {
		return err
	}

	fmt.Printf("%s Created %s\n\n", ui.SymbolSuccess, path)
	fmt.Println("Next steps:")
	fmt.Println("  gpufleet            - Start polling and serve the dashboard")
	fmt.Println("  gpufleet --verbose  - Same, with per-poll logging")

	return nil
}
