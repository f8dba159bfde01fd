package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/KleaSCM/caithe/internal/config"
	"github.com/KleaSCM/caithe/internal/display"
	"github.com/KleaSCM/caithe/internal/hyprctl"
	"github.com/KleaSCM/caithe/internal/logger"
	"github.com/KleaSCM/caithe/internal/wallpaper"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "caithe",
		Short: "Caithe - Wallpaper manager for Hyprland",
		Long: `Caithe manages per-display wallpapers on Hyprland via hyprpaper.

Features:
  • Detect connected displays via hyprctl (xrandr fallback)
  • Per-display wallpaper placements with display modes
  • PNG/JPEG dimension probing without full decode
  • Native file picker integration
  • Persistent configuration
  • REST API for integration`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Init(viper.GetString("log_level"), viper.GetBool("pretty"))
		},
	}
)

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/caithe/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("pretty", false, "human-readable log output")
	rootCmd.PersistentFlags().Duration("timeout", hyprctl.DefaultTimeout, "per-command timeout for compositor tools")

	// Bind flags to viper
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("pretty", rootCmd.PersistentFlags().Lookup("pretty"))
	viper.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// GetConfigFile returns the config file path
func GetConfigFile() string {
	return cfgFile
}

func commandTimeout() time.Duration {
	return viper.GetDuration("timeout")
}

// newEnv builds the client, inventory and wallpaper manager the commands
// share. Refresh runs once so every command starts from a live inventory.
func newEnv(cmd *cobra.Command) (*display.Inventory, *wallpaper.Manager, error) {
	client := hyprctl.NewDefaultClient(commandTimeout())
	inv := display.NewInventory(client)
	if err := inv.Refresh(cmd.Context()); err != nil {
		return nil, nil, fmt.Errorf("failed to detect displays: %w", err)
	}
	return inv, wallpaper.NewManager(client, inv), nil
}

func newConfigManager() (*config.Manager, error) {
	configMgr, err := config.NewManager(GetConfigFile())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return configMgr, nil
}
