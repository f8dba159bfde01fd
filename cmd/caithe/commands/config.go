package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage Caithe configuration",
	Long:  `View and manage Caithe configuration settings.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  `Display the current Caithe configuration.`,
	Example: `  # Show configuration as YAML (default)
  caithe config show

  # Show configuration as JSON
  caithe config show --format json`,
	RunE: runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Set a configuration value",
	Long:  `Set a specific configuration value by dotted key.`,
	Example: `  # Set the default display mode
  caithe config set wallpaper.defaultMode tile

  # Set the slideshow interval
  caithe config set advanced.slideshowInterval 600

  # Enable applying to all displays by default
  caithe config set wallpaper.autoApplyAllDisplays true`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configGetCmd = &cobra.Command{
	Use:   "get KEY",
	Short: "Get a configuration value",
	Long:  `Get a specific configuration value by dotted key.`,
	Example: `  # Get the default display mode
  caithe config get wallpaper.defaultMode`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigGet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show configuration file path",
	Long:  `Display the path to the configuration file.`,
	RunE:  runConfigPath,
}

var configFormat string

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configPathCmd)

	configShowCmd.Flags().StringVarP(&configFormat, "format", "f", "yaml", "output format (yaml or json)")
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	configMgr, err := newConfigManager()
	if err != nil {
		return err
	}

	settings := configMgr.Get()

	switch configFormat {
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(settings)
	case "yaml":
		encoder := yaml.NewEncoder(os.Stdout)
		encoder.SetIndent(2)
		return encoder.Encode(settings)
	default:
		return fmt.Errorf("unsupported format: %s (use 'yaml' or 'json')", configFormat)
	}
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	configMgr, err := newConfigManager()
	if err != nil {
		return err
	}

	// Coerce to the narrowest type the value parses as.
	switch {
	case value == "true" || value == "false":
		err = configMgr.SetBool(key, value == "true")
	default:
		if n, convErr := strconv.Atoi(value); convErr == nil {
			err = configMgr.SetInt(key, n)
		} else {
			err = configMgr.SetString(key, value)
		}
	}
	if err != nil {
		return err
	}

	if err := configMgr.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Printf("Configuration updated: %s = %s\n", key, value)
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	key := args[0]

	configMgr, err := newConfigManager()
	if err != nil {
		return err
	}

	value := configMgr.GetString(key, "")
	if value == "" {
		return fmt.Errorf("configuration key not found or empty: %s", key)
	}

	fmt.Println(value)
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	configMgr, err := newConfigManager()
	if err != nil {
		return err
	}

	fmt.Println(configMgr.Path())
	return nil
}
