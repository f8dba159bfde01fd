package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/KleaSCM/caithe/internal/api"
	"github.com/KleaSCM/caithe/internal/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Caithe API server",
	Long: `Start the Caithe HTTP server.

The server exposes the display inventory, wallpaper placements and
settings over a REST API, plus a websocket stream of placement changes.`,
	Example: `  # Start server on default port (8080)
  caithe serve

  # Start server on custom port
  caithe serve --port 9090

  # Start with debug logging
  caithe serve --log-level debug`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().Int("port", 8080, "server port")
	viper.BindPFlag("server_port", serveCmd.Flags().Lookup("port"))
}

func runServe(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("serve")

	inv, wm, err := newEnv(cmd)
	if err != nil {
		return err
	}
	configMgr, err := newConfigManager()
	if err != nil {
		return err
	}
	restorePlacements(cmd, inv, wm, configMgr)

	port := viper.GetInt("server_port")
	server := api.NewServer(inv, wm, configMgr)

	// Start server in a goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start(port)
	}()

	log.Info().Int("port", port).Str("config", configMgr.Path()).Int("displays", inv.Count()).Msg("Caithe is running")
	fmt.Printf("API: http://localhost:%d/api\n", port)
	fmt.Println("Press Ctrl+C to stop")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-sigChan:
	}

	fmt.Println()
	log.Info().Msg("Shutting down")
	return persistPlacements(inv, wm, configMgr)
}
