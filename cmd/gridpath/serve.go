package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridpath/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve [board]",
	Short: "Serve the search replay over SSH",
	Long: `Start an SSH server that shows every connecting user a replay of the
search over one board. The search runs once at startup.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.gridpath/host_key

Examples:
  gridpath serve                      # Listen on :23235 with the default board
  gridpath serve maze.yaml --ssh :2222
  gridpath serve --host-key ./my_host_key

Users can connect with:
  ssh localhost -p 23235`,
	Args: cobra.MaximumNArgs(1),
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address host:port (default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes (default from config)")
	serveCmd.Flags().StringVar(&flagStart, "start", "", "Start cell as row,col")
	serveCmd.Flags().StringVar(&flagGoal, "goal", "", "Goal cell as row,col")
}

func runServe(_ *cobra.Command, args []string) {
	a := mustApp()

	path := ""
	if len(args) > 0 {
		path = args[0]
	}

	replay, err := a.prepareReplay(path, flagStart, flagGoal)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	opts, err := a.replayOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := a.serverConfig()
	server, err := tui.NewSSHServer(cfg, replay, opts, a.logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Serving %s on %s\n", replay.Title, server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

// serverConfig merges the server flags over the config.
func (a *app) serverConfig() tui.SSHServerConfig {
	cfg := tui.DefaultSSHServerConfig()
	if a.cfg.Server.Address != "" {
		cfg.Address = a.cfg.Server.Address
	}
	cfg.HostKeyPath = a.cfg.Server.HostKey
	if a.cfg.Server.IdleTimeout > 0 {
		cfg.IdleTimeout = time.Duration(a.cfg.Server.IdleTimeout) * time.Minute
	}

	if flagSSHAddr != "" {
		cfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}
	return cfg
}
