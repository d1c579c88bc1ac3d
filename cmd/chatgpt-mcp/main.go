// MCP server for the ChatGPT desktop app on macOS - JSON-RPC 2.0 over stdio

package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/syedazharmbnr1/claude-chatgpt-mcp/internal/automation"
	"github.com/syedazharmbnr1/claude-chatgpt-mcp/internal/chatgpt"
	"github.com/syedazharmbnr1/claude-chatgpt-mcp/internal/config"
	"github.com/syedazharmbnr1/claude-chatgpt-mcp/internal/server"
	"github.com/syedazharmbnr1/claude-chatgpt-mcp/internal/transport"
	"github.com/syedazharmbnr1/claude-chatgpt-mcp/internal/version"
)

func main() {
	// stdout carries JSON-RPC messages; everything else goes to stderr.
	log.SetOutput(os.Stderr)

	if err := newRootCmd().Execute(); err != nil {
		log.Fatalf("chatgpt-mcp: %v", err)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "chatgpt-mcp",
		Short:         "MCP server that drives the ChatGPT desktop app on macOS",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
	root.AddCommand(newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "chatgpt-mcp %s\n", version.Current())
			return err
		},
	}
}

func runServer() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	runner := &automation.Osascript{}
	engine := chatgpt.New(cfg, runner, &automation.ScriptClipboard{Runner: runner})
	mcpServer := server.NewMCPServer(cfg, engine)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serveDone := make(chan error, 1)
	go func() {
		tr := transport.NewStdioTransport(os.Stdin, os.Stdout)
		serveDone <- mcpServer.Serve(tr)
	}()

	select {
	case sig := <-sigChan:
		log.Printf("Received signal %v, shutting down...", sig)
		mcpServer.Shutdown()

		// The serve loop may be blocked reading stdin; a second signal
		// forces the exit.
		select {
		case err := <-serveDone:
			return err
		case <-sigChan:
			log.Println("Forced shutdown")
			return nil
		}
	case err := <-serveDone:
		return err
	}
}
