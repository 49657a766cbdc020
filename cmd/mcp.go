package cmd

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/rickcrawford/tokenwc/internal/config"
	mcpserver "github.com/rickcrawford/tokenwc/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server exposing token counting tools",
	Long: `Start an MCP server that provides count_tokens and count_file tools.
Supports both stdio mode (for Claude Desktop) and HTTP mode (for Streamable HTTP).`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)

	mcpCmd.Flags().String("mcp-transport", "stdio", "MCP server transport: stdio (Claude Desktop) or http (Streamable HTTP)")
	mcpCmd.Flags().String("mcp-addr", "", "address for HTTP mode MCP server (overrides config)")
	mcpCmd.Flags().StringP("tokenizer", "t", "", "path to a HuggingFace tokenizer.json file")
	mcpCmd.Flags().StringP("name", "n", "", "shipped tokenizer name (e.g. gpt2, gpt4)")
	mcpCmd.Flags().Int64("max-concurrent", 0, "max concurrent tool calls (default: 4)")
	mcpCmd.MarkFlagsMutuallyExclusive("tokenizer", "name")
}

func runMCP(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	mcpTransport, _ := cmd.Flags().GetString("mcp-transport")
	if mcpTransport != "stdio" && mcpTransport != "http" {
		return fmt.Errorf("invalid mcp-transport: %s (must be stdio or http)", mcpTransport)
	}

	mcpAddr := cfg.MCP.Addr
	if v, _ := cmd.Flags().GetString("mcp-addr"); v != "" {
		mcpAddr = v
	}

	tk, err := loadTokenizer(cmd, cfg)
	if err != nil {
		return err
	}
	log.Printf("token counter ready (tokenizer: %s)", tk.Name())

	maxConcurrent, _ := cmd.Flags().GetInt64("max-concurrent")

	mcpServer := mcpserver.New(mcpserver.Deps{
		Tokenizer:     tk,
		MaxConcurrent: maxConcurrent,
	})

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("shutting down MCP server...")
		cancel()
	}()

	log.Printf("starting MCP server (transport: %s)", mcpTransport)

	if mcpTransport == "http" {
		return runMCPHTTP(ctx, mcpServer, mcpAddr)
	}

	return runMCPStdio(ctx, mcpServer)
}

func runMCPStdio(ctx context.Context, mcpServer *server.MCPServer) error {
	log.Println("MCP stdio mode enabled (use with Claude Desktop)")

	done := make(chan error, 1)
	go func() {
		done <- server.ServeStdio(mcpServer)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		return err
	}
}

func runMCPHTTP(ctx context.Context, mcpServer *server.MCPServer, addr string) error {
	log.Printf("MCP HTTP mode enabled on %s", addr)

	streamable := server.NewStreamableHTTPServer(mcpServer)

	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok", "message": "MCP server running"}`))
	})
	r.Handle("/mcp", streamable)

	httpServer := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	go func() {
		<-ctx.Done()
		httpServer.Close()
	}()

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	return httpServer.Serve(listener)
}
