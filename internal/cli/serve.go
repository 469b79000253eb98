package cli

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/Tok/SuperColliderMCP/internal/api"
	"github.com/Tok/SuperColliderMCP/internal/config"
	"github.com/Tok/SuperColliderMCP/internal/logger"
	"github.com/Tok/SuperColliderMCP/internal/tools"
)

func newServeCommand(cfg *config.Config, version string) *cobra.Command {
	var httpMode bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server (stdio by default, HTTP with --http)",
		Long: `Starts the MCP server. By default it speaks MCP over stdin/stdout for
direct integration with an MCP host. With --http it serves the streamable
HTTP transport on PORT instead, alongside a /health endpoint.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, player, err := dialPlayer(cfg)
			if err != nil {
				return err
			}
			defer client.Close()

			server := tools.NewServer(tools.NewDispatcher(player), version)

			if httpMode {
				router := api.SetupRouter(server, cfg, version)
				logger.Info("serving MCP over HTTP", logger.Fields{
					"port":    cfg.Port,
					"sc_addr": cfg.SCAddr(),
				})
				return router.Run(":" + cfg.Port)
			}

			logger.Info("serving MCP over stdio", logger.Fields{
				"sc_addr": cfg.SCAddr(),
			})
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}

	cmd.Flags().BoolVar(&httpMode, "http", false, "serve MCP over streamable HTTP instead of stdio")
	return cmd
}
