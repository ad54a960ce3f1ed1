package cmd

import (
	"github.com/spf13/cobra"

	"github.com/s0up4200/dexarr/mcpserver"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve PokeAPI tools over MCP (stdio)",
	Long: `Run an MCP server on stdin/stdout exposing pokemon_get, generation_get,
pokemon_list and generation_list. Logs go to stderr.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	server := mcpserver.New(client, logger, version)
	return server.Serve()
}
