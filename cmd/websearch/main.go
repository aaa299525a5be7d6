// websearch searches the web and fetches pages through the Ollama web API,
// printing results as markdown that fits a character limit. It also runs the
// same operations as an MCP server.
//
// Usage:
//
//	websearch serve  [--transport stdio|http] [--addr :8080] [--config file]
//	websearch search <query> [--max-results 5] [--max-chars 120000] [--no-truncate]
//	websearch fetch  <url> [--max-chars 120000] [--no-truncate]
//	websearch schema
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "websearch",
		Short: "Web search and fetch rendered as bounded markdown",
		Long: "websearch calls the Ollama web search and web fetch APIs and renders the\n" +
			"results as markdown trimmed to a character limit. Run `websearch serve` to\n" +
			"expose the same operations as MCP tools.",
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		Version: version,
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "config file (.yaml, .yml or .toml)")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.String("log-format", "", "log format: text or json")

	root.AddCommand(newServeCmd())
	root.AddCommand(newSearchCmd())
	root.AddCommand(newFetchCmd())
	root.AddCommand(newSchemaCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
