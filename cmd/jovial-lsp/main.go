// Command jovial-lsp is a single-shot query runner over the JOVIAL J73
// semantic model: read one source file, parse it once, answer one query,
// exit. It is not a JSON-RPC server — framing requests over LSP and
// synchronising document state is the job of whatever host embeds the
// jovial package.
package main

import (
	"os"

	"github.com/Zaneham/Jovial-LSP/cmd/jovial-lsp/cmd"
)

func main() {
	switch err := cmd.Execute(); {
	case err == nil:
		os.Exit(0)
	case cmd.IsNoResult(err):
		os.Exit(2)
	default:
		os.Exit(1)
	}
}
