// readlens - readability and keyword analysis for English text
package main

import (
	"os"

	"github.com/sanonone/readlens/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
