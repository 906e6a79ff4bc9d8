// Command netsmith computes graph statistics over an edge list file.
//
//	netsmith degree --input edges.csv --mode in
//	netsmith pagerank --input edges.csv --directed --damping 0.9 --out ranks.csv
//	netsmith paths --input edges.csv --source 0
//
// Settings are read from an optional YAML file (--config), an env file
// (--env-file, default .env when present), NETSMITH_* variables and flags,
// later sources overriding earlier ones.
package main

import (
	"context"
	"os"
	"os/signal"
)

var version = "dev"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := newRootCommand(version).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
