// Command serial times the workload against the unsynchronized set with a
// single worker.
//
//	serial <initial> <operations> <member> <insert> <delete> [workers=1]
package main

import (
	"context"
	"os"

	"github.com/zeusync/listbench/internal/cli"
	"github.com/zeusync/listbench/internal/core/syncset"
)

func main() {
	os.Exit(cli.Bench(context.Background(), syncset.StrategyUnsynchronized, os.Args[1:], os.Stdout, os.Stderr))
}
