// Command mutex times the workload with every operation behind one mutex.
//
//	mutex <initial> <operations> <member> <insert> <delete> <workers>
package main

import (
	"context"
	"os"

	"github.com/zeusync/listbench/internal/cli"
	"github.com/zeusync/listbench/internal/core/syncset"
)

func main() {
	os.Exit(cli.Bench(context.Background(), syncset.StrategyExclusive, os.Args[1:], os.Stdout, os.Stderr))
}
