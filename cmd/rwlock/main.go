// Command rwlock times the workload with membership checks under a shared
// lock and inserts and deletes under an exclusive one.
//
//	rwlock <initial> <operations> <member> <insert> <delete> <workers>
package main

import (
	"context"
	"os"

	"github.com/zeusync/listbench/internal/cli"
	"github.com/zeusync/listbench/internal/core/syncset"
)

func main() {
	os.Exit(cli.Bench(context.Background(), syncset.StrategyReadWrite, os.Args[1:], os.Stdout, os.Stderr))
}
