package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/gomorph/gomorph/pkg/memdom"
	"github.com/gomorph/gomorph/pkg/reconcile"
	"github.com/gomorph/gomorph/pkg/vdom"
)

func benchCmd() *cobra.Command {
	var (
		rows  int
		iters int
		seed  int64
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark the reconciler on a keyed list workload",
		Long: `Benchmark the reconciler on a keyed list workload.

Each iteration shuffles a keyed list and reconciles the live tree
against it. The report shows wall time per iteration and the op
tally of the final pass, split by op kind.

Examples:
  gomorph bench
  gomorph bench --rows=1000 --iters=500`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(rows, iters, seed)
		},
	}

	cmd.Flags().IntVarP(&rows, "rows", "r", 100, "Number of keyed rows")
	cmd.Flags().IntVarP(&iters, "iters", "i", 100, "Number of reconcile passes")
	cmd.Flags().Int64Var(&seed, "seed", 1, "Shuffle seed")

	return cmd
}

func runBench(rows, iters int, seed int64) error {
	doc := memdom.NewDocument()
	rec := reconcile.New(doc)

	keys := make([]int, rows)
	for i := range keys {
		keys[i] = i
	}

	root, err := rec.Mount(rowList(keys))
	if err != nil {
		return fmt.Errorf("bench: mount: %w", err)
	}

	rng := rand.New(rand.NewSource(seed))
	start := time.Now()
	for i := 0; i < iters; i++ {
		rng.Shuffle(len(keys), func(a, b int) {
			keys[a], keys[b] = keys[b], keys[a]
		})
		if _, err := rec.Update(root, rowList(keys)); err != nil {
			return fmt.Errorf("bench: update %d: %w", i, err)
		}
	}
	elapsed := time.Since(start)

	fmt.Printf("rows=%d iters=%d\n", rows, iters)
	fmt.Printf("total:    %s\n", elapsed)
	fmt.Printf("per pass: %s\n", elapsed/time.Duration(iters))

	ops := rec.LastOps()
	fmt.Printf("last pass ops (%d total):\n", ops.Total())
	for _, kind := range []reconcile.OpKind{
		reconcile.OpCreateElement, reconcile.OpCreateText,
		reconcile.OpSetAttr, reconcile.OpRemoveAttr,
		reconcile.OpAttachListener, reconcile.OpDetachListener,
		reconcile.OpInsertNode, reconcile.OpMoveNode, reconcile.OpRemoveNode,
	} {
		if n := ops.Count(kind); n > 0 {
			fmt.Printf("  %-16s %d\n", kind, n)
		}
	}
	return nil
}

func rowList(keys []int) *vdom.VNode {
	return vdom.Ul(vdom.ID("bench"),
		vdom.Range(keys, func(key int, _ int) *vdom.VNode {
			return vdom.Li(vdom.Key(key), vdom.Textf("row %d", key))
		}),
	)
}
