package main

import (
	"fmt"
	"io"
	"iter"
	"math/rand/v2"
	"runtime"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/phroun/idtree"
)

type BenchResult struct {
	Name     string
	Duration time.Duration
	Ops      int
	Extra    string
}

func (r BenchResult) String() string {
	if r.Ops > 0 {
		opsPerSec := float64(r.Ops) / r.Duration.Seconds()
		if r.Extra != "" {
			return fmt.Sprintf("%-40s %12v  (%d ops, %.2f ops/sec) %s", r.Name, r.Duration.Round(time.Microsecond), r.Ops, opsPerSec, r.Extra)
		}
		return fmt.Sprintf("%-40s %12v  (%d ops, %.2f ops/sec)", r.Name, r.Duration.Round(time.Microsecond), r.Ops, opsPerSec)
	}
	if r.Extra != "" {
		return fmt.Sprintf("%-40s %12v  %s", r.Name, r.Duration.Round(time.Microsecond), r.Extra)
	}
	return fmt.Sprintf("%-40s %12v", r.Name, r.Duration.Round(time.Microsecond))
}

type benchConfig struct {
	nodes  int
	fanout int
	ops    int
	seed   uint64
}

func newBenchCmd(a *app) *cobra.Command {
	var bc benchConfig

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time the core tree operations on a large tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if bc.nodes < 2 || bc.fanout < 1 || bc.ops < 1 {
				return fmt.Errorf("bench: --nodes must be at least 2, --fanout and --ops at least 1")
			}
			return runBench(cmd.OutOrStdout(), bc, a.logger)
		},
	}

	cmd.Flags().IntVar(&bc.nodes, "nodes", 1_000_000, "number of nodes in the benchmark tree")
	cmd.Flags().IntVar(&bc.fanout, "fanout", 8, "children per internal node")
	cmd.Flags().IntVar(&bc.ops, "ops", 100_000, "operations per mutation benchmark")
	cmd.Flags().Uint64Var(&bc.seed, "seed", 1, "seed for the random workload")
	return cmd
}

// benchState is the tree under test plus every id it was built with.
type benchState struct {
	tree *idtree.Tree[int]
	ids  []idtree.NodeID
	rng  *rand.Rand
}

func runBench(out io.Writer, bc benchConfig, logger zerolog.Logger) error {
	fmt.Fprintln(out, "idtree Benchmark")
	fmt.Fprintln(out, "================")
	fmt.Fprintf(out, "Nodes: %d, fanout: %d, ops: %d\n", bc.nodes, bc.fanout, bc.ops)
	fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
	fmt.Fprintf(out, "GOMAXPROCS: %d\n", runtime.GOMAXPROCS(0))
	fmt.Fprintln(out)

	s := &benchState{rng: rand.New(rand.NewPCG(bc.seed, bc.seed^0x9e3779b97f4a7c15))}
	var results []BenchResult

	// Helper to run and print each benchmark
	run := func(name string, fn func() BenchResult) {
		fmt.Fprintf(out, "  %-40s ", name+"...")
		result := fn()
		result.Name = name
		fmt.Fprintf(out, "%v\n", result.Duration.Round(time.Microsecond))
		results = append(results, result)
		logger.Debug().
			Str("bench", name).
			Dur("duration", result.Duration).
			Int("ops", result.Ops).
			Msg("benchmark finished")
	}

	fmt.Fprintln(out, "Construction:")
	run("Build tree", func() BenchResult { return benchBuild(s, bc) })

	fmt.Fprintln(out, "\nTraversal:")
	run("Pre-order walk", func() BenchResult { return benchWalk(s.tree.PreOrderIDs(s.tree.Root())) })
	run("Post-order walk", func() BenchResult { return benchWalk(s.tree.PostOrderIDs(s.tree.Root())) })
	run("Level-order walk", func() BenchResult { return benchWalk(s.tree.LevelOrderIDs(s.tree.Root())) })
	run("Ancestor walks (random nodes)", func() BenchResult { return benchAncestors(s, bc.ops) })

	fmt.Fprintln(out, "\nMutation:")
	run("Sort children (every node)", func() BenchResult { return benchSort(s) })
	run("Swap data (random pairs)", func() BenchResult { return benchSwap(s, bc.ops, idtree.SwapDataOnly) })
	run("Swap subtrees (random pairs)", func() BenchResult { return benchSwap(s, bc.ops, idtree.SwapSubtrees) })
	run("Move subtrees (random pairs)", func() BenchResult { return benchMove(s, bc.ops) })
	run("Remove, lifting children", func() BenchResult { return benchRemove(s, bc.ops) })

	fmt.Fprintln(out, "\nVerification:")
	run("Check invariants", func() BenchResult { return benchCheck(s) })

	// Print summary
	fmt.Fprintln(out, "\n"+"=")
	fmt.Fprintln(out, "SUMMARY")
	fmt.Fprintln(out, "=")
	for _, r := range results {
		fmt.Fprintln(out, r)
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Heap in use: %d MB\n", m.HeapInuse/(1024*1024))
	fmt.Fprintf(out, "Total allocations: %d MB\n", m.TotalAlloc/(1024*1024))

	for _, r := range results {
		if strings.HasPrefix(r.Extra, "ERROR") {
			return fmt.Errorf("bench %q failed: %s", r.Name, r.Extra)
		}
	}
	return nil
}

// benchBuild fills a complete fanout-ary tree breadth first.
func benchBuild(s *benchState, bc benchConfig) BenchResult {
	start := time.Now()

	s.tree = idtree.NewBuilder[int]().WithNodeCapacity(bc.nodes).Build()
	s.ids = make([]idtree.NodeID, 0, bc.nodes)

	root, err := s.tree.Insert(s.rng.IntN(bc.nodes), idtree.AsRoot())
	if err != nil {
		return BenchResult{Extra: fmt.Sprintf("ERROR: %v", err)}
	}
	s.ids = append(s.ids, root)
	for i := 1; i < bc.nodes; i++ {
		parent := s.ids[(i-1)/bc.fanout]
		id, err := s.tree.Insert(s.rng.IntN(bc.nodes), idtree.UnderNode(parent))
		if err != nil {
			return BenchResult{Extra: fmt.Sprintf("ERROR: %v", err)}
		}
		s.ids = append(s.ids, id)
	}

	return BenchResult{
		Duration: time.Since(start),
		Ops:      bc.nodes,
		Extra:    fmt.Sprintf("height %d", s.tree.Height()),
	}
}

func benchWalk(seq iter.Seq2[idtree.NodeID, error]) BenchResult {
	start := time.Now()
	count := 0
	for _, err := range seq {
		if err != nil {
			return BenchResult{Extra: fmt.Sprintf("ERROR: %v", err)}
		}
		count++
	}
	return BenchResult{Duration: time.Since(start), Ops: count}
}

func benchAncestors(s *benchState, ops int) BenchResult {
	start := time.Now()
	steps := 0
	for range ops {
		for _, err := range s.tree.AncestorIDs(s.pick()) {
			if err != nil {
				return BenchResult{Extra: fmt.Sprintf("ERROR: %v", err)}
			}
			steps++
		}
	}
	return BenchResult{
		Duration: time.Since(start),
		Ops:      ops,
		Extra:    fmt.Sprintf("%.1f steps/walk", float64(steps)/float64(ops)),
	}
}

func benchSort(s *benchState) BenchResult {
	start := time.Now()
	for _, id := range s.ids {
		if err := idtree.SortChildrenByData(s.tree, id); err != nil {
			return BenchResult{Extra: fmt.Sprintf("ERROR: %v", err)}
		}
	}
	return BenchResult{Duration: time.Since(start), Ops: len(s.ids)}
}

// benchSwap swaps random pairs; pairs the behavior refuses (ancestors for
// subtree swaps) count as rejected rather than failing the run.
func benchSwap(s *benchState, ops int, behavior idtree.SwapBehavior) BenchResult {
	start := time.Now()
	rejected := 0
	for range ops {
		if err := s.tree.SwapNodes(s.pick(), s.pick(), behavior); err != nil {
			rejected++
		}
	}
	return BenchResult{
		Duration: time.Since(start),
		Ops:      ops,
		Extra:    fmt.Sprintf("%d rejected", rejected),
	}
}

func benchMove(s *benchState, ops int) BenchResult {
	start := time.Now()
	rejected := 0
	for range ops {
		if err := s.tree.MoveNode(s.pick(), idtree.ToParent(s.pick())); err != nil {
			rejected++
		}
	}
	return BenchResult{
		Duration: time.Since(start),
		Ops:      ops,
		Extra:    fmt.Sprintf("%d rejected (cycles)", rejected),
	}
}

// benchRemove removes random non-root nodes, keeping s.ids in step with the
// tree so later picks stay valid.
func benchRemove(s *benchState, ops int) BenchResult {
	ops = min(ops, len(s.ids)-1)
	start := time.Now()
	for range ops {
		i := s.rng.IntN(len(s.ids))
		id := s.ids[i]
		if id == s.tree.Root() {
			i = (i + 1) % len(s.ids)
			id = s.ids[i]
		}
		if _, err := s.tree.Remove(id, idtree.LiftChildren); err != nil {
			return BenchResult{Extra: fmt.Sprintf("ERROR: %v", err)}
		}
		s.ids[i] = s.ids[len(s.ids)-1]
		s.ids = s.ids[:len(s.ids)-1]
	}
	return BenchResult{Duration: time.Since(start), Ops: ops}
}

func benchCheck(s *benchState) BenchResult {
	start := time.Now()
	if err := s.tree.CheckInvariants(); err != nil {
		return BenchResult{Extra: fmt.Sprintf("ERROR: %v", err)}
	}
	return BenchResult{Duration: time.Since(start), Ops: s.tree.Len()}
}

func (s *benchState) pick() idtree.NodeID {
	return s.ids[s.rng.IntN(len(s.ids))]
}
