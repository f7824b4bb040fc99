package cli

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/gaissmai/pcollections/errkind"
	"github.com/gaissmai/pcollections/pheap"
	"github.com/gaissmai/pcollections/psequence"
)

// benchOpts holds the command-line flags for the bench command.
type benchOpts struct {
	sizes []int
	out   string
}

// newBenchCmd builds the bench command: it times PSequence push/split/
// concat/index and PHeap push/pop/merge across a range of input sizes
// and renders a PNG comparison plot, the same benchmark-to-plot shape as
// NikolasRummel-db-index-performance-evaluation's B-tree/B+tree latency
// comparison, adapted to this module's own operations.
func newBenchCmd() *cobra.Command {
	opts := benchOpts{sizes: []int{100, 1000, 10000, 100000}, out: "bench.png"}

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark PSequence and PHeap and plot the result",
		RunE: func(c *cobra.Command, args []string) error {
			return runBench(c, &opts)
		},
	}

	cmd.Flags().IntSliceVar(&opts.sizes, "sizes", opts.sizes, "input sizes to benchmark")
	cmd.Flags().StringVar(&opts.out, "out", opts.out, "output plot file path (.png)")

	return cmd
}

// benchSeries is one named latency-vs-n curve.
type benchSeries struct {
	name   string
	points plotter.XYs
}

func runBench(c *cobra.Command, opts *benchOpts) error {
	logger := loggerFromContext(c.Context())

	series := []*benchSeries{
		{name: "seq.PushRight"},
		{name: "seq.SplitAt(n/2)"},
		{name: "seq.Concat"},
		{name: "seq.Get(n/2)"},
		{name: "heap.Push"},
		{name: "heap.Pop all"},
		{name: "heap.Merge"},
	}

	for _, n := range opts.sizes {
		prog := newProgress(logger)
		benchPSequence(n, series[0], series[1], series[2], series[3])
		benchPHeap(n, series[4], series[5], series[6])
		prog.done(fmt.Sprintf("benchmarked n=%d", n))
	}

	p := plot.New()
	p.Title.Text = "pcollections latency vs. n"
	p.X.Label.Text = "n"
	p.X.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{}
	p.Y.Label.Text = "ns/op"
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{}

	for i, s := range series {
		line, points, err := plotter.NewLinePoints(s.points)
		if err != nil {
			return errkind.Wrap(errkind.InvalidArgument, err, "building plot series %q", s.name)
		}
		color := plotutil.Color(i)
		line.Color = color
		points.Color = color
		p.Add(line, points)
		p.Legend.Add(s.name, line, points)
	}

	if err := p.Save(8*vg.Inch, 6*vg.Inch, opts.out); err != nil {
		return errkind.Wrap(errkind.InvalidArgument, err, "saving plot to %s", opts.out)
	}
	logger.Infof("Wrote plot to %s", opts.out)
	return nil
}

func benchPSequence(n int, push, split, concat, get *benchSeries) {
	rng := rand.New(rand.NewSource(int64(n)))
	values := make([]int, n)
	for i := range values {
		values[i] = rng.Intn(n + 1)
	}
	base := psequence.From(values)

	push.points = append(push.points, timeOp(n, func() {
		_ = base.PushRight(0)
	}))
	split.points = append(split.points, timeOp(n, func() {
		base.SplitAt(n / 2)
	}))
	concat.points = append(concat.points, timeOp(n, func() {
		_ = base.Concat(base)
	}))
	get.points = append(get.points, timeOp(n, func() {
		_, _ = base.Get(n / 2)
	}))
}

func benchPHeap(n int, push, popAll, merge *benchSeries) {
	rng := rand.New(rand.NewSource(int64(n)))
	pairs := make([]pheap.Pair[int, int], n)
	for i := range pairs {
		k := rng.Intn(n + 1)
		pairs[i] = pheap.Pair[int, int]{Key: k, Value: k}
	}
	base := pheap.FromPairs[int, int, pheap.Up[int]](pairs)

	push.points = append(push.points, timeOp(n, func() {
		_ = base.Push(0, 0)
	}))
	popAll.points = append(popAll.points, timeOp(n, func() {
		h := base
		for !h.IsEmpty() {
			var err error
			h, _, _, err = h.Pop()
			if err != nil {
				break
			}
		}
	}))
	merge.points = append(merge.points, timeOp(n, func() {
		_ = base.Merge(base)
	}))
}

// timeOp runs fn once and records elapsed nanoseconds against n. A single
// sample keeps the command fast; §5 readers wanting statistical rigor can
// raise --sizes granularity instead.
func timeOp(n int, fn func()) plotter.XY {
	start := time.Now()
	fn()
	return plotter.XY{X: float64(n), Y: float64(time.Since(start).Nanoseconds())}
}
