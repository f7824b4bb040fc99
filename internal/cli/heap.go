package cli

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gaissmai/pcollections/pheap"
)

// heapOpts holds the command-line flags for the heap command.
type heapOpts struct {
	polarity string
	drain    bool
}

// newHeapCmd builds the heap command: it reads "key value" pairs from
// stdin (one per line, integer key, string value) into a PHeap of the
// chosen polarity, then either prints the forest diagram or, with
// --drain, pops every entry in winning order.
func newHeapCmd() *cobra.Command {
	opts := heapOpts{polarity: "up"}

	cmd := &cobra.Command{
		Use:   "heap",
		Short: "Build and drain a PHeap",
		RunE: func(c *cobra.Command, args []string) error {
			return runHeap(c, &opts)
		},
	}

	cmd.Flags().StringVar(&opts.polarity, "polarity", opts.polarity, `"up" (min-heap) or "down" (max-heap)`)
	cmd.Flags().BoolVar(&opts.drain, "drain", false, "pop every entry in winning order instead of printing the forest")

	return cmd
}

func runHeap(c *cobra.Command, opts *heapOpts) error {
	logger := loggerFromContext(c.Context())

	pairs, err := readPairs(c.InOrStdin())
	if err != nil {
		return err
	}

	switch opts.polarity {
	case "up":
		h := pheap.FromPairs[int, string, pheap.Up[int]](pairs)
		logger.Infof("Built up-heap with %d entries", h.Len())
		return printOrDrainUp(c, h, opts.drain)
	case "down":
		h := pheap.FromPairs[int, string, pheap.Down[int]](pairs)
		logger.Infof("Built down-heap with %d entries", h.Len())
		return printOrDrainDown(c, h, opts.drain)
	default:
		return fmt.Errorf("unknown polarity %q, want \"up\" or \"down\"", opts.polarity)
	}
}

func printOrDrainUp(c *cobra.Command, h pheap.PHeap[int, string, pheap.Up[int]], drain bool) error {
	if !drain {
		fmt.Fprintln(c.OutOrStdout(), h.String())
		return nil
	}
	for !h.IsEmpty() {
		var k int
		var v string
		var err error
		h, k, v, err = h.Pop()
		if err != nil {
			return err
		}
		fmt.Fprintf(c.OutOrStdout(), "%d %s\n", k, v)
	}
	return nil
}

func printOrDrainDown(c *cobra.Command, h pheap.PHeap[int, string, pheap.Down[int]], drain bool) error {
	if !drain {
		fmt.Fprintln(c.OutOrStdout(), h.String())
		return nil
	}
	for !h.IsEmpty() {
		var k int
		var v string
		var err error
		h, k, v, err = h.Pop()
		if err != nil {
			return err
		}
		fmt.Fprintf(c.OutOrStdout(), "%d %s\n", k, v)
	}
	return nil
}

// readPairs reads "key value" lines from r into (int, string) pairs.
func readPairs(r interface{ Read([]byte) (int, error) }) ([]pheap.Pair[int, string], error) {
	var pairs []pheap.Pair[int, string]
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		key, value, ok := strings.Cut(line, " ")
		if !ok {
			return nil, fmt.Errorf("expected \"key value\", got %q", line)
		}
		k, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil {
			return nil, fmt.Errorf("parsing key %q: %w", key, err)
		}
		pairs = append(pairs, pheap.Pair[int, string]{Key: k, Value: strings.TrimSpace(value)})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return pairs, nil
}
