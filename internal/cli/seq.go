package cli

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gaissmai/pcollections/psequence"
)

// seqOpts holds the command-line flags for the seq command.
type seqOpts struct {
	count int
	ops   []string
	flat  bool
}

// newSeqCmd builds the seq command: it assembles a PSequence[int] from
// stdin lines (or --count generated integers), applies a chain of --op
// operations in order, then prints the tree diagram and, with --flat, the
// flattened slice.
//
// Supported --op values:
//
//	push-left=V    push V onto the left end
//	push-right=V   push V onto the right end
//	reverse        reverse the sequence
//	split=I        keep only the left part of SplitAt(I)
//	concat-self    concatenate the sequence with itself
//	slice=A:B:C    replace the sequence with GetSlice(A, B, C)
func newSeqCmd() *cobra.Command {
	opts := seqOpts{count: 10}

	cmd := &cobra.Command{
		Use:   "seq",
		Short: "Build and transform a PSequence",
		RunE: func(c *cobra.Command, args []string) error {
			return runSeq(c, &opts)
		},
	}

	cmd.Flags().IntVar(&opts.count, "count", opts.count, "generate 0..count-1 when stdin is empty")
	cmd.Flags().StringArrayVar(&opts.ops, "op", nil, "operation to apply, may be repeated")
	cmd.Flags().BoolVar(&opts.flat, "flat", false, "also print the flattened slice")

	return cmd
}

func runSeq(c *cobra.Command, opts *seqOpts) error {
	logger := loggerFromContext(c.Context())

	values, err := readIntsOrGenerate(c.InOrStdin(), opts.count)
	if err != nil {
		return err
	}
	seq := psequence.From(values)
	logger.Infof("Built sequence of length %d", seq.Len())

	for _, op := range opts.ops {
		prog := newProgress(logger)
		seq, err = applySeqOp(seq, op)
		if err != nil {
			return fmt.Errorf("op %q: %w", op, err)
		}
		prog.done(fmt.Sprintf("applied %q, length now %d", op, seq.Len()))
	}

	fmt.Fprintln(c.OutOrStdout(), seq.String())
	if opts.flat {
		fmt.Fprintln(c.OutOrStdout(), seq.ToSlice())
	}
	return nil
}

func applySeqOp(seq psequence.PSequence[int], op string) (psequence.PSequence[int], error) {
	name, arg, _ := strings.Cut(op, "=")
	switch name {
	case "push-left":
		v, err := strconv.Atoi(arg)
		if err != nil {
			return seq, err
		}
		return seq.PushLeft(v), nil
	case "push-right":
		v, err := strconv.Atoi(arg)
		if err != nil {
			return seq, err
		}
		return seq.PushRight(v), nil
	case "reverse":
		return seq.Reverse(), nil
	case "split":
		i, err := strconv.Atoi(arg)
		if err != nil {
			return seq, err
		}
		left, _ := seq.SplitAt(i)
		return left, nil
	case "concat-self":
		return seq.Concat(seq), nil
	case "slice":
		start, stop, step, err := parseSliceSpec(arg)
		if err != nil {
			return seq, err
		}
		return seq.GetSlice(start, stop, step), nil
	default:
		return seq, fmt.Errorf("unknown op %q", name)
	}
}

// parseSliceSpec parses "a:b:c", any component may be empty to mean "open".
func parseSliceSpec(spec string) (start, stop, step *int, err error) {
	parts := strings.Split(spec, ":")
	for len(parts) < 3 {
		parts = append(parts, "")
	}
	out := make([]*int, 3)
	for i, p := range parts[:3] {
		if p == "" {
			continue
		}
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("slice component %q: %w", p, err)
		}
		out[i] = &v
	}
	return out[0], out[1], out[2], nil
}

// readIntsOrGenerate reads one integer per non-blank stdin line; if stdin
// yields nothing, it generates 0..count-1 instead.
func readIntsOrGenerate(r interface{ Read([]byte) (int, error) }, count int) ([]int, error) {
	var values []int
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		v, err := strconv.Atoi(line)
		if err != nil {
			return nil, fmt.Errorf("parsing %q: %w", line, err)
		}
		values = append(values, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(values) == 0 {
		values = make([]int, count)
		for i := range values {
			values[i] = i
		}
	}
	return values, nil
}
