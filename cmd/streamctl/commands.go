package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kbukum/gostream/errors"
	"github.com/kbukum/gostream/stream"
	"github.com/kbukum/gostream/validation"
)

func parseInt(field, value string) (int64, error) {
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, errors.InvalidArgument(field, fmt.Sprintf("%q is not an integer", value))
	}
	return n, nil
}

func newSumCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sum FIRST LAST",
		Short: "Sum the integers in [FIRST, LAST)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			first, err := parseInt("first", args[0])
			if err != nil {
				return err
			}
			last, err := parseInt("last", args[1])
			if err != nil {
				return err
			}
			return a.run(cmd, func(ctx context.Context) error {
				sum, err := sumRange(ctx, a.metrics, first, last)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), sum)
				return nil
			})
		},
	}
}

func newStatsCmd(a *app) *cobra.Command {
	var step int
	cmd := &cobra.Command{
		Use:   "stats FIRST LAST",
		Short: "Count, sum, min, max and mean of FIRST, FIRST+STEP, ... before LAST",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validation.New().NonZero("step", step).Validate(); err != nil {
				return err
			}
			first, err := parseInt("first", args[0])
			if err != nil {
				return err
			}
			last, err := parseInt("last", args[1])
			if err != nil {
				return err
			}
			return a.run(cmd, func(ctx context.Context) error {
				s, err := stream.RangeStep(first, last, int64(step))
				if err != nil {
					return err
				}
				st, err := statsOf(ctx, a.metrics, s)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "count=%d sum=%d min=%d max=%d mean=%g\n",
					st.Count, st.Sum, st.Min, st.Max, st.Mean)
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&step, "step", 1, "distance between consecutive values (may be negative)")
	return cmd
}

func newPrimesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "primes N",
		Short: "Print the first N primes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseInt("n", args[0])
			if err != nil {
				return err
			}
			if err := validation.New().Range("n", int(n), 0, 1_000_000).Validate(); err != nil {
				return err
			}
			return a.run(cmd, func(ctx context.Context) error {
				primes, err := firstPrimes(ctx, a.metrics, int(n))
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), joinInts(primes))
				return nil
			})
		},
	}
}

func newSortCmd(a *app) *cobra.Command {
	var opts sortOptions
	cmd := &cobra.Command{
		Use:   "sort WORD...",
		Short: "Sort words, optionally dropping duplicates",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v := validation.New()
			for i, w := range args {
				v.Required(fmt.Sprintf("word[%d]", i), w)
			}
			if err := v.Validate(); err != nil {
				return err
			}
			return a.run(cmd, func(ctx context.Context) error {
				words, err := sortWords(ctx, a.metrics, args, opts)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(words, " "))
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&opts.Unique, "unique", "u", false, "drop repeated words")
	cmd.Flags().BoolVarP(&opts.Reverse, "reverse", "r", false, "sort in descending order")
	cmd.Flags().BoolVarP(&opts.IgnoreCase, "ignore-case", "i", false, "compare words case-insensitively")
	return cmd
}

func newCycleCmd(a *app) *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "cycle ITEM...",
		Short: "Repeat the items in order until --take elements are printed",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validation.New().Min("take", n, 0).Validate(); err != nil {
				return err
			}
			return a.run(cmd, func(ctx context.Context) error {
				items, err := cycleItems(ctx, a.metrics, args, n)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(items, " "))
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&n, "take", 10, "number of elements to print")
	return cmd
}

func newCollatzCmd(a *app) *cobra.Command {
	var maxSteps int
	cmd := &cobra.Command{
		Use:   "collatz N",
		Short: "Print the Collatz trajectory of N",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseInt("n", args[0])
			if err != nil {
				return err
			}
			if err := validation.New().Min("n", int(n), 1).Min("max-steps", maxSteps, 1).Validate(); err != nil {
				return err
			}
			return a.run(cmd, func(ctx context.Context) error {
				path, err := collatz(ctx, a.metrics, n, maxSteps)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%d steps)\n", joinInts(path), len(path)-1)
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&maxSteps, "max-steps", 10_000, "give up after this many values")
	return cmd
}

func joinInts(xs []int64) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.FormatInt(x, 10)
	}
	return strings.Join(parts, " ")
}
