package main

import (
	"fmt"
	"strconv"

	"github.com/dhamidi/advent/input"
	"github.com/spf13/cobra"
)

func newLoadCmd(opts *options) *cobra.Command {
	var kind string
	var pathOnly bool

	cmd := &cobra.Command{
		Use:   "load <year> <day>",
		Short: "Print a puzzle input from the data directory",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("year: %w", err)
			}
			day, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("day: %w", err)
			}
			k, err := input.ParseKind(kind)
			if err != nil {
				return err
			}

			src := input.Source{Year: year, Day: day, Kind: k}
			loader := input.NewLoader(opts.root)
			if pathOnly {
				fmt.Fprintln(cmd.OutOrStdout(), loader.Path(src))
				return nil
			}
			text, err := loader.LoadContext(cmd.Context(), src)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), text)
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "data", "input variant (data, example, debug)")
	cmd.Flags().BoolVar(&pathOnly, "path", false, "print the file path instead of its contents")

	return cmd
}
