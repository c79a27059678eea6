package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/dhamidi/advent/handheld"
	"github.com/dhamidi/advent/input"
	"github.com/spf13/cobra"
)

func newHandheldCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "handheld",
		Short: "Handheld boot code (2020 day 8)",
	}

	cmd.AddCommand(newHandheldRunCmd(opts))
	cmd.AddCommand(newHandheldAsmCmd(opts))

	return cmd
}

func newHandheldRunCmd(opts *options) *cobra.Command {
	var trace bool
	var kind string
	var image string

	cmd := &cobra.Command{
		Use:   "run [file]",
		Short: "Run a program until an instruction repeats and print the accumulator",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var prog handheld.Program
			if image != "" {
				p, err := handheld.ReadImageFile(image)
				if err != nil {
					return err
				}
				prog = p
			} else {
				p, err := readProgram(cmd, opts, args, kind)
				if err != nil {
					return err
				}
				prog = p
			}
			log.Infof("loaded %d instructions", len(prog))

			out := cmd.OutOrStdout()
			if !trace {
				acc, err := handheld.RunUntilRepeat(prog)
				if err != nil {
					return fmt.Errorf("run: %w", err)
				}
				fmt.Fprintln(out, acc)
				return nil
			}

			states, err := handheld.Trace(prog)
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "PC\tINSTRUCTION\tACC")
			for _, s := range states {
				ins, ferr := prog.Fetch(s.PC)
				if ferr != nil {
					fmt.Fprintf(w, "%d\t-\t%d\n", s.PC, s.Acc)
					continue
				}
				fmt.Fprintf(w, "%d\t%s\t%d\n", s.PC, ins, s.Acc)
			}
			if ferr := w.Flush(); ferr != nil {
				return ferr
			}
			if err != nil {
				return fmt.Errorf("run: %w", err)
			}
			fmt.Fprintln(out, states[len(states)-1].Acc)
			return nil
		},
	}

	cmd.Flags().BoolVar(&trace, "trace", false, "print every executed instruction")
	cmd.Flags().StringVar(&kind, "kind", "data", "input variant when no file is given (data, example, debug)")
	cmd.Flags().StringVar(&image, "image", "", "run a binary program image instead of source text")

	return cmd
}

func newHandheldAsmCmd(opts *options) *cobra.Command {
	var kind string
	var output string

	cmd := &cobra.Command{
		Use:   "asm [file]",
		Short: "Assemble a program into a binary image",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prog, err := readProgram(cmd, opts, args, kind)
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				return handheld.WriteImage(cmd.OutOrStdout(), prog)
			}
			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("create image: %w", err)
			}
			if err := handheld.WriteImage(f, prog); err != nil {
				f.Close()
				return fmt.Errorf("write image: %w", err)
			}
			log.Infof("wrote %d instructions to %s", len(prog), output)
			return f.Close()
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "data", "input variant when no file is given (data, example, debug)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "image file to write (default stdout)")

	return cmd
}

func readProgram(cmd *cobra.Command, opts *options, args []string, kind string) (handheld.Program, error) {
	k, err := input.ParseKind(kind)
	if err != nil {
		return nil, err
	}
	text, err := opts.read(cmd.Context(), args, input.Source{Year: 2020, Day: 8, Kind: k})
	if err != nil {
		return nil, err
	}
	prog, err := handheld.ParseProgram(text)
	if err != nil {
		return nil, fmt.Errorf("parse program: %w", err)
	}
	return prog, nil
}
