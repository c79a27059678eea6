package main

import (
	"fmt"
	"os"
	"reflect"

	"github.com/dhamidi/advent/notes/grammar"
	"github.com/spf13/cobra"
	"golang.org/x/exp/ebnf"
)

func newEbnfCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "ebnf",
		Short:         "EBNF grammar tools",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newEbnfCheckCmd())
	cmd.AddCommand(newEbnfTokensCmd())
	cmd.AddCommand(newEbnfPrintCmd())

	return cmd
}

func newEbnfCheckCmd() *cobra.Command {
	var startProduction string

	cmd := &cobra.Command{
		Use:           "check [file]",
		Short:         "Parse and verify an EBNF grammar file (default: the notes grammar)",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				if _, err := grammar.Load(); err != nil {
					printErrors(err)
					return err
				}
				fmt.Println("notes.ebnf: ok")
				return nil
			}

			g, err := grammar.LoadFile(args[0])
			if err != nil {
				printErrors(err)
				return err
			}

			if err := ebnf.Verify(g, startProduction); err != nil {
				printErrors(err)
				return err
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&startProduction, "start", grammar.Start, "start production for verification")

	return cmd
}

func newEbnfTokensCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:           "tokens <file>",
		Short:         "Split a notes file into grammar lines",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			data, err := os.ReadFile(filename)
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}

			g, err := grammar.Load()
			if err != nil {
				printErrors(err)
				return err
			}

			var kinds []string
			if !all {
				kinds = grammar.LineKinds
			}
			tokens, err := grammar.NewLexer(g, data, filename, kinds...).Tokenize()
			if err != nil {
				return err
			}
			for _, tok := range tokens {
				fmt.Println(tok)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "try every upper case production instead of line productions")

	return cmd
}

func newEbnfPrintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "print",
		Short: "Print the notes grammar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := cmd.OutOrStdout().Write(grammar.Source())
			return err
		},
	}
}

func printErrors(err error) {
	v := reflect.ValueOf(err)
	if v.Kind() == reflect.Slice {
		for i := 0; i < v.Len(); i++ {
			fmt.Println(v.Index(i).Interface())
		}
	} else {
		fmt.Println(err)
	}
}
