package main

import (
	"fmt"

	"github.com/dhamidi/advent/format"
	"github.com/dhamidi/advent/input"
	"github.com/dhamidi/advent/notes"
	"github.com/dhamidi/advent/notes/grammar"
	"github.com/spf13/cobra"
)

func newMonkeysCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "monkeys",
		Short: "Monkey notes (2022 day 11)",
	}

	cmd.AddCommand(newMonkeysParseCmd(opts))
	cmd.AddCommand(newMonkeysCheckCmd(opts))

	return cmd
}

func monkeysSource(kind string) (input.Source, error) {
	k, err := input.ParseKind(kind)
	if err != nil {
		return input.Source{}, err
	}
	return input.Source{Year: 2022, Day: 11, Kind: k}, nil
}

func newMonkeysParseCmd(opts *options) *cobra.Command {
	var outputFormat string
	var kind string

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse monkey notes and dump the result",
		Long:  "Parse monkey notes from file (\"-\" for stdin) or, without a file, from the 2022 day 11 input below the data root.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := monkeysSource(kind)
			if err != nil {
				return err
			}
			text, err := opts.read(cmd.Context(), args, src)
			if err != nil {
				return err
			}

			batch, err := notes.ParseBatch(text)
			if err != nil {
				return fmt.Errorf("parse notes: %w", err)
			}
			log.Infof("parsed %d monkeys", len(batch))

			encoder, err := format.NewEncoder(outputFormat, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if err := encoder.Encode(batch); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format (json, notes, line)")
	cmd.Flags().StringVar(&kind, "kind", "data", "input variant when no file is given (data, example, debug)")

	return cmd
}

func newMonkeysCheckCmd(opts *options) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Validate monkey notes with both the parser and the EBNF grammar",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := monkeysSource(kind)
			if err != nil {
				return err
			}
			text, err := opts.read(cmd.Context(), args, src)
			if err != nil {
				return err
			}

			batch, parseErr := notes.ParseBatch(text)
			matches, err := grammar.Matches(text)
			if err != nil {
				return err
			}

			switch {
			case parseErr == nil && matches:
				fmt.Fprintf(cmd.OutOrStdout(), "ok: %d monkeys\n", len(batch))
				return nil
			case parseErr != nil && !matches:
				return fmt.Errorf("invalid notes: %w", parseErr)
			case parseErr != nil:
				log.Warningf("grammar accepts input the parser rejects")
				return fmt.Errorf("invalid notes: %w", parseErr)
			default:
				return fmt.Errorf("parser accepted %d monkeys but the grammar rejects the input", len(batch))
			}
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "data", "input variant when no file is given (data, example, debug)")

	return cmd
}
