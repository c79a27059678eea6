package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/dhamidi/advent/input"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

const version = "0.1.0"

var log = commonlog.GetLogger("advent.cli")

// options are the flags shared by every subcommand.
type options struct {
	verbose int
	root    string
}

// read returns the text of the file named in args, or of src below the data
// root when no file was given.
func (o *options) read(ctx context.Context, args []string, src input.Source) (string, error) {
	if len(args) > 0 {
		return input.ReadFile(args[0])
	}
	return input.NewLoader(o.root).LoadContext(ctx, src)
}

func main() {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:          "advent",
		Short:        "Puzzle input parsers and the handheld interpreter",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(opts.verbose, nil)
		},
	}
	rootCmd.PersistentFlags().CountVarP(&opts.verbose, "verbose", "v", "increase log verbosity (repeatable)")
	rootCmd.PersistentFlags().StringVar(&opts.root, "root", "", "data directory (default $ADVENT_DATA, then ./data)")

	rootCmd.AddCommand(newMonkeysCmd(opts))
	rootCmd.AddCommand(newHandheldCmd(opts))
	rootCmd.AddCommand(newLoadCmd(opts))
	rootCmd.AddCommand(newLSPCmd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
