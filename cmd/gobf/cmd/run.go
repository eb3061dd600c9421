package cmd

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jcorbin/gobf"
)

var runTimeout time.Duration

var runCmd = &cobra.Command{
	Use:   "run <file.bf>",
	Short: "Evaluate a program with stdin/stdout as its byte streams",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig()
		if err != nil {
			return err
		}
		prog, err := parseFile(args[0])
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		if runTimeout != 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, runTimeout)
			defer cancel()
		}

		opts := append(vmOptions(cfg, prog),
			gobf.WithInput(os.Stdin),
			gobf.WithOutput(os.Stdout),
		)
		return gobf.New(opts...).Run(ctx)
	},
}

func init() {
	runCmd.Flags().DurationVar(&runTimeout, "timeout", 0, "limit evaluation time")
	rootCmd.AddCommand(runCmd)
}
