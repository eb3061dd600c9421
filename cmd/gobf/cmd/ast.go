package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jcorbin/gobf"
)

var astCmd = &cobra.Command{
	Use:   "ast <file.bf>",
	Short: "Pretty-print the parsed program tree",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prog, err := parseFile(args[0])
		if err != nil {
			return err
		}
		if err := gobf.Fprint(cmd.OutOrStdout(), prog); err != nil {
			return err
		}
		commands, loops := gobf.Count(prog)
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "Summary: %v commands, %v loops\n", commands, loops)
		return err
	},
}

func init() {
	rootCmd.AddCommand(astCmd)
}
