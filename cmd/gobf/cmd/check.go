package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jcorbin/gobf"
)

var checkCmd = &cobra.Command{
	Use:   "check <file.bf>",
	Short: "Parse a program, reporting any structural error with its position",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prog, err := parseFile(args[0])
		if err != nil {
			return err
		}
		commands, loops := gobf.Count(prog)
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "%v: ok (%v commands, %v loops)\n", args[0], commands, loops)
		return err
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
