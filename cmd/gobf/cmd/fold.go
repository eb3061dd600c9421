package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jcorbin/gobf"
)

var foldOutput string

var foldCmd = &cobra.Command{
	Use:   "fold <file.bf>",
	Short: "Evaluate an input-free program now, emitting its static output",
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

		out, err := gobf.Fold(cmd.Context(), prog, cfg)
		if err != nil {
			return err
		}
		if foldOutput != "" && foldOutput != "-" {
			return os.WriteFile(foldOutput, out, 0o644)
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

func init() {
	foldCmd.Flags().StringVarP(&foldOutput, "output", "o", "", "write folded output to a file instead of stdout")
	rootCmd.AddCommand(foldCmd)
}
