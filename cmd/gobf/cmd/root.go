package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jcorbin/gobf"
	"github.com/jcorbin/gobf/internal/logio"
	"github.com/jcorbin/gobf/internal/panicerr"
)

var (
	cfgFile    string
	tapeLength int
	trace      bool

	logger logio.Logger
)

var rootCmd = &cobra.Command{
	Use:   "gobf",
	Short: "Brainfuck front end and reference evaluator",
	Long: `gobf parses Brainfuck source into a validated program tree and runs it
under the canonical semantics (fixed byte tape, saturating pointer,
wrapping cells, while-nonzero loops).

Commands:
  check  - parse only, reporting the exact position of any structural error
  ast    - pretty-print the parsed program tree
  run    - evaluate a program with stdin/stdout as its byte streams
  fold   - evaluate an input-free program now, emitting its static output`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the command tree and returns a process exit code, non-zero
// when any error was logged.
func Execute() int {
	logger.SetOutput(os.Stderr)
	if err := rootCmd.Execute(); err != nil {
		logger.ErrorIf(err)
		if stack := panicerr.PanicStack(err); trace && stack != "" {
			logger.Printf("TRACE", "%s", stack)
		}
	}
	return logger.ExitCode()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "YAML config file (tape_length, cell_size)")
	rootCmd.PersistentFlags().IntVar(&tapeLength, "tape-length", 0, "override the tape cell count")
	rootCmd.PersistentFlags().BoolVar(&trace, "trace", false, "enable per-step trace logging")
}

// resolveConfig layers flag overrides on top of any --config file over the
// canonical defaults.
func resolveConfig() (gobf.Config, error) {
	cfg, err := loadConfig(cfgFile)
	if err != nil {
		return cfg, err
	}
	if tapeLength > 0 {
		cfg.TapeLength = tapeLength
	}
	return cfg, nil
}

func parseFile(path string) ([]gobf.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	prog, err := gobf.ParseReader(f)
	if err != nil {
		return nil, fmt.Errorf("parse error in %q: %w", path, err)
	}
	return prog, nil
}

func vmOptions(cfg gobf.Config, prog []gobf.Node) []gobf.VMOption {
	opts := []gobf.VMOption{
		gobf.WithProgram(prog),
		gobf.WithTapeLength(cfg.TapeLength),
	}
	if trace {
		opts = append(opts, gobf.WithLogf(logger.Leveledf("TRACE")))
	}
	return opts
}
