package main

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/hupe1980/wordgrid"
	"github.com/hupe1980/wordgrid/gridfile"
	"github.com/hupe1980/wordgrid/testutil"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	logLevel   string
	logFormat  string
}

// newRootCmd builds the command tree. cfg is populated before any
// subcommand runs.
func newRootCmd() *cobra.Command {
	var (
		flags rootFlags
		cfg   Config
	)

	cmd := &cobra.Command{
		Use:           "wordgrid",
		Short:         "Count word occurrences in character grids",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := LoadConfig(flags.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				loaded.Log.Level = flags.logLevel
			}
			if cmd.Flags().Changed("log-format") {
				loaded.Log.Format = flags.logFormat
			}
			if err := loaded.Validate(); err != nil {
				return err
			}
			cfg = loaded
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "path to a YAML config file")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", "text", "log format (text, json)")

	cmd.AddCommand(newGenerateCmd(), newSolveCmd(&cfg))

	return cmd
}

type generateFlags struct {
	rows     int
	cols     int
	seed     int64
	alphabet string
	words    []string
	attempts int
}

func newGenerateCmd() *cobra.Command {
	var flags generateFlags

	cmd := &cobra.Command{
		Use:   "generate [flags] OUTPUT",
		Short: "Write a random grid, optionally with planted words",
		Long: `Writes a random grid to OUTPUT.

The file is compressed according to its extension (.zst, .lz4 or plain text).
Words given with --word are planted at random positions and directions.

Examples:
  wordgrid generate --rows 50 --cols 80 grid.txt
  wordgrid generate --word needle --word haystack grid.txt.zst`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args[0], flags)
		},
	}

	cmd.Flags().IntVar(&flags.rows, "rows", 100, "number of rows")
	cmd.Flags().IntVar(&flags.cols, "cols", 100, "number of columns")
	cmd.Flags().Int64Var(&flags.seed, "seed", 1, "random seed")
	cmd.Flags().StringVar(&flags.alphabet, "alphabet", testutil.LowercaseAlphabet, "bytes to fill the grid with")
	cmd.Flags().StringArrayVarP(&flags.words, "word", "w", nil, "word to plant (repeatable)")
	cmd.Flags().IntVar(&flags.attempts, "attempts", 100, "placement attempts per word")

	return cmd
}

func runGenerate(cmd *cobra.Command, path string, flags generateFlags) error {
	if flags.rows < 1 || flags.cols < 1 {
		return fmt.Errorf("grid must have at least one row and column, got %dx%d", flags.rows, flags.cols)
	}
	if flags.alphabet == "" {
		return errors.New("alphabet must not be empty")
	}

	rng := testutil.NewRNG(flags.seed)
	g := rng.RandomGrid(flags.rows, flags.cols, flags.alphabet)

	words := make([][]byte, len(flags.words))
	for i, w := range flags.words {
		words[i] = []byte(w)
	}
	planted := rng.PlantWords(g, words, flags.attempts)

	if err := gridfile.Save(path, g); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %dx%d grid to %s (%s), planted %d/%d words\n",
		g.Rows(), g.Cols(), path, gridfile.CompressionFromPath(path), planted, len(words))
	return nil
}

type solveFlags struct {
	words      []string
	strategies []string
	wordLen    int
	maxWordLen int
	size       bool
}

func newSolveCmd(cfg *Config) *cobra.Command {
	var flags solveFlags

	cmd := &cobra.Command{
		Use:   "solve [flags] GRID",
		Short: "Count occurrences of words with one or more strategies",
		Long: `Loads GRID and counts every --word with each configured strategy.

A word occurs wherever a straight run of cells (right, down, diagonal or
anti-diagonal) spells it forward or backward.

Examples:
  wordgrid solve --word needle grid.txt
  wordgrid solve -w abc -w cba --strategy hash,trie --word-len 6 grid.txt.zst
  wordgrid solve -w needle --size grid.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolved := *cfg
			if cmd.Flags().Changed("strategy") {
				resolved.Strategies = flags.strategies
			}
			if cmd.Flags().Changed("word-len") {
				resolved.Hash.WordLen = flags.wordLen
			}
			if cmd.Flags().Changed("max-word-len") {
				resolved.Trie.MaxWordLen = flags.maxWordLen
			}
			if err := resolved.Validate(); err != nil {
				return err
			}
			return runSolve(cmd.Context(), cmd, args[0], resolved, flags)
		},
	}

	cmd.Flags().StringArrayVarP(&flags.words, "word", "w", nil, "word to count (repeatable)")
	cmd.Flags().StringSliceVarP(&flags.strategies, "strategy", "s", nil, "strategies to run (naive, hash, trie, linear)")
	cmd.Flags().IntVar(&flags.wordLen, "word-len", 4, "maximum directly indexed length of the hash strategy")
	cmd.Flags().IntVar(&flags.maxWordLen, "max-word-len", 0, "run length cap of the trie strategy (0 = longest run)")
	cmd.Flags().BoolVar(&flags.size, "size", false, "report the estimated memory footprint of each strategy")
	_ = cmd.MarkFlagRequired("word")

	return cmd
}

func runSolve(ctx context.Context, cmd *cobra.Command, path string, cfg Config, flags solveFlags) error {
	if ctx == nil {
		ctx = context.Background()
	}

	kinds, err := cfg.Kinds()
	if err != nil {
		return err
	}

	g, err := gridfile.Load(path)
	if err != nil {
		return err
	}

	solvers, err := wordgrid.BuildAll(ctx, g, kinds, cfg.Options()...)
	if err != nil {
		return err
	}

	words := make([][]byte, len(flags.words))
	for i, w := range flags.words {
		words[i] = []byte(w)
	}

	out := cmd.OutOrStdout()
	if flags.size {
		fmt.Fprintf(out, "grid %dx%d: %d bytes\n", g.Rows(), g.Cols(), g.EstimateSize())
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	header := "STRATEGY\tWORD\tCOUNT\tBUILD"
	if flags.size {
		header += "\tSIZE"
	}
	fmt.Fprintln(tw, header)

	for _, s := range solvers {
		counts, err := s.CountAll(ctx, words)
		if err != nil {
			return err
		}
		for i, w := range flags.words {
			line := fmt.Sprintf("%s\t%s\t%d\t%s", s.Kind(), w, counts[i], s.BuildTime().Round(time.Microsecond))
			if flags.size {
				line += fmt.Sprintf("\t%d", s.EstimateSize())
			}
			fmt.Fprintln(tw, line)
		}
	}

	return tw.Flush()
}
