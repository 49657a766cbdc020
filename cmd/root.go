package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rickcrawford/tokenwc/internal/config"
	"github.com/rickcrawford/tokenwc/internal/report"
	"github.com/rickcrawford/tokenwc/internal/tokenizer"
)

var cfgFile string

// rootCmd is the top-level command: count tokens, lines, and bytes.
var rootCmd = &cobra.Command{
	Use:   "tokenwc [flags] [FILE...]",
	Short: "Count LLM tokens in files, like wc counts words",
	Long: `tokenwc counts tokens (as a language model tokenizer produces them),
lines, and bytes in one or more files, or stdin when no files are given.

The default tokenizer is the shipped gpt2 encoding. Select another shipped
tokenizer with --name (see "tokenwc list"), or point --tokenizer at a
HuggingFace tokenizer.json file.

Configure via config.yml, environment variables (TOKENWC_ prefix), or CLI flags.`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./config.yml)")
	rootCmd.Flags().StringP("tokenizer", "t", "", "path to a HuggingFace tokenizer.json file")
	rootCmd.Flags().StringP("name", "n", "", "shipped tokenizer name (e.g. gpt2, gpt4)")
	rootCmd.Flags().Bool("tokens-only", false, "show only the token count")
	rootCmd.Flags().BoolP("lines", "l", false, "show the line count")
	rootCmd.Flags().BoolP("bytes", "c", false, "show the byte count")
	rootCmd.MarkFlagsMutuallyExclusive("tokenizer", "name")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadTokenizer builds the tokenizer for one invocation: explicit path
// first, then a named lookup, then the embedded default.
func loadTokenizer(cmd *cobra.Command, cfg *config.Config) (tokenizer.Tokenizer, error) {
	if v, _ := cmd.Flags().GetString("tokenizer"); v != "" {
		cfg.Tokenizer.Path = v
		cfg.Tokenizer.Name = ""
	}
	if v, _ := cmd.Flags().GetString("name"); v != "" {
		cfg.Tokenizer.Name = v
		cfg.Tokenizer.Path = ""
	}

	switch {
	case cfg.Tokenizer.Path != "":
		return tokenizer.FromFile(cfg.Tokenizer.Path)
	case cfg.Tokenizer.Name != "":
		return tokenizer.Resolve(cfg.Tokenizer.Name, cfg.Tokenizer.SearchDirs)
	default:
		return tokenizer.Default()
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	tk, err := loadTokenizer(cmd, cfg)
	if err != nil {
		return err
	}
	if c, ok := tk.(io.Closer); ok {
		defer c.Close()
	}

	tokensOnly, _ := cmd.Flags().GetBool("tokens-only")
	lines, _ := cmd.Flags().GetBool("lines")
	bytes, _ := cmd.Flags().GetBool("bytes")
	cols := report.SelectColumns(tokensOnly, lines, bytes)

	inputs := report.ResolveInputs(args)

	if len(args) == 0 && stdinIsTerminal() {
		fmt.Fprintln(os.Stderr, "tokenwc: reading from stdin (use --help for usage information)")
	}

	rep := report.Build(inputs, tk, os.Stdin)
	report.Render(cmd.OutOrStdout(), cmd.ErrOrStderr(), rep, cols)

	if rep.Failed() {
		return fmt.Errorf("some inputs could not be counted")
	}
	return nil
}

// stdinIsTerminal reports whether stdin is attached to a terminal
// rather than a pipe or file.
func stdinIsTerminal() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
