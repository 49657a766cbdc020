package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rickcrawford/tokenwc/internal/tokenizer"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the shipped tokenizers",
	Long: `List the tokenizer names bundled into the binary and the TikToken
encoding each one maps to. Any of these can be selected with --name.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range tokenizer.ShippedNames() {
			marker := " "
			if name == tokenizer.DefaultName {
				marker = "*"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %-8s %s\n", marker, name, tokenizer.ShippedEncoding(name))
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
