package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print the value of a key",
	Long: `Print the value of the first record with the given key.
A key that isn't present prints "undefined".

Example:
  solinfo get int_param --app air.com.example.game`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(cmd)
		if err != nil {
			return err
		}
		value := doc.Get(args[0])
		if showKind, _ := cmd.Flags().GetBool("kind"); showKind {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", value.Kind(), value)
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), value)
		return nil
	},
}

func init() {
	getCmd.Flags().Bool("kind", false, "print the value's kind before it")
	rootCmd.AddCommand(getCmd)
}
