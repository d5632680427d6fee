package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bitswalk/uam/src/uamctl/internal/output"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the server health",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := getClient()
		if err != nil {
			return err
		}

		result, err := c.Health(cmd.Context())
		if err != nil {
			return err
		}

		return output.PrintFormatted(outputFormat, result, func() {
			pairs := make([][2]string, 0, len(result))
			for key, value := range result {
				pairs = append(pairs, [2]string{key, fmt.Sprintf("%v", value)})
			}
			output.PrintKeyValues(pairs)
		})
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}
