package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bitswalk/uam/src/common/version"
	"github.com/bitswalk/uam/src/uamctl/internal/output"
)

// Set at build time via ldflags
var (
	Version        = version.DefaultVersion
	ReleaseName    = version.DefaultReleaseName
	ReleaseVersion = version.DefaultReleaseVersion
	BuildDate      = version.DefaultBuildDate
	GitCommit      = version.DefaultGitCommit
)

var versionClientOnly bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show client and server version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		info := &version.Info{
			Version:        Version,
			ReleaseName:    ReleaseName,
			ReleaseVersion: ReleaseVersion,
			BuildDate:      BuildDate,
			GitCommit:      GitCommit,
		}
		output.PrintMessage("Client: %s", info.Full())

		if versionClientOnly {
			return nil
		}

		c, err := getClient()
		if err != nil {
			return err
		}

		result, err := c.Version(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to reach server: %w", err)
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
	versionCmd.Flags().BoolVar(&versionClientOnly, "client", false, "show only the client version")
	rootCmd.AddCommand(versionCmd)
}
