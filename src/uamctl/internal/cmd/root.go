// Package cmd implements the uamctl command tree.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bitswalk/uam/src/uamctl/internal/client"
	"github.com/bitswalk/uam/src/uamctl/internal/config"
)

var (
	serverURL    string
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "uamctl",
	Short: "Command line client for the User Access Manager",
	Long: `uamctl is a command line client for the User Access Manager API.

It authenticates against a uamd server and manages the users owned by
your administrator account.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&serverURL, "server", "s", "http://localhost:3000", "uamd server URL")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "table", "output format (table, json)")

	viper.BindPFlag("server.url", rootCmd.PersistentFlags().Lookup("server"))
	viper.BindPFlag("output.format", rootCmd.PersistentFlags().Lookup("output"))
}

func initConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home + "/.uamctl")
	}
	viper.AddConfigPath("/etc/uamctl")

	viper.SetEnvPrefix("UAMCTL")
	viper.AutomaticEnv()

	// Missing config file is fine, flags and defaults apply
	_ = viper.ReadInConfig()

	serverURL = viper.GetString("server.url")
	outputFormat = viper.GetString("output.format")
}

// getClient returns an API client, attaching the cached session token
// when one exists for the target server.
func getClient() (*client.Client, error) {
	c := client.New(serverURL)

	token, err := config.LoadToken()
	if err != nil {
		return nil, err
	}
	if token != nil {
		if token.ServerURL != "" && token.ServerURL != serverURL {
			return c, nil
		}
		c.Token = token.Token
	}

	return c, nil
}
