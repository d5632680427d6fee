// Package core provides the core command and server functionality for uamd.
package core

import (
	"fmt"
	"os"

	"github.com/bitswalk/uam/src/common/cli"
	"github.com/bitswalk/uam/src/common/logs"
	"github.com/bitswalk/uam/src/common/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// DefaultJWTSecret is the out-of-the-box signing secret. It is insecure and
// the server warns loudly when it is still in use.
const DefaultJWTSecret = "secret"

var (
	// VersionInfo holds version information - set at build time via ldflags
	VersionInfo = version.New()

	// Global logger instance
	log *logs.Logger

	// Configuration file path
	cfgFile string
)

// Linker variables - these are set via ldflags at build time
// They must be initialized as empty strings or literals for ldflags to work
var (
	Version        = "dev"
	ReleaseName    = "Aurora"
	ReleaseVersion = "0.0.0"
	BuildDate      = "unknown"
	GitCommit      = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "uamd",
	Short: "UAM API Server",
	Long: `uamd is the user access manager API server.

It exposes a REST API for user registration, authentication and
admin-scoped user management, backed by an embedded relational store.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

// Execute runs the root command
func Execute() {
	// Populate VersionInfo from linker variables
	VersionInfo.Version = Version
	VersionInfo.ReleaseName = ReleaseName
	VersionInfo.ReleaseVersion = ReleaseVersion
	VersionInfo.BuildDate = BuildDate
	VersionInfo.GitCommit = GitCommit

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Configuration file flag
	cli.RegisterConfigFlag(rootCmd, &cfgFile, "/etc/uamd/uamd.yaml")

	// Server flags
	rootCmd.Flags().IntP("port", "p", 3000, "Port to listen on")
	rootCmd.Flags().StringP("bind", "b", "0.0.0.0", "Address to bind to")

	// Logging flags (using common helper)
	cli.RegisterLogFlags(rootCmd)

	// Database flags
	rootCmd.Flags().String("db-path", "~/.uamd/uamd.db", "Path to persist database on shutdown")

	// Auth flags
	rootCmd.Flags().String("jwt-secret", DefaultJWTSecret, "HMAC secret used to sign bearer tokens")

	// Bind flags to viper
	_ = viper.BindPFlag("server.port", rootCmd.Flags().Lookup("port"))
	_ = viper.BindPFlag("server.bind", rootCmd.Flags().Lookup("bind"))
	_ = viper.BindPFlag("database.path", rootCmd.Flags().Lookup("db-path"))
	_ = viper.BindPFlag("auth.jwt_secret", rootCmd.Flags().Lookup("jwt-secret"))

	// Bare environment variables honored alongside the UAMD_ prefixed ones
	_ = viper.BindEnv("server.port", "UAMD_SERVER_PORT", "PORT")
	_ = viper.BindEnv("auth.jwt_secret", "UAMD_AUTH_JWT_SECRET", "JWT_SECRET")

	// Set defaults
	viper.SetDefault("server.port", 3000)
	viper.SetDefault("server.bind", "0.0.0.0")
	viper.SetDefault("database.path", "~/.uamd/uamd.db")
	viper.SetDefault("auth.jwt_secret", DefaultJWTSecret)
}

// initConfig reads in config file and ENV variables if set
func initConfig() error {
	// Use common config initialization with uamd-specific search paths
	opts := cli.ConfigOptions{
		ConfigName: "uamd",
		ConfigType: "yaml",
		EnvPrefix:  "UAMD",
		SearchPaths: []string{
			"/etc/uamd",
			"/opt/uamd",
			"~/.uamd",
		},
	}
	opts.ConfigFile = cfgFile

	if err := cli.InitConfig(opts); err != nil {
		return err
	}

	// Initialize logger using common helper
	log = cli.InitLogger("uamd")

	return nil
}
