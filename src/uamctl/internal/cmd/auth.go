package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bitswalk/uam/src/uamctl/internal/config"
	"github.com/bitswalk/uam/src/uamctl/internal/output"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate against the server and cache the session token",
	RunE: func(cmd *cobra.Command, args []string) error {
		email := loginEmail
		if email == "" {
			fmt.Print("Email: ")
			reader := bufio.NewReader(os.Stdin)
			line, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("failed to read email: %w", err)
			}
			email = strings.TrimSpace(line)
		}

		password := loginPassword
		if password == "" {
			fmt.Print("Password: ")
			raw, err := term.ReadPassword(int(syscall.Stdin))
			fmt.Println()
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}
			password = string(raw)
		}

		c, err := getClient()
		if err != nil {
			return err
		}

		resp, err := c.Login(cmd.Context(), email, password)
		if err != nil {
			return err
		}

		if err := config.SaveToken(&config.TokenData{
			Token:     resp.Token,
			ServerURL: serverURL,
			Email:     email,
		}); err != nil {
			return fmt.Errorf("authenticated but failed to save token: %w", err)
		}

		output.PrintMessage("Logged in as %s", email)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the session and discard the cached token",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := getClient()
		if err != nil {
			return err
		}

		// Best effort, the local token is cleared regardless
		if c.Token != "" {
			if _, err := c.Logout(cmd.Context()); err != nil {
				output.PrintError("server logout failed: %v", err)
			}
		}

		if err := config.ClearToken(); err != nil {
			return err
		}

		output.PrintMessage("Logged out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the authenticated user's profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := getClient()
		if err != nil {
			return err
		}

		user, err := c.Profile(cmd.Context())
		if err != nil {
			return err
		}

		return output.PrintFormatted(outputFormat, user, func() {
			adminID := ""
			if user.AdminID != nil {
				adminID = *user.AdminID
			}
			output.PrintKeyValues([][2]string{
				{"ID", user.ID},
				{"Name", user.Name},
				{"Email", user.Email},
				{"Role", user.Role},
				{"Admin", adminID},
				{"Created", user.CreatedAt},
			})
		})
	},
}

var (
	registerName    string
	registerEmail   string
	registerRole    string
	registerAdminID string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account on the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Print("Password: ")
		raw, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}

		c, err := getClient()
		if err != nil {
			return err
		}

		resp, err := c.Register(cmd.Context(), registerName, registerEmail, string(raw), registerRole, registerAdminID)
		if err != nil {
			return err
		}

		output.PrintMessage("%s (id: %s)", resp.Message, resp.UserID)
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVarP(&loginEmail, "email", "e", "", "account email")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "account password (prompted when omitted)")

	registerCmd.Flags().StringVarP(&registerName, "name", "n", "", "display name")
	registerCmd.Flags().StringVarP(&registerEmail, "email", "e", "", "account email")
	registerCmd.Flags().StringVarP(&registerRole, "role", "r", "USER", "account role (ADMIN or USER)")
	registerCmd.Flags().StringVar(&registerAdminID, "admin-id", "", "administrator id for USER accounts")
	registerCmd.MarkFlagRequired("name")
	registerCmd.MarkFlagRequired("email")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(registerCmd)
}
