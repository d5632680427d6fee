package cmd

import (
	"fmt"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bitswalk/uam/src/uamctl/internal/output"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage users in your administrator group",
}

var userListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the users you manage",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := getClient()
		if err != nil {
			return err
		}

		users, err := c.ListUsers(cmd.Context())
		if err != nil {
			return err
		}

		return output.PrintFormatted(outputFormat, users, func() {
			rows := make([][]string, 0, len(users))
			for _, u := range users {
				rows = append(rows, []string{u.ID, u.Name, u.Email, u.Role})
			}
			output.PrintTable([]string{"ID", "NAME", "EMAIL", "ROLE"}, rows)
		})
	},
}

var userGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a user you manage",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := getClient()
		if err != nil {
			return err
		}

		user, err := c.GetUser(cmd.Context(), args[0])
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
				{"Updated", user.UpdatedAt},
			})
		})
	},
}

var (
	userName     string
	userEmail    string
	userPassword string
	userRole     string
)

var userCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a user in your group",
	RunE: func(cmd *cobra.Command, args []string) error {
		password := userPassword
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

		resp, err := c.CreateUser(cmd.Context(), userName, userEmail, password, userRole)
		if err != nil {
			return err
		}

		output.PrintMessage("%s (id: %s)", resp.Message, resp.UserID)
		return nil
	},
}

var userUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a user in your group",
	Long:  "Update a user in your group. Only name and email can be changed.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := getClient()
		if err != nil {
			return err
		}

		resp, err := c.UpdateUser(cmd.Context(), args[0], userName, userEmail)
		if err != nil {
			return err
		}

		output.PrintMessage("%s: %s", resp.Message, resp.User.String())
		return nil
	},
}

var userDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a user from your group",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := getClient()
		if err != nil {
			return err
		}

		resp, err := c.DeleteUser(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		output.PrintMessage("%s", resp.Message)
		return nil
	},
}

func init() {
	userCreateCmd.Flags().StringVarP(&userName, "name", "n", "", "display name")
	userCreateCmd.Flags().StringVarP(&userEmail, "email", "e", "", "account email")
	userCreateCmd.Flags().StringVarP(&userPassword, "password", "p", "", "account password (prompted when omitted)")
	userCreateCmd.Flags().StringVarP(&userRole, "role", "r", "USER", "account role (ADMIN or USER)")
	userCreateCmd.MarkFlagRequired("name")
	userCreateCmd.MarkFlagRequired("email")

	userUpdateCmd.Flags().StringVarP(&userName, "name", "n", "", "new display name")
	userUpdateCmd.Flags().StringVarP(&userEmail, "email", "e", "", "new account email")

	userCmd.AddCommand(userListCmd)
	userCmd.AddCommand(userGetCmd)
	userCmd.AddCommand(userCreateCmd)
	userCmd.AddCommand(userUpdateCmd)
	userCmd.AddCommand(userDeleteCmd)
	rootCmd.AddCommand(userCmd)
}
