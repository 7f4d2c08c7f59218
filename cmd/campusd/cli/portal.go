package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sssbpuc/campusd/internal/model"
	"github.com/sssbpuc/campusd/internal/service"
)

func newPortalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "portal",
		Short: "Manage portal accounts",
		Long:  "Create, list, and deactivate staff and student portal accounts.",
	}

	cmd.AddCommand(newPortalCreateCmd())
	cmd.AddCommand(newPortalListCmd())
	cmd.AddCommand(newPortalDeactivateCmd())

	return cmd
}

// ---------- portal create ----------

func newPortalCreateCmd() *cobra.Command {
	var (
		username   string
		password   string
		fullName   string
		userType   string
		email      string
		department string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a portal account",
		Example: `  campusd portal create --username jdoe --type staff --name "J. Doe"
  campusd portal create --username s1024 --type student  # prompts for password`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !model.ValidUserType(userType) {
				return fmt.Errorf("invalid --type %q: must be staff or student", userType)
			}
			if password == "" {
				var err error
				password, err = promptPassword()
				if err != nil {
					return err
				}
			}
			if password == "" {
				return fmt.Errorf("password must not be empty")
			}

			st, err := openStore()
			if err != nil {
				return fmt.Errorf("open datastore: %w", err)
			}
			defer st.Close()

			u := &model.PortalUser{
				Username:     username,
				PasswordHash: service.PasswordDigest(password),
				FullName:     fullName,
				UserType:     userType,
				Email:        email,
				Department:   department,
				IsActive:     true,
			}
			if err := st.CreatePortalUser(context.Background(), u); err != nil {
				return fmt.Errorf("create portal user: %w", err)
			}

			fmt.Printf("Created %s account %q\n", userType, username)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Login username (required)")
	cmd.Flags().StringVar(&password, "password", "", "Password (prompted if omitted)")
	cmd.Flags().StringVar(&fullName, "name", "", "Full display name")
	cmd.Flags().StringVar(&userType, "type", "student", "Account type: staff or student")
	cmd.Flags().StringVar(&email, "email", "", "Contact email")
	cmd.Flags().StringVar(&department, "department", "", "Department")
	cmd.MarkFlagRequired("username")

	return cmd
}

// ---------- portal list ----------

func newPortalListCmd() *cobra.Command {
	var (
		userType   string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List portal accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			if userType != "" && !model.ValidUserType(userType) {
				return fmt.Errorf("invalid --type %q: must be staff or student", userType)
			}

			st, err := openStore()
			if err != nil {
				return fmt.Errorf("open datastore: %w", err)
			}
			defer st.Close()

			users, err := st.ListPortalUsers(context.Background(), userType)
			if err != nil {
				return fmt.Errorf("list portal users: %w", err)
			}

			if jsonOutput {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(users)
			}

			if len(users) == 0 {
				fmt.Println("No portal accounts found.")
				return nil
			}

			fmt.Printf("%-20s %-24s %-8s %-8s\n", "USERNAME", "NAME", "TYPE", "ACTIVE")
			fmt.Printf("%-20s %-24s %-8s %-8s\n", "--------", "----", "----", "------")
			for _, u := range users {
				active := "yes"
				if !u.IsActive {
					active = "no"
				}
				fmt.Printf("%-20s %-24s %-8s %-8s\n", u.Username, u.FullName, u.UserType, active)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&userType, "type", "", "Filter by type: staff or student")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

// ---------- portal deactivate ----------

func newPortalDeactivateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deactivate <id>",
		Short: "Deactivate a portal account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore()
			if err != nil {
				return fmt.Errorf("open datastore: %w", err)
			}
			defer st.Close()

			if err := st.SetPortalUserActive(context.Background(), args[0], false); err != nil {
				return fmt.Errorf("deactivate portal user: %w", err)
			}
			fmt.Printf("Deactivated portal account %s\n", args[0])
			return nil
		},
	}

	return cmd
}
