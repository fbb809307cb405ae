package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/pitstore/app/models"
)

// pitstore signup
func (c *cli) signupCmd() *cobra.Command {
	var name, email, password string
	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account and sign in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := c.store.Auth.SignUp(cmd.Context(), name, email, password)
			if err != nil {
				return err
			}
			if _, err := c.store.Auth.SignIn(cmd.Context(), u.Email, password); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "🏁 Welcome, %s! Your account is ready.\n", u.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "full name")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&password, "password", "", "password (at least 6 characters)")
	return cmd
}

// pitstore signin
func (c *cli) signinCmd() *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "signin",
		Short: "Sign in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := c.store.Auth.SignIn(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "👋 Welcome back, %s!\n", u.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&password, "password", "", "password")
	return cmd
}

// pitstore signout
func (c *cli) signoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "signout",
		Short: "Sign out",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.store.Auth.SignOut(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
			return nil
		},
	}
}

// pitstore whoami
func (c *cli) whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			u, ok := c.store.Auth.Current()
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Not signed in.")
				return nil
			}
			printUser(cmd.OutOrStdout(), u)
			return nil
		},
	}
}

func printUser(w io.Writer, u models.User) {
	role := "shopper"
	if u.IsAdmin {
		role = "admin"
	}
	fmt.Fprintf(w, "%s <%s>\n", u.Name, u.Email)
	fmt.Fprintf(w, "ID:      %d (%s)\n", u.ID, role)
	fmt.Fprintf(w, "Joined:  %s\n", u.CreatedAt.Format("2 Jan 2006"))
	fmt.Fprintf(w, "Orders:  %d\n", len(u.Orders))
}
