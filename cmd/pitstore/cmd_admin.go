package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// pitstore admin ...
func (c *cli) adminCmd() *cobra.Command {
	admin := &cobra.Command{
		Use:   "admin",
		Short: "Store administration",
	}

	admin.AddCommand(&cobra.Command{
		Use:   "bootstrap",
		Short: "Create the admin account and open an admin session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := c.store.Auth.EnsureAdminBootstrap(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "🔑 Signed in as %s <%s>\n", u.Name, u.Email)
			return nil
		},
	})

	admin.AddCommand(&cobra.Command{
		Use:   "users",
		Short: "List registered users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := c.store.Auth.Users(cmd.Context())
			if err != nil {
				return err
			}
			w := table(cmd.OutOrStdout())
			fmt.Fprintln(w, "ID\tNAME\tEMAIL\tORDERS\tJOINED")
			for _, u := range users {
				fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\n", u.ID, u.Name, u.Email, len(u.Orders), u.CreatedAt.Format("2 Jan 2006"))
			}
			return w.Flush()
		},
	})

	admin.AddCommand(&cobra.Command{
		Use:   "orders",
		Short: "List every order in the ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			orders, err := c.store.Checkout.AllOrders(cmd.Context())
			if err != nil {
				return err
			}
			return printOrders(cmd.OutOrStdout(), orders)
		},
	})

	return admin
}
