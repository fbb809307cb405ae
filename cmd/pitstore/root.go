package main

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/pitstore/app/services"
	"github.com/shashiranjanraj/pitstore/pkg/app"
)

// cli carries the booted store from the pre-run hook to the commands.
type cli struct {
	store *app.App
}

// newRootCmd builds the command tree. The returned func closes whatever the
// command booted and must run after Execute, whether it failed or not.
func newRootCmd() (*cobra.Command, func() error) {
	c := &cli{}

	root := &cobra.Command{
		Use:           "pitstore",
		Short:         "F1 merchandise store in the terminal",
		Long:          "Browse the catalog, manage your cart, sign in and check out from the terminal.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.Boot(cmd.Context())
			if err != nil {
				return err
			}
			c.store = a
			return nil
		},
	}

	// Catalog
	root.AddCommand(c.productsCmd())
	root.AddCommand(c.productCmd())
	root.AddCommand(c.searchCmd())
	root.AddCommand(c.categoriesCmd())
	root.AddCommand(c.teamsCmd())

	// Browse
	root.AddCommand(c.browseCmd())
	root.AddCommand(c.filterCmd())

	// Cart
	root.AddCommand(c.cartCmd())

	// Account
	root.AddCommand(c.signupCmd())
	root.AddCommand(c.signinCmd())
	root.AddCommand(c.signoutCmd())
	root.AddCommand(c.whoamiCmd())

	// Orders
	root.AddCommand(c.checkoutCmd())
	root.AddCommand(c.ordersCmd())
	root.AddCommand(c.orderCmd())

	// Admin
	root.AddCommand(c.adminCmd())

	return root, c.close
}

func (c *cli) close() error {
	if c.store == nil {
		return nil
	}
	err := c.store.Close()
	c.store = nil
	return err
}

func table(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
}

// describe turns service errors into something a shopper can act on.
func describe(err error) string {
	var verr *services.ValidationError
	var perr *services.PaymentError
	switch {
	case errors.As(err, &verr):
		return verr.Error()
	case errors.As(err, &perr):
		return perr.Error()
	case errors.Is(err, services.ErrInvalidCredentials):
		return "Invalid email or password."
	case errors.Is(err, services.ErrUnauthenticated):
		return "Please sign in first (pitstore signin)."
	case errors.Is(err, services.ErrForbidden):
		return "Admin privileges required."
	case errors.Is(err, services.ErrConflict):
		return "An account with this email already exists."
	case errors.Is(err, services.ErrEmptyCart):
		return "Your cart is empty."
	case errors.Is(err, services.ErrNotFound):
		return fmt.Sprintf("Not found: %v", err)
	default:
		return err.Error()
	}
}
