package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/pitstore/app/services"
)

type lineFlags struct {
	size  string
	color string
}

func (f *lineFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.size, "size", "", "size (defaults to the product's first size)")
	cmd.Flags().StringVar(&f.color, "color", "", "color (defaults to the product's first color)")
}

// pitstore cart ...
func (c *cli) cartCmd() *cobra.Command {
	cart := &cobra.Command{
		Use:   "cart",
		Short: "Show or change the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.printCart(cmd.OutOrStdout())
		},
	}

	cart.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.printCart(cmd.OutOrStdout())
		},
	})

	var add lineFlags
	var qty int
	addCmd := &cobra.Command{
		Use:   "add <product-id>",
		Short: "Add a product to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			line, err := c.store.Cart.Add(cmd.Context(), id, qty, add.size, add.color)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "🛒 %s (%s, %s) × %d added. Cart: %d items\n",
				line.Name, line.Size, line.Color, line.Quantity, c.store.Cart.Count())
			return nil
		},
	}
	add.bind(addCmd)
	addCmd.Flags().IntVar(&qty, "qty", 1, "quantity to add")
	cart.AddCommand(addCmd)

	var rm lineFlags
	removeCmd := &cobra.Command{
		Use:   "remove <product-id>",
		Short: "Remove a line from the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := c.store.Cart.Remove(cmd.Context(), id, rm.size, rm.color); err != nil {
				return err
			}
			return c.printCart(cmd.OutOrStdout())
		},
	}
	rm.bind(removeCmd)
	cart.AddCommand(removeCmd)

	var upd lineFlags
	updateCmd := &cobra.Command{
		Use:   "update <product-id> <quantity>",
		Short: "Set a line's quantity (0 removes it)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid quantity %q", args[1])
			}
			if err := c.store.Cart.UpdateQuantity(cmd.Context(), id, n, upd.size, upd.color); err != nil {
				return err
			}
			return c.printCart(cmd.OutOrStdout())
		},
	}
	upd.bind(updateCmd)
	cart.AddCommand(updateCmd)

	cart.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.store.Cart.Clear(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "🧹 Cart cleared.")
			return nil
		},
	})

	return cart
}

func (c *cli) printCart(out io.Writer) error {
	cart := c.store.Cart
	if cart.IsEmpty() {
		fmt.Fprintln(out, "Your cart is empty.")
		return nil
	}

	w := table(out)
	fmt.Fprintln(w, "ID\tPRODUCT\tSIZE\tCOLOR\tQTY\tPRICE\tSUBTOTAL")
	for _, l := range cart.Lines() {
		fmt.Fprintf(w, "%d\t%s %s\t%s\t%s\t%d\t%s\t%s\n", l.ProductID, l.Image, l.Name, l.Size, l.Color,
			l.Quantity, services.FormatAmount(l.Price), services.FormatAmount(l.Subtotal()))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	q := c.store.Checkout.Quote("")
	fmt.Fprintf(out, "\nItems: %d   Subtotal: %s   Shipping: %s   Tax: %s   Total: %s\n",
		cart.Count(), services.FormatPrice(q.Subtotal), services.FormatPrice(q.Shipping),
		services.FormatPrice(q.Tax), services.FormatPrice(q.Total))
	return nil
}
