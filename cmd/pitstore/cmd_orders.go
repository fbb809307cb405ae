package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/pitstore/app/models"
	"github.com/shashiranjanraj/pitstore/app/services"
)

// pitstore checkout
func (c *cli) checkoutCmd() *cobra.Command {
	var method string
	var addr models.Address
	var card, upiID, bank string

	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Pay for the cart and place an order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := services.CheckoutRequest{
				Method:      models.PaymentMethod(strings.ToLower(method)),
				PaymentData: paymentData(card, upiID, bank),
			}
			if addr.Street != "" {
				a := addr
				req.Address = &a
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "💳 Processing payment…")
			order, err := c.store.Checkout.Checkout(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "✅ Order #%d confirmed (transaction %s)\n\n", order.ID, order.TransactionID)
			printOrder(out, order)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&method, "method", string(models.PaymentUPI), "upi | card | netbanking | cod")
	f.StringVar(&card, "card", "", "card number (card payments)")
	f.StringVar(&upiID, "upi-id", "", "UPI id (UPI payments)")
	f.StringVar(&bank, "bank", "", "bank (net banking)")
	f.StringVar(&addr.FirstName, "first-name", "", "shipping first name")
	f.StringVar(&addr.LastName, "last-name", "", "shipping last name")
	f.StringVar(&addr.Email, "email", "", "contact email (defaults to your account email)")
	f.StringVar(&addr.Phone, "phone", "", "contact phone")
	f.StringVar(&addr.Street, "address", "", "street address; without it your profile is used")
	f.StringVar(&addr.City, "city", "", "city")
	f.StringVar(&addr.State, "state", "", "state")
	f.StringVar(&addr.ZipCode, "zip", "", "ZIP / PIN code")
	return cmd
}

// pitstore orders
func (c *cli) ordersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "orders",
		Short: "List your orders, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			orders, err := c.store.Checkout.Orders(cmd.Context())
			if err != nil {
				return err
			}
			return printOrders(cmd.OutOrStdout(), orders)
		},
	}
}

// pitstore order <id>
func (c *cli) orderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "order <id>",
		Short: "Show one order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			order, err := c.store.Checkout.Order(cmd.Context(), id)
			if err != nil {
				return err
			}
			printOrder(cmd.OutOrStdout(), order)
			return nil
		},
	}
}

func paymentData(card, upiID, bank string) map[string]string {
	data := map[string]string{}
	for k, v := range map[string]string{"cardNumber": card, "upiId": upiID, "bank": bank} {
		if v != "" {
			data[k] = v
		}
	}
	return data
}

func printOrders(out io.Writer, orders []models.Order) error {
	if len(orders) == 0 {
		fmt.Fprintln(out, "No orders yet.")
		return nil
	}
	w := table(out)
	fmt.Fprintln(w, "ORDER\tDATE\tITEMS\tPAYMENT\tTOTAL\tSTATUS")
	for _, o := range orders {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\t%s\n", o.ID, o.CreatedAt.Format("2 Jan 2006 15:04"),
			o.ItemCount(), o.PaymentMethod, services.FormatPrice(o.Total), o.Status)
	}
	return w.Flush()
}

func printOrder(out io.Writer, o models.Order) {
	fmt.Fprintf(out, "Order #%d · %s · %s\n", o.ID, o.Status, o.CreatedAt.Format("2 Jan 2006 15:04"))

	w := table(out)
	for _, l := range o.Items {
		fmt.Fprintf(w, "  %s %s\t%s / %s\t× %d\t%s\n", l.Image, l.Name, l.Size, l.Color, l.Quantity,
			services.FormatAmount(l.Subtotal()))
	}
	_ = w.Flush()

	fmt.Fprintf(out, "\nSubtotal: %s\n", services.FormatPrice(o.Subtotal))
	if o.Shipping.IsZero() {
		fmt.Fprintln(out, "Shipping: FREE")
	} else {
		fmt.Fprintf(out, "Shipping: %s\n", services.FormatPrice(o.Shipping))
	}
	fmt.Fprintf(out, "Tax:      %s\n", services.FormatPrice(o.Tax))
	if !o.CODCharge.IsZero() {
		fmt.Fprintf(out, "COD:      %s\n", services.FormatPrice(o.CODCharge))
	}
	fmt.Fprintf(out, "Total:    %s (%s)\n", services.FormatPrice(o.Total), o.PaymentMethod)

	a := o.ShippingAddress
	fmt.Fprintf(out, "\nShip to:  %s %s, %s, %s, %s %s\n", a.FirstName, a.LastName, a.Street, a.City, a.State, a.ZipCode)
}
