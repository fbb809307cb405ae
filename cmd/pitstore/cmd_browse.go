package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// pitstore browse
func (c *cli) browseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "List products, applying any pending search or filter once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			products, err := c.store.Browse.Browse(cmd.Context())
			if err != nil {
				return err
			}
			if len(products) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No products found.")
				return nil
			}
			return c.printProducts(cmd.OutOrStdout(), products)
		},
	}
}

// pitstore filter category|team|search <value>
func (c *cli) filterCmd() *cobra.Command {
	filter := &cobra.Command{
		Use:   "filter",
		Short: "Queue a search or filter for the next browse",
	}

	filter.AddCommand(&cobra.Command{
		Use:   "category <category>",
		Short: "Show only one category on the next browse (\"all\" for everything)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.store.Browse.SetCategoryFilter(cmd.Context(), args[0])
		},
	})
	filter.AddCommand(&cobra.Command{
		Use:   "team <slug>",
		Short: "Show only one team on the next browse",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.store.Browse.SetTeamFilter(cmd.Context(), args[0])
		},
	})
	filter.AddCommand(&cobra.Command{
		Use:   "search <query>",
		Short: "Search on the next browse",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.store.Browse.SetSearchQuery(cmd.Context(), strings.Join(args, " "))
		},
	})
	return filter
}
