package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/pitstore/app/models"
	"github.com/shashiranjanraj/pitstore/app/services"
)

// pitstore products
func (c *cli) productsCmd() *cobra.Command {
	var category, team, sortBy string
	var featured bool

	cmd := &cobra.Command{
		Use:   "products",
		Short: "List the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := c.store.Catalog
			products := catalog.All()
			switch {
			case featured:
				products = catalog.Featured()
			case category != "" && category != services.CategoryAll:
				products = catalog.ByCategory(category)
			case team != "":
				products = catalog.ByTeam(team)
			}
			return c.printProducts(cmd.OutOrStdout(), catalog.Sort(products, services.SortOrder(sortBy)))
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "only this category (\"all\" for everything)")
	cmd.Flags().StringVar(&team, "team", "", "only this team slug")
	cmd.Flags().BoolVar(&featured, "featured", false, "only featured products")
	cmd.Flags().StringVar(&sortBy, "sort", "", "price-low | price-high | rating | name")
	return cmd
}

// pitstore product <id>
func (c *cli) productCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "product <id>",
		Short: "Show one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			p, err := c.store.Catalog.Find(id)
			if err != nil {
				return err
			}
			team, _ := c.store.Catalog.Team(p.Team)

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s  %s\n", p.Image, p.Name)
			fmt.Fprintf(w, "Team:     %s\n", team.Name)
			fmt.Fprintf(w, "Category: %s\n", p.Category)
			fmt.Fprintf(w, "Price:    %s", services.FormatAmount(p.Price))
			if p.OnSale() {
				fmt.Fprintf(w, " (was %s)", services.FormatAmount(*p.OriginalPrice))
			}
			fmt.Fprintln(w)
			fmt.Fprintf(w, "Rating:   %.1f (%d reviews)\n", p.Rating, p.Reviews)
			fmt.Fprintf(w, "Sizes:    %s\n", strings.Join(p.Sizes, ", "))
			fmt.Fprintf(w, "Colors:   %s\n", strings.Join(p.Colors, ", "))
			fmt.Fprintf(w, "\n%s\n", p.Description)
			return nil
		},
	}
}

// pitstore search <query>
func (c *cli) searchCmd() *cobra.Command {
	var sortBy string
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search names, descriptions, categories and teams",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := c.store.Catalog
			found := catalog.Search(strings.Join(args, " "))
			if len(found) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No products found.")
				return nil
			}
			return c.printProducts(cmd.OutOrStdout(), catalog.Sort(found, services.SortOrder(sortBy)))
		},
	}
	cmd.Flags().StringVar(&sortBy, "sort", "", "price-low | price-high | rating | name")
	return cmd
}

// pitstore categories
func (c *cli) categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List categories with product counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := table(cmd.OutOrStdout())
			fmt.Fprintln(w, "CATEGORY\tPRODUCTS")
			for _, cat := range c.store.Catalog.Categories() {
				fmt.Fprintf(w, "%s\t%d\n", cat.Name, cat.Count)
			}
			return w.Flush()
		},
	}
}

// pitstore teams
func (c *cli) teamsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "teams",
		Short: "List teams",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := table(cmd.OutOrStdout())
			fmt.Fprintln(w, "SLUG\tTEAM\tCOLOR")
			for _, t := range c.store.Catalog.Teams() {
				fmt.Fprintf(w, "%s\t%s %s\t%s\n", t.Slug, t.Logo, t.Name, t.Color)
			}
			return w.Flush()
		},
	}
}

func (c *cli) printProducts(out io.Writer, products []models.Product) error {
	w := table(out)
	fmt.Fprintln(w, "ID\tPRODUCT\tTEAM\tPRICE\tRATING\t")
	for _, p := range products {
		team, _ := c.store.Catalog.Team(p.Team)
		badge := ""
		if p.Badge != "" {
			badge = "[" + strings.ToUpper(p.Badge) + "]"
		}
		fmt.Fprintf(w, "%d\t%s %s\t%s\t%s\t%.1f\t%s\n",
			p.ID, p.Image, p.Name, team.Name, services.FormatAmount(p.Price), p.Rating, badge)
	}
	return w.Flush()
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}
