package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/bnema/shopeasy-cli/internal/adapters/render/catalog"
	"github.com/bnema/shopeasy-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newProductsCmd(flags *rootFlags) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "products",
		Short: "Fetch and show the product listing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, cmd.ErrOrStderr(), func(app *app) error {
				session := app.newSession(writerNotifier{out: cmd.ErrOrStderr()})
				if err := session.Start(cmd.Context()); err != nil {
					return err
				}

				return writeProductsOutput(cmd, app, session.Products(), asJSON)
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}

func writeProductsOutput(cmd *cobra.Command, app *app, products []domain.Product, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(products)
	}

	opts := catalog.DefaultOptions()
	opts.HideCart = true

	rendered, err := app.catalogRenderer(catalog.Snapshot{Products: products}, opts)
	if err != nil {
		return fmt.Errorf("render products: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}
