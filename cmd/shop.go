package cmd

import (
	"io"

	"github.com/bnema/shopeasy-cli/internal/adapters/tui"
	"github.com/spf13/cobra"
)

func newShopCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "shop",
		Short: "Open the interactive storefront",
		Long:  "shop opens the single-page storefront: log in, browse products, add them to the cart and comment. Diagnostics go to log.file when set and are discarded otherwise.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, io.Discard, func(app *app) error {
				notifier := tui.NewNotifier()
				session := app.newSession(notifier)

				return tui.Run(cmd.Context(), session, notifier, nil, nil)
			})
		},
	}
}
