package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:           "shopeasy",
		Short:         "ShopEasy storefront client",
		Long:          "shopeasy browses a ShopEasy store from the terminal: log in, list products, fill a cart and comment on products, either interactively (shop) or one call at a time.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.PersistentFlags().StringVar(&flags.configFile, "config", "", "Config file (default ~/.shopeasy/config.toml)")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Override log.level (debug, info, warn, error)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newConfigCmd(flags),
		newShopCmd(flags),
		newProductsCmd(flags),
		newLoginCmd(flags),
		newCommentCmd(flags),
	)

	return rootCmd
}
