package cmd

import (
	"errors"
	"fmt"

	"github.com/bnema/shopeasy-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newCommentCmd(flags *rootFlags) *cobra.Command {
	var (
		productID int64
		text      string
	)

	cmd := &cobra.Command{
		Use:   "comment",
		Short: "Post a comment on a product",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, cmd.ErrOrStderr(), func(app *app) error {
				session := app.newSession(writerNotifier{out: cmd.ErrOrStderr()})
				// The listing only names the product in the output; a failed
				// fetch is logged by the session and the comment is posted anyway.
				_ = session.Start(cmd.Context())

				id := domain.ProductID(productID)
				session.SetDraftComment(id, text)

				err := session.PostComment(cmd.Context(), id)
				if errors.Is(err, domain.ErrProductNotFound) {
					_, err = fmt.Fprintf(cmd.OutOrStdout(), "Comment posted on #%d (not in the current listing)\n", id)
					return err
				}
				if err != nil {
					return err
				}

				product, err := session.Product(id)
				if err != nil {
					return err
				}

				_, err = fmt.Fprintf(cmd.OutOrStdout(), "Comment posted on %s (#%d), %d comments\n", product.Name, id, len(product.Comments))
				return err
			})
		},
	}

	cmd.Flags().Int64Var(&productID, "product", 0, "Product ID")
	cmd.Flags().StringVar(&text, "text", "", "Comment text (may be empty)")
	_ = cmd.MarkFlagRequired("product")

	return cmd
}
