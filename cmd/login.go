package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newLoginCmd(flags *rootFlags) *cobra.Command {
	var (
		username    string
		password    string
		passwordRef string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Check credentials against the store",
		Long:  "login sends the credentials once and reports whether the store accepted them. --password-ref reads the password from pass, falling back to a file under secrets.dir.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, cmd.ErrOrStderr(), func(app *app) error {
				secret := password
				if passwordRef != "" {
					resolved, err := app.secrets.Get(cmd.Context(), strings.TrimSpace(passwordRef))
					if err != nil {
						return fmt.Errorf("resolve password ref %q: %w", passwordRef, err)
					}
					secret = resolved
				}

				session := app.newSession(writerNotifier{out: cmd.ErrOrStderr()})
				if _, err := session.Login(cmd.Context(), username, secret); err != nil {
					return err
				}

				_, err := fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%d products)\n", username, len(session.Products()))
				return err
			})
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Username")
	cmd.Flags().StringVar(&password, "password", "", "Password")
	cmd.Flags().StringVar(&passwordRef, "password-ref", "", "Secret reference holding the password")
	_ = cmd.MarkFlagRequired("username")
	cmd.MarkFlagsMutuallyExclusive("password", "password-ref")
	cmd.MarkFlagsOneRequired("password", "password-ref")

	return cmd
}
