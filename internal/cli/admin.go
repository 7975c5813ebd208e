package cli

import (
	"errors"
	"fmt"
	"os"

	"tripbuilder/internal/repositories"
	"tripbuilder/internal/services"

	"github.com/spf13/cobra"
)

func newCreateAdminCmd() *cobra.Command {
	var req services.RegisterRequest

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create a user with the admin role",
		Long: `Create a user with the admin role. The password is taken from
--password or, when omitted, from the ADMIN_PASSWORD environment variable.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if req.Password == "" {
				req.Password = os.Getenv("ADMIN_PASSWORD")
			}
			if req.Password == "" {
				return errors.New("password required: pass --password or set ADMIN_PASSWORD")
			}

			env, conn, _, err := openStore()
			if err != nil {
				return err
			}
			defer conn.Close()

			svc := services.AuthService{
				Users:     repositories.UserRepository{DB: conn},
				Secret:    []byte(env.JWTSecret),
				TTL:       env.SessionTTL,
				RequestID: "cli",
			}
			u, err := svc.CreateAdmin(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created admin %s (id %d)\n", u.Username, u.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Username, "username", "", "login name")
	cmd.Flags().StringVar(&req.Email, "email", "", "email address")
	cmd.Flags().StringVar(&req.Name, "name", "", "display name (defaults to username)")
	cmd.Flags().StringVar(&req.Password, "password", "", "password (at least 8 characters)")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}
