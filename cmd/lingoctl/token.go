package main

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/lingoread/internal/auth"
	"github.com/heartmarshall/lingoread/internal/domain"
)

var (
	tokenSubject string
	tokenRole    string
)

var adminTokenCmd = &cobra.Command{
	Use:   "admin-token",
	Short: "Issue a bearer token for the admin routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cfg.Auth.Enabled() {
			return errors.New("auth.jwt_secret is not configured")
		}

		subject := uuid.New()
		if tokenSubject != "" {
			id, err := uuid.Parse(tokenSubject)
			if err != nil {
				return fmt.Errorf("invalid --subject: %w", err)
			}
			subject = id
		}

		mgr := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
		token, err := mgr.GenerateAccessToken(subject, domain.UserRole(tokenRole))
		if err != nil {
			return err
		}

		fmt.Println(token)
		return nil
	},
}

func init() {
	adminTokenCmd.Flags().StringVar(&tokenSubject, "subject", "", "Subject UUID (default: random)")
	adminTokenCmd.Flags().StringVar(&tokenRole, "role", string(domain.UserRoleAdmin), "Role claim: admin or user")
}
