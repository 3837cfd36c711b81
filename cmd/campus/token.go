package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jbweber/homelab/campus/internal/auth"
	"github.com/jbweber/homelab/campus/internal/config"
)

func newTokenCmd() *cobra.Command {
	var (
		subject string
		roles   []string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token signed with JWT_SECRET",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.JWTSecret == "" {
				return config.ErrMissingSecret
			}

			granted, err := parseRoles(roles)
			if err != nil {
				return err
			}
			if ttl == 0 {
				ttl = cfg.TokenTTL
			}

			tok, err := auth.NewToken(cfg.JWTSecret, subject, granted, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok.Token)
			return nil
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "", "token subject, usually an email address")
	cmd.Flags().StringSliceVar(&roles, "roles", []string{string(auth.RoleUser)}, "granted roles (USER, ADMIN)")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime (default TOKEN_TTL)")
	_ = cmd.MarkFlagRequired("subject")
	return cmd
}

func parseRoles(names []string) ([]auth.Role, error) {
	roles := make([]auth.Role, 0, len(names))
	for _, name := range names {
		role := auth.Role(strings.ToUpper(strings.TrimSpace(name)))
		switch role {
		case auth.RoleUser, auth.RoleAdmin:
			roles = append(roles, role)
		default:
			return nil, fmt.Errorf("unknown role %q", name)
		}
	}
	return roles, nil
}
