package cmds

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/aquaria-id/contest-api/internal/config"
	"github.com/aquaria-id/contest-api/internal/exitcode"
	"github.com/aquaria-id/contest-api/internal/identity"
)

// Satisfies pflag.Value so cobra rejects unknown roles while parsing
type roleFlag identity.Role

func (r *roleFlag) String() string {
	return string(*r)
}

func (r *roleFlag) Set(v string) error {
	role := identity.Role(strings.ToLower(strings.TrimSpace(v)))
	if !role.Valid() {
		return fmt.Errorf("must be %q or %q", identity.RoleAdmin, identity.RoleParticipant)
	}

	*r = roleFlag(role)
	return nil
}

func (r *roleFlag) Type() string {
	return "role"
}

var (
	tokenID    int64
	tokenRole  = roleFlag(identity.RoleParticipant)
	tokenName  string
	tokenEmail string
	tokenTTL   time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Work with bearer tokens",
}

var tokenIssueCmd = &cobra.Command{
	Use:   "issue",
	Short: "Sign a bearer token for an identity, for development and testing",
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, span := tracer.Start(cmd.Context(), "tokenIssue")
		defer span.End()

		span.SetAttributes(
			attribute.Int64("identity.id", tokenID),
			attribute.String("identity.role", string(tokenRole)),
		)

		if tokenID <= 0 {
			err := exitcode.Wrap(exitcode.Usage, errors.New("--id must be a positive integer"))
			span.RecordError(err)
			span.SetStatus(codes.Error, "invalid id")
			return err
		}

		cfg, err := config.GetConfig()
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to load config")
			return exitcode.Wrap(exitcode.Config, err)
		}

		ttl := cfg.Auth.TokenTTL
		if tokenTTL > 0 {
			ttl = tokenTTL
		}

		service := identity.NewService(cfg.Auth.JWTSecret, cfg.Auth.Issuer, ttl)
		token, err := service.Issue(identity.Identity{
			ID:    tokenID,
			Role:  identity.Role(tokenRole),
			Name:  tokenName,
			Email: tokenEmail,
		})
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to issue token")
			return exitcode.Wrap(exitcode.Errored, err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), token)

		span.RecordError(nil)
		span.SetStatus(codes.Ok, "issued token")
		return nil
	},
}

func init() {
	tokenIssueCmd.Flags().Int64Var(&tokenID, "id", 0, "Identity id, becomes the token subject")
	tokenIssueCmd.Flags().Var(&tokenRole, "role", `"admin" or "participant"`)
	tokenIssueCmd.Flags().StringVar(&tokenName, "name", "", "Display name")
	tokenIssueCmd.Flags().StringVar(&tokenEmail, "email", "", "Email address")
	tokenIssueCmd.Flags().DurationVar(&tokenTTL, "ttl", 0, "Lifetime, defaults to auth.token_ttl")

	if err := tokenIssueCmd.MarkFlagRequired("id"); err != nil {
		panic("Internal error contact a contributor [id-flag-required]")
	}

	tokenCmd.AddCommand(tokenIssueCmd)
	rootCmd.AddCommand(tokenCmd)
}
