package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/peptica/internal/content"
	"github.com/terraincognita07/peptica/internal/services"
	"go.uber.org/zap"
)

var (
	contentDir   string
	tokenSubject string
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Load every substance file and report record counts",
	Long: `Parses and validates the substance data files. Duplicate record ids,
unknown tiers, blank categories and malformed slugs fail the command.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Print an admin bearer token for the feedback API",
	Args:  cobra.NoArgs,
	RunE:  runToken,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "peptica %s\n", version)
	},
}

func runValidate(cmd *cobra.Command, args []string) error {
	var (
		library *content.Library
		err     error
	)
	if contentDir != "" {
		library, err = content.Load(os.DirFS(contentDir))
	} else {
		library, err = content.LoadEmbedded()
	}
	if err != nil {
		return err
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "SUBSTANCE\tINTERACTIONS\tEVIDENCE\tMECHANISMS\tSAFETY")
	for _, stats := range library.Stats() {
		fmt.Fprintf(writer, "%s\t%d\t%d\t%d\t%d\n", stats.Slug, stats.Interactions, stats.Evidence, stats.Mechanisms, stats.Safety)
	}
	if err := writer.Flush(); err != nil {
		return err
	}
	logger.Debug("content validated", zap.Int("substances", len(library.List())))
	return nil
}

func runToken(cmd *cobra.Command, args []string) error {
	if err := cfg.ValidateSecretKey(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	token, expiresAt, err := services.NewTokenService(cfg.SecretKey, cfg.AdminTokenTTL).IssueAdminToken(tokenSubject)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), token)
	fmt.Fprintf(cmd.ErrOrStderr(), "expires %s\n", expiresAt.UTC().Format(time.RFC3339))
	return nil
}
