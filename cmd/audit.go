package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seo-optimizer/audit-api/audit"
)

var (
	auditURL     string
	auditKeyword string
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Run a single audit and print the result as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := newService(nil).Audit(cmd.Context(), audit.AuditRequest{
			URL:           auditURL,
			TargetKeyword: auditKeyword,
		})
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		return nil
	},
}

func init() {
	auditCmd.Flags().StringVar(&auditURL, "url", "", "page to audit")
	auditCmd.Flags().StringVar(&auditKeyword, "keyword", "", "target keyword used for the competitor search")
	_ = auditCmd.MarkFlagRequired("url")
	_ = auditCmd.MarkFlagRequired("keyword")
	rootCmd.AddCommand(auditCmd)
}
