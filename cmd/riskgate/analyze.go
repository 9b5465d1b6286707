package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fraudsight/riskgate"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Submit records to the analytical backend",
}

var analyzeLegalCmd = &cobra.Command{
	Use:   "legal [file]",
	Short: "Scan a document text for suspicious language",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, _ := cmd.Flags().GetString("text")
		if len(args) == 1 {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			text = string(raw)
		}
		if text == "" {
			return fmt.Errorf("provide --text or a file argument")
		}

		gateway, err := newGateway(cmd.Context())
		if err != nil {
			return err
		}
		result, err := gateway.AnalyzeLegalDocument(cmd.Context(), text)
		if err != nil {
			return err
		}

		fmt.Printf("status: %s\nrisk score: %.3f\nsuspicious: %v\n", result.Status, result.RiskScore, result.IsSuspicious)
		return nil
	},
}

var analyzeVendorCmd = &cobra.Command{
	Use:   "vendor <vendor-id>",
	Short: "Analyze a vendor for bid-rigging connections",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		gateway, err := newGateway(cmd.Context())
		if err != nil {
			return err
		}
		result, err := gateway.AnalyzeBidRigging(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("vendor: %s\nrisk level: %s\nin cartel: %v\nconnections: %d\n",
			result.VendorID, result.RiskLevel, result.IsInCartel, result.TotalConnections)
		for _, conn := range result.TopConnections {
			label := conn.VendorID
			if conn.VendorName != nil {
				label = *conn.VendorName
			}
			fmt.Printf("  - %s (weight %d)\n", label, conn.ConnectionWeight)
		}
		return nil
	},
}

var analyzeWelfareCmd = &cobra.Command{
	Use:   "welfare <claims.json>",
	Short: "Run fraud detection on a JSON file of claims",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		var claims []riskgate.WelfareClaim
		if err := json.Unmarshal(raw, &claims); err != nil {
			return fmt.Errorf("parse claims: %w", err)
		}

		gateway, err := newGateway(cmd.Context())
		if err != nil {
			return err
		}
		result, err := gateway.AnalyzeWelfareClaims(cmd.Context(), claims)
		if err != nil {
			return err
		}

		fmt.Printf("analyzed %d claims, %d high risk\n", result.TotalAnalyzed, result.HighRiskCount)
		for _, r := range result.Results {
			if r.IsFraud {
				fmt.Printf("  - %s: %s (score %.3f) %s\n", r.ClaimID, r.Status, r.RiskScore, r.Reason)
			}
		}
		return nil
	},
}

var analyzeSpendingCmd = &cobra.Command{
	Use:   "spending <transactions.json>",
	Short: "Run anomaly detection on a JSON file of transactions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		var txs []riskgate.SpendingTransaction
		if err := json.Unmarshal(raw, &txs); err != nil {
			return fmt.Errorf("parse transactions: %w", err)
		}

		gateway, err := newGateway(cmd.Context())
		if err != nil {
			return err
		}
		result, err := gateway.AnalyzeSpending(cmd.Context(), txs)
		if err != nil {
			return err
		}

		fmt.Printf("analyzed %d transactions, %d anomalies\n", result.TotalAnalyzed, result.AnomaliesFound)
		for _, r := range result.Results {
			fmt.Printf("  #%d amount %.2f: %s (score %.3f)\n", r.Index, r.Amount, r.Status, r.RiskScore)
		}
		return nil
	},
}

func init() {
	analyzeLegalCmd.Flags().String("text", "", "document text to analyze")

	analyzeCmd.AddCommand(analyzeLegalCmd)
	analyzeCmd.AddCommand(analyzeVendorCmd)
	analyzeCmd.AddCommand(analyzeWelfareCmd)
	analyzeCmd.AddCommand(analyzeSpendingCmd)
}
