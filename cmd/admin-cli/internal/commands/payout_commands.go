package commands

import (
	"fmt"
	"io"

	"github.com/gauravkdm/admin-portal/internal/domain/payouts"
	"github.com/gauravkdm/admin-portal/internal/pkg/logger"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// PayoutCommandHandler previews the fee split applied to purchases.
type PayoutCommandHandler struct {
	logger logger.Logger
}

// NewPayoutCommandHandler creates a PayoutCommandHandler
func NewPayoutCommandHandler() (*PayoutCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	return &PayoutCommandHandler{logger: loggerInstance}, nil
}

// PreviewCmd prints the fees, GST and totals for --amount
func (commandHandler *PayoutCommandHandler) PreviewCmd(cmd *cobra.Command, _ []string) {
	amount, err := cmd.Flags().GetString("amount")
	if err != nil {
		commandHandler.logger.Error("invalid amount flag ", err)
		return
	}
	fee, err := cmd.Flags().GetFloat64("fee")
	if err != nil {
		commandHandler.logger.Error("invalid fee flag ", err)
		return
	}
	gst, err := cmd.Flags().GetFloat64("gst")
	if err != nil {
		commandHandler.logger.Error("invalid gst flag ", err)
		return
	}

	if err := previewFees(cmd.OutOrStdout(), amount, fee, gst); err != nil {
		commandHandler.logger.Error(err)
	}
}

func previewFees(w io.Writer, amount string, feePercent, gstPercent float64) error {
	base, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	calculator, err := payouts.NewFeeCalculator(feePercent, gstPercent)
	if err != nil {
		return err
	}
	breakdown, err := calculator.Calculate(base)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w,
		"base:      %s\nfees:      %s (%s%%)\ngst:       %s (%s%% of fees)\ntotal:     %s\nhost net:  %s\n",
		breakdown.BaseAmount.StringFixed(2),
		breakdown.Fees.StringFixed(2), breakdown.FeePercent.String(),
		breakdown.Gst.StringFixed(2), breakdown.GstPercent.String(),
		breakdown.TotalIncludingFees.StringFixed(2),
		breakdown.HostNet.StringFixed(2),
	)
	return err
}

// InitPayoutCommands registers the payout commands
func InitPayoutCommands(rootCmd *cobra.Command) error {
	handler, err := NewPayoutCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create payout command handler %w", err)
	}

	var payoutsCmd = &cobra.Command{
		Use:   "payouts",
		Short: "Payout utilities",
	}

	var previewCmd = &cobra.Command{
		Use:   "preview",
		Short: "Show the fee split for an amount",
		Run:   handler.PreviewCmd,
	}
	previewCmd.Flags().StringP("amount", "", "", "Base ticket amount")
	previewCmd.Flags().Float64P("fee", "", 5, "Platform fee percentage")
	previewCmd.Flags().Float64P("gst", "", 18, "GST percentage charged on the fee")
	_ = previewCmd.MarkFlagRequired("amount")
	payoutsCmd.AddCommand(previewCmd)

	rootCmd.AddCommand(payoutsCmd)
	return nil
}
