package commands

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/gauravkdm/admin-portal/internal/domain/auth"
	"github.com/gauravkdm/admin-portal/internal/domain/logs"
	"github.com/gauravkdm/admin-portal/internal/infrastructure/otp"
	"github.com/gauravkdm/admin-portal/internal/pkg/config"
	"github.com/gauravkdm/admin-portal/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

// OTPCommandHandler exercises the configured OTP provider and SMS dispatcher.
type OTPCommandHandler struct {
	logger logger.Logger
}

// NewOTPCommandHandler creates an OTPCommandHandler
func NewOTPCommandHandler() (*OTPCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	return &OTPCommandHandler{logger: loggerInstance}, nil
}

func (commandHandler *OTPCommandHandler) provider(cmd *cobra.Command) (*config.RestConfig, auth.OTPProvider, func(), error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, nil, err
	}

	var client *redis.Client
	cleanup := func() {}
	if cfg.OTP.Provider == config.OTPProviderRedis {
		client = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		cleanup = func() { _ = client.Close() }
	}

	provider, err := otp.NewProvider(&cfg.OTP, client, commandHandler.logger)
	if err != nil {
		cleanup()
		return nil, nil, nil, err
	}
	return cfg, provider, cleanup, nil
}

// SendCmd generates a code for --phone and dispatches it
func (commandHandler *OTPCommandHandler) SendCmd(cmd *cobra.Command, _ []string) {
	phone, err := cmd.Flags().GetString("phone")
	if err != nil {
		commandHandler.logger.Error("invalid phone flag ", err)
		return
	}

	cfg, provider, cleanup, err := commandHandler.provider(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	defer cleanup()

	dispatcher, err := otp.NewDispatcher(&cfg.SMS, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	if closer, ok := dispatcher.(io.Closer); ok {
		defer func() { _ = closer.Close() }()
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
	defer cancel()

	code, err := provider.Generate(ctx, phone)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	msg := &auth.SMSMessage{
		To:          auth.Recipient(cfg.OTP.DefaultCountryCode, phone),
		PhoneNo:     phone,
		CountryCode: cfg.OTP.DefaultCountryCode,
		Body:        fmt.Sprintf("Your admin login code is %s", code),
		Feature:     logs.FeatureOTP,
		CreatedAt:   time.Now().UTC(),
	}
	if err := dispatcher.Dispatch(ctx, msg); err != nil {
		commandHandler.logger.Error(err)
		return
	}
	commandHandler.logger.Info("OTP sent to ", msg.To)
}

// VerifyCmd checks --code against the code stored for --phone
func (commandHandler *OTPCommandHandler) VerifyCmd(cmd *cobra.Command, _ []string) {
	phone, err := cmd.Flags().GetString("phone")
	if err != nil {
		commandHandler.logger.Error("invalid phone flag ", err)
		return
	}
	code, err := cmd.Flags().GetString("code")
	if err != nil {
		commandHandler.logger.Error("invalid code flag ", err)
		return
	}

	_, provider, cleanup, err := commandHandler.provider(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	defer cleanup()

	if err := provider.Verify(cmd.Context(), phone, code); err != nil {
		commandHandler.logger.Error(err)
		return
	}
	commandHandler.logger.Info("OTP verified for ", phone)
}

// InitOTPCommands registers the otp send and verify commands
func InitOTPCommands(rootCmd *cobra.Command) error {
	handler, err := NewOTPCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create otp command handler %w", err)
	}

	var otpCmd = &cobra.Command{
		Use:   "otp",
		Short: "Send and verify login codes",
	}

	var sendCmd = &cobra.Command{
		Use:   "send",
		Short: "Send a login code to a phone",
		Run:   handler.SendCmd,
	}
	sendCmd.Flags().StringP("phone", "", "", "Phone number")
	_ = sendCmd.MarkFlagRequired("phone")
	otpCmd.AddCommand(sendCmd)

	var verifyCmd = &cobra.Command{
		Use:   "verify",
		Short: "Verify a login code",
		Run:   handler.VerifyCmd,
	}
	verifyCmd.Flags().StringP("phone", "", "", "Phone number")
	verifyCmd.Flags().StringP("code", "", "", "Code received by SMS")
	_ = verifyCmd.MarkFlagRequired("phone")
	_ = verifyCmd.MarkFlagRequired("code")
	otpCmd.AddCommand(verifyCmd)

	rootCmd.AddCommand(otpCmd)
	return nil
}
