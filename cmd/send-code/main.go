// Command send-code asks the verification webhook to email a code.
//
//	send-code -to user@example.com            # generates a 6-digit code
//	send-code -to user@example.com -code 4242 # sends the given code
//
// The webhook address comes from EMAIL_WEBHOOK_URL.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"verification-mailer/client"
	"verification-mailer/util"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v (using system environment variables)", err)
	}

	cfg := util.LoadConfig()

	logger, err := util.NewLogger(cfg.Env)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	webhookClient := client.NewWebhookClientFromConfig(cfg.Webhook, logger)

	if err := run(context.Background(), os.Args[1:], webhookClient, os.Stdout); err != nil {
		logger.Fatal("send-code failed", zap.Error(err))
	}
}

func run(ctx context.Context, args []string, webhookClient *client.WebhookClient, out io.Writer) error {
	fs := flag.NewFlagSet("send-code", flag.ContinueOnError)
	to := fs.String("to", "", "recipient address")
	code := fs.String("code", "", "code to send; a 6-digit code is generated when empty")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *to == "" {
		return errors.New("-to is required")
	}

	if *code == "" {
		sent, err := webhookClient.SendVerificationCode(ctx, *to)
		if err != nil {
			return err
		}
		*code = sent
	} else if err := webhookClient.Send(ctx, *to, *code); err != nil {
		return err
	}

	_, err := fmt.Fprintf(out, "verification code %s sent to %s\n", *code, *to)
	return err
}
