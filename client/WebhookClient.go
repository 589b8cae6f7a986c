package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"verification-mailer/dto"
	"verification-mailer/util"
)

const codeLength = 6

// WebhookClient calls the verification email webhook from another service
type WebhookClient struct {
	httpClient *resty.Client
	url        string
	logger     *zap.Logger
}

// NewRestyClient returns a resty client with the given request timeout.
// A zero timeout leaves the client without one.
func NewRestyClient(timeout time.Duration) *resty.Client {
	client := resty.New()
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return client
}

// NewWebhookClientFromConfig builds the client from EMAIL_WEBHOOK_* settings
func NewWebhookClientFromConfig(cfg util.WebhookConfig, logger *zap.Logger) *WebhookClient {
	return NewWebhookClient(NewRestyClient(cfg.Timeout), cfg.URL, logger)
}

func NewWebhookClient(httpClient *resty.Client, url string, logger *zap.Logger) *WebhookClient {
	return &WebhookClient{
		httpClient: httpClient,
		url:        url,
		logger:     logger,
	}
}

// SendVerificationCode generates a fresh 6-digit code, asks the webhook to
// email it and returns it so the caller can store it.
func (c *WebhookClient) SendVerificationCode(ctx context.Context, email string) (string, error) {
	code := util.GenerateRandomDigits(codeLength)
	if err := c.Send(ctx, email, code); err != nil {
		return "", err
	}
	return code, nil
}

// webhookReply covers both response shapes the webhook can return
type webhookReply struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Error   string `json:"error"`
}

// Send posts {toEmail, verificationCode} to the webhook. The webhook answers
// 200 even on failure, so the body is checked for an error field as well.
func (c *WebhookClient) Send(ctx context.Context, email, code string) error {
	var reply webhookReply

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(dto.VerificationEmailRequest{ToEmail: email, VerificationCode: code}).
		SetResult(&reply).
		Post(c.url)
	if err != nil {
		c.logger.Error("failed to call email webhook", zap.String("to", email), zap.Error(err))
		return fmt.Errorf("send email: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		c.logger.Warn("non-200 response from email webhook",
			zap.Int("status_code", resp.StatusCode()),
			zap.String("response", string(resp.Body())),
		)
		return fmt.Errorf("email service returned status: %d", resp.StatusCode())
	}

	if reply.Error != "" {
		c.logger.Warn("email webhook reported an error", zap.String("to", email), zap.String("error", reply.Error))
		return fmt.Errorf("email service: %s", reply.Error)
	}
	if !reply.Success {
		return errors.New("email service did not confirm the send")
	}

	return nil
}
