package controller

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"verification-mailer/dto"
	"verification-mailer/util"
)

const errMissingFields = "Missing required fields"

// VerificationMailer sends the verification email and echoes the code
type VerificationMailer interface {
	SendVerificationEmail(toEmail string, code string) (string, error)
}

type WebhookController struct {
	mailer VerificationMailer
	logger *zap.Logger
}

func NewWebhookController(mailer VerificationMailer, logger *zap.Logger) *WebhookController {
	return &WebhookController{
		mailer: mailer,
		logger: logger,
	}
}

// SendVerificationEmail godoc
// @Summary      Send a verification code by email
// @Description  Emails the supplied code to toEmail. Every outcome is answered with HTTP 200.
// @Description  On success the body is {"success": true, "code": "<verificationCode>"}.
// @Description  On failure the body is {"error": "<message>"}; missing or empty fields give "Missing required fields".
// @Tags         webhook
// @Accept       json
// @Produce      json
// @Param        payload body dto.VerificationEmailRequest true "Recipient and code"
// @Success      200  {object}  dto.VerificationEmailResponse  "success; failures carry an error field instead"
// @Router       /exec [post]
func (wc *WebhookController) SendVerificationEmail(c *fiber.Ctx) error {
	// 1. Parse the raw body; the content type header is not trusted
	var req dto.VerificationEmailRequest
	if err := c.App().Config().JSONDecoder(c.Body(), &req); err != nil {
		return wc.fail(c, "invalid webhook payload", err)
	}

	// 2. Both fields must be present and non-empty
	if err := util.ValidateStruct(&req); err != nil {
		if util.IsMissingFieldError(err) {
			return c.Status(fiber.StatusOK).JSON(dto.ErrorResponse{Error: errMissingFields})
		}
		return wc.fail(c, "invalid webhook payload", err)
	}

	// 3. Send
	code, err := wc.mailer.SendVerificationEmail(req.ToEmail, req.VerificationCode)
	if err != nil {
		return wc.fail(c, "verification email failed", err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.VerificationEmailResponse{Success: true, Code: code})
}

func (wc *WebhookController) fail(c *fiber.Ctx, msg string, err error) error {
	wc.logger.Error(msg,
		zap.Any("request_id", c.Locals("request_id")),
		zap.Error(err),
	)
	return c.Status(fiber.StatusOK).JSON(dto.ErrorResponse{Error: err.Error()})
}
