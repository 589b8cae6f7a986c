package controller

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

type sentMail struct {
	to   string
	code string
}

type fakeMailer struct {
	sent []sentMail
	err  error
}

func (m *fakeMailer) SendVerificationEmail(toEmail string, code string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.sent = append(m.sent, sentMail{to: toEmail, code: code})
	return code, nil
}

type WebhookControllerSuite struct {
	suite.Suite
	app    *fiber.App
	mailer *fakeMailer
}

func TestWebhookControllerSuite(t *testing.T) {
	suite.Run(t, new(WebhookControllerSuite))
}

func (s *WebhookControllerSuite) SetupTest() {
	s.mailer = &fakeMailer{}
	s.app = fiber.New()
	wc := NewWebhookController(s.mailer, zap.NewNop())
	s.app.Post("/exec", wc.SendVerificationEmail)
}

func (s *WebhookControllerSuite) post(body string, contentType string) (int, map[string]interface{}) {
	req := httptest.NewRequest(http.MethodPost, "/exec", strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := s.app.Test(req, -1)
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Contains(resp.Header.Get("Content-Type"), "application/json")

	raw, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)

	var out map[string]interface{}
	s.Require().NoError(json.Unmarshal(raw, &out), string(raw))
	return resp.StatusCode, out
}

func (s *WebhookControllerSuite) TestValidPayloadSendsOnce() {
	status, out := s.post(`{"toEmail":"a@b.com","verificationCode":"123456"}`, fiber.MIMEApplicationJSON)

	s.Equal(http.StatusOK, status)
	s.Equal(map[string]interface{}{"success": true, "code": "123456"}, out)
	s.Require().Len(s.mailer.sent, 1)
	s.Equal(sentMail{to: "a@b.com", code: "123456"}, s.mailer.sent[0])
}

func (s *WebhookControllerSuite) TestContentTypeIsIgnored() {
	status, out := s.post(`{"toEmail":"a@b.com","verificationCode":"42"}`, "text/plain")

	s.Equal(http.StatusOK, status)
	s.Equal(true, out["success"])
	s.Len(s.mailer.sent, 1)
}

func (s *WebhookControllerSuite) TestMissingFields() {
	cases := map[string]string{
		"missing code":  `{"toEmail":"a@b.com"}`,
		"missing email": `{"verificationCode":"123456"}`,
		"empty email":   `{"toEmail":"","verificationCode":"123456"}`,
		"empty code":    `{"toEmail":"a@b.com","verificationCode":""}`,
		"empty object":  `{}`,
		"null":          `null`,
	}

	for name, body := range cases {
		s.Run(name, func() {
			status, out := s.post(body, fiber.MIMEApplicationJSON)
			s.Equal(http.StatusOK, status)
			s.Equal(map[string]interface{}{"error": "Missing required fields"}, out)
		})
	}
	s.Empty(s.mailer.sent)
}

func (s *WebhookControllerSuite) TestMalformedBody() {
	for _, body := range []string{`not json`, ``, `{"toEmail":`, `{"toEmail":1,"verificationCode":"1"}`} {
		status, out := s.post(body, fiber.MIMEApplicationJSON)
		s.Equal(http.StatusOK, status)
		s.NotEmpty(out["error"], body)
		s.NotContains(out, "success")
	}
	s.Empty(s.mailer.sent)
}

func (s *WebhookControllerSuite) TestMailerFailure() {
	s.mailer.err = errors.New("send verification email: dial tcp: connection refused")

	status, out := s.post(`{"toEmail":"a@b.com","verificationCode":"123456"}`, fiber.MIMEApplicationJSON)

	s.Equal(http.StatusOK, status)
	s.Equal(map[string]interface{}{"error": "send verification email: dial tcp: connection refused"}, out)
}

func (s *WebhookControllerSuite) TestRepeatedRequestsSendEachTime() {
	body := `{"toEmail":"a@b.com","verificationCode":"123456"}`
	s.post(body, fiber.MIMEApplicationJSON)
	s.post(body, fiber.MIMEApplicationJSON)

	s.Len(s.mailer.sent, 2)
}

// Field types are not coerced: a numeric code is a decode error, not a send.
func (s *WebhookControllerSuite) TestNumericCodeIsRejected() {
	status, out := s.post(`{"toEmail":"a@b.com","verificationCode":123456}`, fiber.MIMEApplicationJSON)

	s.Equal(http.StatusOK, status)
	s.Equal(map[string]interface{}{
		"error": "json: cannot unmarshal number into Go struct field VerificationEmailRequest.verificationCode of type string",
	}, out)
	s.Empty(s.mailer.sent)
}
