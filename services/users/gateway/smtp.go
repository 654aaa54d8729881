package gateway

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"github.com/kshitijrv/mingle/internal/pkg/logger"
	"github.com/kshitijrv/mingle/internal/utils"
)

// SendOTPEmail delivers a one-time code over SMTP. The message is plain text
// with RFC 822 CRLF headers.
func (g *UserGW) SendOTPEmail(ctx context.Context, email, code string, validity time.Duration) error {
	subject := fmt.Sprintf("%s - Your Verification Code", g.cfg.App.Name)
	body := otpEmailBody(g.cfg.App.Name, code, validity)
	message := buildMessage(g.cfg.SMTP.From, email, subject, body)

	addr := fmt.Sprintf("%s:%d", g.cfg.SMTP.Host, g.cfg.SMTP.Port)
	auth := smtp.PlainAuth("", g.cfg.SMTP.Username, g.cfg.SMTP.Password, g.cfg.SMTP.Host)

	// smtp.SendMail has no context support, so the delivery runs in a
	// goroutine bounded by the configured timeout.
	timeout := time.Duration(g.cfg.SMTP.Timeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	sendCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- smtp.SendMail(addr, auth, g.cfg.SMTP.From, []string{email}, message)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to send OTP email: %w", err)
		}
	case <-sendCtx.Done():
		return fmt.Errorf("OTP email delivery timed out: %w", sendCtx.Err())
	}

	logger.Debug("Sent OTP email",
		logger.String("email", utils.MaskEmail(email)))
	return nil
}

// otpEmailBody renders the plain-text message carrying the code
func otpEmailBody(appName, code string, validity time.Duration) string {
	minutes := int(validity.Minutes())
	return fmt.Sprintf(
		"Hello,\n\n"+
			"Use the verification code below to continue signing in to %s:\n\n"+
			"Verification Code: %s\n\n"+
			"This code will expire in %d minutes. If you did not request this code, you can safely ignore this email.\n\n"+
			"Best regards,\n"+
			"The %s Team",
		appName, code, minutes, appName)
}

// buildMessage assembles headers and body with CRLF line endings
func buildMessage(from, to, subject, body string) []byte {
	headers := []string{
		fmt.Sprintf("From: %s", from),
		fmt.Sprintf("To: %s", to),
		fmt.Sprintf("Subject: %s", subject),
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
		body,
	}
	return []byte(strings.Join(headers, "\r\n"))
}
