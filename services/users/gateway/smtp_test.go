package gateway

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildMessage(t *testing.T) {
	msg := string(buildMessage("noreply@mingle.app", "jane@example.com", "Mingle - Your Verification Code", "body text"))

	lines := strings.Split(msg, "\r\n")
	assert.Equal(t, "From: noreply@mingle.app", lines[0])
	assert.Equal(t, "To: jane@example.com", lines[1])
	assert.Equal(t, "Subject: Mingle - Your Verification Code", lines[2])

	// blank line separates headers from body
	assert.Contains(t, msg, "\r\n\r\nbody text")
}

func TestOTPEmailBody(t *testing.T) {
	body := otpEmailBody("Mingle", "123456", 10*time.Minute)

	assert.Contains(t, body, "Verification Code: 123456")
	assert.Contains(t, body, "expire in 10 minutes")
	assert.Contains(t, body, "The Mingle Team")
}
