package mailer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolvePrefersResend(t *testing.T) {
	transport, err := Resolve(
		ResendConfig{APIKey: "re_test_key", SenderEmail: "noreply@x.fr"},
		SMTPConfig{Host: "smtp.ethereal.email", Port: 587, Username: "u", Password: "p"},
	)
	require.NoError(t, err)
	require.Equal(t, ModeResend, transport.Mode)
	require.True(t, transport.Configured())
	require.IsType(t, &ResendSender{}, transport.Sender)
}

func TestResolveFallsBackToSMTP(t *testing.T) {
	transport, err := Resolve(
		ResendConfig{},
		SMTPConfig{Host: "smtp.ethereal.email", Port: 587, Username: "u", Password: "p"},
	)
	require.NoError(t, err)
	require.Equal(t, ModeSMTP, transport.Mode)
	require.True(t, transport.Configured())
	require.IsType(t, &SMTPSender{}, transport.Sender)
}

func TestResolveUnconfigured(t *testing.T) {
	cases := []struct {
		name string
		smtp SMTPConfig
	}{
		{"nothing set", SMTPConfig{}},
		{"missing password", SMTPConfig{Host: "smtp.x.fr", Port: 587, Username: "u"}},
		{"missing host", SMTPConfig{Port: 587, Username: "u", Password: "p"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			transport, err := Resolve(ResendConfig{}, tc.smtp)
			require.NoError(t, err)
			require.Equal(t, ModeUnconfigured, transport.Mode)
			require.False(t, transport.Configured())
			require.Nil(t, transport.Sender)
		})
	}
}

func TestModeString(t *testing.T) {
	require.Equal(t, "resend", ModeResend.String())
	require.Equal(t, "smtp", ModeSMTP.String())
	require.Equal(t, "unconfigured", ModeUnconfigured.String())
}

func TestPreviewURLOnlyForEtherealHost(t *testing.T) {
	require.Equal(t, "https://ethereal.email/message/abc123", previewURL("smtp.ethereal.email", "abc123"))
	require.Equal(t, "https://ethereal.email/message/abc123", previewURL("SMTP.Ethereal.Email", "abc123"))
	require.Empty(t, previewURL("smtp.ethereal.email", ""))
	require.Empty(t, previewURL("smtp.gmail.com", "abc123"))
}

func TestRecipient(t *testing.T) {
	require.Equal(t, "Marie <marie@x.fr>", Recipient("Marie", "marie@x.fr"))
	require.Equal(t, "marie@x.fr", Recipient("", "marie@x.fr"))
}
