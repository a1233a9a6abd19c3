package mailer

// Mode identifies which transport was resolved at startup.
type Mode int

const (
	// ModeUnconfigured means no usable credentials were found; every send
	// must report non-delivery without attempting network I/O.
	ModeUnconfigured Mode = iota
	// ModeSMTP means classic SMTP credentials are in use.
	ModeSMTP
	// ModeResend means the Resend API key transport is in use.
	ModeResend
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case ModeSMTP:
		return "smtp"
	case ModeResend:
		return "resend"
	default:
		return "unconfigured"
	}
}

// Transport couples the resolved mode with its sender. Sender is nil when
// Mode is ModeUnconfigured.
type Transport struct {
	Mode   Mode
	Sender Sender
}

// Configured reports whether the transport can attempt deliveries.
func (t Transport) Configured() bool {
	return t.Mode != ModeUnconfigured && t.Sender != nil
}

// Resolve picks the outbound transport once at startup. The API-key
// provider wins over SMTP; with neither configured the result is inert.
func Resolve(resendCfg ResendConfig, smtpCfg SMTPConfig) (Transport, error) {
	if resendCfg.APIKey != "" {
		return Transport{Mode: ModeResend, Sender: NewResendSender(resendCfg)}, nil
	}

	if smtpCfg.Host != "" && smtpCfg.Port > 0 && smtpCfg.Username != "" && smtpCfg.Password != "" {
		sender, err := NewSMTPSender(smtpCfg)
		if err != nil {
			return Transport{}, err
		}
		return Transport{Mode: ModeSMTP, Sender: sender}, nil
	}

	return Transport{Mode: ModeUnconfigured}, nil
}
