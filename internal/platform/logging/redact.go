package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// sensitiveFields lists attribute names whose values must never reach a
// log sink. Quote submissions themselves carry no credentials, but proxy
// headers, future auth layers, and config dumps all flow through the same
// logger, so the deny list stays broad.
var sensitiveFields = []string{
	"password",
	"secret",
	"token",
	"apiKey",
	"apikey",
	"api_key",
	"accessToken",
	"access_token",
	"refreshToken",
	"refresh_token",
	"credential",
	"credentials",
	"authorization",
	"auth",
	"bearer",
	"cookie",
	"session",
	"privateKey",
	"private_key",
	"secretKey",
	"secret_key",
}

// Value shapes that are secrets no matter what field they appear under.
var sensitiveValuePatterns = []*regexp.Regexp{
	// JWTs: three dot-separated base64url segments starting with eyJ
	regexp.MustCompile(`^eyJ[A-Za-z0-9_-]*\.eyJ[A-Za-z0-9_-]*\.[A-Za-z0-9_-]*$`),
	// Authorization header values
	regexp.MustCompile(`(?i)^bearer\s+.+$`),
	regexp.MustCompile(`(?i)^basic\s+.+$`),
}

// DefaultRedactOptions returns the masq options applied to every logger
// built by this package. Callers with extra sensitive types can append
// their own options before passing the result to NewReplaceAttr.
func DefaultRedactOptions() []masq.Option {
	opts := make([]masq.Option, 0, len(sensitiveFields)+len(sensitiveValuePatterns)+2)

	for _, name := range sensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}

	opts = append(opts,
		masq.WithFieldPrefix("secret"),
		masq.WithFieldPrefix("private"),
	)

	for _, pattern := range sensitiveValuePatterns {
		opts = append(opts, masq.WithRegex(pattern))
	}

	return opts
}

// NewReplaceAttr builds the slog.HandlerOptions ReplaceAttr hook that
// performs redaction. Extra masq options are applied on top of the
// defaults.
func NewReplaceAttr(opts ...masq.Option) func(groups []string, a slog.Attr) slog.Attr {
	return masq.New(append(DefaultRedactOptions(), opts...)...)
}
