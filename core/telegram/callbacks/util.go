package callbacks

import (
	"strings"

	tele "gopkg.in/telebot.v4"
)

// ParseCallbackData parses Telebot's \f<unique>|<payload> encoding.
// Returns unique and payload (may be empty). cb.Unique is preferred when
// set; generic OnCallback handlers receive it empty, with the key still
// prefixed inside Data.
func ParseCallbackData(cb *tele.Callback) (string, string) {
	if cb == nil {
		return "", ""
	}
	if cb.Unique != "" {
		return cb.Unique, cb.Data
	}
	raw := strings.TrimPrefix(cb.Data, "\f")
	parts := strings.SplitN(raw, "|", 2)
	unique := strings.TrimSpace(parts[0])
	payload := ""
	if len(parts) == 2 {
		payload = parts[1]
	}
	return unique, payload
}

// RawCallbackData rebuilds the full key|payload wire string from a callback,
// stripped of Telebot's \f prefix. Useful for codecs that own the whole
// payload format rather than only the part after the first delimiter.
func RawCallbackData(c tele.Context) string {
	cb := c.Callback()
	if cb == nil {
		return ""
	}
	return strings.TrimPrefix(cb.Data, "\f")
}
