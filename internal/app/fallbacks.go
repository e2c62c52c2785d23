package app

import (
	tghelpers "splitbot/core/telegram/helpers"

	tele "gopkg.in/telebot.v4"
)

// fallbacks answers updates no registered command or callback claims.
type fallbacks struct{}

func (fallbacks) UnknownText() tele.HandlerFunc {
	return func(c tele.Context) error {
		return tghelpers.Send(c, "I only understand /add_expense")
	}
}

func (fallbacks) UnknownCallback() tele.HandlerFunc {
	return func(c tele.Context) error {
		return c.Respond(&tele.CallbackResponse{Text: "Unsupported action"})
	}
}
