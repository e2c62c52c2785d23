package expense

import (
	"errors"
	"log/slog"
	"strings"

	"splitbot/core/logger"
	"splitbot/core/telegram/callbacks"
	tghelpers "splitbot/core/telegram/helpers"
	"splitbot/core/telegram/keyboard"

	tele "gopkg.in/telebot.v4"
)

// DefaultErrorMessage is the generic alert shown when a payload cannot be
// decoded or names an unknown step.
const DefaultErrorMessage = "Error received, contact my creator"

const submitUnavailableMessage = "Submitting expenses is not available yet"

const groupOnlyMessage = "This command works only in group chats"

// Handler dispatches wizard interactions. The messaging surface arrives with
// each update through tele.Context; the roster provider is injected once at
// construction.
type Handler struct {
	roster RosterProvider
}

// NewHandler builds the wizard dispatcher over the given roster provider.
func NewHandler(roster RosterProvider) *Handler {
	return &Handler{roster: roster}
}

// StartCommand handles the wizard entry command. It renders the initial
// payer-selection screen as a new message; outside group chats it declines.
func (h *Handler) StartCommand(c tele.Context) error {
	chat := c.Chat()
	if chat == nil {
		return nil
	}
	if chat.Type != tele.ChatGroup && chat.Type != tele.ChatSuperGroup {
		return tghelpers.Send(c, groupOnlyMessage)
	}

	ctx := tghelpers.BuildContext(c)
	roster, err := h.roster.Participants(ctx, c.Bot(), chat)
	if err != nil {
		logger.LogEvent(ctx, logger.WIZ, slog.LevelError, "wizard.roster.fail",
			slog.String("err", logger.SanitizeLimit(err.Error(), 256)),
		)
		return tghelpers.Send(c, DefaultErrorMessage)
	}

	view := Start(roster)
	return tghelpers.Send(c, view.Text, viewMarkup(view))
}

// Callback handles a wizard button press: decode the payload, advance, and
// edit the originating message in place. Decode failures and unknown steps
// answer the press with an alert and leave the message untouched.
func (h *Handler) Callback(c tele.Context) error {
	raw := callbacks.RawCallbackData(c)
	category, step, data, err := Decode(raw)
	if err != nil {
		return h.reject(c, raw, err)
	}
	if category != Category {
		// Owned by an unrelated handler.
		return nil
	}

	ctx := tghelpers.BuildContext(c)
	roster, err := h.roster.Participants(ctx, c.Bot(), c.Chat())
	if err != nil {
		logger.LogEvent(ctx, logger.WIZ, slog.LevelError, "wizard.roster.fail",
			slog.String("err", logger.SanitizeLimit(err.Error(), 256)),
		)
		return c.Respond(&tele.CallbackResponse{Text: DefaultErrorMessage, ShowAlert: true})
	}

	view, err := Advance(step, data, roster)
	if err != nil {
		if errors.Is(err, ErrSubmitUnimplemented) {
			return c.Respond(&tele.CallbackResponse{Text: submitUnavailableMessage, ShowAlert: true})
		}
		return h.reject(c, raw, err)
	}

	logger.LogEvent(ctx, logger.WIZ, slog.LevelDebug, "wizard.render",
		slog.String("step", string(step)),
		slog.String("payload", logger.SanitizeLimit(raw, MaxPayloadLen)),
	)

	if err := tghelpers.Edit(c, view.Text, viewMarkup(view)); err != nil {
		// A no-op key press re-renders identical content.
		if !errors.Is(err, tele.ErrSameMessageContent) {
			return err
		}
	}
	return c.Respond()
}

func (h *Handler) reject(c tele.Context, raw string, err error) error {
	ctx := tghelpers.BuildContext(c)
	logger.LogEvent(ctx, logger.WIZ, slog.LevelWarn, "wizard.payload.reject",
		slog.String("payload", logger.SanitizeLimit(raw, MaxPayloadLen)),
		slog.String("err", logger.SanitizeLimit(err.Error(), 256)),
	)
	return c.Respond(&tele.CallbackResponse{Text: DefaultErrorMessage, ShowAlert: true})
}

// viewMarkup converts a rendered view into an inline keyboard. Payloads are
// split on the first field delimiter so the wire bytes come out exactly as
// encoded: the category becomes the routing key, the rest rides as data.
func viewMarkup(view View) *tele.ReplyMarkup {
	rows := make([][]keyboard.InlineBtn, 0, len(view.Keyboard))
	for _, row := range view.Keyboard {
		r := make([]keyboard.InlineBtn, 0, len(row))
		for _, btn := range row {
			unique, data, _ := strings.Cut(btn.Payload, fieldDelim)
			r = append(r, keyboard.InlineBtn{Text: btn.Text, Unique: unique, Data: data})
		}
		rows = append(rows, r)
	}
	return keyboard.InlineButtonsRows(rows...)
}
