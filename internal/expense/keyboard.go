package expense

import (
	"context"
	"log/slog"
	"strings"

	"splitbot/core/logger"
)

// Button is one pressable action: a label and the payload its press delivers.
type Button struct {
	Text    string
	Payload string
}

// View is a fully rendered wizard screen.
type View struct {
	Text     string
	Keyboard [][]Button
}

// usable reports whether a participant identifier can be embedded into
// payloads at all. Identifiers carrying a reserved delimiter would corrupt
// the wire format, so they are dropped from selection keyboards.
func usable(id string) bool {
	return id != "" && !strings.Contains(id, fieldDelim) && !strings.Contains(id, subDelim)
}

func skipParticipant(id, reason string) {
	logger.LogEvent(context.Background(), logger.WIZ, slog.LevelWarn, "wizard.roster.skip",
		slog.String("participant", logger.SanitizeLimit(id, 64)),
		slog.String("reason", reason),
	)
}

// payerKeyboard renders one button per participant; pressing one fixes that
// participant as payer and moves to payee selection.
func payerKeyboard(roster []Participant) [][]Button {
	rows := make([][]Button, 0, len(roster))
	for _, p := range roster {
		if !usable(p.ID) {
			skipParticipant(p.ID, "reserved_delimiter")
			continue
		}
		payload, err := Encode(Category, StepSelectPayee, p.ID)
		if err != nil {
			skipParticipant(p.ID, "payload_overflow")
			continue
		}
		rows = append(rows, []Button{{Text: p.DisplayName, Payload: payload}})
	}
	return rows
}

// payeeKeyboard renders one button per participant with the payer fixed.
// The payer remains selectable as payee. A terminal Back row returns to
// payer selection.
func payeeKeyboard(payer string, roster []Participant) [][]Button {
	rows := make([][]Button, 0, len(roster)+1)
	for _, p := range roster {
		if !usable(p.ID) {
			skipParticipant(p.ID, "reserved_delimiter")
			continue
		}
		payload, err := Encode(Category, StepEnterAmount, payer+subDelim+p.ID+subDelim)
		if err != nil {
			skipParticipant(p.ID, "payload_overflow")
			continue
		}
		rows = append(rows, []Button{{Text: p.DisplayName, Payload: payload}})
	}
	if back, err := Encode(Category, StepSelectPayer, payer); err == nil {
		rows = append(rows, []Button{{Text: "Back", Payload: back}})
	}
	return rows
}

// amountKeyboard renders the static numeric keypad. The layout never
// changes; only the amount embedded in each key's payload does. A key whose
// press would overflow the payload limit embeds the unchanged amount, so the
// press becomes a no-op instead of producing an unusable button.
func amountKeyboard(payer, payee, amount string) [][]Button {
	layout := [][]string{
		{"1", "2", "3"},
		{"4", "5", "6"},
		{"7", "8", "9"},
		{".", "0", "Del"},
	}
	rows := make([][]Button, 0, len(layout)+1)
	for _, keys := range layout {
		row := make([]Button, 0, len(keys))
		for _, key := range keys {
			next := applyKey(amount, key)
			payload, err := Encode(Category, StepEnterAmount, payer+subDelim+payee+subDelim+next)
			if err != nil {
				payload, err = Encode(Category, StepEnterAmount, payer+subDelim+payee+subDelim+amount)
				if err != nil {
					continue
				}
			}
			row = append(row, Button{Text: key, Payload: payload})
		}
		rows = append(rows, row)
	}

	var last []Button
	if back, err := Encode(Category, StepSelectPayee, payer); err == nil {
		last = append(last, Button{Text: "Back", Payload: back})
	}
	if submit, err := Encode(Category, StepSubmit, payer+subDelim+payee+subDelim+amount); err == nil {
		last = append(last, Button{Text: "Submit", Payload: submit})
	}
	if len(last) > 0 {
		rows = append(rows, last)
	}
	return rows
}

// applyKey applies one keypad press to the running amount buffer. Digits and
// a first decimal point append; a second decimal point is ignored; Del drops
// the last character and is a no-op on an empty buffer.
func applyKey(amount, key string) string {
	switch key {
	case "Del":
		if amount == "" {
			return amount
		}
		return amount[:len(amount)-1]
	case ".":
		if strings.Contains(amount, ".") {
			return amount
		}
		return amount + key
	default:
		return amount + key
	}
}
