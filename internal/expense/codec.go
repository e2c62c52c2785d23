// Package expense implements the stateless add-expense wizard. Every piece
// of wizard state travels inside the callback payload of the button that was
// pressed, so the package is a set of pure functions over payload strings
// plus a thin Telegram adapter in handler.go.
package expense

import (
	"errors"
	"fmt"
	"strings"
)

// Category identifies this wizard's callback family on the wire.
const Category = "0"

// Step is the wire literal of the wizard step a button press transitions into.
type Step string

const (
	StepSelectPayer Step = "0"
	StepSelectPayee Step = "1"
	StepEnterAmount Step = "2"
	StepSubmit      Step = "3"
)

const (
	fieldDelim = "|"
	subDelim   = ","

	// maxCallbackData is Telegram's callback_data byte limit.
	maxCallbackData = 64

	// MaxPayloadLen is the longest payload Encode accepts. Telebot prepends
	// a one-byte \f marker to inline-button data on the wire, and that byte
	// counts against Telegram's limit.
	MaxPayloadLen = maxCallbackData - 1
)

var (
	ErrMalformedPayload    = errors.New("malformed wizard payload")
	ErrUnknownStep         = errors.New("unknown wizard step")
	ErrPayloadTooLong      = errors.New("wizard payload exceeds callback data limit")
	ErrSubmitUnimplemented = errors.New("expense submission not implemented")
)

// Encode joins category, step and data into a callback payload. Fields must
// not contain the field delimiter; participant identifiers are screened by
// the keyboard builders before they reach Encode.
func Encode(category string, step Step, data string) (string, error) {
	if strings.Contains(category, fieldDelim) || strings.Contains(string(step), fieldDelim) || strings.Contains(data, fieldDelim) {
		return "", fmt.Errorf("%w: field contains %q", ErrMalformedPayload, fieldDelim)
	}
	payload := category + fieldDelim + string(step) + fieldDelim + data
	if len(payload) > MaxPayloadLen {
		return "", fmt.Errorf("%w: %d bytes", ErrPayloadTooLong, len(payload))
	}
	return payload, nil
}

// Decode splits a callback payload into its three fields. Anything that does
// not split into exactly three parts is malformed; the step literal is not
// validated here, Advance rejects unknown ones.
func Decode(payload string) (category string, step Step, data string, err error) {
	parts := strings.Split(payload, fieldDelim)
	if len(parts) != 3 {
		return "", "", "", fmt.Errorf("%w: %d fields", ErrMalformedPayload, len(parts))
	}
	return parts[0], Step(parts[1]), parts[2], nil
}

// splitAmountData splits the amount-phase data field into payer, payee and
// the running amount buffer.
func splitAmountData(data string) (payer, payee, amount string, err error) {
	parts := strings.Split(data, subDelim)
	if len(parts) != 3 {
		return "", "", "", fmt.Errorf("%w: %d sub-fields", ErrMalformedPayload, len(parts))
	}
	return parts[0], parts[1], parts[2], nil
}
