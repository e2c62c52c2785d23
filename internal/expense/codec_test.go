package expense

import (
	"errors"
	"strings"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := []struct {
		step Step
		data string
	}{
		{StepSelectPayer, "alice"},
		{StepSelectPayee, "alice"},
		{StepEnterAmount, "alice,bob,"},
		{StepEnterAmount, "alice,bob,12.5"},
		{StepSubmit, "alice,bob,42"},
	}
	for _, tc := range cases {
		payload, err := Encode(Category, tc.step, tc.data)
		if err != nil {
			t.Fatalf("Encode(%q, %q): %v", tc.step, tc.data, err)
		}
		category, step, data, err := Decode(payload)
		if err != nil {
			t.Fatalf("Decode(%q): %v", payload, err)
		}
		if category != Category || step != tc.step || data != tc.data {
			t.Errorf("round trip of %q: got (%q, %q, %q)", payload, category, step, data)
		}
	}
}

func TestDecodeMalformed(t *testing.T) {
	for _, payload := range []string{"", "0", "0|1", "0|1|alice|extra"} {
		if _, _, _, err := Decode(payload); !errors.Is(err, ErrMalformedPayload) {
			t.Errorf("Decode(%q): want ErrMalformedPayload, got %v", payload, err)
		}
	}
}

func TestEncodeRejectsDelimiterInField(t *testing.T) {
	if _, err := Encode(Category, StepSelectPayee, "al|ice"); !errors.Is(err, ErrMalformedPayload) {
		t.Fatalf("want ErrMalformedPayload, got %v", err)
	}
}

func TestEncodeEnforcesLengthLimit(t *testing.T) {
	long := strings.Repeat("a", MaxPayloadLen)
	if _, err := Encode(Category, StepSelectPayee, long); !errors.Is(err, ErrPayloadTooLong) {
		t.Fatalf("want ErrPayloadTooLong, got %v", err)
	}
	ok := strings.Repeat("a", MaxPayloadLen-4)
	if _, err := Encode(Category, StepSelectPayee, ok); err != nil {
		t.Fatalf("payload at the limit should encode, got %v", err)
	}
}

func TestEncodeLeavesRoomForWireMarker(t *testing.T) {
	// Telebot prepends a one-byte marker to inline-button data, so the
	// longest payload Encode accepts plus that marker must still fit
	// Telegram's 64-byte callback data limit.
	payload, err := Encode(Category, StepSelectPayee, strings.Repeat("a", MaxPayloadLen-4))
	if err != nil {
		t.Fatalf("Encode at the limit: %v", err)
	}
	if wire := len(payload) + 1; wire > 64 {
		t.Errorf("wire bytes %d exceed the callback data limit", wire)
	}
	// A 60-char identifier encodes to 64 payload bytes, which would be 65
	// on the wire; it must be rejected.
	if _, err := Encode(Category, StepSelectPayee, strings.Repeat("a", 60)); !errors.Is(err, ErrPayloadTooLong) {
		t.Errorf("60-char identifier: want ErrPayloadTooLong, got %v", err)
	}
}

func TestSplitAmountData(t *testing.T) {
	payer, payee, amount, err := splitAmountData("alice,bob,12.5")
	if err != nil {
		t.Fatalf("splitAmountData: %v", err)
	}
	if payer != "alice" || payee != "bob" || amount != "12.5" {
		t.Errorf("got (%q, %q, %q)", payer, payee, amount)
	}
	if _, _, _, err := splitAmountData("alice,bob"); !errors.Is(err, ErrMalformedPayload) {
		t.Errorf("two sub-fields: want ErrMalformedPayload, got %v", err)
	}
}
