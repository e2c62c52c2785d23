package expense

import (
	"strings"
	"testing"
)

func TestApplyKeyEditLaws(t *testing.T) {
	// Appending a digit then Del restores the original buffer.
	for _, amount := range []string{"", "1", "12.5"} {
		if got := applyKey(applyKey(amount, "7"), "Del"); got != amount {
			t.Errorf("append+Del on %q: got %q", amount, got)
		}
	}
	if got := applyKey("", "Del"); got != "" {
		t.Errorf("Del on empty: got %q", got)
	}
	if got := applyKey(applyKey("12", "."), "5"); got != "12.5" {
		t.Errorf(`"12" + "." + "5": got %q`, got)
	}
	// A second decimal point is ignored.
	if got := applyKey("12.5", "."); got != "12.5" {
		t.Errorf("second dot: got %q", got)
	}
}

func TestPayerKeyboardPayloads(t *testing.T) {
	roster := []Participant{{ID: "alice", DisplayName: "alice"}, {ID: "bob", DisplayName: "bob"}}
	rows := payerKeyboard(roster)
	if len(rows) != 2 {
		t.Fatalf("rows: got %d", len(rows))
	}
	want := []string{"0|1|alice", "0|1|bob"}
	for i, row := range rows {
		if len(row) != 1 {
			t.Fatalf("row %d: want one button per row, got %d", i, len(row))
		}
		if row[0].Payload != want[i] {
			t.Errorf("row %d payload: got %q, want %q", i, row[0].Payload, want[i])
		}
	}
}

func TestPayeeKeyboardPayloads(t *testing.T) {
	roster := []Participant{{ID: "alice", DisplayName: "alice"}, {ID: "bob", DisplayName: "bob"}}
	rows := payeeKeyboard("alice", roster)
	if len(rows) != 3 {
		t.Fatalf("rows: got %d, want participants plus Back", len(rows))
	}
	// The payer stays selectable as payee.
	if rows[0][0].Payload != "0|2|alice,alice," {
		t.Errorf("self payee payload: got %q", rows[0][0].Payload)
	}
	if rows[1][0].Payload != "0|2|alice,bob," {
		t.Errorf("payee payload: got %q", rows[1][0].Payload)
	}
	back := rows[2][0]
	if back.Text != "Back" || back.Payload != "0|0|alice" {
		t.Errorf("back button: got %q %q", back.Text, back.Payload)
	}
}

func TestPayeeKeyboardSkipsUnusableIdentifiers(t *testing.T) {
	roster := []Participant{
		{ID: "alice", DisplayName: "alice"},
		{ID: "bad|id", DisplayName: "bad|id"},
		{ID: "bad,id", DisplayName: "bad,id"},
		{ID: strings.Repeat("x", 80), DisplayName: "long"},
	}
	rows := payeeKeyboard("alice", roster)
	if len(rows) != 2 {
		t.Fatalf("rows: got %d, want only the clean participant plus Back", len(rows))
	}
	if rows[0][0].Text != "alice" {
		t.Errorf("kept participant: got %q", rows[0][0].Text)
	}
}

func TestAmountKeyboardLayout(t *testing.T) {
	rows := amountKeyboard("alice", "bob", "")
	if len(rows) != 5 {
		t.Fatalf("rows: got %d", len(rows))
	}
	wantKeys := [][]string{
		{"1", "2", "3"},
		{"4", "5", "6"},
		{"7", "8", "9"},
		{".", "0", "Del"},
		{"Back", "Submit"},
	}
	for i, keys := range wantKeys {
		if len(rows[i]) != len(keys) {
			t.Fatalf("row %d: got %d buttons, want %d", i, len(rows[i]), len(keys))
		}
		for j, key := range keys {
			if rows[i][j].Text != key {
				t.Errorf("row %d key %d: got %q, want %q", i, j, rows[i][j].Text, key)
			}
		}
	}

	// Every numeric key embeds the amount with that key applied.
	if got := rows[2][0].Payload; got != "0|2|alice,bob,7" {
		t.Errorf("key 7 payload: got %q", got)
	}
	// Del on an empty buffer embeds the same empty amount.
	if got := rows[3][2].Payload; got != "0|2|alice,bob," {
		t.Errorf("Del payload: got %q", got)
	}
	// Back returns to payee selection carrying the payer only.
	if got := rows[4][0].Payload; got != "0|1|alice" {
		t.Errorf("back payload: got %q", got)
	}
	if got := rows[4][1].Payload; got != "0|3|alice,bob," {
		t.Errorf("submit payload: got %q", got)
	}
}

func TestAmountKeyboardOverflowPressIsNoOp(t *testing.T) {
	// The amount buffer sits exactly at the payload ceiling, so pressing any
	// digit would overflow. The key must render with the unchanged amount.
	amount := strings.Repeat("9", MaxPayloadLen-len("0|2|a,b,"))
	rows := amountKeyboard("a", "b", amount)
	digit := rows[0][0]
	if digit.Text != "1" {
		t.Fatalf("unexpected layout: %q", digit.Text)
	}
	want := "0|2|a,b," + amount
	if digit.Payload != want {
		t.Errorf("overflow press: got %q, want unchanged %q", digit.Payload, want)
	}
	if wire := len(digit.Payload) + 1; wire > 64 {
		t.Errorf("rendered key is %d wire bytes with the marker", wire)
	}
}
