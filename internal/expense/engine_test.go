package expense

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

var testRoster = []Participant{
	{ID: "alice", DisplayName: "alice"},
	{ID: "bob", DisplayName: "bob"},
}

func TestAdvanceDeterminism(t *testing.T) {
	cases := []struct {
		step Step
		data string
	}{
		{StepSelectPayer, ""},
		{StepSelectPayee, "alice"},
		{StepEnterAmount, "alice,bob,12.5"},
	}
	for _, tc := range cases {
		first, err := Advance(tc.step, tc.data, testRoster)
		if err != nil {
			t.Fatalf("Advance(%q, %q): %v", tc.step, tc.data, err)
		}
		second, err := Advance(tc.step, tc.data, testRoster)
		if err != nil {
			t.Fatalf("Advance(%q, %q) second call: %v", tc.step, tc.data, err)
		}
		if !reflect.DeepEqual(first, second) {
			t.Errorf("Advance(%q, %q) is not deterministic", tc.step, tc.data)
		}
	}
}

func TestAdvanceRejectsBadSteps(t *testing.T) {
	if _, err := Advance(Step("9"), "", testRoster); !errors.Is(err, ErrUnknownStep) {
		t.Errorf("unknown step: got %v", err)
	}
	if _, err := Advance(StepEnterAmount, "alice,bob", testRoster); !errors.Is(err, ErrMalformedPayload) {
		t.Errorf("short amount data: got %v", err)
	}
	if _, err := Advance(StepSubmit, "alice,bob,5", testRoster); !errors.Is(err, ErrSubmitUnimplemented) {
		t.Errorf("submit: got %v", err)
	}
}

func TestBackFromPayeeClearsSelections(t *testing.T) {
	payee, err := Advance(StepSelectPayee, "alice", testRoster)
	if err != nil {
		t.Fatalf("payee screen: %v", err)
	}
	back := payee.Keyboard[len(payee.Keyboard)-1][0]
	if back.Text != "Back" {
		t.Fatalf("last row is %q, want Back", back.Text)
	}
	_, step, data, err := Decode(back.Payload)
	if err != nil {
		t.Fatalf("Decode(%q): %v", back.Payload, err)
	}
	view, err := Advance(step, data, testRoster)
	if err != nil {
		t.Fatalf("Advance back: %v", err)
	}
	fresh, _ := Advance(StepSelectPayer, "", testRoster)
	if !reflect.DeepEqual(view, fresh) {
		t.Errorf("back does not reproduce a fresh payer screen")
	}
	if strings.Contains(view.Text, "alice") {
		t.Errorf("payer still shown after back: %q", view.Text)
	}
}

func TestPayeeSelectionPrefixesAllAmountKeys(t *testing.T) {
	view, err := Advance(StepEnterAmount, "alice,bob,", testRoster)
	if err != nil {
		t.Fatalf("amount screen: %v", err)
	}
	for _, row := range view.Keyboard {
		for _, btn := range row {
			_, _, data, err := Decode(btn.Payload)
			if err != nil {
				t.Fatalf("Decode(%q): %v", btn.Payload, err)
			}
			if btn.Text == "Back" {
				if data != "alice" {
					t.Errorf("Back data: got %q", data)
				}
				continue
			}
			if !strings.HasPrefix(data, "alice,bob,") {
				t.Errorf("key %q data %q lacks payer,payee prefix", btn.Text, data)
			}
		}
	}
}

func TestWizardEndToEnd(t *testing.T) {
	// Command entry renders the payer screen.
	initial := Start(testRoster)
	if !strings.HasSuffix(initial.Text, "Enter the payer:") {
		t.Fatalf("initial prompt: %q", initial.Text)
	}
	if len(initial.Keyboard) != 2 {
		t.Fatalf("initial keyboard rows: %d", len(initial.Keyboard))
	}
	if initial.Keyboard[0][0].Payload != "0|1|alice" || initial.Keyboard[1][0].Payload != "0|1|bob" {
		t.Fatalf("payer payloads: %q, %q", initial.Keyboard[0][0].Payload, initial.Keyboard[1][0].Payload)
	}

	// Press alice.
	_, step, data, err := Decode(initial.Keyboard[0][0].Payload)
	if err != nil {
		t.Fatalf("decode alice press: %v", err)
	}
	payee, err := Advance(step, data, testRoster)
	if err != nil {
		t.Fatalf("advance to payee: %v", err)
	}
	if !strings.Contains(payee.Text, "Payer: alice") || !strings.HasSuffix(payee.Text, "Enter the payee:") {
		t.Fatalf("payee prompt: %q", payee.Text)
	}
	var payloads []string
	for _, row := range payee.Keyboard {
		payloads = append(payloads, row[0].Payload)
	}
	want := []string{"0|2|alice,alice,", "0|2|alice,bob,", "0|0|alice"}
	if !reflect.DeepEqual(payloads, want) {
		t.Fatalf("payee payloads: %v, want %v", payloads, want)
	}

	// Press bob.
	_, step, data, err = Decode("0|2|alice,bob,")
	if err != nil {
		t.Fatalf("decode bob press: %v", err)
	}
	amount, err := Advance(step, data, testRoster)
	if err != nil {
		t.Fatalf("advance to amount: %v", err)
	}
	if !strings.Contains(amount.Text, "Payer: alice") || !strings.Contains(amount.Text, "Payee: bob") {
		t.Fatalf("amount prompt: %q", amount.Text)
	}
	if !strings.HasSuffix(amount.Text, "Enter the amount:") {
		t.Fatalf("amount instruction: %q", amount.Text)
	}
	seven := amount.Keyboard[2][0]
	if seven.Text != "7" || seven.Payload != "0|2|alice,bob,7" {
		t.Fatalf("key 7: %q %q", seven.Text, seven.Payload)
	}
}
