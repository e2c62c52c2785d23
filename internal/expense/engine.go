package expense

import "fmt"

// Advance computes the screen a decoded button press transitions into. It is
// a pure dispatch on the step literal; every invocation is fully derivable
// from the payload and the roster, nothing is remembered between calls.
func Advance(step Step, data string, roster []Participant) (View, error) {
	switch step {
	case StepSelectPayer:
		// data ignored, fresh entry or explicit return
		return View{
			Text:     RenderPrompt(StepSelectPayer, "", "", ""),
			Keyboard: payerKeyboard(roster),
		}, nil
	case StepSelectPayee:
		return View{
			Text:     RenderPrompt(StepSelectPayee, data, "", ""),
			Keyboard: payeeKeyboard(data, roster),
		}, nil
	case StepEnterAmount:
		payer, payee, amount, err := splitAmountData(data)
		if err != nil {
			return View{}, err
		}
		return View{
			Text:     RenderPrompt(StepEnterAmount, payer, payee, amount),
			Keyboard: amountKeyboard(payer, payee, amount),
		}, nil
	case StepSubmit:
		return View{}, ErrSubmitUnimplemented
	default:
		return View{}, fmt.Errorf("%w: %q", ErrUnknownStep, string(step))
	}
}

// Start renders the initial screen of the wizard.
func Start(roster []Participant) View {
	v, _ := Advance(StepSelectPayer, "", roster)
	return v
}
