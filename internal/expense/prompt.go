package expense

import "strings"

var stepInstructions = map[Step]string{
	StepSelectPayer: "Enter the payer:",
	StepSelectPayee: "Enter the payee:",
	StepEnterAmount: "Enter the amount:",
}

// RenderPrompt produces the message text for a step: the selections made so
// far followed by the instruction line for the step being entered.
func RenderPrompt(step Step, payer, payee, amount string) string {
	var b strings.Builder
	b.WriteString("Payer: ")
	b.WriteString(payer)
	b.WriteString("\nPayee: ")
	b.WriteString(payee)
	b.WriteString("\nAmount: ")
	b.WriteString(amount)
	b.WriteString("\n\n")
	b.WriteString(stepInstructions[step])
	return b.String()
}
