// Package botguard validates public form submissions against automated
// submitters using a honeypot field and a server-verified arithmetic challenge.
package botguard

import (
	"strconv"
	"strings"

	"lumistream/internal/shared/errors"
)

// Fields carries the anti-bot form fields from a public submission.
// WebsiteURL is the honeypot: it is hidden in the form and stays empty for
// human submitters. MathChallenge holds the two operands shown to the user
// as "a,b"; MathAnswer is the claimed sum.
type Fields struct {
	WebsiteURL    string
	MathChallenge string
	MathAnswer    string
}

// Verdict is the outcome of a bot check.
type Verdict int

const (
	// VerdictHuman means the submission passed all checks.
	VerdictHuman Verdict = iota
	// VerdictDecoy means the honeypot fired. Callers must report success to
	// the submitter without persisting anything, so automated submitters
	// cannot distinguish rejection from acceptance.
	VerdictDecoy
)

const wrongAnswerMessage = "Incorrect answer to the math question."

// Check validates the anti-bot fields. A filled honeypot yields VerdictDecoy
// with a nil error. A missing or wrong math answer yields a validation error
// that is safe to surface verbatim.
func Check(f Fields) (Verdict, error) {
	if strings.TrimSpace(f.WebsiteURL) != "" {
		return VerdictDecoy, nil
	}

	if f.MathChallenge == "" || f.MathAnswer == "" {
		return VerdictHuman, errors.NewValidationError(wrongAnswerMessage)
	}

	parts := strings.Split(f.MathChallenge, ",")
	if len(parts) != 2 {
		return VerdictHuman, errors.NewValidationError(wrongAnswerMessage)
	}

	a, errA := strconv.Atoi(strings.TrimSpace(parts[0]))
	b, errB := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errA != nil || errB != nil {
		return VerdictHuman, errors.NewValidationError(wrongAnswerMessage)
	}

	answer, err := strconv.Atoi(strings.TrimSpace(f.MathAnswer))
	if err != nil || answer != a+b {
		return VerdictHuman, errors.NewValidationError(wrongAnswerMessage)
	}

	return VerdictHuman, nil
}
