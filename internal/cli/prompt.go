package cli

import (
	"github.com/AlecAivazis/survey/v2"
)

// confirm asks the user a yes/no question, defaulting to no.
// Returns nil in quiet mode so callers refuse instead of prompting.
func confirm() func(prompt string) (bool, error) {
	if globalQuiet {
		return nil
	}
	return func(prompt string) (bool, error) {
		var ok bool
		question := &survey.Confirm{
			Message: prompt,
			Default: false,
		}
		if err := survey.AskOne(question, &ok); err != nil {
			return false, err
		}
		return ok, nil
	}
}
