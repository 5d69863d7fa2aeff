package sync

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
)

// ErrInteractiveDisabled is returned when interactive prompts are disabled via HUBSYNC_TEST_NO_INTERACTIVE
var ErrInteractiveDisabled = fmt.Errorf("interactive prompts are disabled (HUBSYNC_TEST_NO_INTERACTIVE is set)")

// confirmDelete asks before a branch is deleted in interactive mode.
func confirmDelete(branch string) (bool, error) {
	if os.Getenv("HUBSYNC_TEST_NO_INTERACTIVE") != "" {
		return false, ErrInteractiveDisabled
	}

	confirmed := false
	prompt := &survey.Confirm{
		Message: fmt.Sprintf("Delete branch %s?", branch),
		Default: true,
	}
	if err := survey.AskOne(prompt, &confirmed); err != nil {
		return false, err
	}
	return confirmed, nil
}
