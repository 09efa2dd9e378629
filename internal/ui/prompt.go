package ui

import (
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
)

// ConfirmSubmit asks for a y/n confirmation before a review is posted.
// Declining is not an error; the caller decides how to report cancellation.
func ConfirmSubmit(target string, commentCount int) (bool, error) {
	noun := "comments"
	if commentCount == 1 {
		noun = "comment"
	}
	prompt := promptui.Prompt{
		Label:     fmt.Sprintf("Post review with %d inline %s to %s", commentCount, noun, target),
		IsConfirm: true,
	}

	if _, err := prompt.Run(); err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}
		return false, fmt.Errorf("confirmation prompt failed: %w", err)
	}
	return true, nil
}
