package store

import (
	"errors"
	"fmt"

	"github.com/jyush98/jason-co-ecom-sub004/pkg/api"
)

// ActionResult is what mutating store actions hand back to view code.
// Views branch on Success and render Message or Err inline; they never
// need exception-style handling.
type ActionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Err     string `json:"error,omitempty"`
}

func succeeded(message string) ActionResult {
	return ActionResult{Success: true, Message: message}
}

func failed(err error) ActionResult {
	return ActionResult{Success: false, Err: errorMessage(err)}
}

// errorMessage converts the api error taxonomy into something a customer
// can read. Server-supplied messages win when present.
func errorMessage(err error) string {
	var httpErr *api.HTTPError
	switch {
	case errors.Is(err, api.ErrAuthRequired):
		return "Please sign in to continue"
	case errors.As(err, &httpErr):
		if httpErr.Message != "" {
			return httpErr.Message
		}
		return fmt.Sprintf("Request failed (status %d)", httpErr.Status)
	default:
		return "Something went wrong. Please try again."
	}
}
