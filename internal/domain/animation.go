package domain

import "fmt"

// FetchError reports a failed animation load.
// Status is the HTTP status code, or 0 when the request never completed.
type FetchError struct {
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("animation fetch failed: %v", e.Err)
	}
	if e.Err != nil {
		return fmt.Sprintf("animation fetch failed: status %d: %v", e.Status, e.Err)
	}
	return fmt.Sprintf("animation fetch failed: status %d", e.Status)
}

func (e *FetchError) Unwrap() error { return e.Err }

// AnimationResponse is what the UI receives for the loading animation
type AnimationResponse struct {
	Success   bool   `json:"success"`
	Available bool   `json:"available"`
	Data      any    `json:"data,omitempty"`
	Message   string `json:"message,omitempty"`
}
