package model

// ShareStatus is the state of the share action
type ShareStatus string

const (
	ShareIdle    ShareStatus = "idle"
	ShareCopying ShareStatus = "copying"
	ShareCopied  ShareStatus = "copied"
	ShareError   ShareStatus = "error"
)

// ShareResult is returned by a share action
type ShareResult struct {
	Status ShareStatus `json:"status"`
	Text   string      `json:"text"`
	URL    string      `json:"url"`
	Method string      `json:"method,omitempty"` // native or clipboard
}
