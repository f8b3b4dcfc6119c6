package domain

import "time"

// NoticeLevel is the severity of a user-facing notice.
type NoticeLevel string

const (
	NoticeInfo    NoticeLevel = "info"
	NoticeSuccess NoticeLevel = "success"
	NoticeWarning NoticeLevel = "warning"
	NoticeError   NoticeLevel = "error"
)

// Notice is a message for the user: a toast, or a dialog when Blocking.
type Notice struct {
	ID       string      `json:"id"`
	Level    NoticeLevel `json:"level"`
	Message  string      `json:"message"`
	Blocking bool        `json:"blocking,omitempty"`

	// Navigate, when set, asks the shell to move to that route once the
	// notice is acknowledged.
	Navigate string    `json:"navigate,omitempty"`
	At       time.Time `json:"at"`
}
