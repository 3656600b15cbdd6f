package service

// NoticeLevel is the tone of a transient notification.
type NoticeLevel string

const (
	NoticeSuccess NoticeLevel = "success"
	NoticeInfo    NoticeLevel = "info"
	NoticeError   NoticeLevel = "error"
)

// Notice is a non-blocking, transient message shown to the user.
type Notice struct {
	Level   NoticeLevel `json:"level"`
	Message string      `json:"message"`
}

// Notifier delivers transient notifications. It never blocks and never fails.
type Notifier interface {
	Success(message string)
	Info(message string)
	Error(message string)
}
