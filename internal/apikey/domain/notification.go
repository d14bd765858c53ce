package domain

// Notification is a message shown to the user after an action.
type Notification struct {
	Message string           `json:"message"`
	Kind    NotificationKind `json:"kind"`
}

// NewSuccessNotification creates a notification of kind success.
func NewSuccessNotification(message string) Notification {
	return Notification{Message: message, Kind: NotificationSuccess}
}

// NewErrorNotification creates a notification of kind error.
func NewErrorNotification(message string) Notification {
	return Notification{Message: message, Kind: NotificationError}
}

// IsError reports whether the notification reports a failure.
func (n Notification) IsError() bool {
	return n.Kind == NotificationError
}
