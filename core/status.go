package core

import "time"

type NotificationKind string

const (
	NotificationNone    NotificationKind = ""
	NotificationLoading NotificationKind = "loading"
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
)

type Notification struct {
	ID        string           `json:"id,omitempty"`
	Kind      NotificationKind `json:"type"`
	Message   string           `json:"message"`
	CreatedAt time.Time        `json:"created_at,omitempty"`
}
