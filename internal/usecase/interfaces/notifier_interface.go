package interfaces

import "context"

//go:generate mockgen -source=notifier_interface.go -destination=mocks/mock_notifier_interface.go -package=mock_interfaces

// Notification is delivered to the team inbox (admins) or to a user.
type Notification struct {
	UserID  string `json:"user_id"`
	Role    string `json:"role"`
	Title   string `json:"title"`
	Message string `json:"message"`
	QuoteID string `json:"quote_id,omitempty"`
}

type INotifier interface {
	Notify(ctx context.Context, n Notification) error
}
