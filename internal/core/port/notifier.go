package port

import "context"

//go:generate mockgen -source=notifier.go -destination=mock/notifier.go -package=mock
type Notifier interface {
	// Notify hands a message over for delivery without waiting for it to be sent.
	Notify(ctx context.Context, message string) error
}
