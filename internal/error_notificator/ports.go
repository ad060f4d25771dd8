package error_notificator

import "context"

type Notificator interface {
	// Notify reports a failure from source (a session id or a component name).
	Notify(ctx context.Context, source string, err error, details string) error
}

// Nop drops every notification.
type Nop struct{}

func (Nop) Notify(context.Context, string, error, string) error { return nil }
