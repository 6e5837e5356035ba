package ports

// Notifier surfaces non-blocking notices to the user.
type Notifier interface {
	Warn(title, description string)
}

type NopNotifier struct{}

func (NopNotifier) Warn(string, string) {}
