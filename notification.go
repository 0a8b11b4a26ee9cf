package rx

type NotificationKind int

const (
	OnNext NotificationKind = iota
	OnError
	OnComplete
)

// A Notification is a single materialized stream event. Operators built on
// lift see the upstream as a sequence of Notifications, which is what lets
// them redefine completion (Take, Reduce) instead of only transforming values.
type Notification struct {
	Kind  NotificationKind
	Value any
	Err   error
}

func Next(value any) Notification {
	return Notification{Kind: OnNext, Value: value}
}

func Error(err error) Notification {
	return Notification{Kind: OnError, Err: err}
}

func Complete() Notification {
	return Notification{Kind: OnComplete}
}
