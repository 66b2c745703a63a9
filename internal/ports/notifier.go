package ports

// Notifier delivers messages the user must acknowledge.
type Notifier interface {
	Alert(message string)
}
