// internal/events/publisher.go
package events

// Topic names for published events.
const TopicPaymentRecorded = "payment_recorded"

// Publisher delivers domain events to an external broker.
type Publisher interface {
	Publish(topic string, event any) error
	Close() error
}
