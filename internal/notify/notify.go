// Package notify is the user-facing notification sink. Containers emit
// exactly one toast per non-background failure or success; background
// refreshes stay silent and only log.
package notify

import "github.com/sirupsen/logrus"

// Notifier receives user-facing toast notifications.
type Notifier interface {
	Positive(message string)
	Negative(message string)
	Info(message string)
}

// Log is a Notifier that writes toasts to the structured log, the CLI's
// stand-in for the browser client's toast widget.
type Log struct {
	log *logrus.Entry
}

// NewLog builds a Log notifier on top of logger.
func NewLog(logger *logrus.Logger) *Log {
	return &Log{log: logger.WithField("component", "notify")}
}

// Positive reports a success toast.
func (l *Log) Positive(message string) {
	l.log.WithField("severity", "positive").Info(message)
}

// Negative reports a failure toast.
func (l *Log) Negative(message string) {
	l.log.WithField("severity", "negative").Warn(message)
}

// Info reports a neutral toast.
func (l *Log) Info(message string) {
	l.log.WithField("severity", "info").Info(message)
}

// Event is a recorded notification.
type Event struct {
	Severity string
	Message  string
}

// Recorder captures notifications for tests.
type Recorder struct {
	Events []Event
}

// Positive records a success toast.
func (r *Recorder) Positive(message string) {
	r.Events = append(r.Events, Event{Severity: "positive", Message: message})
}

// Negative records a failure toast.
func (r *Recorder) Negative(message string) {
	r.Events = append(r.Events, Event{Severity: "negative", Message: message})
}

// Info records a neutral toast.
func (r *Recorder) Info(message string) {
	r.Events = append(r.Events, Event{Severity: "info", Message: message})
}

// BySeverity counts recorded events with the given severity.
func (r *Recorder) BySeverity(severity string) int {
	count := 0
	for _, event := range r.Events {
		if event.Severity == severity {
			count++
		}
	}
	return count
}
