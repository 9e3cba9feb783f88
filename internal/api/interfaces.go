package api

import "github.com/limbo/rexfit/internal/notify"

// EventPublisher pushes frames to the connected views.
//
//go:generate mockgen -source=interfaces.go -destination=mocks/publisher_mock.go -package=mocks
type EventPublisher interface {
	Publish(ev notify.Event) (int, error)
}
