package notify

import "context"

// Message es una notificación de texto plano hacia un canal externo.
type Message struct {
	Text string
}

// Notifier entrega un mensaje. Puede bloquear (HTTP); el llamador decide si lo hace async.
type Notifier interface {
	Send(ctx context.Context, msg Message) error
}
