package auth

import "time"

// Tipos de transición de sesión.
const (
	SessionEstablished = "session-established"
	SessionEnded       = "session-ended"
)

const sessionEventBuffer = 16

// SessionEvent es una transición de sesión explícita: un mensaje por
// login y por logout, consumido una sola vez por el controlador superior
// (cmd/api). Las funciones puras del core no dependen de este flujo.
type SessionEvent struct {
	Type   string
	UserID string
	At     time.Time
}

// Events devuelve el canal de transiciones de sesión.
func (uc *AuthUseCase) Events() <-chan SessionEvent {
	return uc.events
}

// publish envía sin bloquear: si nadie consume, el evento se descarta antes
// que frenar el camino de autenticación.
func (uc *AuthUseCase) publish(eventType, userID string) {
	select {
	case uc.events <- SessionEvent{Type: eventType, UserID: userID, At: time.Now()}:
	default:
	}
}
