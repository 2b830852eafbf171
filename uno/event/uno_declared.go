package event

type UnoDeclaredPayload struct {
	PlayerIndex int
	PlayerName  string
}

type UnoDeclaredListener interface {
	OnUnoDeclared(UnoDeclaredPayload)
}

type unoDeclaredEmitter struct {
	listeners []UnoDeclaredListener
}

func (e *unoDeclaredEmitter) AddListener(listener UnoDeclaredListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *unoDeclaredEmitter) Emit(payload UnoDeclaredPayload) {
	for _, listener := range e.listeners {
		listener.OnUnoDeclared(payload)
	}
}
