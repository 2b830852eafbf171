package event

type WinnerFoundPayload struct {
	PlayerIndex int
	PlayerName  string
}

type WinnerFoundListener interface {
	OnWinnerFound(WinnerFoundPayload)
}

type winnerFoundEmitter struct {
	listeners []WinnerFoundListener
}

func (e *winnerFoundEmitter) AddListener(listener WinnerFoundListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *winnerFoundEmitter) Emit(payload WinnerFoundPayload) {
	for _, listener := range e.listeners {
		listener.OnWinnerFound(payload)
	}
}
