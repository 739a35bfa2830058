package core

// EffectOp selects how a notification fans out.
type EffectOp int

const (
	// SendTo delivers to Target only.
	SendTo EffectOp = iota
	// BroadcastAll delivers to every live connection, sender included.
	BroadcastAll
	// BroadcastExcept delivers to every live connection but Target.
	BroadcastExcept
)

// Effect is one notification the router wants delivered. The router never
// touches the transport itself; it returns effects and the adapter applies
// them, which keeps every transition testable without a live socket.
type Effect struct {
	Op      EffectOp
	Target  SessionID
	Event   string
	Payload any
}

func Unicast(to SessionID, event string, payload any) Effect {
	return Effect{Op: SendTo, Target: to, Event: event, Payload: payload}
}

func Broadcast(event string, payload any) Effect {
	return Effect{Op: BroadcastAll, Event: event, Payload: payload}
}

func BroadcastOthers(except SessionID, event string, payload any) Effect {
	return Effect{Op: BroadcastExcept, Target: except, Event: event, Payload: payload}
}
