package services

type eventDeps struct {
	rt *RealtimeHub
}

var _events eventDeps

func InitEventDeps(rt *RealtimeHub) {
	_events = eventDeps{rt: rt}
}

// EmitLogEvent fans a log lifecycle event out to the owner's live
// connections. Safe to call before InitEventDeps (no-op).
func EmitLogEvent(userID uint, kind string, payload any) {
	if _events.rt == nil {
		return
	}
	_events.rt.Broadcast(userID, map[string]any{
		"kind": kind,
		"log":  payload,
	})
}
