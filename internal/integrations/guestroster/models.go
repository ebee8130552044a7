package guestroster

// Guest is the roster's view of a guest: existence plus ban flags.
// The roster subsystem owns the full guest record; the booking workflow
// only reads what it needs to gate commands.
type Guest struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Banned      bool     `json:"banned"`       // banned from the center entirely
	ServiceBans []string `json:"service_bans"` // per-service bans, service type names
}

// IsBannedFrom reports whether the guest is banned from the given service,
// either globally or per service.
func (g *Guest) IsBannedFrom(service string) bool {
	if g.Banned {
		return true
	}
	for _, s := range g.ServiceBans {
		if s == service {
			return true
		}
	}
	return false
}

// ErrorResponse error payload from the roster service
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
