package casting

import "github.com/vovakirdan/lightcycle/internal/core"

// Banner is a status line. Displays draw it on the HUD row rather than
// on the playfield.
type Banner struct {
	*Actor
}

// NewBanner creates an empty banner.
func NewBanner(color core.Color) *Banner {
	return &Banner{Actor: NewActor(core.Zero, color, "")}
}
