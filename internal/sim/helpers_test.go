package sim

import (
	"io"
	"log/slog"
	"time"

	"github.com/san-kum/orrery/internal/solar"
)

var (
	epoch      = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	quietLog   = slog.New(slog.NewTextHandler(io.Discard, nil))
	testPlanet = solar.BodyID("Earth")
)

type recordingOpener struct {
	opened []solar.BodyID
}

func (r *recordingOpener) Open(id solar.BodyID) string {
	r.opened = append(r.opened, id)
	return "view-" + string(id)
}
