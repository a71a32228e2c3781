package sim

import (
	"log/slog"

	"github.com/san-kum/orrery/internal/solar"
)

// PickEvent is what a backend reports for a pointer interaction. Hit is false
// when nothing pickable was under the pointer (empty space or a trail).
type PickEvent struct {
	Target solar.BodyID
	Hit    bool
}

func PickHit(id solar.BodyID) PickEvent { return PickEvent{Target: id, Hit: true} }

func PickMiss() PickEvent { return PickEvent{} }

// Opener opens an inspection view for a body and returns the view's handle.
type Opener interface {
	Open(id solar.BodyID) string
}

// PickObserver is notified of every dispatched pick.
type PickObserver interface {
	OnPick(ev PickEvent, resolved bool)
}

type PickDispatcher struct {
	catalog   *solar.Catalog
	opener    Opener
	observers []PickObserver
	log       *slog.Logger
}

func NewPickDispatcher(catalog *solar.Catalog, opener Opener, log *slog.Logger) *PickDispatcher {
	if log == nil {
		log = slog.Default()
	}
	return &PickDispatcher{catalog: catalog, opener: opener, log: log}
}

func (d *PickDispatcher) AddObserver(o PickObserver) { d.observers = append(d.observers, o) }

// Dispatch opens a view for a hit on a known body. Misses and unknown targets
// are dropped without error.
func (d *PickDispatcher) Dispatch(ev PickEvent) (string, bool) {
	resolved := ev.Hit && d.catalog.Has(ev.Target)
	for _, o := range d.observers {
		o.OnPick(ev, resolved)
	}
	if !resolved {
		d.log.Debug("pick ignored", "hit", ev.Hit, "target", ev.Target)
		return "", false
	}
	handle := d.opener.Open(ev.Target)
	d.log.Info("pick resolved", "body", ev.Target, "view", handle)
	return handle, true
}
