package persistence

import (
	"context"
	"log/slog"

	"github.com/stefdude/linknx/internal/objects"
)

// Attach seeds and wires write-through persistence for every object in
// ctl whose Init() is InitPersist (spec.md §6): the stored value (if
// any) is applied via SetValue, and a listener is registered so every
// subsequent change is written back to store. Objects with any other
// init policy are left untouched.
func Attach(ctx context.Context, ctl *objects.Controller, store *Store, logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	for _, obj := range ctl.All() {
		if obj.Init() != objects.InitPersist {
			continue
		}
		if value, ok, err := store.Get(ctx, obj.ID()); err != nil {
			logger.Warn("persistence: failed to read stored value", "id", obj.ID(), "err", err)
		} else if ok {
			if err := obj.SetValue(value); err != nil {
				logger.Warn("persistence: stored value rejected", "id", obj.ID(), "value", value, "err", err)
			}
		}
		obj.AddChangeListener(&writeThrough{store: store, logger: logger})
	}
}

// writeThrough is the ChangeListener that performs the write-back half
// of the persist policy.
type writeThrough struct {
	store  *Store
	logger *slog.Logger
}

func (w *writeThrough) OnChange(obj objects.Object) {
	if obj == nil {
		return
	}
	if err := w.store.Set(context.Background(), obj.ID(), obj.Value()); err != nil {
		w.logger.Warn("persistence: failed to write value", "id", obj.ID(), "err", err)
	}
}
