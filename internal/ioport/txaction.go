package ioport

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/stefdude/linknx/internal/element"
)

// TxAction sends a fixed byte payload to a named port after an optional
// delay, the rule-action counterpart of a Port (spec.md §9's "ioport-tx"
// action). Mirrors TxAction::Run, replacing its pth-cooperative sleep
// with a context-cancellable time.Timer.
type TxAction struct {
	port  Port
	data  string
	delay time.Duration
}

// NewTxAction resolves the `ioport` reference from reg and builds a
// TxAction ready to Run.
func NewTxAction(e *element.Element, reg *Registry) (*TxAction, error) {
	portID := e.Attr("ioport")
	p, err := reg.Get(portID)
	if err != nil {
		return nil, fmt.Errorf("txaction: %w", err)
	}
	secs, err := strconv.Atoi(e.AttrOr("delay", "0"))
	if err != nil {
		return nil, fmt.Errorf("txaction: invalid delay %q: %w", e.Attr("delay"), err)
	}
	return &TxAction{port: p, data: e.Attr("data"), delay: time.Duration(secs) * time.Second}, nil
}

// Run waits out the configured delay (or returns early if ctx is
// cancelled) and then sends the configured payload.
func (a *TxAction) Run(ctx context.Context) error {
	if a.delay > 0 {
		t := time.NewTimer(a.delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
	}
	return a.port.Send([]byte(a.data))
}

func (a *TxAction) ExportXML(e *element.Element) {
	e.SetAttr("type", "ioport-tx")
	e.SetAttr("data", a.data)
	if a.port != nil {
		e.SetAttr("ioport", a.port.ID())
	}
}
