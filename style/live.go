package style

import "sync/atomic"

// Live is a Lookup whose sheet can be swapped while renders are in flight.
type Live struct {
	sheet atomic.Pointer[Sheet]
}

// NewLive returns a Live holding sheet.
func NewLive(sheet Sheet) *Live {
	l := &Live{}
	l.Store(sheet)
	return l
}

// Store replaces the current sheet.
func (l *Live) Store(sheet Sheet) {
	l.sheet.Store(&sheet)
}

// Sheet returns the current sheet, or nil if none was stored or l is nil.
func (l *Live) Sheet() Sheet {
	if l == nil {
		return nil
	}
	if p := l.sheet.Load(); p != nil {
		return *p
	}
	return nil
}

// Lookup implements Lookup against the current sheet.
func (l *Live) Lookup(name string) (string, bool) {
	return l.Sheet().Lookup(name)
}
