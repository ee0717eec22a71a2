package drawer

import "go.uber.org/zap"

// SetLogger sets the logger used for gesture diagnostics. Nil silences
// logging.
func (d *Drawer) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	d.log = l
}

// SetDebugMode switches between a development logger on stderr, which
// reports intent checks, ignored presses and every snap decision, and no
// logging at all.
func (d *Drawer) SetDebugMode(enabled bool) {
	if !enabled {
		d.log = zap.NewNop()
		return
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		return
	}
	d.log = l.Named("drawer")
}
