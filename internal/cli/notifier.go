package cli

import (
	"fmt"
	"io"
	"sync"

	"github.com/meheralimeer/shelfwatch/internal/item"
	"github.com/meheralimeer/shelfwatch/internal/monitor"
)

// terminalNotifier prints expiry alerts to the shell's output. The mutex
// serializes alert lines against each other so the monitor goroutine never
// interleaves output mid-line. When the shell is interactive, the terminal
// bell is rung; richer audio is out of scope.
type terminalNotifier struct {
	mu   sync.Mutex
	w    io.Writer
	bell bool
}

func newTerminalNotifier(w io.Writer, bell bool) *terminalNotifier {
	return &terminalNotifier{w: w, bell: bell}
}

func (n *terminalNotifier) Notify(alert monitor.Alert) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.bell {
		fmt.Fprint(n.w, "\a")
	}
	fmt.Fprintf(n.w, "EXPIRY ALERT: %s (id %d, expires %s)\n",
		alert.Message(), alert.Item.ID, alert.Item.ExpiryDate.Format(item.DateLayout))
}
