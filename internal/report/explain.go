// Package report renders tuning outcomes as text for the CLI.
package report

import (
	"fmt"
	"strings"

	"github.com/san-kum/graspsim/internal/sim"
	"github.com/san-kum/graspsim/internal/tissue"
)

// Explain summarizes an auto-tune run: which tissue was targeted, how the
// gains moved, and whether the tuned gains still breach the breaking point.
func Explain(detected, resolved string, p tissue.Profile, initial, tuned sim.Gains, finalDamaged bool) string {
	var b strings.Builder

	b.WriteString("auto-tune analysis\n")

	if detected != "" && detected != resolved {
		fmt.Fprintf(&b, "override active: detected %s, operator chose %s\n", detected, resolved)
	}

	fmt.Fprintf(&b, "target tissue: %s (stiffness %.1f kPa, breaking point %.1f N)\n",
		p.Name, p.YoungModulusKPa, p.BreakingPoint)
	fmt.Fprintf(&b, "initial gains: kp=%g ki=%g kd=%g\n", initial.Kp, initial.Ki, initial.Kd)
	fmt.Fprintf(&b, "tuned gains:   kp=%g ki=%g kd=%g\n", tuned.Kp, tuned.Ki, tuned.Kd)

	if finalDamaged {
		b.WriteString("warning: tuned gains still cause tissue injury; adjust manually or disable breathing\n")
	} else {
		b.WriteString("tuned gains hold the grip below the breaking point\n")
	}

	return b.String()
}
