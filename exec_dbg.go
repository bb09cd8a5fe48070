//go:build debug

package sqlhelper

import "log"

func logExec(h *Helper) {
	log.Printf("[DEBUG] Executing %s", h.LastSQL())
}
