package model

import "strings"

// OrderStatus is the closed set of states a service order can be in. The
// wire format keeps the legacy free-text status strings; the enum exists so
// the closing-timestamp rule is a state check instead of string matching
// scattered around the code.
type OrderStatus int

const (
	StatusOpen OrderStatus = iota
	StatusInProgress
	StatusClosed
)

// Legacy status tokens that mean the work is finished. Matching is
// case-insensitive.
var terminalTokens = map[string]struct{}{
	"concluído":  {},
	"finalizado": {},
	"terminado":  {},
}

// ParseStatus maps a legacy free-text status onto the enum. Anything that is
// not a terminal token and not "em andamento" is treated as open.
func ParseStatus(raw string) OrderStatus {
	lower := strings.ToLower(strings.TrimSpace(raw))
	if _, ok := terminalTokens[lower]; ok {
		return StatusClosed
	}
	if lower == "em andamento" {
		return StatusInProgress
	}
	return StatusOpen
}

// Terminal reports whether the status means the order is finished and must
// carry a closing timestamp.
func (s OrderStatus) Terminal() bool {
	return s == StatusClosed
}
