package models

import "strings"

var actionStatus = map[string]string{
	"create":        "Created",
	"fertilizing":   "Cultivating",
	"irrigation":    "Cultivating",
	"harvesting":    "Harvested",
	"milling":       "Milling",
	"packaging":     "Packaged",
	"shipping":      "In transit",
	"warehouse_in":  "In warehouse",
	"warehouse_out": "Dispatched",
	"distribution":  "Distributed",
}

// StatusForAction returns the batch status implied by action, if any.
// Matching is case-insensitive.
func StatusForAction(action string) (string, bool) {
	s, ok := actionStatus[strings.ToLower(strings.TrimSpace(action))]
	return s, ok
}

// DeriveStatus walks txs (oldest first) and returns the status of the latest
// action that maps to one. Unknown actions leave the status unchanged.
func DeriveStatus(txs []TransactionDB) string {
	status := ""
	for _, tx := range txs {
		if s, ok := StatusForAction(tx.Action); ok {
			status = s
		}
	}
	return status
}
