// Package handlers is the HTTP surface over the same gateway the console
// client uses; no operation exists here that the console cannot perform.
package handlers

import (
	"pizza-store/store"
)

var gw *store.Gateway

// Use wires the gateway the handler functions run against.
func Use(g *store.Gateway) {
	gw = g
}
