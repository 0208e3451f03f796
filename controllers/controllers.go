package controllers

import "learnhub/gateway"

// GW is the process-wide data-access gateway, wired in main
var GW *gateway.Gateway

// SetGateway installs the gateway used by every handler
func SetGateway(g *gateway.Gateway) { GW = g }
