//go:build linux

package main

import (
	"github.com/jfdrake/fakeap/internal/adapters/injection"
	"github.com/jfdrake/fakeap/internal/core/ports"
)

func openInjectionTransport(iface string) (ports.InjectionTransport, error) {
	return injection.NewRawSocketTransport(iface)
}
