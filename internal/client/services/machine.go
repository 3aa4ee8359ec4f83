package services

import (
	"os"
	"os/user"

	"github.com/dmitrijs2005/gophchat/internal/cryptox"
)

// MachineID identifies this host and OS account. Either part may be empty
// when the platform cannot report it.
func MachineID() string {
	host, _ := os.Hostname()
	name := ""
	if u, err := user.Current(); err == nil {
		name = u.Username
	}
	return host + "/" + name
}

// LocalMachineKey derives the key that seals the stored session on this
// host.
func LocalMachineKey() []byte {
	return cryptox.MachineKey(MachineID())
}
