// Package greeting holds what every listener in this repo shares: the port
// it binds and the body it answers with.
package greeting

import "fmt"

const (
	Text = "Hello Chennai Devops!\n"
	Port = 8080
)

// Addr is the listen address, all interfaces.
func Addr() string {
	return fmt.Sprintf(":%d", Port)
}

// Banner is the line printed once the port is bound.
func Banner() string {
	return fmt.Sprintf("Running on http://localhost:%d", Port)
}
