package main

import (
	"fmt"
	"io"
	"net"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/manojlds/chennai-devops/internal/greeting"
)

func hello(c echo.Context) error {
	return c.String(http.StatusOK, greeting.Text)
}

// newServer registers the only route. Anything else gets echo's default
// 404/405 handling.
func newServer() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.GET("/", hello)
	return e
}

func listen(addr string) (net.Listener, error) {
	return net.Listen("tcp", addr)
}

// serve prints the startup line to out and then blocks serving on ln until
// e is closed.
func serve(e *echo.Echo, ln net.Listener, out io.Writer) error {
	if _, err := fmt.Fprintln(out, greeting.Banner()); err != nil {
		return fmt.Errorf("write banner: %w", err)
	}
	e.Listener = ln
	return e.Start(ln.Addr().String())
}
