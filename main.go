package main

import (
	"os"

	"github.com/manojlds/chennai-devops/internal/greeting"
)

func main() {
	e := newServer()

	ln, err := listen(greeting.Addr())
	if err != nil {
		e.Logger.Fatal(err)
	}
	e.Logger.Fatal(serve(e, ln, os.Stdout))
}
