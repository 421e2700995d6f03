package main

import (
	"fmt"
	"log"
	"net"
	"net/http"

	"github.com/manojlds/chennai-devops/internal/greeting"
)

var helloResp = []byte(greeting.Text)

func hello(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write(helloResp)
}

// "{$}" pins the match to "/" exactly; the mux answers 404 and 405 itself.
func newMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", hello)
	return mux
}

func main() {
	ln, err := net.Listen("tcp", greeting.Addr())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(greeting.Banner())
	log.Fatal(http.Serve(ln, newMux()))
}
