package main

import (
	"fmt"
	"log"
	"net"

	"github.com/valyala/fasthttp"

	"github.com/manojlds/chennai-devops/internal/greeting"
)

func hello(ctx *fasthttp.RequestCtx) {
	if string(ctx.Path()) != "/" {
		ctx.Error("Not Found", fasthttp.StatusNotFound)
		return
	}
	if !ctx.IsGet() {
		ctx.Response.Header.Set("Allow", fasthttp.MethodGet)
		ctx.Error("Method Not Allowed", fasthttp.StatusMethodNotAllowed)
		return
	}
	ctx.SetContentType("text/plain; charset=utf-8")
	ctx.WriteString(greeting.Text)
}

func main() {
	ln, err := net.Listen("tcp", greeting.Addr())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(greeting.Banner())
	log.Fatal(fasthttp.Serve(ln, hello))
}
