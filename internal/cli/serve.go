package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/julianstephens/koffee/internal/constants"
	"github.com/julianstephens/koffee/internal/server"
)

type ServeCmd struct {
	Addr string `help:"Address to listen on." default:"${serve_addr}"`
}

func (c *ServeCmd) Run(ctx *Context) error {
	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	handler := server.NewRouter(server.Options{
		Planner:   ctx.Planner,
		Beverages: ctx.Beverages,
	})
	return server.ListenAndServe(sigCtx, c.addr(), handler)
}

func (c *ServeCmd) addr() string {
	if c.Addr == "" {
		return constants.DefaultServeAddr
	}
	return c.Addr
}
