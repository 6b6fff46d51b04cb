package web

import (
	"errors"
	"flag"
	"net/http"
	"time"

	"pocketledger/internal/cli"
	"pocketledger/internal/config"
	"pocketledger/internal/logger"
	"pocketledger/internal/router"
	"pocketledger/internal/store"
)

type webCommand struct {
	addr string
}

func NewCommand() cli.Command {
	return &webCommand{}
}

func (c *webCommand) Description() string {
	return "Serves the expense tracker JSON API"
}

func (c *webCommand) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.addr, "addr", "", "listen address (overrides configuration)")
}

func (c *webCommand) Run(conf *config.Config, s *store.Store, log *logger.Logger) error {
	addr := conf.Addr
	if c.addr != "" {
		addr = c.addr
	}

	server := &http.Server{
		Addr:              addr,
		Handler:           router.New(s, log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Info("Listening", "addr", addr)

	err := server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
