package cli

import (
	"flag"

	"pocketledger/internal/config"
	"pocketledger/internal/logger"
	"pocketledger/internal/store"
)

type Command interface {
	SetFlags(fset *flag.FlagSet)
	Description() string
	Run(conf *config.Config, s *store.Store, logger *logger.Logger) error
}
