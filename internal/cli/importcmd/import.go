package importcmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"pocketledger/internal/cli"
	"pocketledger/internal/config"
	"pocketledger/internal/csvio"
	"pocketledger/internal/logger"
	"pocketledger/internal/store"
)

type importCommand struct {
	file    string
	replace bool
}

func NewCommand() cli.Command {
	return &importCommand{}
}

func (c *importCommand) Description() string {
	return "Imports expenses from a CSV file"
}

func (c *importCommand) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.file, "f", "", "file to import")
	fs.BoolVar(&c.replace, "replace", false, "replace the existing expenses instead of appending")
}

func (c *importCommand) Run(_ *config.Config, s *store.Store, log *logger.Logger) error {
	if c.file == "" {
		return errors.New("you must provide a file to import")
	}

	file, err := os.Open(c.file)
	if err != nil {
		return err
	}
	defer file.Close()

	imported, err := csvio.Import(file, s.Categories())
	if err != nil {
		return fmt.Errorf("unable to import expenses: %w", err)
	}

	ctx := context.Background()
	if c.replace {
		s.SetExpenses(ctx, imported)
	} else {
		s.AppendExpenses(ctx, imported)
	}

	log.Info("Imported expenses", "file", c.file, "count", len(imported))
	fmt.Printf("Total expenses imported: %d\n", len(imported))

	return nil
}
