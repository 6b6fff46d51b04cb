package exportcmd

import (
	"flag"
	"fmt"
	"io"
	"os"

	"pocketledger/internal/cli"
	"pocketledger/internal/config"
	"pocketledger/internal/csvio"
	"pocketledger/internal/logger"
	"pocketledger/internal/store"
)

type exportCommand struct {
	output string
}

func NewCommand() cli.Command {
	return &exportCommand{}
}

func (c *exportCommand) Description() string {
	return "Exports expenses to CSV"
}

func (c *exportCommand) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.output, "o", "", "output file (defaults to stdout)")
}

func (c *exportCommand) Run(_ *config.Config, s *store.Store, _ *logger.Logger) error {
	var writer io.Writer = os.Stdout
	if c.output != "" {
		file, err := os.Create(c.output)
		if err != nil {
			return fmt.Errorf("unable to create output file: %w", err)
		}
		defer file.Close()
		writer = file
	}

	snapshot := s.Snapshot()
	return csvio.Export(writer, snapshot.Expenses, snapshot.Categories)
}
