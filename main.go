package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"pocketledger/internal/cli"
	categoryCmd "pocketledger/internal/cli/category"
	"pocketledger/internal/cli/exportcmd"
	"pocketledger/internal/cli/importcmd"
	"pocketledger/internal/cli/report"
	"pocketledger/internal/cli/web"
	"pocketledger/internal/config"
	"pocketledger/internal/logger"
	"pocketledger/internal/storage/memory"
	"pocketledger/internal/storage/sqlite"
	"pocketledger/internal/store"
)

var configPath string

var subcommands = map[string]cli.Command{
	"web":      web.NewCommand(),
	"report":   report.NewCommand(),
	"import":   importcmd.NewCommand(),
	"export":   exportcmd.NewCommand(),
	"category": categoryCmd.NewCommand(),
}

var subcommandsFlagSets = map[string]*flag.FlagSet{}

func main() {
	if len(os.Args) < 2 {
		fmt.Printf("subcommand is required\n")
		printUsage()

		os.Exit(1)
	}

	// A .env file is optional; the environment wins either way.
	_ = godotenv.Load()

	for name, command := range subcommands {
		fset := flag.NewFlagSet(name, flag.ExitOnError)
		fset.StringVar(&configPath, "c", "pocketledger.toml", "Configuration file")

		command.SetFlags(fset)

		subcommandsFlagSets[name] = fset
	}

	commandName := os.Args[1]
	command, ok := subcommands[commandName]
	if !ok {
		if strings.Contains(commandName, "help") {
			printHelp()

			os.Exit(0)
		}

		fmt.Fprintf(os.Stderr, "unsupported command %s.\nUse 'help' to print information about supported commands\n", commandName)
		os.Exit(1)
	}

	if err := subcommandsFlagSets[commandName].Parse(os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "unable to parse command flags: %s\n", err.Error())
		os.Exit(1)
	}

	os.Exit(run(commandName, command))
}

// run executes the command and returns the process exit code. Storage is
// closed via defer so the handle is released on the error paths too.
func run(commandName string, command cli.Command) int {
	conf, err := config.Parse(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to parse the configuration: %s\n", err.Error())
		return 1
	}

	appLogger := logger.New(conf.Logger)

	documents, err := sqlite.New(conf.DB, appLogger)
	if err != nil {
		// Storage unavailability degrades to memory-only operation rather
		// than failing the command.
		appLogger.Warn("Unable to open database, running without persistence", "path", conf.DB, "error", err.Error())
		documents = memory.New()
	} else {
		appLogger.Info("Using database", "path", conf.DB)
	}
	defer func() {
		if err := documents.Close(); err != nil {
			appLogger.Error("Error closing storage", "error", err.Error())
		}
	}()

	stateStore, err := store.New(context.Background(), documents, appLogger)
	if err != nil {
		appLogger.Error("Unable to initialize state store", "error", err.Error())
		return 1
	}

	if err := command.Run(conf, stateStore, appLogger); err != nil {
		appLogger.Error("command failed", "command", commandName, "error", err.Error())
		return 1
	}

	return 0
}

func printHelp() {
	printUsage()

	for name, command := range subcommands {
		fmt.Printf("subcommand <%s>: %s\n", name, command.Description())
		subcommandsFlagSets[name].PrintDefaults()
		fmt.Println()
	}
}

func printUsage() {
	fmt.Printf("usage: pocketledger <subcommand> [flags]\n\n")
}
