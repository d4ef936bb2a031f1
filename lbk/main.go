package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/rsharma/loanbook/cmd"
)

func main() {
	// A .env next to the book holds the optional Gemini key for lbk assist.
	godotenv.Load()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()

	// Unknown subcommands fall through to lbk-<name> extensions in PATH.
	if flag.NArg() > 0 {
		name := flag.Arg(0)
		if !known(commander, name) {
			if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
				os.Exit(code)
			}
		}
	}

	os.Exit(int(commander.Execute(context.Background())))
}

// known reports whether the commander has a command with that name.
func known(c *subcommands.Commander, name string) bool {
	found := false
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		if cmd.Name() == name {
			found = true
		}
	})
	return found
}
