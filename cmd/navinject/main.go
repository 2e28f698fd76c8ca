package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/navinject/cmd/navinject/commands"
	"git.home.luguber.info/inful/navinject/internal/foundation/errors"
	"git.home.luguber.info/inful/navinject/internal/version"
)

func main() {
	cli := &commands.CLI{}
	global := &commands.Global{Stdout: os.Stdout}

	parser := kong.Parse(cli,
		kong.Name("navinject"),
		kong.Description("Add the Back/Forward/Reload navigation bar to FXML layout files."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
	)
	global.Logger = slog.Default()

	err := parser.Run(global, cli)
	errors.NewCLIErrorAdapter(cli.Verbose, global.Logger).HandleError(err)
}
