package main

import (
	"log/slog"
	"os"

	"git.home.luguber.info/inful/hidldoc/cmd/hidldoc/commands"
	ferrors "git.home.luguber.info/inful/hidldoc/internal/foundation/errors"
	"git.home.luguber.info/inful/hidldoc/internal/version"
	"github.com/alecthomas/kong"
)

func main() {
	cli := &commands.CLI{}
	parser := kong.Must(cli,
		kong.Name("hidldoc"),
		kong.Description("Generate the HIDL reference index page and book table of contents"),
		kong.Vars{"version": version.String()},
		kong.UsageOnError(),
	)
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	if err := ctx.Run(&commands.Global{Logger: slog.Default(), Out: os.Stdout}, cli); err != nil {
		ferrors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
	}
}
