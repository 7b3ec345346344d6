package cmd

import (
	"github.com/urfave/cli/v2"
)

const version = "0.1.0"

func NewApp() *cli.App {
	return &cli.App{
		Name:                 "loopsort",
		Usage:                "in-place integer sorts that illustrate loop invariants",
		Version:              version,
		EnableBashCompletion: true,
		Flags:                globalFlags(),
		Commands: []*cli.Command{
			CmdInsertion(),
			CmdRevInsertion(),
			CmdLinear(),
			CmdCompare(),
		},
	}
}

// Main runs the app and logs a failing command's error.
func Main(args []string) error {
	err := NewApp().Run(args)
	if err != nil {
		logger.Error(err)
	}
	return err
}
