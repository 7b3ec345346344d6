package cmd

import (
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"strconv"

	"github.com/google/gops/agent"
	jfsutils "github.com/juicedata/juicefs/pkg/utils"
	"github.com/pkg/errors"
	"github.com/pyroscope-io/client/pyroscope"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var logger = jfsutils.GetLogger("loopsort")

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"debug"},
			Usage:   "enable debug log",
		},
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "show warning and errors only",
		},
		&cli.BoolFlag{
			Name:  "trace",
			Usage: "enable trace log",
		},
		&cli.BoolFlag{
			Name:  "no-color",
			Usage: "disable colors",
		},
		&cli.BoolFlag{
			Name:    "agent",
			EnvVars: []string{"LOOPSORT_AGENT"},
			Usage:   "start the pprof and gops agents on 127.0.0.1",
		},
		&cli.StringFlag{
			Name:    "pyroscope",
			EnvVars: []string{"LOOPSORT_PYROSCOPE"},
			Usage:   "pyroscope address",
		},
	}
}

func setup(c *cli.Context, n int) error {
	if c.NArg() > n {
		return errors.Errorf("%s takes at most %d arguments, got %d; usage: %s %s [command options] %s",
			c.Command.Name, n, c.NArg(), c.App.Name, c.Command.Name, c.Command.ArgsUsage)
	}

	if c.Bool("trace") {
		jfsutils.SetLogLevel(logrus.TraceLevel)
	} else if c.Bool("verbose") {
		jfsutils.SetLogLevel(logrus.DebugLevel)
	} else if c.Bool("quiet") {
		jfsutils.SetLogLevel(logrus.WarnLevel)
	} else {
		jfsutils.SetLogLevel(logrus.InfoLevel)
	}
	if c.Bool("no-color") {
		jfsutils.DisableLogColor()
	}

	if c.Bool("agent") {
		go func() {
			for port := 6060; port < 6100; port++ {
				_ = http.ListenAndServe(fmt.Sprintf("127.0.0.1:%d", port), nil)
			}
		}()
		go func() {
			for port := 6070; port < 6100; port++ {
				_ = agent.Listen(agent.Options{Addr: fmt.Sprintf("127.0.0.1:%d", port)})
			}
		}()
	}

	if c.IsSet("pyroscope") {
		tags := make(map[string]string)
		appName := fmt.Sprintf("%s.%s", c.App.Name, c.Command.Name)
		if hostname, err := os.Hostname(); err == nil {
			tags["hostname"] = hostname
		}
		tags["pid"] = strconv.Itoa(os.Getpid())
		tags["version"] = c.App.Version

		if _, err := pyroscope.Start(pyroscope.Config{
			ApplicationName: appName,
			ServerAddress:   c.String("pyroscope"),
			Logger:          logger,
			Tags:            tags,
			AuthToken:       os.Getenv("PYROSCOPE_AUTH_TOKEN"),
			ProfileTypes:    pyroscope.DefaultProfileTypes,
		}); err != nil {
			logger.Errorf("start pyroscope agent: %v", err)
		}
	}
	return nil
}
