package main

import (
	"context"
	"os"

	"github.com/gruntwork-io/text-tailor/cli"
	"github.com/gruntwork-io/text-tailor/internal/errors"
	"github.com/gruntwork-io/text-tailor/internal/os/signal"
	"github.com/gruntwork-io/text-tailor/options"
	"github.com/gruntwork-io/text-tailor/pkg/log"
)

// The main entrypoint for text-tailor
func main() {
	opts := options.NewTailorOptions()

	defer errors.Recover(checkForErrorsAndExit(opts.Logger))

	app := cli.NewApp(opts)

	ctx, stop := signal.NotifyContext(context.Background())

	err := app.RunContext(ctx, os.Args)

	stop()

	checkForErrorsAndExit(opts.Logger)(err)
}

// If there is an error, display it in the console and exit with a non-zero exit code. Otherwise, exit 0.
func checkForErrorsAndExit(logger log.Logger) func(error) {
	return func(err error) {
		if err == nil {
			os.Exit(0)
		}

		logger.Error(err.Error())

		if errStack := errors.ErrorStack(err); errStack != "" {
			logger.Trace(errStack)
		}

		os.Exit(errors.ExitCode(err))
	}
}
