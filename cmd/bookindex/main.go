package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/alnah/go-bookindex/internal/logging"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain dispatches to a command and returns the process exit code.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[1], args[2:]
	switch cmd {
	case "build":
		return runCommand(rest, env, parseBuildFlags, runBuild)
	case "search":
		return runCommand(rest, env, parseSearchFlags, runSearch)
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "go-bookindex %s\n", Version)
		return ExitSuccess
	case "help", "-h", "--help":
		return runHelp(rest, env)
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", cmd)
		printUsage(env.Stderr)
		return ExitUsage
	}
}

// commandFlags is implemented by every command's flag struct.
type commandFlags interface {
	commonOptions() *commonFlags
}

// runCommand parses flags, sets up logging and signal handling, runs the
// command and maps its error to an exit code.
func runCommand[F commandFlags](
	args []string,
	env *Environment,
	parse func([]string, *Environment) (F, []string, error),
	run func(context.Context, []string, F, *Environment) error,
) int {
	flags, positional, err := parse(args, env)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}

	common := flags.commonOptions()
	logging.Setup(env.Stderr, common.verbose, common.quiet)
	defer logging.Reset()
	setMaxProcs()

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := run(ctx, positional, flags, env); err != nil {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// setMaxProcs matches GOMAXPROCS to the container CPU quota.
// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
// in which case Go runtime defaults apply and the program continues safely.
func setMaxProcs() {
	log := logging.For("runtime")
	_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
		log.Debug().Msgf(format, args...)
	}))
}
