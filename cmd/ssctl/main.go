// Command ssctl drives the storefront from a terminal. It shares the durable
// session, cart, wishlist and compare state with the shell server.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"solarsavers/config"
	domainerrors "solarsavers/internal/domain/errors"
	"solarsavers/internal/domain/service"

	"github.com/pkg/errors"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// errUsage marks a malformed command line.
var errUsage = errors.New("usage error")

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr, config.New))
}

// run executes one command and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer, load func() (*config.Config, error)) int {
	if len(args) == 0 {
		printUsage(stderr)

		return exitUsage
	}

	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(stderr, "unknown command %q\n\n", args[0])
		printUsage(stderr)

		return exitUsage
	}

	cfg, err := load()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)

		return exitError
	}

	a, err := newApp(ctx, cfg, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)

		return exitError
	}
	defer a.close()

	err = cmd.run(ctx, a, args[1:], stdout)
	printNotices(stderr, a.toaster.Drain())

	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errUsage):
		fmt.Fprintf(stderr, "usage: ssctl %s\n", cmd.usage)

		return exitUsage
	default:
		fmt.Fprintf(stderr, "Error: %s\n", message(err))

		return exitError
	}
}

// message prefers the user-facing text of application errors.
func message(err error) string {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Error()
	}

	return err.Error()
}

func printNotices(w io.Writer, notices []service.Notice) {
	for _, n := range notices {
		mark := "*"
		switch n.Level {
		case service.NoticeSuccess:
			mark = "+"
		case service.NoticeError:
			mark = "!"
		}
		fmt.Fprintf(w, "%s %s\n", mark, n.Message)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: ssctl <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, name := range commandOrder {
		fmt.Fprintf(w, "  %-9s %s\n", name, commands[name].usage)
	}
}
