package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"virtual-pet/internal/petclient"
	"virtual-pet/internal/platform/config"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		config.Exitf("petctl: %v", err)
	}
}

func run(ctx context.Context, argv []string, out io.Writer) error {
	fs := flag.NewFlagSet("petctl", flag.ContinueOnError)
	fs.SetOutput(out)
	addr := fs.String("addr", envOr("PETCTL_ADDR", "http://localhost:8080"), "base URL of the pet server")
	timeout := fs.Duration("timeout", 5*time.Second, "request timeout")
	limit := fs.Int("limit", 20, "max entries for the activity command")
	fs.Usage = func() { printUsage(fs, out) }

	if err := fs.Parse(argv); err != nil {
		return err
	}
	args := fs.Args()
	if len(args) == 0 {
		printUsage(fs, out)
		return errors.New("missing command")
	}

	c, err := petclient.New(*addr, *timeout)
	if err != nil {
		return err
	}

	var p petclient.Pet
	switch cmd := args[0]; cmd {
	case "show":
		p, err = c.Get(ctx)
	case "feed", "walk", "grow-up", "reset":
		p, err = c.Do(ctx, cmd)
	case "have-child":
		p, err = c.HaveChild(ctx)
	case "adopt":
		if len(args) < 2 {
			return errors.New("adopt needs a child name")
		}
		p, err = c.Adopt(ctx, strings.Join(args[1:], " "))
	case "rename":
		p, err = c.Rename(ctx, strings.Join(args[1:], " "))
	case "activity":
		entries, err := c.Activity(ctx, *limit)
		if err != nil {
			return err
		}
		printActivity(out, entries)
		return nil
	case "help":
		printUsage(fs, out)
		return nil
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	if err != nil {
		return err
	}

	printPet(out, p)
	return nil
}

func printPet(out io.Writer, p petclient.Pet) {
	name := p.Name
	if name == "" {
		name = "(unnamed)"
	}
	state := "Dead"
	if p.Alive {
		state = "Alive"
	}
	fmt.Fprintf(out, "%s is: %s\n", name, state)
	fmt.Fprintln(out, p.Status)
	if len(p.Children) > 0 {
		fmt.Fprintf(out, "Children: %s\n", strings.Join(p.Children, ", "))
	}
	if p.CanHaveChild {
		fmt.Fprintln(out, "Ready to have a child.")
	}
}

func printActivity(out io.Writer, entries []petclient.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(out, "no activity yet")
		return
	}
	for _, e := range entries {
		fmt.Fprintf(out, "%s  %-11s  Age: %d Hunger: %d Fitness: %d alive=%t\n",
			e.OccurredAt.Local().Format(time.TimeOnly), e.Action, e.Age, e.Hunger, e.Fitness, e.Alive)
	}
}

func printUsage(fs *flag.FlagSet, out io.Writer) {
	fmt.Fprintln(out, "Usage: petctl [flags] <command> [args]")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Commands:")
	fmt.Fprintln(out, "  show | feed | walk | grow-up | reset | have-child")
	fmt.Fprintln(out, "  adopt NAME | rename NAME | activity")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Flags:")
	fs.PrintDefaults()
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
