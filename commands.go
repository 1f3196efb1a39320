package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"btd_party/internal/app"
	"btd_party/internal/domain/roster"
	"btd_party/internal/handler"
)

var errUsage = errors.New("usage: btd_party [flags] list | add <value> | remove <index> | clear | party <defense> | parties <defense> | serve")

// runCommand executes one roster command against svc, writing results to out.
// serve is handled by main since it owns the process lifetime.
func runCommand(ctx context.Context, svc handler.RosterManager, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	command, rest := args[0], args[1:]
	switch command {
	case "list":
		printRoster(out, svc.List())
		return nil

	case "add":
		if len(rest) != 1 {
			return errUsage
		}
		survivors, err := svc.AddSurvivor(ctx, rest[0])
		if err != nil {
			return err
		}
		printRoster(out, survivors)
		return nil

	case "remove":
		if len(rest) != 1 {
			return errUsage
		}
		index, err := strconv.Atoi(rest[0])
		if err != nil {
			return fmt.Errorf("index %q is not an integer", rest[0])
		}
		survivors, err := svc.RemoveSurvivor(ctx, index)
		if err != nil {
			return err
		}
		printRoster(out, survivors)
		return nil

	case "clear":
		if err := svc.Clear(ctx); err != nil {
			return err
		}
		fmt.Fprintln(out, "roster cleared")
		return nil

	case "party":
		if len(rest) != 1 {
			return errUsage
		}
		printReport(out, svc.CalculateParty(rest[0]))
		return nil

	case "parties":
		if len(rest) != 1 {
			return errUsage
		}
		defense, parties := svc.QualifyingParties(rest[0])
		if len(parties) == 0 {
			fmt.Fprintf(out, "no party can beat defense %d\n", defense)
			return nil
		}
		fmt.Fprintf(out, "Defense: %d\n", defense)
		for _, p := range parties {
			fmt.Fprintf(out, "%d: %s\n", p.PartyAttack, joinAttacks(p.Survivors))
		}
		return nil
	}

	return fmt.Errorf("unknown command %q: %w", command, errUsage)
}

func printRoster(out io.Writer, survivors []app.Survivor) {
	if len(survivors) == 0 {
		fmt.Fprintln(out, "roster is empty")
		return
	}
	for i, s := range survivors {
		fmt.Fprintf(out, "%d: %d\n", i, s.Attack)
	}
	fmt.Fprintf(out, "Total attack: %d\n", roster.TotalAttack(survivors))
}

func printReport(out io.Writer, report app.PartyReport) {
	if !report.Found {
		fmt.Fprintf(out, "no party can beat defense %d\n", report.Defense)
		return
	}
	fmt.Fprintf(out, "Defense: %d\n", report.Defense)
	fmt.Fprintf(out, "Party attack: %d\n", report.PartyAttack)
	fmt.Fprintf(out, "Survivors: %s\n", joinAttacks(report.Survivors))
}

func joinAttacks(survivors []app.Survivor) string {
	parts := make([]string, len(survivors))
	for i, s := range survivors {
		parts[i] = strconv.Itoa(s.Attack)
	}
	return strings.Join(parts, ", ")
}
