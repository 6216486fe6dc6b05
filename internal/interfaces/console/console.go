// Package console is the interactive harness: it reads intents line by line,
// drives the machine and prints the outcome notifications. It is the only
// place raw user input is captured.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/DanielPopoola/atm-teller/internal/domain"
	"github.com/DanielPopoola/atm-teller/internal/journal"
	"github.com/DanielPopoola/atm-teller/internal/machine"
	"github.com/DanielPopoola/atm-teller/internal/registry"
)

type Console struct {
	machine *machine.Machine
	cards   *registry.Registry
	journal *journal.Journal
	in      io.Reader
	out     io.Writer
	logger  *slog.Logger
}

func New(m *machine.Machine, cards *registry.Registry, j *journal.Journal, in io.Reader, out io.Writer, logger *slog.Logger) *Console {
	return &Console{
		machine: m,
		cards:   cards,
		journal: j,
		in:      in,
		out:     out,
		logger:  logger,
	}
}

// Run reads commands until EOF, quit, or context cancellation.
func (c *Console) Run(ctx context.Context) error {
	fmt.Fprintln(c.out, "ATM ready. Type 'help' for commands.")
	c.prompt()

	scanner := bufio.NewScanner(c.in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			c.prompt()
			continue
		}

		fields := strings.Fields(line)
		command, args := strings.ToLower(fields[0]), fields[1:]

		if command == "quit" || command == "exit" {
			fmt.Fprintln(c.out, "Goodbye.")
			return nil
		}

		c.dispatch(command, args)
		c.prompt()
	}
	return scanner.Err()
}

func (c *Console) prompt() {
	fmt.Fprintf(c.out, "[%s] > ", c.machine.State())
}

func (c *Console) dispatch(command string, args []string) {
	switch command {
	case "help":
		c.printHelp()
	case "cards":
		c.printCards()
	case "insert":
		c.insert(args)
	case "remove":
		c.report(c.machine.RemoveCard())
	case "select":
		c.selectOperation(args)
	case "confirm":
		c.confirm(args)
	case "state":
		fmt.Fprintf(c.out, "Current state: %s\n", c.machine.State())
	case "balance":
		c.printBalance()
	case "journal":
		c.printJournal()
	default:
		fmt.Fprintf(c.out, "Unknown command %q. Type 'help' for commands.\n", command)
	}
}

func (c *Console) insert(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage: insert <card-number>")
		return
	}
	card, err := c.cards.Card(args[0])
	if err != nil {
		c.printError(err)
		return
	}
	c.report(c.machine.InsertCard(card))
}

func (c *Console) selectOperation(args []string) {
	// From HasCard the machine only needs the nudge toward PIN entry; from
	// PinValidation onward an operation (and possibly a PIN) is expected.
	var op domain.Operation
	var pin string

	if len(args) > 0 {
		parsed, err := domain.ParseOperation(args[0])
		if err != nil {
			c.printError(err)
			return
		}
		op = parsed
	}
	if len(args) > 1 {
		pin = args[1]
	}

	c.report(c.machine.SelectOperation(op, pin))
}

func (c *Console) confirm(args []string) {
	var amount int64
	if len(args) > 0 {
		parsed, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fmt.Fprintf(c.out, "Not a valid amount: %q\n", args[0])
			return
		}
		amount = parsed
	}
	c.report(c.machine.ConfirmTransaction(amount))
}

func (c *Console) report(result *machine.Result, err error) {
	if err != nil {
		c.printError(err)
		return
	}

	switch result.Event {
	case machine.EventCardAccepted:
		fmt.Fprintln(c.out, "Card accepted.")
	case machine.EventCardEjected:
		fmt.Fprintln(c.out, "Card ejected.")
	case machine.EventSessionCancelled:
		fmt.Fprintln(c.out, "Session cancelled, card ejected.")
	case machine.EventPinRequested:
		fmt.Fprintln(c.out, "Enter your PIN with: select <withdraw|balance> <pin>")
	case machine.EventOperationChosen:
		fmt.Fprintln(c.out, "PIN accepted. Confirm the operation with: select <withdraw|balance>")
	case machine.EventTransactionReady:
		fmt.Fprintln(c.out, "Operation locked in. Run it with: confirm [amount]")
	case machine.EventBalanceReported:
		fmt.Fprintf(c.out, "Current balance: %d\n", result.Balance)
	case machine.EventCashDispensed:
		fmt.Fprintf(c.out, "Dispensed %s. New balance: %d\n", formatBundle(result.Dispensed), result.Balance)
	default:
		fmt.Fprintf(c.out, "%s\n", result.Event)
	}
}

func (c *Console) printError(err error) {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		fmt.Fprintf(c.out, "Declined: %s (%s)\n", domainErr.Message, domainErr.Code)
		return
	}
	fmt.Fprintf(c.out, "Error: %v\n", err)
}

func (c *Console) printBalance() {
	balance, ok := c.machine.Balance()
	if !ok {
		fmt.Fprintln(c.out, "No account loaded.")
		return
	}
	fmt.Fprintf(c.out, "Current balance: %d\n", balance)
}

func (c *Console) printCards() {
	numbers := c.cards.CardNumbers()
	if len(numbers) == 0 {
		fmt.Fprintln(c.out, "No cards registered.")
		return
	}
	fmt.Fprintf(c.out, "Registered cards: %s\n", strings.Join(numbers, ", "))
}

func (c *Console) printJournal() {
	entries := c.journal.Entries()
	if len(entries) == 0 {
		fmt.Fprintln(c.out, "No transactions recorded.")
		return
	}
	for _, e := range entries {
		fmt.Fprintf(c.out, "%s  %s  %-15s amount=%d balance=%d outcome=%s\n",
			e.Time.Format("15:04:05"), e.CardNumber, e.Operation, e.Amount, e.BalanceAfter, e.Outcome)
	}
}

func (c *Console) printHelp() {
	fmt.Fprint(c.out, `Commands:
  cards                         list registered card numbers
  insert <card-number>          insert a card
  remove                        eject the card / cancel the session
  select <withdraw|balance>     choose an operation (add your PIN when asked)
  confirm [amount]              execute the transaction
  state                         show the machine state
  balance                       show the loaded account balance
  journal                       show recorded transactions
  quit                          leave
`)
}

func formatBundle(b domain.Bundle) string {
	denominations := make([]domain.Denomination, 0, len(b))
	for d := range b {
		denominations = append(denominations, d)
	}
	sort.Slice(denominations, func(i, j int) bool { return denominations[i] > denominations[j] })

	parts := make([]string, 0, len(denominations))
	for _, d := range denominations {
		parts = append(parts, fmt.Sprintf("%dx%d", b[d], int64(d)))
	}
	return strings.Join(parts, " + ")
}
