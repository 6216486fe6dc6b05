// Package registry holds the card and account registries the machine
// resolves against. Both are in-memory: nothing survives a restart.
package registry

import (
	"fmt"
	"sort"

	"github.com/DanielPopoola/atm-teller/internal/domain"
)

type Registry struct {
	accounts map[string]*domain.Account
	cards    map[string]*domain.Card
}

func New() *Registry {
	return &Registry{
		accounts: make(map[string]*domain.Account),
		cards:    make(map[string]*domain.Card),
	}
}

func (r *Registry) AddAccount(account *domain.Account) error {
	if _, ok := r.accounts[account.Number()]; ok {
		return domain.NewDuplicateAccountError(account.Number())
	}
	r.accounts[account.Number()] = account
	return nil
}

func (r *Registry) AddCard(card *domain.Card) error {
	if _, ok := r.cards[card.Number()]; ok {
		return domain.NewDuplicateCardError(card.Number())
	}
	r.cards[card.Number()] = card
	return nil
}

// Account satisfies machine.AccountLookup.
func (r *Registry) Account(number string) (*domain.Account, error) {
	account, ok := r.accounts[number]
	if !ok {
		return nil, domain.NewAccountNotFoundError(number)
	}
	return account, nil
}

func (r *Registry) Card(number string) (*domain.Card, error) {
	card, ok := r.cards[number]
	if !ok {
		return nil, domain.NewCardNotFoundError(number)
	}
	return card, nil
}

// CardNumbers lists registered card numbers, sorted, for harness menus.
func (r *Registry) CardNumbers() []string {
	numbers := make([]string, 0, len(r.cards))
	for n := range r.cards {
		numbers = append(numbers, n)
	}
	sort.Strings(numbers)
	return numbers
}

// Demo provisions the registry used when no seed file is configured: five
// accounts across the interesting balance range and one card each.
func Demo() *Registry {
	r := New()

	seed := []struct {
		account string
		balance int64
		card    string
		pin     string
	}{
		{"ACC001", 5000, "CARD001", "1111"},
		{"ACC002", 100, "CARD002", "2222"},
		{"ACC003", 0, "CARD003", "3333"},
		{"ACC004", 10000, "CARD004", "4444"},
		{"ACC005", 50, "CARD005", "5555"},
	}

	for _, s := range seed {
		account, err := domain.NewAccount(s.account, s.balance)
		if err != nil {
			panic(fmt.Sprintf("demo account %s: %v", s.account, err))
		}
		card, err := domain.NewCard(s.card, s.pin, s.account)
		if err != nil {
			panic(fmt.Sprintf("demo card %s: %v", s.card, err))
		}
		if err := r.AddAccount(account); err != nil {
			panic(err)
		}
		if err := r.AddCard(card); err != nil {
			panic(err)
		}
	}
	return r
}
