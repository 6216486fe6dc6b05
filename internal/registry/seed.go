package registry

import (
	"fmt"

	"github.com/DanielPopoola/atm-teller/internal/domain"
	"github.com/go-playground/validator"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
)

type seedAccount struct {
	Number  string `koanf:"number" validate:"required"`
	Balance int64  `koanf:"balance" validate:"min=0"`
}

type seedCard struct {
	Number  string `koanf:"number" validate:"required"`
	PIN     string `koanf:"pin" validate:"required,len=4,numeric"`
	Account string `koanf:"account" validate:"required"`
}

type seedFile struct {
	Accounts []seedAccount `koanf:"accounts" validate:"required,dive"`
	Cards    []seedCard    `koanf:"cards" validate:"required,dive"`
}

// Load reads a YAML seed file of accounts and cards into a fresh registry.
// Every card must reference an account declared in the same file.
func Load(path string) (*Registry, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("loading seed file: %w", err)
	}

	var seed seedFile
	if err := k.Unmarshal("", &seed); err != nil {
		return nil, fmt.Errorf("parsing seed file: %w", err)
	}

	if err := validator.New().Struct(&seed); err != nil {
		return nil, fmt.Errorf("invalid seed file: %w", err)
	}

	r := New()
	for _, a := range seed.Accounts {
		account, err := domain.NewAccount(a.Number, a.Balance)
		if err != nil {
			return nil, fmt.Errorf("account %s: %w", a.Number, err)
		}
		if err := r.AddAccount(account); err != nil {
			return nil, err
		}
	}
	for _, c := range seed.Cards {
		if _, err := r.Account(c.Account); err != nil {
			return nil, fmt.Errorf("card %s: %w", c.Number, err)
		}
		card, err := domain.NewCard(c.Number, c.PIN, c.Account)
		if err != nil {
			return nil, fmt.Errorf("card %s: %w", c.Number, err)
		}
		if err := r.AddCard(card); err != nil {
			return nil, err
		}
	}
	return r, nil
}
