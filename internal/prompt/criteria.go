package prompt

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/goliatone/go-hostelui/pkg/card"
	"github.com/goliatone/go-hostelui/pkg/filter"
)

// Choices are the categorical options offered by the select prompts.
type Choices struct {
	RoomTypes   []string
	HostelTypes []string
}

// ChoicesFromCards collects the distinct room and hostel types present on
// the page, sorted.
func ChoicesFromCards(cards []card.Card) Choices {
	rooms := map[string]struct{}{}
	hostels := map[string]struct{}{}
	for _, c := range cards {
		for _, rt := range c.Record.RoomTypes {
			rooms[rt] = struct{}{}
		}
		if c.Record.HostelType != "" {
			hostels[c.Record.HostelType] = struct{}{}
		}
	}
	return Choices{RoomTypes: sortedKeys(rooms), HostelTypes: sortedKeys(hostels)}
}

// AskCriteria walks the user through the four filter controls. Blank answers
// keep the permissive default.
func AskCriteria(ctx context.Context, driver Driver, choices Choices) (filter.Criteria, error) {
	if driver == nil {
		return filter.Criteria{}, errors.New("prompt: driver is nil")
	}
	c := filter.Unbounded()

	minScore, err := driver.Input(ctx, InputConfig{
		Message:   "Minimum match score",
		Default:   "0",
		Help:      "Cards scoring below this are hidden",
		Validator: optionalNumber,
	})
	if err != nil {
		return filter.Criteria{}, err
	}
	if v, ok := card.ParseInt(minScore); ok {
		c.MinScore = float64(v)
	}

	maxRent, err := driver.Input(ctx, InputConfig{
		Message:   "Maximum monthly rent",
		Help:      "Leave blank for no limit",
		Validator: optionalNumber,
	})
	if err != nil {
		return filter.Criteria{}, err
	}
	if v, ok := card.ParseInt(maxRent); ok && v != 0 {
		c = c.WithMaxRent(float64(v))
	}

	if c.RoomType, err = askOption(ctx, driver, "Room type", choices.RoomTypes); err != nil {
		return filter.Criteria{}, err
	}
	if c.HostelType, err = askOption(ctx, driver, "Hostel type", choices.HostelTypes); err != nil {
		return filter.Criteria{}, err
	}
	return c, nil
}

func askOption(ctx context.Context, driver Driver, message string, values []string) (string, error) {
	options := append([]string{filter.Any}, values...)
	idx, err := driver.Select(ctx, SelectConfig{Message: message, Options: options})
	if err != nil {
		return "", err
	}
	if idx <= 0 || idx >= len(options) {
		return filter.Any, nil
	}
	return options[idx], nil
}

func optionalNumber(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	if _, ok := card.ParseInt(raw); !ok {
		return errors.New("enter a whole number")
	}
	return nil
}

func sortedKeys(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
