package suite

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// ErrInvalidCase reports a case definition that cannot be run.
var ErrInvalidCase = errors.New("invalid case")

// Case is a single input with its expected selection. WantNone marks inputs
// for which no word must be found.
type Case struct {
	Name     string `toml:"name" json:"name"`
	Input    string `toml:"input" json:"input"`
	Expected string `toml:"expected" json:"expected,omitempty"`
	WantNone bool   `toml:"none" json:"none,omitempty"`
}

// Matches reports whether a selector result satisfies the case.
func (c Case) Matches(word string, found bool) bool {
	if c.WantNone {
		return !found
	}
	return found && word == c.Expected
}

// ExpectedLabel renders the expectation for reports.
func (c Case) ExpectedLabel() string {
	if c.WantNone {
		return NoneLabel
	}
	return c.Expected
}

// NoneLabel is shown wherever a result is absent.
const NoneLabel = "(none)"

// Builtin returns the fixed scenarios every bench run starts with.
func Builtin() []Case {
	return []Case{
		{
			Name:     "sentence",
			Input:    "smart people learn from everything and everyone, average people from their experience, stupid people already, have all the answers",
			Expected: "experience",
		},
		{Name: "empty input", Input: "", WantNone: true},
		{Name: "no valid words", Input: "123 *!#", WantNone: true},
		{
			Name:     "trailing symbols",
			Input:    "GandalfTheGrayUsingHisMagic!!",
			Expected: "gandalfthegrayusinghismagic",
		},
		{Name: "vowel tie break", Input: "apple banana cherry date", Expected: "banana"},
		{Name: "non english letters", Input: "ÇömpÜt3r PrÖgr@mm1ng", Expected: "prgrmmng"},
	}
}

type caseFile struct {
	Cases []Case `toml:"case"`
}

// LoadCases decodes [[case]] tables from a TOML file.
func LoadCases(path string) ([]Case, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open cases: %w", err)
	}
	defer file.Close()

	var parsed caseFile
	decoder := toml.NewDecoder(file)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&parsed); err != nil {
		return nil, fmt.Errorf("parse cases %s: %w", path, err)
	}
	for i := range parsed.Cases {
		if err := parsed.Cases[i].validate(); err != nil {
			return nil, fmt.Errorf("case %d in %s: %w", i+1, path, err)
		}
	}
	return parsed.Cases, nil
}

func (c *Case) validate() error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidCase)
	}
	if c.WantNone && c.Expected != "" {
		return fmt.Errorf("%w: %q sets both expected and none", ErrInvalidCase, c.Name)
	}
	if !c.WantNone && c.Expected == "" {
		return fmt.Errorf("%w: %q needs expected or none = true", ErrInvalidCase, c.Name)
	}
	return nil
}
