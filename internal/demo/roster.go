package demo

import (
	"fmt"
	"os"

	"demokit/internal/person"
	"demokit/internal/strutil"

	"gopkg.in/yaml.v3"
)

// rosterEntry mirrors one YAML list item in a roster file.
type rosterEntry struct {
	Name  string `yaml:"name"`
	Age   int    `yaml:"age"`
	Email string `yaml:"email"`
}

// LoadRoster reads a YAML list of people. Entries must have a
// non-empty name; emails, when present, must look like emails.
func LoadRoster(path string) ([]person.Person, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster: %w", err)
	}

	var entries []rosterEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse roster: %w", err)
	}

	people := make([]person.Person, 0, len(entries))
	for i, e := range entries {
		if strutil.Trimmed(e.Name) == "" {
			return nil, fmt.Errorf("roster entry %d: name is required", i)
		}
		if e.Email != "" && !strutil.IsValidEmail(e.Email) {
			return nil, fmt.Errorf("roster entry %d: invalid email %q", i, e.Email)
		}
		if e.Email != "" {
			people = append(people, person.NewWithEmail(e.Name, e.Age, e.Email))
		} else {
			people = append(people, person.New(e.Name, e.Age))
		}
	}

	return people, nil
}
