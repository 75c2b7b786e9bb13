package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// State is a small JSON key-value file that remembers local facts
// between invocations, like which player id was claimed in a game.
type State struct {
	path   string
	values map[string]string
}

// LoadState reads the state file, returning an empty state if the
// file does not exist yet
func LoadState(path string) (*State, error) {
	s := &State{
		path:   path,
		values: map[string]string{},
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, &s.values); err != nil {
		return nil, err
	}
	return s, nil
}

// Get returns the value for a key, or "" if unset
func (s *State) Get(key string) string {
	return s.values[key]
}

// Set stores a value and writes the state file
func (s *State) Set(key, value string) error {
	s.values[key] = value
	return s.save()
}

// Remove deletes a key and writes the state file
func (s *State) Remove(key string) error {
	delete(s.values, key)
	return s.save()
}

func (s *State) save() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0600)
}

// playerKey namespaces the remembered player id for a game
func playerKey(gameID string) string {
	return "player:" + gameID
}
