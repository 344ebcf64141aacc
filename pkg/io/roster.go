package io

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/markup/pkg/core/color"
	"github.com/matzehuels/markup/pkg/core/layout"
	"github.com/matzehuels/markup/pkg/errors"
)

type rosterFile struct {
	Player []rosterPlayer `toml:"player"`
}

type rosterPlayer struct {
	Name  string `toml:"name"`
	Color string `toml:"color,omitempty"`
}

// ReadRoster decodes a TOML roster from r:
//
//	[[player]]
//	name = "Ann"
//	color = "red"
//
//	[[player]]
//	name = "Bob"
//	color = "#1976d2"
//
// Players are indexed in file order. A missing color falls back to the
// default palette entry for that index. ReadRoster does not close r.
func ReadRoster(r io.Reader) ([]layout.Player, error) {
	var rf rosterFile
	md, err := toml.NewDecoder(r).Decode(&rf)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRoster, err, "decode roster")
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidRoster, "unknown roster key %q", keys[0].String())
	}

	players := make([]layout.Player, len(rf.Player))
	for i, p := range rf.Player {
		if err := errors.ValidatePlayerName(p.Name); err != nil {
			return nil, fmt.Errorf("player %d: %w", i, err)
		}
		c := color.PlayerColor(i)
		if p.Color != "" {
			if c, err = color.Parse(p.Color); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidRoster, err, "player %d (%s)", i, p.Name)
			}
		}
		players[i] = layout.Player{Name: p.Name, Color: c}
	}
	return players, nil
}

// ImportRoster reads a TOML roster from the file at path.
func ImportRoster(path string) ([]layout.Player, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	players, err := ReadRoster(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return players, nil
}

// WriteRoster encodes players as a TOML roster. Colors matching a named
// color are written by name, others as hex.
func WriteRoster(w io.Writer, players []layout.Player) error {
	rf := rosterFile{Player: make([]rosterPlayer, len(players))}
	for i, p := range players {
		name := p.Color.Hex()
		if n := color.Nearest(p.Color); n.Color == p.Color {
			name = n.Name
		}
		rf.Player[i] = rosterPlayer{Name: p.Name, Color: name}
	}
	if err := toml.NewEncoder(w).Encode(rf); err != nil {
		return fmt.Errorf("encode roster: %w", err)
	}
	return nil
}
