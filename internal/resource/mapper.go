package resource

import (
	"context"
	"fmt"
)

// Mapper caches the two remote name tables for the lifetime of one
// conversion run. A table whose fetch failed stays empty, so every lookup
// against it misses and the caller keeps the source name.
type Mapper struct {
	weapons    map[int]string
	characters map[int]string
}

func NewMapper() *Mapper {
	return &Mapper{
		weapons:    map[int]string{},
		characters: map[int]string{},
	}
}

// Load fetches both tables sequentially. Fetch errors are reported and
// swallowed.
func (m *Mapper) Load(ctx context.Context, client *Client) {
	weapons, err := client.FetchWeapons(ctx)
	if err != nil {
		fmt.Printf("weapon table fetch failed: %v\n", err)
	} else {
		m.weapons = weapons
		fmt.Printf("loaded %d weapon names\n", len(weapons))
	}

	characters, err := client.FetchCharacters(ctx)
	if err != nil {
		fmt.Printf("character table fetch failed: %v\n", err)
	} else {
		m.characters = characters
		fmt.Printf("loaded %d character names\n", len(characters))
	}
}

func (m *Mapper) Resolve(kind Kind, id int) (string, bool) {
	var name string
	switch kind {
	case KindWeapon:
		name = m.weapons[id]
	case KindCharacter:
		name = m.characters[id]
	}
	if name == "" {
		return "", false
	}
	return name, true
}

// NullResolver never resolves; every name falls through untranslated.
type NullResolver struct{}

func (NullResolver) Resolve(Kind, int) (string, bool) { return "", false }
