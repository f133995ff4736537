package prefabs

import (
	"fmt"
	"strings"
)

// Store holds the most recently loaded prefab specs. A failed reload keeps
// the previous value.
type Store struct {
	game    *GameSpec
	sounds  *SoundSpec
	sprites *SpriteSheetSpec
	version int
}

// NewStore loads every prefab the game needs.
func NewStore() (*Store, error) {
	game, err := LoadGameSpec()
	if err != nil {
		return nil, err
	}
	sounds, err := LoadSoundSpec()
	if err != nil {
		return nil, err
	}
	sprites, err := LoadSpriteSheetSpec()
	if err != nil {
		return nil, err
	}
	return &Store{game: game, sounds: sounds, sprites: sprites}, nil
}

// NewStoreFrom wraps already loaded specs.
func NewStoreFrom(game *GameSpec, sounds *SoundSpec, sprites *SpriteSheetSpec) *Store {
	return &Store{game: game, sounds: sounds, sprites: sprites}
}

func (s *Store) Game() *GameSpec           { return s.game }
func (s *Store) Sounds() *SoundSpec        { return s.sounds }
func (s *Store) Sprites() *SpriteSheetSpec { return s.sprites }

// Version increases every time a reload succeeds.
func (s *Store) Version() int { return s.version }

// Reload re-reads the prefab called name, as reported by Watcher.
func (s *Store) Reload(name string) error {
	switch clean := prefabName(name); {
	case clean == "game.yaml":
		game, err := LoadGameSpec()
		if err != nil {
			return err
		}
		s.game = game
	case clean == "sounds.yaml":
		sounds, err := LoadSoundSpec()
		if err != nil {
			return err
		}
		s.sounds = sounds
	case clean == "sprites.yaml":
		sprites, err := LoadSpriteSheetSpec()
		if err != nil {
			return err
		}
		s.sprites = sprites
	case strings.HasPrefix(clean, "scripts/"):
		// Scripts are read again when the next session compiles its rules.
	default:
		return fmt.Errorf("prefabs: reload %s: not a known prefab", name)
	}
	s.version++
	return nil
}
