// Package assets holds the game's read-only artwork and sound cues.
// Sprites are YAML pixel maps and sounds are YAML tone descriptions, so both
// frontends (terminal and window) render from the same files.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"

	"gopkg.in/yaml.v3"
)

//go:embed sprites/*.yaml sfx/*.yaml
var files embed.FS

// SpriteID names a drawable image.
type SpriteID string

const (
	SpriteBackground SpriteID = "background"
	SpriteGround     SpriteID = "ground"
	SpriteBirdUp     SpriteID = "bird_up"
	SpriteBirdDown   SpriteID = "bird_down"
	SpritePipe       SpriteID = "pipe"     // lower obstacle, cap facing up
	SpritePipeTop    SpriteID = "pipe_top" // upper obstacle, derived by flipping SpritePipe
)

// Sound names a one-shot audio cue.
type Sound string

const (
	SoundFlap  Sound = "flap"
	SoundScore Sound = "score"
	SoundDead  Sound = "dead"
)

// spriteFiles lists the sprites loaded from disk, in load order.
var spriteFiles = []SpriteID{SpriteBackground, SpriteGround, SpriteBirdUp, SpriteBirdDown, SpritePipe}

// Sounds lists every cue the game can play.
var Sounds = []Sound{SoundFlap, SoundScore, SoundDead}

// ErrMissingAsset is returned when a required file is absent.
var ErrMissingAsset = errors.New("missing asset")

// Pack is the fully loaded, immutable asset set.
type Pack struct {
	sprites map[SpriteID]*Sprite
	sounds  map[Sound]Tone
}

// Sprite returns the sprite for id, or nil if unknown.
func (p *Pack) Sprite(id SpriteID) *Sprite {
	return p.sprites[id]
}

// Tone returns the tone for a sound cue.
func (p *Pack) Tone(s Sound) (Tone, bool) {
	t, ok := p.sounds[s]
	return t, ok
}

// SpriteIDs returns every sprite in a loaded pack, including derived ones.
func (p *Pack) SpriteIDs() []SpriteID {
	ids := make([]SpriteID, 0, len(spriteFiles)+1)
	ids = append(ids, spriteFiles...)
	return append(ids, SpritePipeTop)
}

// Default loads the embedded asset pack.
func Default() (*Pack, error) {
	return Load(files)
}

// Load reads every sprite and sound from fsys.
// Any missing or malformed file fails the whole load.
func Load(fsys fs.FS) (*Pack, error) {
	p := &Pack{
		sprites: make(map[SpriteID]*Sprite, len(spriteFiles)+1),
		sounds:  make(map[Sound]Tone, len(Sounds)),
	}

	for _, id := range spriteFiles {
		var def spriteDef
		if err := decodeFile(fsys, path.Join("sprites", string(id)+".yaml"), &def); err != nil {
			return nil, err
		}
		s, err := def.build()
		if err != nil {
			return nil, fmt.Errorf("assets: sprite %s: %w", id, err)
		}
		p.sprites[id] = s
	}
	p.sprites[SpritePipeTop] = p.sprites[SpritePipe].FlipV()

	for _, snd := range Sounds {
		var t Tone
		if err := decodeFile(fsys, path.Join("sfx", string(snd)+".yaml"), &t); err != nil {
			return nil, err
		}
		if err := t.validate(); err != nil {
			return nil, fmt.Errorf("assets: sound %s: %w", snd, err)
		}
		p.sounds[snd] = t
	}

	return p, nil
}

// decodeFile reads a YAML file strictly into v.
func decodeFile(fsys fs.FS, name string, v any) error {
	f, err := fsys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("assets: %w: %s", ErrMissingAsset, name)
		}
		return fmt.Errorf("assets: cannot open %s: %w", name, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("assets: cannot parse %s: %w", name, err)
	}
	return nil
}
