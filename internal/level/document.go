// Package level loads map documents: spawn points, wall geometry, trigger
// placements and the navigation graph, declared as JSON and compiled into a
// runnable world.
package level

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"github.com/mrDIMAS/rusty-shooter/internal/game"
	"github.com/mrDIMAS/rusty-shooter/internal/physics"
)

// Document is the on-disk level schema. Declaration order is meaningful for
// spawn points: the spawn selector breaks score ties by it.
type Document struct {
	Name        string         `json:"name"`
	FloorY      float64        `json:"floorY"`
	SpawnPoints []SpawnDecl    `json:"spawnPoints"`
	Walls       []physics.AABB `json:"walls"`
	JumpPads    []JumpPadDecl  `json:"jumpPads"`
	DeathZones  []ZoneDecl     `json:"deathZones"`
	Items       []ItemDecl     `json:"items"`
	NavNodes    []game.Vec3    `json:"navNodes"`
	NavLinks    [][2]int       `json:"navLinks"`
	Bots        []BotDecl      `json:"bots"`

	// Weapons optionally replaces the stock weapon table wholesale. Empty
	// keeps the defaults.
	Weapons game.WeaponTable `json:"weapons,omitempty"`
}

// weaponTable returns the effective table for this document.
func (d *Document) weaponTable() game.WeaponTable {
	if len(d.Weapons) > 0 {
		return d.Weapons
	}
	return game.DefaultWeaponTable()
}

// SpawnDecl places one spawn point.
type SpawnDecl struct {
	Position game.Vec3 `json:"position"`
	Yaw      float64   `json:"yaw"`
}

// JumpPadDecl places a launch volume.
type JumpPadDecl struct {
	Center  game.Vec3 `json:"center"`
	Extents game.Vec3 `json:"extents"`
	Launch  game.Vec3 `json:"launch"`
}

// ZoneDecl places a kill volume.
type ZoneDecl struct {
	Center  game.Vec3 `json:"center"`
	Extents game.Vec3 `json:"extents"`
}

// ItemDecl places a respawning pickup.
type ItemDecl struct {
	Item     game.ItemKind `json:"item"`
	Position game.Vec3     `json:"position"`
	Cooldown float64       `json:"cooldown"`
}

// BotDecl declares a bot that joins at match start.
type BotDecl struct {
	Name string `json:"name"`
}

// Parse decodes a level document from JSON.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "level: decode document")
	}
	return &doc, nil
}

// ReadFile loads and parses a level file.
func ReadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "level: read %s", path)
	}
	return Parse(data)
}
