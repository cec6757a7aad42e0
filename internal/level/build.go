package level

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/mrDIMAS/rusty-shooter/internal/game"
	"github.com/mrDIMAS/rusty-shooter/internal/game/nav"
	"github.com/mrDIMAS/rusty-shooter/internal/physics"
)

// Validate rejects documents the simulation cannot run. Errors here are
// configuration-fatal: the match never starts.
func (d *Document) Validate() error {
	if len(d.SpawnPoints) == 0 {
		return game.ErrNoSpawnPoints
	}
	weapons := d.weaponTable()
	for kind, def := range d.Weapons {
		if def.Kind != kind {
			return errors.Errorf("level: weapon %q declares mismatched kind %q", kind, def.Kind)
		}
	}
	for i, item := range d.Items {
		if !knownItem(weapons, item.Item) {
			return errors.Errorf("level: item %d has unknown kind %q", i, item.Item)
		}
	}
	for i, link := range d.NavLinks {
		if link[0] < 0 || link[0] >= len(d.NavNodes) || link[1] < 0 || link[1] >= len(d.NavNodes) {
			return errors.Errorf("level: nav link %d references missing node", i)
		}
	}
	if len(d.Bots) > 0 {
		if len(d.NavNodes) == 0 {
			return errors.New("level: bots declared but nav graph is empty")
		}
		if !d.buildNav().Connected() {
			return errors.New("level: nav graph is not connected")
		}
	}
	return nil
}

func knownItem(weapons game.WeaponTable, item game.ItemKind) bool {
	switch item {
	case game.ItemMedkit, game.ItemAmmo556, game.ItemAmmo762, game.ItemCells, game.ItemRockets:
		return true
	}
	_, ok := weapons.Get(game.WeaponKind(item))
	return ok
}

func (d *Document) buildNav() *nav.Graph {
	g := nav.NewGraph()
	for _, n := range d.NavNodes {
		g.AddNode(nav.Point{X: n.X, Y: n.Y, Z: n.Z})
	}
	for _, link := range d.NavLinks {
		g.Link(link[0], link[1], 0)
	}
	return g
}

// Build validates the document and compiles it into a runnable world. Bot
// actors declared in the document join before the first tick.
func (d *Document) Build(cfg game.Config, match game.MatchConfig) (*game.World, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	spawns := make([]game.SpawnPoint, len(d.SpawnPoints))
	for i, sp := range d.SpawnPoints {
		spawns[i] = game.SpawnPoint{Position: sp.Position, Yaw: sp.Yaw}
	}

	var triggers []*game.TriggerVolume
	for i, pad := range d.JumpPads {
		triggers = append(triggers, &game.TriggerVolume{
			ID:      fmt.Sprintf("pad-%d", i),
			Kind:    game.TriggerJumpPad,
			Center:  pad.Center,
			Extents: pad.Extents,
			Launch:  pad.Launch,
		})
	}
	for i, zone := range d.DeathZones {
		triggers = append(triggers, &game.TriggerVolume{
			ID:      fmt.Sprintf("zone-%d", i),
			Kind:    game.TriggerDeathZone,
			Center:  zone.Center,
			Extents: zone.Extents,
		})
	}
	for i, item := range d.Items {
		triggers = append(triggers, &game.TriggerVolume{
			ID:        fmt.Sprintf("item-%d", i),
			Kind:      game.TriggerItemPickup,
			Center:    item.Position,
			Extents:   game.Vec3{X: 0.5, Y: 0.5, Z: 0.5},
			Item:      item.Item,
			Cooldown:  item.Cooldown,
			Available: true,
		})
	}

	world, err := game.NewWorld(game.WorldParams{
		Level:    d.Name,
		Config:   cfg,
		Match:    match,
		Physics:  physics.NewSpace(d.Walls, d.FloorY),
		Nav:      d.buildNav(),
		Spawns:   spawns,
		Triggers: triggers,
		Weapons:  d.weaponTable(),
	})
	if err != nil {
		return nil, err
	}

	for i, bot := range d.Bots {
		name := bot.Name
		if name == "" {
			name = fmt.Sprintf("Bot %d", i+1)
		}
		id := fmt.Sprintf("bot-%d", i)
		if _, err := world.AddActor(id, name, game.ControllerBot, game.TeamNone); err != nil {
			return nil, errors.Wrapf(err, "level: join bot %s", id)
		}
	}
	return world, nil
}
