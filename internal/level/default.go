package level

import (
	"github.com/mrDIMAS/rusty-shooter/internal/game"
	"github.com/mrDIMAS/rusty-shooter/internal/physics"
)

// Default returns the built-in arena used when no level file is configured:
// a square floor, a central pillar block, four spawn corners, a jump pad, a
// lava pit and a ring of pickups, all on a connected nav loop.
func Default() *Document {
	return &Document{
		Name:   "arena",
		FloorY: 0,
		SpawnPoints: []SpawnDecl{
			{Position: game.Vec3{X: -12, Z: -12}, Yaw: 0.785},
			{Position: game.Vec3{X: 12, Z: -12}, Yaw: 2.356},
			{Position: game.Vec3{X: 12, Z: 12}, Yaw: -2.356},
			{Position: game.Vec3{X: -12, Z: 12}, Yaw: -0.785},
		},
		Walls: []physics.AABB{
			{Min: game.Vec3{X: -2, Y: 0, Z: -2}, Max: game.Vec3{X: 2, Y: 3, Z: 2}},
			{Min: game.Vec3{X: -15, Y: 0, Z: -15.5}, Max: game.Vec3{X: 15, Y: 4, Z: -15}},
			{Min: game.Vec3{X: -15, Y: 0, Z: 15}, Max: game.Vec3{X: 15, Y: 4, Z: 15.5}},
			{Min: game.Vec3{X: -15.5, Y: 0, Z: -15}, Max: game.Vec3{X: -15, Y: 4, Z: 15}},
			{Min: game.Vec3{X: 15, Y: 0, Z: -15}, Max: game.Vec3{X: 15.5, Y: 4, Z: 15}},
		},
		JumpPads: []JumpPadDecl{
			{
				Center:  game.Vec3{X: 0, Y: 0.5, Z: -8},
				Extents: game.Vec3{X: 1, Y: 0.5, Z: 1},
				Launch:  game.Vec3{Y: 9, Z: 4},
			},
		},
		DeathZones: []ZoneDecl{
			{
				Center:  game.Vec3{X: 8, Y: 0.25, Z: 8},
				Extents: game.Vec3{X: 1.5, Y: 0.25, Z: 1.5},
			},
		},
		Items: []ItemDecl{
			{Item: game.ItemMedkit, Position: game.Vec3{X: 0, Z: 10}, Cooldown: 15},
			{Item: game.ItemMedkit, Position: game.Vec3{X: 0, Z: -10}, Cooldown: 15},
			{Item: game.ItemKind(game.WeaponAk47), Position: game.Vec3{X: -10, Z: 0}, Cooldown: 20},
			{Item: game.ItemKind(game.WeaponPlasma), Position: game.Vec3{X: 10, Z: 0}, Cooldown: 25},
			{Item: game.ItemKind(game.WeaponRocket), Position: game.Vec3{X: 0, Z: 4}, Cooldown: 30},
			{Item: game.ItemAmmo556, Position: game.Vec3{X: -6, Z: -6}, Cooldown: 10},
			{Item: game.ItemAmmo762, Position: game.Vec3{X: 6, Z: -6}, Cooldown: 10},
			{Item: game.ItemCells, Position: game.Vec3{X: 6, Z: 6}, Cooldown: 10},
		},
		NavNodes: []game.Vec3{
			{X: -10, Z: -10}, {X: 0, Z: -10}, {X: 10, Z: -10},
			{X: -10, Z: 0}, {X: 10, Z: 0},
			{X: -10, Z: 10}, {X: 0, Z: 10}, {X: 10, Z: 10},
			{X: 0, Z: 4}, {X: 0, Z: -4},
		},
		NavLinks: [][2]int{
			{0, 1}, {1, 2}, {0, 3}, {2, 4},
			{3, 5}, {4, 7}, {5, 6}, {6, 7},
			{6, 8}, {1, 9}, {8, 3}, {8, 4}, {9, 3}, {9, 4},
		},
		Bots: []BotDecl{
			{Name: "Raptor"}, {Name: "Ghost"}, {Name: "Havoc"},
		},
	}
}
