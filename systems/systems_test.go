package systems

import (
	"os"
	"testing"

	"github.com/automoto/tilebrawl/components"
	cfg "github.com/automoto/tilebrawl/config"
	"github.com/automoto/tilebrawl/logger"
	"github.com/automoto/tilebrawl/shared/leveldata"
	"github.com/automoto/tilebrawl/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

type testWorld struct {
	ecs    *ecs.ECS
	level  *donburi.Entry
	player *donburi.Entry
	enemy  *donburi.Entry
}

// flatRoom is a walled box w×h tiles with the floor on the last row.
func flatRoom(w, h int) *leveldata.Room {
	return &leveldata.Room{
		Name:     "flat",
		Grid:     leveldata.MustTileGrid(leveldata.MakeRoomMap(w, h, leveldata.DefaultFloor, leveldata.DefaultWallTiles)),
		Solid:    leveldata.MakeSolidSet(leveldata.DefaultWallTiles),
		TileSize: 32,
	}
}

func newTestWorld(t *testing.T, room *leveldata.Room, playerX, enemyX float64) *testWorld {
	t.Helper()
	cfg.Reset()
	t.Cleanup(cfg.Reset)

	floorY := float64((room.Grid.Height()-1)*room.TileSize) - cfg.Player.CollisionHeight
	room.PlayerSpawn = leveldata.SpawnPoint{X: playerX, Y: floorY}
	room.EnemySpawn = leveldata.SpawnPoint{X: enemyX, Y: floorY}

	e := ecs.NewECS(donburi.NewWorld())
	level := factory.CreateLevel(e, room)
	return &testWorld{
		ecs:    e,
		level:  level,
		player: factory.CreatePlayer(e, room.PlayerSpawn),
		enemy:  factory.CreateEnemy(e, room.EnemySpawn, components.Level.Get(level).Space),
	}
}

func (w *testWorld) setDt(dt float64) {
	components.Match.Get(w.level).Dt = dt
}

// run executes fns as one tick with step dt.
func (w *testWorld) run(dt float64, fns ...func(*ecs.ECS)) {
	w.setDt(dt)
	for _, fn := range fns {
		fn(w.ecs)
	}
}

func (w *testWorld) events() int {
	return len(components.EventQueue.Get(w.level).Events)
}
