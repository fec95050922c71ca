package leveldata

import (
	"errors"
	"fmt"
	"sort"
)

var ErrUnknownPrefab = errors.New("leveldata: unknown decor prefab")

// DecorPrefabs are the decor stamps of the bundled decor sheet.
var DecorPrefabs = map[string]DecorPrefab{
	"windowA": {ID: "windowA", Origin: "tl", Tiles: [][]int{{23, 24}, {30, 31}}},
	"windowB": {ID: "windowB", Origin: "tl", Tiles: [][]int{{25, 26}, {32, 33}}},
	"pillarA": {ID: "pillarA", Origin: "tl", Tiles: [][]int{{8}, {15}, {22}}},
	"pillarB": {ID: "pillarB", Origin: "tl", Tiles: [][]int{{8}, {15}, {29}}},
}

// DefaultObjects decorate the sample room.
var DefaultObjects = []MapObject{
	{ID: "winA", Kind: ObjectDecor, TX: 5, TY: 4.5, PrefabID: "windowA"},
	{ID: "winB", Kind: ObjectDecor, TX: 11, TY: 4.5, PrefabID: "windowB"},
	{ID: "winC", Kind: ObjectDecor, TX: 19, TY: 4.5, PrefabID: "windowA"},
	{ID: "pillarB", Kind: ObjectDecor, TX: 14.5, TY: 5, PrefabID: "pillarB"},
	{ID: "pillarC", Kind: ObjectDecor, TX: 16.5, TY: 5, PrefabID: "pillarA"},
	{ID: "doorA", Kind: ObjectDoor, TX: 20, TY: 8.05},
}

// ExpandPrefabs stamps every decor object's prefab into individual tiles,
// sorted by Z then row. Doors are skipped; they are drawn as sprites.
func ExpandPrefabs(objects []MapObject, prefabs map[string]DecorPrefab) ([]DecorTile, error) {
	var out []DecorTile
	for _, o := range objects {
		if o.Kind != ObjectDecor {
			continue
		}
		p, ok := prefabs[o.PrefabID]
		if !ok {
			return nil, fmt.Errorf("object %q prefab %q: %w", o.ID, o.PrefabID, ErrUnknownPrefab)
		}
		originY := o.TY
		if p.Origin == "bl" {
			originY = o.TY - float64(len(p.Tiles)-1)
		}
		for dy, row := range p.Tiles {
			for dx, id := range row {
				if id < 0 {
					continue
				}
				out = append(out, DecorTile{
					TX: o.TX + float64(dx),
					TY: originY + float64(dy),
					ID: id,
					Z:  o.Z,
				})
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Z != out[j].Z {
			return out[i].Z < out[j].Z
		}
		return out[i].TY < out[j].TY
	})
	return out, nil
}
