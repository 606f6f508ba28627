package world

import (
	"encoding/json"
	"fmt"
)

// EntitySeed is one entity as described by a map file: enough to spawn it
// through EntityRuntime once the map is loaded. Map itself does not own
// entities (see §3 Lifecycle); the loader hands these back separately.
type EntitySeed struct {
	ScriptPath string
	X, Y, Z    float32
	Yaw        float32
}

type jsonWall struct {
	P1        int     `json:"p1"`
	P2        int     `json:"p2"`
	Portal    int     `json:"portal"`
	Tex       int     `json:"tex"`
	TopTex    *int    `json:"top_tex,omitempty"`
	BottomTex *int    `json:"bottom_tex,omitempty"`
}

type jsonSector struct {
	FloorHeight float32    `json:"floor_height"`
	CeilHeight  float32    `json:"ceil_height"`
	FloorTex    int        `json:"floor_tex"`
	CeilTex     int        `json:"ceil_tex"`
	Walls       []jsonWall `json:"walls"`
}

type jsonTexture struct {
	Path string `json:"path"`
}

type jsonEntity struct {
	Script string     `json:"script"`
	Pos    [3]float32 `json:"pos"`
	Yaw    float32    `json:"yaw,omitempty"`
}

type jsonMap struct {
	Points   [][2]float32  `json:"points"`
	Sectors  []jsonSector  `json:"sectors"`
	Textures []jsonTexture `json:"textures"`
	Entities []jsonEntity  `json:"entities"`
}

// LoadMap parses the Map JSON format described in §6 and returns the
// geometry plus the entity seeds the caller should spawn through
// EntityRuntime. A malformed document is reported as an error; the caller
// decides the §7 "JSON parse failure" fallback (keep the current map,
// log and move on).
func LoadMap(data []byte) (*Map, []EntitySeed, error) {
	var doc jsonMap
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("world: parse map json: %w", err)
	}

	m := &Map{
		Points:   make([]Point, len(doc.Points)),
		Textures: make([]string, len(doc.Textures)),
	}
	for i, p := range doc.Points {
		m.Points[i] = Point{X: p[0], Y: p[1]}
	}
	for i, t := range doc.Textures {
		m.Textures[i] = t.Path
	}

	m.Sectors = make([]Sector, len(doc.Sectors))
	var wallCursor int32
	for si, js := range doc.Sectors {
		m.Sectors[si] = Sector{
			FloorHeight: js.FloorHeight,
			CeilHeight:  js.CeilHeight,
			FloorTexture: int32(js.FloorTex),
			CeilTexture:  int32(js.CeilTex),
			FirstWall:   wallCursor,
			NumWalls:    int32(len(js.Walls)),
		}
		for _, jw := range js.Walls {
			w := Wall{
				P1:         int32(jw.P1),
				P2:         int32(jw.P2),
				NextSector: int32(jw.Portal),
				Texture:    int32(jw.Tex),
				TopTexture: NoTexture,
				BottomTexture: NoTexture,
			}
			if jw.TopTex != nil {
				w.TopTexture = int32(*jw.TopTex)
			}
			if jw.BottomTex != nil {
				w.BottomTexture = int32(*jw.BottomTex)
			}
			m.Walls = append(m.Walls, w)
		}
		wallCursor += int32(len(js.Walls))
	}

	seeds := make([]EntitySeed, len(doc.Entities))
	for i, e := range doc.Entities {
		seeds[i] = EntitySeed{
			ScriptPath: e.Script,
			X:          e.Pos[0],
			Y:          e.Pos[1],
			Z:          e.Pos[2],
			Yaw:        e.Yaw,
		}
	}

	return m, seeds, nil
}

// SaveMap serializes m and entities to the Map JSON format, the inverse of
// LoadMap, so that an edited map round-trips through the same format (§6).
func SaveMap(m *Map, entities []EntitySeed) ([]byte, error) {
	doc := jsonMap{
		Points:   make([][2]float32, len(m.Points)),
		Textures: make([]jsonTexture, len(m.Textures)),
		Entities: make([]jsonEntity, len(entities)),
	}
	for i, p := range m.Points {
		doc.Points[i] = [2]float32{p.X, p.Y}
	}
	for i, t := range m.Textures {
		doc.Textures[i] = jsonTexture{Path: t}
	}
	for i, e := range entities {
		doc.Entities[i] = jsonEntity{
			Script: e.ScriptPath,
			Pos:    [3]float32{e.X, e.Y, e.Z},
			Yaw:    e.Yaw,
		}
	}

	doc.Sectors = make([]jsonSector, len(m.Sectors))
	for si := range m.Sectors {
		s := &m.Sectors[si]
		start, end := s.WallRange()
		js := jsonSector{
			FloorHeight: s.FloorHeight,
			CeilHeight:  s.CeilHeight,
			FloorTex:    int(s.FloorTexture),
			CeilTex:     int(s.CeilTexture),
			Walls:       make([]jsonWall, 0, end-start),
		}
		for wi := start; wi < end && int(wi) < len(m.Walls); wi++ {
			w := &m.Walls[wi]
			top, bot := int(w.TopTexture), int(w.BottomTexture)
			js.Walls = append(js.Walls, jsonWall{
				P1:        int(w.P1),
				P2:        int(w.P2),
				Portal:    int(w.NextSector),
				Tex:       int(w.Texture),
				TopTex:    &top,
				BottomTex: &bot,
			})
		}
		doc.Sectors[si] = js
	}

	return json.MarshalIndent(&doc, "", "  ")
}
