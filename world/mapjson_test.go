package world

import "testing"

const sampleMapJSON = `{
  "points": [[0,0],[4,0],[4,4],[0,4]],
  "sectors": [
    {
      "floor_height": 0, "ceil_height": 2,
      "floor_tex": -1, "ceil_tex": -1,
      "walls": [
        {"p1":0,"p2":1,"portal":-1,"tex":0},
        {"p1":1,"p2":2,"portal":-1,"tex":0},
        {"p1":2,"p2":3,"portal":-1,"tex":0},
        {"p1":3,"p2":0,"portal":-1,"tex":0}
      ]
    }
  ],
  "textures": [{"path":"wall.png"}],
  "entities": [{"script":"imp.lua","pos":[2,2,1],"yaw":0.5}]
}`

func TestLoadMapBasics(t *testing.T) {
	m, entities, err := LoadMap([]byte(sampleMapJSON))
	if err != nil {
		t.Fatalf("LoadMap: %v", err)
	}
	if len(m.Points) != 4 || len(m.Walls) != 4 || len(m.Sectors) != 1 {
		t.Fatalf("unexpected geometry sizes: %+v", m)
	}
	if m.Textures[0] != "wall.png" {
		t.Fatalf("texture path not loaded: %v", m.Textures)
	}
	if len(entities) != 1 || entities[0].ScriptPath != "imp.lua" {
		t.Fatalf("entity seed not loaded: %+v", entities)
	}
	if entities[0].Yaw != 0.5 {
		t.Fatalf("entity yaw = %v, want 0.5", entities[0].Yaw)
	}
	if m.Sectors[0].NumWalls != 4 || m.Sectors[0].FirstWall != 0 {
		t.Fatalf("sector wall range wrong: %+v", m.Sectors[0])
	}
}

func TestLoadMapParseFailure(t *testing.T) {
	_, _, err := LoadMap([]byte("not json"))
	if err == nil {
		t.Fatalf("expected parse error on malformed JSON")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	m, entities, err := LoadMap([]byte(sampleMapJSON))
	if err != nil {
		t.Fatalf("LoadMap: %v", err)
	}
	data, err := SaveMap(m, entities)
	if err != nil {
		t.Fatalf("SaveMap: %v", err)
	}
	m2, entities2, err := LoadMap(data)
	if err != nil {
		t.Fatalf("LoadMap(round-trip): %v", err)
	}
	if !m.Equal(m2) {
		t.Fatalf("round trip changed geometry: %+v vs %+v", m, m2)
	}
	if len(entities2) != len(entities) || entities2[0].ScriptPath != entities[0].ScriptPath {
		t.Fatalf("round trip changed entities: %+v vs %+v", entities, entities2)
	}
}
