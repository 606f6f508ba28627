// Command boomer is the engine's entry point: it mounts the asset path
// given as the single positional CLI argument, loads the engine's
// persisted config and starting map, and runs the ebiten-backed frame
// loop (§6 "CLI: one positional argument").
//
// Grounded on the original engine's main(): FS_Init(asset_path) then
// FS_InitUserData("data") then Map_Load("test.json"), translated from a
// hand-rolled argv[1] check to github.com/urfave/cli/v2, which several of
// the reference repos in this corpus use for their own CLI entry points.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/qbradq/boomer/config"
	"github.com/qbradq/boomer/editor"
	"github.com/qbradq/boomer/ebitenplatform"
	"github.com/qbradq/boomer/entityrt"
	"github.com/qbradq/boomer/fsmount"
	"github.com/qbradq/boomer/input"
	"github.com/qbradq/boomer/render"
	"github.com/qbradq/boomer/texture"
	"github.com/qbradq/boomer/world"
	"github.com/urfave/cli/v2"
	"github.com/yohamta/donburi"
)

const defaultAssetPath = "games/demo"
const startMap = "test.json"

func main() {
	app := &cli.App{
		Name:      "boomer",
		Usage:     "run the Boomer portal engine against a mounted asset path",
		ArgsUsage: "<asset-path>",
		Action:    run,
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	assetPath := defaultAssetPath
	if c.Args().Len() > 0 {
		assetPath = c.Args().First()
	}

	mount, err := fsmount.Open(assetPath, "data")
	if err != nil {
		log.Printf("boomer: WARNING: could not mount %q: %v", assetPath, err)
	} else {
		log.Printf("boomer: mounted %q", assetPath)
	}
	defer mount.Close()

	cfg := config.Default()
	if data, ok := mount.ReadUserData("config.json"); ok {
		cfg = config.Load(data)
	}

	m := world.New()
	var seeds []world.EntitySeed
	if data, ok := mount.Read(startMap); ok {
		if loaded, loadedSeeds, lerr := world.LoadMap(data); lerr != nil {
			log.Printf("boomer: failed to load map %q: %v", startMap, lerr)
		} else {
			m = loaded
			seeds = loadedSeeds // spawned through the EntityRuntime once it is created below
		}
	} else {
		log.Printf("boomer: map %q not found, starting with an empty map", startMap)
	}

	cam := world.Camera{X: 2, Y: 2, Z: 1.5}

	rt := entityrt.New(donburi.NewWorld())
	for _, s := range seeds {
		rt.Spawn(s.ScriptPath, world.Point{X: s.X, Y: s.Y}, s.Z, s.Yaw)
	}
	ed := editor.New(m, rt, &cam, cfg.Bindings)

	plat := ebitenplatform.NewPlatform(cfg.LogicalResolution[0], cfg.LogicalResolution[1])
	store := ebitenplatform.NewStore(mount)
	for _, path := range m.Textures {
		if path != "" && store.Load(path) == texture.None {
			log.Printf("boomer: missing texture %q, falling back to gray", path)
		}
	}
	portal := &render.Portal{Store: store}
	fb := render.NewFramebuffer(cfg.LogicalResolution[0], cfg.LogicalResolution[1])

	editorActive := false
	driver := &ebitenplatform.Driver{
		Platform: plat,
		OnFrame: func(p *ebitenplatform.Platform) {
			if p.IsKeyPressed(editorToggleKey(cfg)) {
				editorActive = !editorActive
			}
			if editorActive {
				ed.Frame(p, editor.ToolSelect)
			}
			portal.Render(fb, m, cam)
			p.PresentFramebuffer(fb.Pixels, fb.Width, fb.Height)
		},
	}

	ebiten.SetWindowSize(cfg.LogicalResolution[0]*cfg.WindowSize, cfg.LogicalResolution[1]*cfg.WindowSize)
	ebiten.SetWindowTitle("Boomer")
	ebiten.SetFullscreen(cfg.Fullscreen)

	if err := ebiten.RunGame(driver); err != nil {
		return fmt.Errorf("boomer: run game: %w", err)
	}
	return nil
}

func editorToggleKey(cfg *config.Config) input.Key {
	keys := cfg.Bindings.Keys("toggle_editor")
	if len(keys) == 0 {
		return ebiten.KeyTab
	}
	return keys[0]
}
