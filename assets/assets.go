package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/lafriks/go-tiled"
	"github.com/lafriks/go-tiled/render"
	"github.com/mossbit/grove/config"
)

var (
	//go:embed all:levels
	levelFS embed.FS

	//go:embed all:images
	imageFS embed.FS
)

type PlayerSpawn struct {
	X float64
	Y float64
}

type EnemySpawn struct {
	X float64
	Y float64
}

// WallRect is one solid collision tile from the walls layer.
type WallRect struct {
	X, Y, Width, Height float64
}

type Level struct {
	Background  *ebiten.Image
	Walls       []WallRect
	PlayerSpawn PlayerSpawn
	EnemySpawns []EnemySpawn
	Name        string
	Width       int
	Height      int
}

type LevelLoader struct{}

func NewLevelLoader() *LevelLoader {
	return &LevelLoader{}
}

// MustLoadLevel parses the embedded Tiled map: every non-empty tile of the
// "walls" layer becomes a collision rect, the "spawns" object layer carries
// the player and shade spawn points, and all tile layers are rendered into
// a single background image.
func (l *LevelLoader) MustLoadLevel(levelPath string) *Level {
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(levelFS))
	if err != nil {
		panic(err)
	}

	level := &Level{
		Walls:       []WallRect{},
		EnemySpawns: []EnemySpawn{},
		Name:        levelPath,
		Width:       levelMap.Width * levelMap.TileWidth,
		Height:      levelMap.Height * levelMap.TileHeight,
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)

	for _, layer := range levelMap.Layers {
		if layer.Name != "walls" {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}
				level.Walls = append(level.Walls, WallRect{
					X:      float64(x) * tileW,
					Y:      float64(y) * tileH,
					Width:  tileW,
					Height: tileH,
				})
			}
		}
		break
	}

	for _, og := range levelMap.ObjectGroups {
		if og.Name != "spawns" {
			continue
		}
		for _, o := range og.Objects {
			switch objectClass(o) {
			case "player_spawn":
				level.PlayerSpawn = PlayerSpawn{X: o.X, Y: o.Y}
			case "shade_spawn":
				level.EnemySpawns = append(level.EnemySpawns, EnemySpawn{X: o.X, Y: o.Y})
			}
		}
	}

	level.Background = renderBackground(levelMap)

	return level
}

// objectClass returns the Tiled class of an object, falling back to the
// legacy type attribute older maps use.
func objectClass(o *tiled.Object) string {
	if o.Class != "" {
		return o.Class
	}
	return o.Type //nolint:staticcheck // TMX uses type= attribute
}

func renderBackground(levelMap *tiled.Map) *ebiten.Image {
	background := ebiten.NewImage(levelMap.Width*levelMap.TileWidth, levelMap.Height*levelMap.TileHeight)

	renderer, err := render.NewRendererWithFileSystem(levelMap, levelFS)
	if err != nil {
		panic(fmt.Sprintf("Failed to create renderer: %v", err))
	}

	for i := range levelMap.Layers {
		if err := renderer.RenderLayer(i); err != nil {
			fmt.Printf("Warning: Failed to render layer %d: %v\n", i, err)
			continue
		}
	}

	layerImage := ebiten.NewImageFromImage(renderer.Result)
	background.DrawImage(layerImage, nil)
	layerImage.Deallocate()

	return background
}

type AnimationLoader struct {
	cache      map[string]*ebiten.Image
	frameCache map[string]*ebiten.Image
}

func NewAnimationLoader() *AnimationLoader {
	return &AnimationLoader{
		cache:      make(map[string]*ebiten.Image),
		frameCache: make(map[string]*ebiten.Image),
	}
}

func (l *AnimationLoader) MustLoadImage(path string) *ebiten.Image {
	if img, ok := l.cache[path]; ok {
		return img
	}

	imgBytes, err := imageFS.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("Failed to read image file %s: %v", path, err))
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		panic(fmt.Sprintf("Failed to create image from bytes for %s: %v", path, err))
	}

	l.cache[path] = img

	return img
}

// GetFrame returns a cached sub-image for a specific animation frame.
// This prevents creating duplicate *ebiten.Image structs for the same frame.
func (l *AnimationLoader) GetFrame(dir string, state config.StateID, frameIndex int, srcRect image.Rectangle) *ebiten.Image {
	key := fmt.Sprintf("%s/%s/%d", dir, state.String(), frameIndex)
	if img, ok := l.frameCache[key]; ok {
		return img
	}

	sheetPath := fmt.Sprintf("images/spritesheets/%s/%s.png", dir, state.String())
	sheet := l.MustLoadImage(sheetPath)

	frame := sheet.SubImage(srcRect).(*ebiten.Image)
	l.frameCache[key] = frame

	return frame
}

var animationLoader = NewAnimationLoader()

func GetSheet(dir string, state config.StateID) *ebiten.Image {
	path := fmt.Sprintf("images/spritesheets/%s/%s.png", dir, state.String())
	return animationLoader.MustLoadImage(path)
}

func GetFrame(dir string, state config.StateID, frameIndex int, srcRect image.Rectangle) *ebiten.Image {
	return animationLoader.GetFrame(dir, state, frameIndex, srcRect)
}

func GetObjectImage(name string) *ebiten.Image {
	path := fmt.Sprintf("images/objects/%s", name)
	return animationLoader.MustLoadImage(path)
}

func GetIconImage(name string) *ebiten.Image {
	path := fmt.Sprintf("images/icons/%s", name)
	return animationLoader.MustLoadImage(path)
}

// PreloadAllAnimations loads every configured sprite sheet up front to
// avoid lag on first render (important for WASM).
func PreloadAllAnimations() {
	for key, defs := range config.CharacterAnimations {
		for state := range defs {
			_ = GetSheet(key, state)
		}
	}
}
