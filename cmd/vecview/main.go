package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/smasonuk/govec3"
)

const (
	screenWidth  = 640
	screenHeight = 480

	// Distance from the eye to the scene and the perspective strength.
	viewDistance = 6.0
	focalLength  = 400.0
)

type segment struct {
	from govec3.Vector3
	to   govec3.Vector3
	col  color.RGBA
}

type Game struct {
	v1, v2 govec3.Vector3
	angle  float64
}

func NewGame() *Game {
	g := &Game{
		v1: govec3.NewVector3(1, 2, 3),
		v2: govec3.NewVector3(4, 5, 6),
	}
	log.Println("vecview: showing v1, v2, v1+v2 and v1 cross v2")
	return g
}

func (g *Game) Update() error {
	g.angle += 0.01
	return nil
}

// project maps a scene point to screen coordinates with a simple perspective
// divide. The scene is scaled down so the fixed vectors fit the window.
func project(p govec3.Vector3) govec3.Vector2 {
	scaled := p.Mult(0.4)
	z := scaled.Z + viewDistance
	screen := govec3.NewVector2(scaled.X, -scaled.Y).Mult(focalLength / z)
	return screen.Add(govec3.NewVector2(screenWidth/2, screenHeight/2))
}

func DrawLine(screen *ebiten.Image, from, to govec3.Vector2, col color.Color) {
	vector.StrokeLine(screen, float32(from.X), float32(from.Y), float32(to.X), float32(to.Y), 1, col, true)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	origin := govec3.NewVector3(0, 0, 0)
	grey := color.RGBA{R: 90, G: 90, B: 90, A: 255}

	segments := []segment{
		{origin, govec3.NewVector3(4, 0, 0), grey},
		{origin, govec3.NewVector3(0, 4, 0), grey},
		{origin, govec3.NewVector3(0, 0, 4), grey},
		{origin, g.v1, color.RGBA{R: 255, G: 80, B: 80, A: 255}},
		{origin, g.v2, color.RGBA{R: 80, G: 255, B: 80, A: 255}},
		{origin, g.v1.Add(g.v2), color.RGBA{R: 80, G: 160, B: 255, A: 255}},
		{origin, g.v1.Cross(g.v2), color.RGBA{R: 255, G: 255, B: 80, A: 255}},
	}

	for _, s := range segments {
		from := project(govec3.RotateY(s.from, g.angle))
		to := project(govec3.RotateY(s.to, g.angle))
		DrawLine(screen, from, to, s.col)
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %0.2f", ebiten.ActualFPS()))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("vecview")
	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
