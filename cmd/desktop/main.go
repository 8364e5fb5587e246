package main

import (
	"fmt"
	"image/color"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"gobf/pkg/iodev"
	"gobf/pkg/lexer"
	"gobf/pkg/machine"
)

const (
	gridCols   = 16
	gridRows   = 16
	cellWidth  = 24
	cellHeight = 16
	gridLeft   = 16
	gridTop    = 32

	consoleTop   = gridTop + gridRows*cellHeight + 16
	consoleLines = 8

	// Instructions dispatched per frame; at 60 fps this gives a rough
	// 600 kHz machine, plenty for interactive programs.
	stepsPerFrame = 10000
)

const snapshotPath = "gobf_snapshot.sav"

var face = text.NewGoXFace(basicfont.Face7x13)

type Game struct {
	vm      *machine.Machine
	keys    *iodev.KeyBuffer
	console *iodev.Console
}

func (g *Game) Update() error {
	for _, r := range ebiten.AppendInputChars(nil) {
		if r <= 0xFF {
			g.keys.Push(byte(r))
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.keys.Push(10) // ASCII newline
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		g.keys.Push(8) // ASCII backspace
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		g.saveSnapshot()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.loadSnapshot()
	}

	for i := 0; i < stepsPerFrame; i++ {
		if g.vm.Done() {
			break
		}
		g.vm.Step()
	}

	return nil
}

func (g *Game) saveSnapshot() {
	f, err := os.Create(snapshotPath)
	if err != nil {
		log.Printf("snapshot save failed: %v", err)
		return
	}
	defer f.Close()
	if err := g.vm.SaveState(f); err != nil {
		log.Printf("snapshot save failed: %v", err)
	}
}

func (g *Game) loadSnapshot() {
	f, err := os.Open(snapshotPath)
	if err != nil {
		log.Printf("snapshot load failed: %v", err)
		return
	}
	defer f.Close()
	if err := g.vm.RestoreState(f); err != nil {
		log.Printf("snapshot load failed: %v", err)
	}
}

func drawText(screen *ebiten.Image, s string, x, y int, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}

func (g *Game) Draw(screen *ebiten.Image) {
	// The grid shows the 256-cell page the pointer currently sits on.
	pageSize := gridCols * gridRows
	page := g.vm.Pointer / pageSize
	base := page * pageSize

	status := fmt.Sprintf("ptr 0x%04X  pc %d/%d  actions %d  page %d",
		g.vm.Pointer, g.vm.PC, len(g.vm.Program()), g.vm.Actions, page)
	if g.vm.Done() {
		status += "  [done]"
	}
	ebitenutil.DebugPrintAt(screen, status, gridLeft, 8)

	for i := 0; i < pageSize; i++ {
		addr := base + i
		if addr >= len(g.vm.Tape) {
			break
		}
		x := gridLeft + (i%gridCols)*cellWidth
		y := gridTop + (i/gridCols)*cellHeight

		clr := color.Color(color.White)
		s := fmt.Sprintf("%02X", g.vm.Tape[addr])
		if addr == g.vm.Pointer {
			clr = color.RGBA{R: 0xFF, G: 0xD7, B: 0x00, A: 0xFF}
			s = "[" + s + "]"
			x -= 7 // keep the hex digits column-aligned despite the brackets
		}
		drawText(screen, s, x, y, clr)
	}

	lines := g.console.Lines()
	if len(lines) > consoleLines {
		lines = lines[len(lines)-consoleLines:]
	}
	for i, line := range lines {
		drawText(screen, line, gridLeft, consoleTop+i*cellHeight, color.RGBA{G: 0xFF, A: 0xFF})
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return gridLeft*2 + gridCols*cellWidth, consoleTop + consoleLines*cellHeight + 16
}

func main() {
	if len(os.Args) < 2 {
		log.Fatalf("usage: desktop program.bf")
	}
	filename := os.Args[1]

	sourceBytes, err := os.ReadFile(filename)
	if err != nil {
		log.Fatalf("Failed to read source file: %v", err)
	}

	prog := lexer.Parse(string(sourceBytes), true)

	vm := machine.New(30000)
	if err := vm.Load(prog); err != nil {
		log.Fatalf("Cannot run %s: %v", filename, err)
	}

	keys := &iodev.KeyBuffer{}
	console := iodev.NewConsole(iodev.DefaultConsoleCap)
	vm.Input = keys
	vm.Output = console

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(832, 960)
	ebiten.SetWindowTitle("gobf Desktop")

	game := &Game{vm: vm, keys: keys, console: console}
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
