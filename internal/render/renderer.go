// Package render holds the backend-agnostic drawing surface and the per-frame
// sprite batch. Game code talks to these interfaces so the ebiten backend can
// be swapped out (or left out entirely, as headless replay does).
package render

import (
	"errors"
	"image"
	"image/color"
)

// ErrTerminate, returned from Game.Update, ends the loop without error.
var ErrTerminate = errors.New("terminate")

// Renderer creates images owned by the backend.
type Renderer interface {
	// NewImageFromImage uploads a decoded image as a texture.
	NewImageFromImage(src image.Image) Image
}

// Image represents a renderable image surface that can be drawn to or drawn from.
type Image interface {
	Size() (width, height int)
	Fill(clr color.Color)
	Clear()
	DrawTriangles(vertices []Vertex, indices []uint16, img Image, opts *DrawTrianglesOptions)
	Dispose()
}

// DrawTrianglesOptions contains options for drawing triangles.
type DrawTrianglesOptions struct {
	AntiAlias bool
}

// Vertex represents a vertex for triangle rendering in screen pixels.
type Vertex struct {
	DstX   float32
	DstY   float32
	SrcX   float32
	SrcY   float32
	ColorR float32
	ColorG float32
	ColorB float32
	ColorA float32
}

// InputManager handles input from the user.
type InputManager interface {
	IsKeyPressed(key Key) bool
	IsKeyJustPressed(key Key) bool
	// IsWindowClosing reports a close request from the window manager.
	IsWindowClosing() bool
}

// Key represents a keyboard key.
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyZ // Interact
	KeySpace
	KeyEnter
	KeyEscape
)

// Game represents the game interface that the engine will call.
type Game interface {
	// Update updates the game logic. It is called every tick (typically 60 times per second).
	Update() error

	// Draw draws the game screen. It is called every frame.
	Draw(screen Image)

	// Layout accepts the outside size (e.g., window size) and returns the logical screen size.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine represents the game engine that manages the game loop and window.
type Engine interface {
	SetWindowSize(width, height int)
	SetWindowTitle(title string)
	SetWindowResizable(resizable bool)

	// SetWindowClosingHandled routes close requests through IsWindowClosing
	// instead of ending the loop immediately.
	SetWindowClosingHandled(handled bool)

	// RunGame runs the game loop with the provided game.
	// This is a blocking call that runs until the game ends.
	RunGame(game Game) error
}
