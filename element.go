// Package arcadetools provides small building blocks shared by 2D arcade-style
// games built on raylib. It stays out of the game loop on purpose: nothing
// here renders, integrates physics, resolves collisions, or reads input.
package arcadetools

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// GameElement represents a single visible, usually movable, object on the
// screen: a player avatar, a projectile, an obstacle, a pickup.
//
// The element holds its geometry in the Rect field rather than extending the
// raylib rectangle, so all position and size access goes through Rect
// explicitly (element.Rect.X, never element.X). Accessors below are thin
// conveniences over that one field; there is no second copy of the geometry.
type GameElement struct {
	// Rect is the element's position and size in pixels. X, Y is the
	// top-left corner relative to the top-left of the window. Rect is a
	// plain value: mutate its fields in place or replace it wholesale,
	// both take effect immediately.
	Rect rl.Rectangle

	// Velocity is the element's velocity in pixels per second, with
	// positive X pointing right and positive Y pointing down. The element
	// never moves itself; the hosting game decides when and how to apply
	// the velocity in its update loop.
	Velocity rl.Vector2

	// Collidable marks the element as a participant in the hosting game's
	// collision checks. Decorative elements set it to false.
	Collidable bool
}

// NewGameElement creates an element with its top-left corner at (x, y) and
// the given dimensions. Values are stored exactly as passed, zero and
// negative sizes included. Velocity starts at zero and Collidable starts
// true.
func NewGameElement(x, y, width, height float32) *GameElement {
	return &GameElement{
		Rect:       rl.Rectangle{X: x, Y: y, Width: width, Height: height},
		Collidable: true,
	}
}

// NewGameElementRec creates an element from an existing rectangle.
func NewGameElementRec(rec rl.Rectangle) *GameElement {
	return &GameElement{Rect: rec, Collidable: true}
}

// Position returns the top-left corner of the element.
func (e *GameElement) Position() (x, y float32) {
	return e.Rect.X, e.Rect.Y
}

// SetPosition moves the top-left corner of the element to (x, y).
func (e *GameElement) SetPosition(x, y float32) {
	e.Rect.X = x
	e.Rect.Y = y
}

// Size returns the width and height of the element.
func (e *GameElement) Size() (width, height float32) {
	return e.Rect.Width, e.Rect.Height
}

// SetSize resizes the element, keeping the top-left corner fixed.
func (e *GameElement) SetSize(width, height float32) {
	e.Rect.Width = width
	e.Rect.Height = height
}

// MoveBy shifts the element by (dx, dy).
func (e *GameElement) MoveBy(dx, dy float32) {
	e.Rect.X += dx
	e.Rect.Y += dy
}

// Right returns the x-coordinate of the right edge.
func (e *GameElement) Right() float32 {
	return e.Rect.X + e.Rect.Width
}

// Bottom returns the y-coordinate of the bottom edge.
func (e *GameElement) Bottom() float32 {
	return e.Rect.Y + e.Rect.Height
}

// Center returns the center point of the element.
func (e *GameElement) Center() rl.Vector2 {
	return rl.Vector2{X: e.Rect.X + e.Rect.Width/2, Y: e.Rect.Y + e.Rect.Height/2}
}

// SetCenter moves the element so its center lands on c.
func (e *GameElement) SetCenter(c rl.Vector2) {
	e.Rect.X = c.X - e.Rect.Width/2
	e.Rect.Y = c.Y - e.Rect.Height/2
}
