package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Command is a semantic input event. The set is closed: everything the
// keyboard can ask for is one of these.
type Command int

const (
	IncreaseSize Command = iota
	DecreaseSize
	SaveFrame
)

func (c Command) String() string {
	switch c {
	case IncreaseSize:
		return "increase-size"
	case DecreaseSize:
		return "decrease-size"
	case SaveFrame:
		return "save-frame"
	}
	return "unknown"
}

// pollCommands maps this tick's key presses to commands. Edge-triggered, so
// holding a key down does not repeat it.
func pollCommands() []Command {
	var cmds []Command

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		cmds = append(cmds, IncreaseSize)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		cmds = append(cmds, DecreaseSize)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		cmds = append(cmds, SaveFrame)
	}

	return cmds
}
