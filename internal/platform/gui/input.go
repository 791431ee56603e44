package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// keyBindings maps keys to game actions in the order they are checked.
var keyBindings = []struct {
	keys   []ebiten.Key
	action core.Action
}{
	{[]ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeyK}, core.ActionUp},
	{[]ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS, ebiten.KeyJ}, core.ActionDown},
	{[]ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA, ebiten.KeyH}, core.ActionLeft},
	{[]ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD, ebiten.KeyL}, core.ActionRight},
	{[]ebiten.Key{ebiten.KeyP, ebiten.KeySpace}, core.ActionPause},
	{[]ebiten.Key{ebiten.KeyR}, core.ActionRestart},
}

// collectActions records every action whose key went down this frame.
// Keys pressed in the same frame are recorded in binding order.
func collectActions(frame *core.InputFrame) {
	for _, b := range keyBindings {
		for _, k := range b.keys {
			if inpututil.IsKeyJustPressed(k) {
				frame.Set(b.action)
				break
			}
		}
	}
}

func quitRequested() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

func debugToggled() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyG) || inpututil.IsKeyJustPressed(ebiten.KeyF3)
}
