//go:build !ebiten

package app

import (
	"errors"
	"log"

	"github.com/Skepar/lychen/internal/life"
)

// ErrNoWindow is returned by RunWindow in builds without the ebiten tag.
var ErrNoWindow = errors.New("the window frontend requires building with the 'ebiten' tag")

// RunWindow reports that the GUI build tag is missing.
func RunWindow(*Config, *life.Model, *log.Logger) error {
	return ErrNoWindow
}
