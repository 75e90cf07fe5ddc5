package main

import (
	"strings"

	"github.com/pkg/errors"

	"slither/game/types"
)

// actionToDirection converte l'indice di azione dell'agente in una direzione.
// Gli indici fuori intervallo ricadono su RIGHT.
func actionToDirection(action int) types.Direction {
	d := types.Direction(action)
	if !d.Valid() {
		return types.Right
	}
	return d
}

// directionToAction è l'inverso di actionToDirection.
func directionToAction(d types.Direction) int {
	return int(d)
}

// onOff è un flag che accetta solo "on" oppure "off".
type onOff bool

func (o *onOff) String() string {
	if o != nil && bool(*o) {
		return "on"
	}
	return "off"
}

func (o *onOff) Set(s string) error {
	switch strings.ToLower(s) {
	case "on":
		*o = true
	case "off":
		*o = false
	default:
		return errors.Errorf("expected on or off, got %q", s)
	}
	return nil
}
