// cubelet - terminal Rubik's Cube simulator.
package main

import (
	"github.com/SeamusWaldron/cubelet/internal/cli"
)

func main() {
	cli.Execute()
}
