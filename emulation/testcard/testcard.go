// This file is part of romshots.
//
// romshots is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// romshots is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with romshots.  If not, see <https://www.gnu.org/licenses/>.

// Package testcard is a stand-in emulation core. It does not execute the ROM
// but it behaves like a console running one: the screen is black while the
// machine boots, after which it cycles through scenes. Every scene opens with
// a short animated transition and then holds a static picture.
//
// The colours and tile size of the pictures are derived from the hash of the
// ROM data, so different ROMs produce different, but repeatable, output.
//
// The core registers itself with the emulation package as "testcard".
package testcard

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"

	"github.com/romshots/romshots/cartridgeloader"
	"github.com/romshots/romshots/curated"
	"github.com/romshots/romshots/display"
	"github.com/romshots/romshots/emulation"
)

// Name of the core in the emulation registry.
const Name = "testcard"

// Frame geometry.
const (
	Width  = 256
	Height = 224
)

// Timing of the picture, in steps.
const (
	BootSteps       = 120
	SceneSteps      = 300
	TransitionSteps = 40
)

// Sentinel error patterns.
const (
	NoDriver  = "testcard: no driver"
	NotLoaded = "testcard: ROM data has not been loaded (%s)"
)

func init() {
	if err := emulation.Register(Name, func() emulation.Core { return New() }); err != nil {
		panic(err)
	}
}

// Card implements the emulation.Core interface.
type Card struct {
	drv   emulation.Driver
	frame *display.Frame565

	palette [8]uint16
	tile    int

	// number of calls to Step() since Load()
	steps int
}

// New is the preferred method of initialisation for the Card type.
func New() *Card {
	return &Card{}
}

// Init implements the emulation.Core interface.
func (c *Card) Init(drv emulation.Driver) error {
	if drv == nil {
		return curated.Errorf(NoDriver)
	}
	c.drv = drv
	c.frame = display.NewFrame565(Width, Height, Width)

	// mode 7 is what the console hardware drivers ask for. the return value
	// doesn't matter because the testcard has no sound
	c.drv.OpenSoundDevice(7, true, 0)

	return nil
}

// Load implements the emulation.Core interface.
func (c *Card) Load(cl cartridgeloader.Loader) error {
	if c.drv == nil {
		return curated.Errorf(NoDriver)
	}
	if !cl.HasLoaded() {
		return curated.Errorf(NotLoaded, cl.Filename)
	}

	sum := sha1.Sum(cl.Data)
	for i := range c.palette {
		// setting the lowest bit of every field means no colour is ever zero
		c.palette[i] = binary.BigEndian.Uint16(sum[i*2:]) | 0x0821
	}
	c.tile = 8 << (sum[len(sum)-1] % 3)
	c.steps = 0

	c.drv.SetPalette()
	c.drv.Message(emulation.MessageInfo, 0, fmt.Sprintf("testcard: %s: %d bytes, %dpx tiles", cl.ShortName(), len(cl.Data), c.tile))

	return nil
}

// Step implements the emulation.Core interface.
func (c *Card) Step() {
	c.steps++

	c.drv.ProcessEvents()

	render, _ := c.drv.SyncSpeed()
	if !render {
		return
	}

	if !c.drv.InitUpdate() {
		return
	}
	c.render()
	c.drv.DeinitUpdate(Width, Height)
}

func (c *Card) render() {
	if c.steps < BootSteps {
		c.frame.Fill(0)
		return
	}

	t := c.steps - BootSteps
	scene := t / SceneSteps
	phase := t % SceneSteps

	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			var i int
			if phase < TransitionSteps {
				i = (x+y+phase*4)/c.tile + scene
			} else {
				i = x/c.tile + y/c.tile + scene
			}
			c.frame.Set(x, y, c.palette[i%len(c.palette)])
		}
	}
}

// Frame implements the emulation.Core interface.
func (c *Card) Frame() *display.Frame565 {
	return c.frame
}

// Teardown implements the emulation.Core interface.
func (c *Card) Teardown() error {
	c.drv = nil
	c.frame = nil
	return nil
}
