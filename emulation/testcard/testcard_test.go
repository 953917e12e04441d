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

package testcard_test

import (
	"slices"
	"testing"

	"github.com/romshots/romshots/cartridgeloader"
	"github.com/romshots/romshots/curated"
	"github.com/romshots/romshots/emulation"
	"github.com/romshots/romshots/emulation/testcard"
	"github.com/romshots/romshots/test"
)

func loadedCard(t *testing.T, data []byte) *testcard.Card {
	t.Helper()
	c := testcard.New()
	test.DemandSuccess(t, c.Init(emulation.NewHeadless("test.smc")))

	cl := cartridgeloader.NewLoader("test.smc")
	cl.Data = data
	test.DemandSuccess(t, c.Load(cl))
	return c
}

func step(c *testcard.Card, n int) {
	for range n {
		c.Step()
	}
}

func TestRegistered(t *testing.T) {
	core, err := emulation.NewCore(testcard.Name)
	test.DemandSuccess(t, err)
	_, ok := core.(*testcard.Card)
	test.ExpectSuccess(t, ok)
}

func TestLifecycleErrors(t *testing.T) {
	c := testcard.New()
	test.ExpectSuccess(t, curated.Is(c.Init(nil), testcard.NoDriver))
	test.ExpectSuccess(t, curated.Is(c.Load(cartridgeloader.Loader{}), testcard.NoDriver))

	test.DemandSuccess(t, c.Init(emulation.NewHeadless("")))
	test.ExpectSuccess(t, curated.Is(c.Load(cartridgeloader.NewLoader("x.smc")), testcard.NotLoaded))
	test.ExpectSuccess(t, c.Teardown())
}

func TestGeometry(t *testing.T) {
	c := loadedCard(t, []byte{1, 2, 3})
	f := c.Frame()
	test.ExpectEquality(t, f.Width, testcard.Width)
	test.ExpectEquality(t, f.Height, testcard.Height)
	test.ExpectEquality(t, f.Pitch, testcard.Width)
	test.ExpectEquality(t, len(f.Pix), testcard.Width*testcard.Height)
}

func TestBoot(t *testing.T) {
	c := loadedCard(t, []byte{1, 2, 3})
	step(c, testcard.BootSteps-1)
	for _, p := range c.Frame().Pix {
		if p != 0 {
			t.Fatalf("screen is not black during boot")
		}
	}

	step(c, 1)
	for _, p := range c.Frame().Pix {
		if p == 0 {
			t.Fatalf("screen has black pixels after boot")
		}
	}
}

func TestStaticAndTransition(t *testing.T) {
	c := loadedCard(t, []byte("static"))

	// the middle of the first scene is static
	step(c, testcard.BootSteps+testcard.TransitionSteps+10)
	a := slices.Clone(c.Frame().Pix)
	step(c, 10)
	test.ExpectSuccess(t, slices.Equal(a, c.Frame().Pix))

	// the start of the next scene is animated
	step(c, testcard.SceneSteps-testcard.TransitionSteps-20)
	a = slices.Clone(c.Frame().Pix)
	step(c, 1)
	test.ExpectFailure(t, slices.Equal(a, c.Frame().Pix))
}

func TestRepeatable(t *testing.T) {
	a := loadedCard(t, []byte("same data"))
	b := loadedCard(t, []byte("same data"))
	d := loadedCard(t, []byte("different data"))

	step(a, 500)
	step(b, 500)
	step(d, 500)

	test.ExpectSuccess(t, slices.Equal(a.Frame().Pix, b.Frame().Pix))
	test.ExpectFailure(t, slices.Equal(a.Frame().Pix, d.Frame().Pix))
}
