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

package capture

import (
	"image"

	"github.com/romshots/romshots/curated"
	"github.com/romshots/romshots/display"
	"github.com/romshots/romshots/emulation"
	"github.com/romshots/romshots/logger"
	"github.com/romshots/romshots/thumbnailer"
)

// Encoder writes the image for a capture index somewhere and returns the
// name it was written to.
type Encoder interface {
	Encode(img image.Image, index int) (string, error)
}

// NoFrame is returned by NewSession() if the core has no frame buffer.
const NoFrame = "capture: core has no frame buffer"

// Session is the state of a single capture run.
type Session struct {
	cfg  Config
	core emulation.Core
	enc  Encoder

	// the converted frame. the contents of the previous capture are still
	// present when the next capture is converted
	buffer *display.Converted

	record Record
}

// NewSession is the preferred method of initialisation for the Session type.
// The core should have been initialised and loaded. The geometry of the
// core's frame at this point is used for the life of the session.
func NewSession(cfg Config, core emulation.Core, enc Encoder) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	frame := core.Frame()
	if frame == nil {
		return nil, curated.Errorf(NoFrame)
	}

	return &Session{
		cfg:    cfg,
		core:   core,
		enc:    enc,
		buffer: display.NewConverted(frame.Width, frame.Height, frame.Pitch),
		record: newRecord(cfg.Captures),
	}, nil
}

// Config returns the configuration of the session.
func (s *Session) Config() Config {
	return s.cfg
}

// Record returns the record of captures.
func (s *Session) Record() Record {
	return s.record
}

// Buffer returns the converted frame buffer. After Run() it holds the last
// capture.
func (s *Session) Buffer() *display.Converted {
	return s.buffer
}

func (s *Session) step(n int) {
	for range n {
		s.core.Step()
	}
}

// Run the emulation. The run always completes: encoding errors are logged and
// the next capture is made regardless.
func (s *Session) Run() {
	logger.Logf(logger.Allow, "capture", "%s", s.cfg)

	s.step(s.cfg.Warmup)

	for i := range s.record.captures {
		s.step(s.cfg.Interval)

		c := &s.record.captures[i]
		c.Score = s.buffer.Convert(s.core.Frame(), s.buffer.Width, s.buffer.Height)

		c.Filename, c.Err = s.enc.Encode(s.buffer, i)
		if c.Err != nil {
			logger.Logf(logger.Allow, "capture", "error writing screenshot %d: %v", i, c.Err)
			continue
		}

		logger.Logf(logger.Allow, "capture", "%s: %d repeat pixels", c.Filename, c.Score)
	}
}

// Recommend returns the index of the capture recommended as a thumbnail. The
// second return value is false if there is no recommendation.
func (s *Session) Recommend() (int, bool) {
	return thumbnailer.Select(s.record.Scores())
}
