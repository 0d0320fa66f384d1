// Package input turns raw terminal bytes into key-down and key-up events.
// Terminals only report presses, so a key counts as held until no press
// has been seen for the hold duration, then a key-up is emitted.
package input

import (
	"bufio"
	"context"
	"time"

	"github.com/tomz197/splitroids/internal/game"
)

// KeyHandler receives key transitions. *game.Game implements it.
type KeyHandler interface {
	HandleKey(key game.Key, down bool) bool
}

// Events reports what a Poll saw besides game keys.
type Events struct {
	Quit   bool // q or Ctrl-C was pressed
	Closed bool // The input reached EOF or failed
}

// keyCount covers every game.Key value.
const keyCount = int(game.KeyGuide) + 1

// Stream delivers input bytes via a channel and tracks which keys are held.
type Stream struct {
	ch     <-chan byte
	hold   time.Duration
	last   [keyCount]time.Time
	down   [keyCount]bool
	closed bool
	buf    []byte
}

// StartStream spawns a goroutine that reads from r until it fails or ctx
// is done, feeding a new Stream.
func StartStream(ctx context.Context, r *bufio.Reader, hold time.Duration) *Stream {
	ch := make(chan byte, 128)
	go func() {
		defer close(ch)
		for {
			b, err := r.ReadByte()
			if err != nil {
				return
			}
			select {
			case ch <- b:
			case <-ctx.Done():
				return
			}
		}
	}()
	return newStream(ch, hold)
}

func newStream(ch <-chan byte, hold time.Duration) *Stream {
	return &Stream{ch: ch, hold: hold}
}

// Poll drains every pending byte without blocking, sends key-down events
// for newly pressed keys and key-up events for keys whose hold expired.
func (s *Stream) Poll(now time.Time, h KeyHandler) Events {
	var ev Events
	s.buf = s.buf[:0]

drain:
	for !s.closed {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			s.buf = append(s.buf, b)
		default:
			break drain
		}
	}
	ev.Closed = s.closed

	buf := s.buf
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			if key := arrowKey(buf[i+2]); key != game.KeyUnknown {
				s.press(key, now, h)
				i += 2
				continue
			}
		}

		switch b {
		case 'q', 'Q', '\x03':
			ev.Quit = true
			continue
		}
		if key := byteKey(b); key != game.KeyUnknown {
			s.press(key, now, h)
		}
	}

	for k := range s.down {
		if s.down[k] && now.Sub(s.last[k]) >= s.hold {
			s.down[k] = false
			h.HandleKey(game.Key(k), false)
		}
	}
	return ev
}

// Held reports whether key is currently considered down.
func (s *Stream) Held(key game.Key) bool {
	return int(key) < keyCount && s.down[key]
}

func (s *Stream) press(key game.Key, now time.Time, h KeyHandler) {
	s.last[key] = now
	if !s.down[key] {
		s.down[key] = true
		h.HandleKey(key, true)
	}
}

func arrowKey(b byte) game.Key {
	switch b {
	case 'A':
		return game.KeyUp
	case 'B':
		return game.KeyDown
	case 'C':
		return game.KeyRight
	case 'D':
		return game.KeyLeft
	}
	return game.KeyUnknown
}

func byteKey(b byte) game.Key {
	switch b {
	case 'a', 'A', 'j', 'J':
		return game.KeyLeft
	case 'd', 'D', 'l', 'L':
		return game.KeyRight
	case 'w', 'W', 'i', 'I':
		return game.KeyUp
	case 's', 'S', 'k', 'K':
		return game.KeyDown
	case ' ':
		return game.KeySpace
	case 'g', 'G':
		return game.KeyGuide
	}
	return game.KeyUnknown
}
