package game

// Key is a logical control key. Hosts map their own key codes onto these.
type Key int

const (
	KeyUnknown Key = iota
	KeyLeft        // Turn anticlockwise
	KeyRight       // Turn clockwise
	KeyUp          // Forward thrust
	KeyDown        // Reverse thrust
	KeySpace       // Fire, or restart after game over
	KeyGuide       // Toggle the debug overlay
)

// String returns the key name for logs.
func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeySpace:
		return "space"
	case KeyGuide:
		return "guide"
	default:
		return "unknown"
	}
}

// HandleKey applies a key-down (down=true) or key-up event to the control
// flags. The latest event for a key wins; nothing is queued. It returns
// false for keys the game does not use so hosts can pass them on.
func (g *Game) HandleKey(key Key, down bool) bool {
	switch key {
	case KeyLeft:
		g.Ship.LeftThruster = down
	case KeyRight:
		g.Ship.RightThruster = down
	case KeyUp:
		g.Ship.Thruster = down
	case KeyDown:
		g.Ship.Reverse = down
	case KeySpace:
		if g.GameOver {
			if down {
				g.Reset()
			}
		} else {
			g.Ship.Trigger = down
		}
	case KeyGuide:
		if down {
			g.Guide = !g.Guide
		}
	default:
		return false
	}
	return true
}
