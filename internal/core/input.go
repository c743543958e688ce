package core

import "fmt"

// Key identifies a keyboard key by the name the platform reports for it.
type Key string

// Keys the game reacts to. Anything else is ignored.
const (
	KeyUp    Key = "w"
	KeyLeft  Key = "a"
	KeyDown  Key = "s"
	KeyRight Key = "d"
	KeyFire  Key = " "
	KeyEsc   Key = "esc"
)

// Event is a single input notification delivered to the game for one tick.
// Concrete types are KeyPress, KeyRelease and Resize.
type Event interface {
	isEvent()
}

// KeyPress is sent when a key goes down.
type KeyPress struct {
	Key Key
}

// KeyRelease is sent when a key goes up.
type KeyRelease struct {
	Key Key
}

// Resize is sent when the terminal changes size.
type Resize struct {
	Width, Height int
}

func (KeyPress) isEvent()   {}
func (KeyRelease) isEvent() {}
func (Resize) isEvent()     {}

func (e KeyPress) String() string {
	return fmt.Sprintf("press(%q)", string(e.Key))
}

func (e KeyRelease) String() string {
	return fmt.Sprintf("release(%q)", string(e.Key))
}

func (e Resize) String() string {
	return fmt.Sprintf("resize(%dx%d)", e.Width, e.Height)
}
