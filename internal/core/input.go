package core

// Key identifies a key independently of the input technology. Input sources
// translate their native key codes into these values.
type Key uint8

const (
	KeyUnknown Key = iota
	KeySpace
	KeyEnter
	KeyEscape
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyF
	KeyS
	KeyD
	KeyQ
	KeyCtrlC
)

// EventKind enumerates the discrete input events the controller consumes.
type EventKind uint8

const (
	// EventQuit is a window close or terminal hangup.
	EventQuit EventKind = iota + 1
	// EventKeyDown carries Key and Repeat.
	EventKeyDown
	// EventPointerDown is a primary button press at pixel X, Y.
	EventPointerDown
	// EventPointerDrag is pointer motion at pixel X, Y with the primary
	// button held.
	EventPointerDrag
	// EventExpose means the frontend lost its contents and every cell must
	// be drawn again.
	EventExpose
)

// Event is one input event. Pointer coordinates are in the renderer's pixel
// space.
type Event struct {
	Kind   EventKind
	Key    Key
	Repeat bool
	X, Y   int
}
