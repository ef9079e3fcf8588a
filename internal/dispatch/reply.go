package dispatch

import "context"

// Button is one inline-keyboard button: a visible label plus the opaque
// data token delivered back when the user presses it.
type Button struct {
	Label string
	Data  string
}

// Keyboard is a grid of buttons, one row per inner slice.
type Keyboard [][]Button

// Reply is the presentation model for one outbound message. The transport
// adapter renders it; the core never touches transport types. Exactly one
// of Text or PhotoRef is set.
type Reply struct {
	Text     string
	Keyboard Keyboard
	PhotoRef string
}

// Sender delivers replies to a user. Implemented by the transport
// adapter; faked in tests.
type Sender interface {
	Send(ctx context.Context, userID int64, reply Reply) error
}

func textReply(text string) Reply {
	return Reply{Text: text}
}

func menuReply(text string, keyboard Keyboard) Reply {
	return Reply{Text: text, Keyboard: keyboard}
}

func photoReply(ref string) Reply {
	return Reply{PhotoRef: ref}
}
