package provider

import (
	"context"
	"fmt"
)

// AnswerProvider answers a free-text question.
type AnswerProvider interface {
	Answer(ctx context.Context, question string) (string, error)
}

// ImageProvider generates an image from a text prompt and returns a
// reference (URL) to it.
type ImageProvider interface {
	GenerateImage(ctx context.Context, prompt string) (string, error)
}

// Error wraps any downstream generative-service failure: timeout, quota,
// malformed response. Callers recover from it locally and show the user a
// fixed message; it never propagates past the dispatcher.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
