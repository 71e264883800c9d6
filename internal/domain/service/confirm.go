package service

import "context"

// Confirmer is the interactive yes/no gate consulted before destructive
// operations such as tile deletion. The UI supplies the implementation.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) bool
}

// ConfirmerFunc adapts a plain function to the Confirmer interface.
type ConfirmerFunc func(ctx context.Context, prompt string) bool

// Confirm calls the wrapped function.
func (f ConfirmerFunc) Confirm(ctx context.Context, prompt string) bool {
	return f(ctx, prompt)
}
