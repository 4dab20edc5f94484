package engine

import "errors"

// The dispatch error kinds. Together with proto.ErrParse they form the
// closed set of non-fatal outcomes the loop logs and moves past; nothing a
// command can do halts the animation.
var (
	ErrUnknownCommand  = errors.New("unknown command")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrEffectFault     = errors.New("effect fault")
)
