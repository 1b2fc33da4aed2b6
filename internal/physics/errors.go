package physics

import "errors"

// ErrContactBufferFull is returned from Step when more contact pairs
// were generated in a substep than the reserved buffer can hold. This
// should not occur in practice since the buffer is sized to
// n*(n-1)/2 for the current body count before every substep loop.
var ErrContactBufferFull = errors.New("physics: contact buffer full")
