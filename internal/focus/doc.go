// Package focus maintains tab order over focusable elements and routes key
// events to the focused one.
//
// The model is deliberately non-spatial: elements form an ordered ring and
// up/down/left/right are aliases for previous/next, not geometry. The
// Manager holds non-owning references; attaching and detaching is the
// owner's job and must happen between poll cycles. Mutating the element list
// from inside a Focus, Blur, or HandleKey callback is unsupported.
package focus
