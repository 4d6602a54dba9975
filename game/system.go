package game

// System is one phase of the per-tick update pipeline. Systems run in
// registration order and share the tick's state through the Frame.
type System interface {
	Execute(frame *Frame)
}
