package loop

// System observes the game after each frame. Renderers, audio cues and
// statistics collectors are systems. Systems run on the scheduler's
// goroutine and must not block.
type System interface {
	Execute(frame *Frame)
}

// SystemFunc adapts a plain function to System.
type SystemFunc func(frame *Frame)

func (f SystemFunc) Execute(frame *Frame) { f(frame) }
