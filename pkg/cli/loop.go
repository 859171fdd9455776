package cli

// Buffer size of the input channel. The value is chosen for no particular
// reason.
const inputChSize = 128

// A generic main loop manager: events are queued by Input and handled
// serially by Run.
type loop struct {
	inputCh  chan any
	handleCb func(any)
	returnCh chan loopReturn
}

type loopReturn struct {
	line string
	err  error
}

func newLoop() *loop {
	return &loop{
		inputCh:  make(chan any, inputChSize),
		handleCb: func(any) {},
		returnCh: make(chan loopReturn, 1),
	}
}

// HandleCb sets the handle callback. It must be called before any Run call.
func (lp *loop) HandleCb(cb func(any)) {
	lp.handleCb = cb
}

// Input provides an input event. It may block if the internal event buffer
// is full.
func (lp *loop) Input(ev any) {
	lp.inputCh <- ev
}

// Return requests the main loop to return. It never blocks. If Return has
// been called before during the current loop iteration, it has no effect.
func (lp *loop) Return(line string, err error) {
	select {
	case lp.returnCh <- loopReturn{line, err}:
	default:
	}
}

// Run runs the event loop until Return is called. It is fully serial: it
// never calls the handle callback for two events in parallel, so the
// callback may manipulate shared state without synchronization.
func (lp *loop) Run() (line string, err error) {
	for {
		select {
		case ev := <-lp.inputCh:
			lp.handleCb(ev)
			select {
			case ret := <-lp.returnCh:
				return ret.line, ret.err
			default:
			}
		case ret := <-lp.returnCh:
			return ret.line, ret.err
		}
	}
}
