package pubsub

type Subscriber struct {
	payload chan any
}

func NewSubscriber(channelCapacity int) *Subscriber {
	if channelCapacity <= 0 {
		channelCapacity = 1
	}
	return &Subscriber{
		payload: make(chan any, channelCapacity),
	}
}

// Signal delivers without blocking; data is dropped when the subscriber's
// buffer is full.
func (s *Subscriber) Signal(data any) {
	select {
	case s.payload <- data:
	default:
	}
}

func (s *Subscriber) Channel() <-chan any {
	return s.payload
}

func (s *Subscriber) Close() {
	close(s.payload)
}
