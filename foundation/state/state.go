package state

import "sync"

type Service int

const (
	Sampling Service = iota
	Dashboard
	Redis
)

type State struct {
	sync.RWMutex

	Sampling  bool
	Dashboard bool
	Redis     bool
}

func NewState() *State {
	return &State{
		Sampling:  true,
		Dashboard: true,
		Redis:     true,
	}
}

func (s *State) Get(svc Service) bool {
	s.RLock()
	defer s.RUnlock()
	{
		switch svc {
		case Sampling:
			return s.Sampling

		case Dashboard:
			return s.Dashboard

		case Redis:
			return s.Redis
		}
	}
	return false
}

func (s *State) Set(svc Service, state bool) {
	s.Lock()
	defer s.Unlock()
	{
		switch svc {
		case Sampling:
			s.Sampling = state

		case Dashboard:
			s.Dashboard = state

		case Redis:
			s.Redis = state
		}
	}
}
