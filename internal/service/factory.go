package service

import (
	"time"

	"taskboard.app/server/internal/queue"
	"taskboard.app/server/internal/store"
)

type ServicesConfig struct {
	Stores           *store.Stores
	TxRunner         TxRunner
	SessionTTL       time.Duration
	ActivityProducer queue.Producer
}

type Services struct {
	stores     *store.Stores
	txRunner   TxRunner
	sessionTTL time.Duration
	producer   queue.Producer
}

func NewServices(cfg ServicesConfig) *Services {
	return &Services{
		stores:     cfg.Stores,
		txRunner:   cfg.TxRunner,
		sessionTTL: cfg.SessionTTL,
		producer:   cfg.ActivityProducer,
	}
}

func (s *Services) Auth() AuthService {
	return NewAuthService(s.stores.Users(), s.stores.Sessions(), s.sessionTTL)
}

func (s *Services) Workspaces() WorkspaceService {
	return NewWorkspaceService(s.txRunner, s.producer)
}

func (s *Services) Members() MemberService {
	return NewMemberService(s.txRunner, s.producer)
}

func (s *Services) Projects() ProjectService {
	return NewProjectService(s.txRunner, s.producer)
}

func (s *Services) Tasks() TaskService {
	return NewTaskService(s.txRunner, s.producer)
}
