package services

import (
	"context"
	"fmt"
)

// Pinger соединение с хранилищем, умеющее проверять доступность.
type Pinger interface {
	Ping(ctx context.Context) error
}

type PingService struct {
	conn Pinger
}

func NewPingService(conn Pinger) *PingService {
	return &PingService{conn: conn}
}

// CheckConnection проверяет доступность хранилища записей.
func (s *PingService) CheckConnection(ctx context.Context) error {
	if err := s.conn.Ping(ctx); err != nil {
		return fmt.Errorf("ping storage: %w", err)
	}
	return nil
}
