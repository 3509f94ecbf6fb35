package service

import (
	"timegrid.app/scheduler/internal/audit"
	"timegrid.app/scheduler/internal/cache"
	"timegrid.app/scheduler/internal/store"
)

type Services struct {
	stores   *store.Stores
	txRunner TxRunner
	windows  cache.WindowCache
	auditor  audit.Producer
}

func NewServices(stores *store.Stores, txRunner TxRunner, windows cache.WindowCache, auditor audit.Producer) *Services {
	return &Services{
		stores:   stores,
		txRunner: txRunner,
		windows:  windows,
		auditor:  auditor,
	}
}

func (s *Services) Gaps() GapService {
	return NewGapService(s.stores.Gaps(), s.stores.Tasks(), s.txRunner, s.windows, s.auditor)
}
