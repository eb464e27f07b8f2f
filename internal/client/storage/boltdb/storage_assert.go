package boltdb

import (
	"github.com/iudanet/muslimguide/internal/client/storage"
	"github.com/iudanet/muslimguide/internal/vote"
)

// Storage реализует все клиентские интерфейсы хранилища
var (
	_ storage.DeviceStorage = (*Storage)(nil)
	_ storage.VoteStorage   = (*Storage)(nil)
	_ storage.ReportStorage = (*Storage)(nil)
	_ vote.Store            = (*Storage)(nil)
)
