package sqlite

import "github.com/iudanet/muslimguide/internal/server/storage"

var (
	_ storage.ListingStorage   = (*Storage)(nil)
	_ storage.CounterStorage   = (*Storage)(nil)
	_ storage.CampaignStorage  = (*Storage)(nil)
	_ storage.AnalyticsStorage = (*Storage)(nil)
	_ storage.ReportStorage    = (*Storage)(nil)
	_ storage.DeviceStorage    = (*Storage)(nil)
)
