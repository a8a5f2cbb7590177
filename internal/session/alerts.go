package session

import (
	"context"
	"time"

	"bloompos-backend/internal/alerts"
)

// RunAlertScan: tüm envanteri kurallardan geçirir, yeni tekil bildirim
// sayısını döner. Tarama ve koleksiyon değişimi aynı kilit altındadır.
func (s *Session) RunAlertScan(ctx context.Context, now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	fresh := alerts.Evaluate(s.flowers, now)
	merged, added := alerts.Merge(s.alerts, fresh)
	s.alerts = merged
	s.persistAlerts(ctx)
	return added
}

// ClearAlerts koleksiyonu koşulsuz boşaltır.
func (s *Session) ClearAlerts(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.alerts = nil
	s.persistAlerts(ctx)
}

// UnreadAlertCount: read == false kayıtların türetilmiş sayısı
func (s *Session) UnreadAlertCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, a := range s.alerts {
		if !a.Read {
			count++
		}
	}
	return count
}
