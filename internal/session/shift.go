package session

import (
	"context"

	"bloompos-backend/internal/models"

	"github.com/google/uuid"
)

// OpenShift: açık vardiya varken ikinci bir açılış reddedilir.
func (s *Session) OpenShift(ctx context.Context, startCash float64) (models.Shift, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentShiftID != "" {
		return models.Shift{}, ErrShiftAlreadyOpen
	}

	shift := models.Shift{
		ID:         uuid.NewString(),
		OpenedAt:   s.now(),
		StartCash:  startCash,
		TotalSales: 0,
		SalesCount: 0,
		IsOpen:     true,
	}

	s.shifts = append([]models.Shift{shift}, s.shifts...)
	s.currentShiftID = shift.ID
	s.persistShifts(ctx)
	return shift, nil
}

// CloseShift: endCash = startCash + totalSales. Kapanan vardiya bir daha
// açılmaz ve değiştirilmez.
func (s *Session) CloseShift(ctx context.Context) (models.Shift, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	shift, ok := s.currentShiftLocked()
	if !ok {
		return models.Shift{}, ErrNoOpenShift
	}

	closedAt := s.now()
	endCash := shift.StartCash + shift.TotalSales

	var closed models.Shift
	for i := range s.shifts {
		if s.shifts[i].ID == shift.ID {
			s.shifts[i].IsOpen = false
			s.shifts[i].ClosedAt = &closedAt
			s.shifts[i].EndCash = &endCash
			closed = s.shifts[i]
			break
		}
	}

	s.currentShiftID = ""
	s.persistShifts(ctx)
	return closed, nil
}
