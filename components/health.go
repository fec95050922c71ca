package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current int
	Max     int
}

// TakeDamage subtracts amount, flooring at zero. It reports true only on the
// call that brings Current to zero; damage to an already dead actor is
// ignored.
func (h *HealthData) TakeDamage(amount int) (died bool) {
	if h.Current <= 0 || amount <= 0 {
		return false
	}
	h.Current = max(0, h.Current-amount)
	return h.Current == 0
}

// Ratio is Current/Max clamped to [0, 1].
func (h *HealthData) Ratio() float64 {
	if h.Max <= 0 {
		return 0
	}
	return min(1, max(0, float64(h.Current)/float64(h.Max)))
}

var Health = donburi.NewComponentType[HealthData]()
