package reporting

import (
	"github.com/yourorg/cafe-checkout/internal/notify"
)

// Summary totals a run of transaction notifications.
type Summary struct {
	TotalCharges     int
	TotalAmount      int64
	ProviderUsage    map[string]int   // Count of charges per provider
	AmountByProvider map[string]int64 // Sum of amounts per provider
}

// Summarize builds a Summary from notifications. An empty input yields a
// zero Summary with initialised maps.
func Summarize(notifications []notify.Notification) *Summary {
	s := &Summary{
		ProviderUsage:    make(map[string]int),
		AmountByProvider: make(map[string]int64),
	}

	for _, n := range notifications {
		s.TotalCharges++
		s.TotalAmount += n.Amount
		s.ProviderUsage[n.Provider]++
		s.AmountByProvider[n.Provider] += n.Amount
	}
	return s
}
