package domain

// ServiceType distinguishes how a service is billed and displayed:
// wine tours are hourly, transfers are fixed point-to-point prices.
type ServiceType string

const (
	ServiceTypeWineTour ServiceType = "wine_tour"
	ServiceTypeTransfer ServiceType = "transfer"
)

func (s ServiceType) IsValid() bool {
	switch s {
	case ServiceTypeWineTour, ServiceTypeTransfer:
		return true
	}
	return false
}
