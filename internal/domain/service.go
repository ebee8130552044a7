package domain

// ServiceType identifies one of the day center's guest services
type ServiceType string

const (
	ServiceShower         ServiceType = "shower"
	ServiceLaundry        ServiceType = "laundry"
	ServiceLaundryOffsite ServiceType = "laundry_offsite"
	ServiceBicycle        ServiceType = "bicycle"
)

// AllServices lists every supported service type
var AllServices = []ServiceType{
	ServiceShower,
	ServiceLaundry,
	ServiceLaundryOffsite,
	ServiceBicycle,
}

// IsValid reports whether s is a known service type
func (s ServiceType) IsValid() bool {
	switch s {
	case ServiceShower, ServiceLaundry, ServiceLaundryOffsite, ServiceBicycle:
		return true
	}
	return false
}

// IsSlotted reports whether bookings for this service attach to a time slot.
// Off-site laundry and bicycle repairs are queue-based, not slot-based.
func (s ServiceType) IsSlotted() bool {
	return s == ServiceShower || s == ServiceLaundry
}

// SupportsWaitlist reports whether the service offers a waitlist when all
// slots are taken. Showers only.
func (s ServiceType) SupportsWaitlist() bool {
	return s == ServiceShower
}
