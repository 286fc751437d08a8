package domain

import "strings"

// Service is one row of the bus service table.
type Service struct {
	Name  string `json:"name" mapstructure:"name"`
	Time  string `json:"time" mapstructure:"time"`
	Price int64  `json:"price" mapstructure:"price"`
}

// BankDetails is the account customers transfer the fare to.
type BankDetails struct {
	BankName      string `json:"bankName" mapstructure:"bank_name"`
	AccountNumber string `json:"accountNumber" mapstructure:"account_number"`
	AccountName   string `json:"accountName" mapstructure:"account_name"`
	Branch        string `json:"branch" mapstructure:"branch"`
}

// Catalog holds the static lookup tables the booking form reads from.
// It is never mutated after construction.
type Catalog struct {
	services []Service
	byName   map[string]Service
	cities   []string
	citySet  map[string]bool
	bank     BankDetails
}

func NewCatalog(services []Service, cities []string, bank BankDetails) Catalog {
	c := Catalog{
		services: make([]Service, 0, len(services)),
		byName:   make(map[string]Service, len(services)),
		cities:   make([]string, 0, len(cities)),
		citySet:  make(map[string]bool, len(cities)),
		bank:     bank,
	}
	for _, s := range services {
		s.Name = strings.TrimSpace(s.Name)
		if s.Name == "" {
			continue
		}
		if _, dup := c.byName[s.Name]; dup {
			continue
		}
		c.services = append(c.services, s)
		c.byName[s.Name] = s
	}
	for _, city := range cities {
		city = strings.TrimSpace(city)
		if city == "" || c.citySet[city] {
			continue
		}
		c.cities = append(c.cities, city)
		c.citySet[city] = true
	}
	return c
}

// Service looks up a bus service by its exact name.
func (c Catalog) Service(name string) (Service, bool) {
	s, ok := c.byName[name]
	return s, ok
}

func (c Catalog) Services() []Service {
	out := make([]Service, len(c.services))
	copy(out, c.services)
	return out
}

func (c Catalog) HasCity(name string) bool {
	return c.citySet[name]
}

func (c Catalog) Cities() []string {
	out := make([]string, len(c.cities))
	copy(out, c.cities)
	return out
}

func (c Catalog) Bank() BankDetails {
	return c.bank
}

// DefaultCatalog is used when configuration does not override the tables.
func DefaultCatalog() Catalog {
	return NewCatalog(
		[]Service{
			{Name: "Night Express", Time: "08:30 PM", Price: 2500},
			{Name: "Morning Luxury", Time: "06:00 AM", Price: 3000},
			{Name: "Super Line", Time: "10:00 AM", Price: 2200},
			{Name: "Intercity Semi-Luxury", Time: "01:30 PM", Price: 1800},
			{Name: "Late Night Sleeper", Time: "11:00 PM", Price: 3500},
		},
		[]string{
			"Colombo", "Kandy", "Galle", "Matara", "Jaffna", "Kurunegala",
			"Anuradhapura", "Trincomalee", "Batticaloa", "Badulla", "Nuwara Eliya", "Ratnapura",
		},
		BankDetails{
			BankName:      "Bank of Ceylon",
			AccountNumber: "0081234567",
			AccountName:   "City Line Travels",
			Branch:        "Colombo Fort",
		},
	)
}
