package domain

import "fmt"

// StoreKind distinguishes a local pickup counter from a full store.
type StoreKind string

const (
	// StoreKindCounter ("PDV") fulfills nearby orders directly.
	StoreKindCounter StoreKind = "PDV"
	// StoreKindFull ("LOJA") ships orders through a carrier.
	StoreKindFull StoreKind = "LOJA"
)

// Store is a physical store from the catalog.
//
// The catalog is owned by an external management process; this service
// only reads it. A store may lack coordinates (legacy records); such
// stores are excluded from distance ranking rather than failing a request.
type Store struct {
	ID            string
	Name          string
	PostalCode    string
	Address       string
	Number        string
	Neighborhood  string
	City          string
	State         string
	Phone         string
	BusinessHours string
	Kind          StoreKind
	HandlingDays  int
	Location      *Coordinates
}

func (s *Store) HasLocation() bool {
	return s != nil && s.Location != nil
}

// StoreWithDistance pairs a store with its computed road distance from a
// query origin. Valid only for the lifetime of one locator invocation.
type StoreWithDistance struct {
	Store      *Store
	DistanceKm float64
}

// DistanceLabel renders the distance for display, e.g. "10.00 km".
func (s StoreWithDistance) DistanceLabel() string {
	return fmt.Sprintf("%.2f km", s.DistanceKm)
}
