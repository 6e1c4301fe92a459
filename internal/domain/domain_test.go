package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPostalAddressFreeText(t *testing.T) {
	addr := PostalAddress{
		Street:       "Av. Conde da Boa Vista",
		Neighborhood: "Boa Vista",
		City:         "Recife",
		State:        "PE",
	}
	assert.Equal(t, "Av. Conde da Boa Vista, Boa Vista, Recife, PE", addr.FreeText())

	partial := PostalAddress{City: "Recife", State: "PE"}
	assert.Equal(t, "Recife, PE", partial.FreeText())

	assert.Equal(t, "", PostalAddress{}.FreeText())
}

func TestBusinessDaysLabel(t *testing.T) {
	assert.Equal(t, "1 dia útil", BusinessDaysLabel(1))
	assert.Equal(t, "3 dias úteis", BusinessDaysLabel(3))
}

func TestPriceLabel(t *testing.T) {
	assert.Equal(t, "R$ 15.00", PriceLabel(15))
	assert.Equal(t, "R$ 25.50", PriceLabel(25.5))
}

func TestStoreWithDistanceLabel(t *testing.T) {
	s := StoreWithDistance{DistanceKm: 10}
	assert.Equal(t, "10.00 km", s.DistanceLabel())

	s = StoreWithDistance{DistanceKm: 5.236}
	assert.Equal(t, "5.24 km", s.DistanceLabel())
}

func TestStoreHasLocation(t *testing.T) {
	assert.False(t, (&Store{}).HasLocation())
	assert.True(t, (&Store{Location: &Coordinates{Lat: 1, Lng: 2}}).HasLocation())

	var nilStore *Store
	assert.False(t, nilStore.HasLocation())
}

func TestErrorKinds(t *testing.T) {
	assert.Equal(t, KindInvalidInput, KindOf(InvalidInput("bad cep")))
	assert.Equal(t, KindNotFound, KindOf(NotFound("nothing here")))
	assert.Equal(t, KindUpstream, KindOf(Upstream("geocoding", "boom", nil)))
	assert.Equal(t, KindConfig, KindOf(ConfigError("missing key")))

	wrapped := fmt.Errorf("locate: %w", NotFound("postal code 1 not found"))
	assert.Equal(t, KindNotFound, KindOf(wrapped), "kind survives wrapping")

	assert.Equal(t, KindUpstream, KindOf(fmt.Errorf("plain")), "unclassified errors are server-side")
}

func TestUpstreamErrorMessage(t *testing.T) {
	err := Upstream("carrier-rate", "malformed response", nil)
	assert.Equal(t, "upstream carrier-rate: malformed response", err.Error())
}
