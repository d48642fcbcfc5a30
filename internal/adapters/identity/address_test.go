package identity

import "testing"

func TestExtractPremise(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		line, want string
	}{
		{"Flat 2, 280 Eastern Avenue", "280"},
		{"Building Name, 123 Street", "123"},
		{"Main Street", ""},
		{"280 Eastern Avenue", "280"},
		{"12a High Street", "12a"},
		{"10-12 Market Square", "10-12"},
		{"Apartment 5, 99 King Road", "99"},
		{"Unit 7 44 Dock Lane", "44"},
		{"The Old Mill, 3 Bridge Road", "3"},
		{"Rose Cottage", ""},
		{"", ""},
	} {
		if got := ExtractPremise(tc.line); got != tc.want {
			t.Errorf("ExtractPremise(%q) = %q, want %q", tc.line, got, tc.want)
		}
	}
}

func TestThoroughfare(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		line, want string
	}{
		{"280 Eastern Avenue", "Eastern Avenue"},
		{"Main Street", "Main Street"},
		{"Flat 2, 280 Eastern Avenue", "Eastern Avenue"},
		{"12A High Road", "High Road"},
		{"12-14 Station Parade", "Station Parade"},
		{"", ""},
	} {
		if got := Thoroughfare(tc.line); got != tc.want {
			t.Errorf("Thoroughfare(%q) = %q, want %q", tc.line, got, tc.want)
		}
	}
}
