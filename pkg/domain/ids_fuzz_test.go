//go:build go1.18

package domain

import (
	"testing"
	"unicode/utf8"
)

// FuzzParseProfileID checks that parsing never panics and that every accepted
// value round-trips through its canonical form.
func FuzzParseProfileID(f *testing.F) {
	f.Add("")
	f.Add("550e8400-e29b-41d4-a716-446655440000")
	f.Add("00000000-0000-0000-0000-000000000000")
	f.Add("not-a-uuid")
	f.Add("'; DROP TABLE profiles;--")
	f.Add(string([]byte{0x00, 0x01, 0x02}))
	f.Add("550e8400-e29b-41d4-a716-446655440000\x00suffix")

	f.Fuzz(func(t *testing.T, input string) {
		id, err := ParseProfileID(input)
		if err != nil {
			return
		}

		roundTrip, err := ParseProfileID(id.String())
		if err != nil {
			t.Fatalf("canonical form rejected: %v", err)
		}
		if roundTrip != id {
			t.Fatal("round-trip changed ID value")
		}
		if !utf8.ValidString(input) {
			t.Error("non-UTF8 input was accepted")
		}
	})
}
