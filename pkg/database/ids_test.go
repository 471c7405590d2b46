package database

import "testing"

func TestParseID(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"1", 1, true},
		{"2147483647", MaxSerialID, true},
		{"2147483648", 0, false},
		{"3000000000", 0, false},
		{"99999999999999999999", 0, false},
		{"0", 0, false},
		{"-4", 0, false},
		{"abc", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseID(tt.in)
			if got != tt.want || ok != tt.ok {
				t.Fatalf("ParseID(%q) = %d, %v; want %d, %v", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestValidID(t *testing.T) {
	for _, id := range []int{0, -1, MaxSerialID + 1, 3000000000} {
		if ValidID(id) {
			t.Errorf("ValidID(%d) = true", id)
		}
	}
	for _, id := range []int{1, 42, MaxSerialID} {
		if !ValidID(id) {
			t.Errorf("ValidID(%d) = false", id)
		}
	}
}
