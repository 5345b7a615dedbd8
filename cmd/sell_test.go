package cmd

import "testing"

func TestSaleLinesSet(t *testing.T) {
	tests := []struct {
		in      string
		wantRef string
		wantQty int
		wantErr bool
	}{
		{in: "1:3", wantRef: "1", wantQty: 3},
		{in: "1", wantRef: "1", wantQty: 1},
		{in: "7501055309123:2", wantRef: "7501055309123", wantQty: 2},
		{in: ":2", wantErr: true},
		{in: "1:two", wantErr: true},
	}
	for _, tt := range tests {
		var lines saleLines
		err := lines.Set(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("Set(%q) expected an error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("Set(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if len(lines) != 1 || lines[0].ref != tt.wantRef || lines[0].qty != tt.wantQty {
			t.Errorf("Set(%q) = %+v, want ref=%q qty=%d", tt.in, lines, tt.wantRef, tt.wantQty)
		}
	}
}

func TestSaleLinesString(t *testing.T) {
	lines := saleLines{{ref: "1", qty: 3}, {ref: "2", qty: 1}}
	if got, want := lines.String(), "1:3,2:1"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
