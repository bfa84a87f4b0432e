package helper

import "testing"

func TestFormatPenalty(t *testing.T) {
	if got := FormatPenalty(0); got != "" {
		t.Fatalf("clean run must render empty, got %q", got)
	}
	if got := FormatPenalty(2); got != "+2" {
		t.Fatalf("got %q, want +2", got)
	}
}

func TestGetDriverCodeName(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"John Smith", "JSM"},
		{"Jane Doe", "JDO"},
		{"Stig", "STI"},
		{"Bo Xu", "BXU"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := GetDriverCodeName(tc.name); got != tc.want {
			t.Fatalf("GetDriverCodeName(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}
