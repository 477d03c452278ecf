package domain

import "testing"

func TestNormalizeEngagementRate(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"3.5", "3.50"},
		{"3.50", "3.50"},
		{"0", "0.00"},
		{".5", "0.50"},
		{"007.1", "7.10"},
		{"999.99", "999.99"},
		{" 1.2 ", "1.20"},
	}
	for _, tc := range cases {
		got, err := NormalizeEngagementRate(tc.in)
		if err != nil {
			t.Fatalf("NormalizeEngagementRate(%q) error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("NormalizeEngagementRate(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeEngagementRateRejects(t *testing.T) {
	for _, in := range []string{"", "-1", "-0.5", "1000", "1000.00", "1.234", "abc", "1.2.3", ".", "1,5"} {
		if _, err := NormalizeEngagementRate(in); err == nil {
			t.Errorf("NormalizeEngagementRate(%q) succeeded, want error", in)
		}
	}
}
