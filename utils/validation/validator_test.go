package validation

import "testing"

func TestValidateEnquiryMessageOrder(t *testing.T) {
	cases := []struct {
		name, email, phone string
		want               string
	}{
		{"", "a@b.com", "9876543210", "Please enter your name"},
		{"   ", "a@b.com", "9876543210", "Please enter your name"},
		// Name is checked first even when everything is wrong.
		{"", "bad", "1", "Please enter your name"},
		{"Asha", "bad", "9876543210", "Please enter a valid email address"},
		{"Asha", "a@b", "9876543210", "Please enter a valid email address"},
		{"Asha", "a b@c.com", "9876543210", "Please enter a valid email address"},
		{"Asha", "a@b.com", "12345", "Please enter a valid 10-digit phone number"},
		{"Asha", "a@b.com", "98765432101", "Please enter a valid 10-digit phone number"},
		{"Asha", "a@b.com", "9876543210", ""},
		// Separators are stripped before the digit count.
		{"Asha", "a@b.com", "98765-43210", ""},
		{"Asha", "a@b.com", "(987) 654-3210", ""},
	}

	for _, tc := range cases {
		if got := ValidateEnquiry(tc.name, tc.email, tc.phone); got != tc.want {
			t.Errorf("ValidateEnquiry(%q, %q, %q) = %q, want %q", tc.name, tc.email, tc.phone, got, tc.want)
		}
	}
}

func TestSanitizeFee(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"12a.3.4b", "12.34"},
		{"120000", "120000"},
		{"1,20,000", "120000"},
		{"₹ 95000.50", "95000.50"},
		{"...", "."},
		{"", ""},
	}

	for _, tc := range cases {
		if got := SanitizeFee(tc.in); got != tc.want {
			t.Errorf("SanitizeFee(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSanitizeYear(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"1987", "1987"},
		{"est. 1987", "1987"},
		{"19876", "1987"},
		{"abc", ""},
	}

	for _, tc := range cases {
		if got := SanitizeYear(tc.in); got != tc.want {
			t.Errorf("SanitizeYear(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestStripNonDigits(t *testing.T) {
	if got := StripNonDigits("+91 98765-43210"); got != "919876543210" {
		t.Errorf("got %q", got)
	}
}
