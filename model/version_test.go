package model

import "testing"

func TestVersionRange(t *testing.T) {
	cases := []struct {
		in       string
		str      string
		contains map[string]bool
	}{
		{"", "", map[string]bool{"0.0.1": true, "9.0.0": true, "": true}},
		{"1.0.0", "1.0.0", map[string]bool{"1.0.0": true, "1.0.1": false, "0.9.0": false, "": true}},
		{"4.0.0+", "4.0.0+", map[string]bool{"3.9.9": false, "4.0.0": true, "10.0.0": true}},
		{"1.0.0/2.0.0", "1.0.0/2.0.0", map[string]bool{"0.9.9": false, "1.5.0": true, "2.0.0": true, "2.0.1": false}},
		{" 1.1 ", "1.1.0", map[string]bool{"1.1.0": true, "junk": false}},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			r, err := ParseVersionRange(c.in)
			if err != nil {
				t.Fatal(err)
			}
			if got := r.String(); got != c.str {
				t.Errorf("String() = %q, want %q", got, c.str)
			}
			for v, want := range c.contains {
				if got := r.Contains(v); got != want {
					t.Errorf("Contains(%q) = %v, want %v", v, got, want)
				}
			}
		})
	}
}

func TestVersionRangeErrors(t *testing.T) {
	for _, in := range []string{"x", "1.0.0/y", "2.0.0/1.0.0", "+"} {
		if _, err := ParseVersionRange(in); err == nil {
			t.Errorf("%q: expected an error", in)
		}
	}
	if !ValidVersion("4.0.0") || ValidVersion("four") {
		t.Error("ValidVersion")
	}
}
