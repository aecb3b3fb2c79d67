package xmlgen

import (
	"testing"
	"time"
)

func TestDateFormat(t *testing.T) {
	d := time.Date(2024, 3, 5, 14, 7, 9, 123000000, time.UTC)
	tests := []struct {
		pattern string
		want    string
		single  bool
	}{
		{"", "Tuesday, March 5, 2024 2:07:09 PM UTC", true},
		{"yyyy", "2024", true},
		{"yy", "24", true},
		{"yyyy-MM-dd", "2024-03-05", true},
		{"d/M/yy HH:mm", "5/3/24 14:07", true},
		{"EEE, d MMM yyyy HH:mm:ss Z", "Tue, 5 Mar 2024 14:07:09 +0000", true},
		{"EEEE MMMM", "Tuesday March", true},
		{"yyyy-MM-dd'T'HH:mm:ss.SSS", "2024-03-05T14:07:09.123", true},
		{"h 'o''clock' a", "2 o'clock PM", true},
		{"''yy''", "'24'", true},
		{"'Q1' yyyy", "Q1 2024", false},
		{"Ms", "39", false},
		{"yyyy.MM", "2024.03", true},
		{"yyyy-DDD", "2024-065", true},
		{"LLL yyyy", "Mar 2024", true},
		{"mm:ss,SSS", "07:09,123", true},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			df, err := CompileDateFormat(tt.pattern)
			if err != nil {
				t.Fatal(err)
			}
			if got := df.Format(d); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
			if _, single := df.Layout(); single != tt.single {
				t.Errorf("single layout: got %v, want %v", single, tt.single)
			}
		})
	}
}

func TestDateFormatErrors(t *testing.T) {
	for _, pattern := range []string{
		"yyyy-QQ", "'open", "SSS", "HH:mm SSS", "G",
		"ss.S", "ss.SS", "ss.SSSS",
		"D", "yyyy-DD",
		"kk:mm", "KK", "ww", "W", "F", "u",
	} {
		if _, err := CompileDateFormat(pattern); err == nil {
			t.Errorf("%q: expected an error", pattern)
		}
	}
}
