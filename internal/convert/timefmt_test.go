package convert

import "testing"

func TestNormalizeTime(t *testing.T) {
	opts := DefaultOptions()

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "iso with zulu", input: "2024-01-01T12:00:00Z", want: "2024-01-01 12:00:00"},
		{name: "iso with offset", input: "2024-01-01T12:00:00+08:00", want: "2024-01-01 12:00:00"},
		{name: "iso without zone", input: "2024-01-01T12:00:00", want: "2024-01-01 12:00:00"},
		{name: "space separated", input: "2024-01-01 12:00:00", want: "2024-01-01 12:00:00"},
		{name: "fractional seconds", input: "2024-01-01T12:00:00.123Z", want: "2024-01-01 12:00:00"},
		{name: "unparsable passthrough", input: "not-a-date", want: "not-a-date"},
		{name: "empty", input: "", want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeTime(tc.input, opts.InputTimeLayouts, opts.OutputTimeLayout)
			if got != tc.want {
				t.Fatalf("got %q want %q", got, tc.want)
			}
		})
	}
}
