package engine

import "testing"

func TestParseCaptions(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "timing tags entities and index",
			raw:  "00:00:01.000 --> 00:00:02.000\n<b>Hello</b> &nbsp;world\n1\n",
			want: "Hello world",
		},
		{
			name: "webvtt header and note dropped",
			raw:  "WEBVTT\nNOTE generated\n\n00:00:00.000 --> 00:00:04.000\nChop the onions\n\n00:00:04.000 --> 00:00:08.000\nfry until golden",
			want: "Chop the onions fry until golden",
		},
		{
			name: "idempotent on clean text",
			raw:  "Hello world",
			want: "Hello world",
		},
		{
			name: "inline cue tags",
			raw:  "<00:00:01.240><c>add</c><00:00:01.500><c> the</c> garlic",
			want: "add the garlic",
		},
		{
			name: "empty input",
			raw:  "",
			want: "",
		},
		{
			name: "numeric index lines only",
			raw:  "1\n2\n3\n",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseCaptions(tt.raw); got != tt.want {
				t.Errorf("ParseCaptions(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseCaptionsIdempotent(t *testing.T) {
	raw := "00:00:01.000 --> 00:00:02.000\n<b>Hello</b> &nbsp;world\n1\n"
	once := ParseCaptions(raw)
	if twice := ParseCaptions(once); twice != once {
		t.Errorf("not idempotent: %q != %q", twice, once)
	}
}
