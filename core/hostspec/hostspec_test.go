package hostspec

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Spec
		wantErr bool
	}{
		{in: "host1", want: Spec{Host: "host1"}},
		{in: "user@host1", want: Spec{User: "user", Host: "host1"}},
		{in: "user@host1:2222", want: Spec{User: "user", Host: "host1", Port: 2222}},
		{in: "host1:22", want: Spec{Host: "host1", Port: 22}},
		{in: "deploy@example.com@host1", want: Spec{User: "deploy@example.com", Host: "host1"}},
		{in: "[::1]:2222", want: Spec{Host: "::1", Port: 2222}},
		{in: "[fe80::1]", want: Spec{Host: "fe80::1"}},
		{in: "fe80::1", want: Spec{Host: "fe80::1"}},
		{in: "user@", wantErr: true},
		{in: "", wantErr: true},
		{in: "host1:notaport", wantErr: true},
		{in: "host1:70000", wantErr: true},
		{in: "[::1", wantErr: true},
		{in: "[::1]x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) succeeded, want error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.in, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestStringRoundTrip(t *testing.T) {
	tests := []string{
		"host1",
		"user@host1",
		"user@host1:2222",
		"[::1]:2222",
		"fe80::1",
	}

	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			spec, err := Parse(in)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", in, err)
			}
			if got := spec.String(); got != in {
				t.Errorf("round trip: got %q, want %q", got, in)
			}
		})
	}
}
