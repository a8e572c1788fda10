package panes

import "testing"

func TestVersion_EmbeddedIsSemver(t *testing.T) {
	if !IsSemver(Version()) {
		t.Fatalf("embedded version must be semver: got %q", Version())
	}
}

func TestBanner(t *testing.T) {
	if got, want := Banner("panes"), "panes v"+Version(); got != want {
		t.Fatalf("banner: got %q, want %q", got, want)
	}
	if got, want := Banner(""), "panes "+VersionTag(); got != want {
		t.Fatalf("banner without program: got %q, want %q", got, want)
	}
}

func TestIsSemver(t *testing.T) {
	cases := []struct {
		version string
		want    bool
	}{
		{version: "0.1.0", want: true},
		{version: " 0.1.0\n", want: true},
		{version: "1.2.3-rc.1+build.5", want: true},
		{version: "v0.1.0", want: false},
		{version: "0.1", want: false},
		{version: "00.1.0", want: false},
	}

	for _, tc := range cases {
		if got := IsSemver(tc.version); got != tc.want {
			t.Fatalf("IsSemver(%q): got %v, want %v", tc.version, got, tc.want)
		}
	}
}
