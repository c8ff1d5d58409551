package version

import "testing"

func TestString(t *testing.T) {
	if got := Short(); got != "v"+Version {
		t.Errorf("Short() = %q", got)
	}
	if got, want := String(), "starmap v"+Version; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
