//go:build purego

package dispatch

import "testing"

func TestDispatch_PuregoUsesGeneric(t *testing.T) {
	Reset()
	defer Reset()

	if k := Kernel(); k.Name != "generic" {
		t.Fatalf("expected generic implementation in purego, got %q", k.Name)
	}
}
