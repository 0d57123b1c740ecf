package http

import "testing"

// The protection policy is a declared table; this pins it down so a route
// cannot silently change exposure.
func TestProtectionPolicy(t *testing.T) {
	want := map[string]bool{
		"tasks.list":   true,
		"tasks.get":    false,
		"tasks.create": true,
		"tasks.update": true,
		"tasks.delete": true,
	}

	if len(protectedOps) != len(want) {
		t.Fatalf("policy table has %d entries, want %d", len(protectedOps), len(want))
	}
	for op, protected := range want {
		got, ok := protectedOps[op]
		if !ok {
			t.Errorf("policy table missing %q", op)
			continue
		}
		if got != protected {
			t.Errorf("policy[%q] = %v, want %v", op, got, protected)
		}
	}
}
