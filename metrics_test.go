package fixedarena

import "testing"

func TestMetricsEmptyArena(t *testing.T) {
	for _, a := range []*Arena{New(nil), NewWithSize(0)} {
		if a.Offset() != 0 {
			t.Errorf("Offset = %d, want 0", a.Offset())
		}
		if a.Capacity() != 0 {
			t.Errorf("Capacity = %d, want 0", a.Capacity())
		}
		if a.Remaining() != 0 {
			t.Errorf("Remaining = %d, want 0", a.Remaining())
		}
		if a.Utilization() != 0 {
			t.Errorf("Utilization = %f, want 0", a.Utilization())
		}
	}
}

func TestMetricsAccounting(t *testing.T) {
	a := NewWithSize(1024)

	a.Alloc(100)
	a.Alloc(100)
	a.Alloc(2048) // fails
	a.Reset()
	a.Alloc(100)

	m := a.Metrics()
	if m.Offset != 100 {
		t.Errorf("Offset = %d, want 100", m.Offset)
	}
	if m.Capacity != 1024 {
		t.Errorf("Capacity = %d, want 1024", m.Capacity)
	}
	if m.Remaining != 924 {
		t.Errorf("Remaining = %d, want 924", m.Remaining)
	}
	if m.Allocs != 3 {
		t.Errorf("Allocs = %d, want 3 (counters survive Reset)", m.Allocs)
	}
	if m.Fails != 1 {
		t.Errorf("Fails = %d, want 1", m.Fails)
	}
	if m.Resets != 1 {
		t.Errorf("Resets = %d, want 1", m.Resets)
	}
}

func TestUtilization(t *testing.T) {
	a := NewWithSize(1024)

	if a.Utilization() != 0 {
		t.Errorf("empty Utilization = %f, want 0", a.Utilization())
	}

	a.Alloc(256)
	if got := a.Utilization(); got != 0.25 {
		t.Errorf("Utilization = %f, want 0.25", got)
	}

	a.Alloc(768)
	if got := a.Utilization(); got != 1.0 {
		t.Errorf("Utilization = %f, want 1.0", got)
	}

	a.Reset()
	if a.Utilization() != 0 {
		t.Errorf("Utilization after Reset = %f, want 0", a.Utilization())
	}
}

func TestPaddingAccounting(t *testing.T) {
	buf := alignedWindow(t, 64, 8)
	a := New(buf)

	a.AllocAligned(1, 1) // [0, 1)
	a.AllocAligned(1, 8) // pad 7, [8, 9)
	a.AllocAligned(2, 2) // pad 1, [10, 12)

	m := a.Metrics()
	if m.Padding != 8 {
		t.Errorf("Padding = %d, want 8", m.Padding)
	}
	if m.Offset != 12 {
		t.Errorf("Offset = %d, want 12", m.Offset)
	}
}

func TestFingerprint(t *testing.T) {
	a := NewWithSize(256)

	initial := a.Fingerprint()

	b, err := a.Alloc(16)
	if err != nil {
		t.Fatalf("Alloc(16) error = %v", err)
	}

	// Allocation alone does not touch the buffer.
	if got := a.Fingerprint(); got != initial {
		t.Errorf("Fingerprint changed after allocation without writes")
	}

	b[0] = 0x5A
	written := a.Fingerprint()
	if written == initial {
		t.Error("Fingerprint did not change after a write")
	}

	// Reset leaves contents untouched, so the fingerprint is stable.
	a.Reset()
	if got := a.Fingerprint(); got != written {
		t.Error("Fingerprint changed across Reset")
	}
}
