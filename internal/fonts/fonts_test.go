package fonts

import "testing"

func TestSelectors(t *testing.T) {
	names := Selectors()
	if len(names) == 0 {
		t.Fatal("Selectors() returned no entries")
	}

	found := false
	for _, name := range names {
		if name == DefaultSelector {
			found = true
		}
	}
	if !found {
		t.Errorf("Selectors() missing default selector %q: %v", DefaultSelector, names)
	}

	// Sorted order
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("Selectors() not sorted: %v", names)
			break
		}
	}
}

func TestFace_KnownSelectors(t *testing.T) {
	for _, name := range Selectors() {
		t.Run(name, func(t *testing.T) {
			face := Face(name, 48)
			if face == nil {
				t.Fatalf("Face(%q, 48) returned nil", name)
			}
			if face.Metrics().Height == 0 {
				t.Errorf("Face(%q, 48) has zero line height", name)
			}
		})
	}
}

func TestFace_UnknownSelectorFallsBack(t *testing.T) {
	face := Face("no-such-style", 32)
	if face == nil {
		t.Fatal("Face with unknown selector returned nil")
	}
}

func TestFace_CachedAcrossCalls(t *testing.T) {
	// Two loads of the same selector must hit the same parsed font.
	_ = Face("print", 10)
	mu.Lock()
	first := parsed["print"]
	mu.Unlock()

	_ = Face("print", 99)
	mu.Lock()
	second := parsed["print"]
	mu.Unlock()

	if first != second {
		t.Error("parsed font was not cached between Face calls")
	}
}
