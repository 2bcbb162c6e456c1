package diag

import (
	"sync"
	"testing"
)

// TestStableRenderings tests the exact build-log lines tooling greps for
func TestStableRenderings(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{
			name: "detected line",
			got:  Detected(7),
			want: "AOT: Detected cross-component call for import func_idx=7",
		},
		{
			name: "lower stub",
			got:  UnsupportedLower("String", 3, 0).String(),
			want: "String LOWER not yet implemented for func_idx=3, position=0",
		},
		{
			name: "lift stub",
			got:  UnsupportedLift("Record", 12, 2).String(),
			want: "Record LIFT not yet implemented for func_idx=12, position=2",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.want {
				t.Errorf("got %q, want %q", tc.got, tc.want)
			}
		})
	}
}

func TestSeverity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{ClassificationError, SeverityAdvisory},
		{UnsupportedCanonicalType, SeverityBlocking},
		{EncodingError, SeverityBlocking},
		{NameCollision, SeverityBlocking},
	}
	for _, tc := range tests {
		if got := tc.code.Severity(); got != tc.want {
			t.Errorf("%s severity = %v, want %v", tc.code, got, tc.want)
		}
	}

	if Classification(0, "x").Blocking() {
		t.Error("classification diagnostics must be advisory")
	}
	if !UnsupportedLower("List", 0, 0).Blocking() {
		t.Error("unsupported type diagnostics must block")
	}
}

func TestBagConcurrentAdd(t *testing.T) {
	bag := NewBag()

	const workers = 16
	const perWorker = 100
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				bag.Add(UnsupportedLower("String", uint32(w), i))
			}
		}(w)
	}
	wg.Wait()

	if bag.Len() != workers*perWorker {
		t.Errorf("Len() = %d, want %d", bag.Len(), workers*perWorker)
	}
	if !bag.HasBlocking() {
		t.Error("HasBlocking() = false")
	}
}

func TestBagSortAndItems(t *testing.T) {
	bag := NewBag()
	bag.Add(UnsupportedLift("List", 9, 1))
	bag.Add(Classification(2, "bad mark"))
	bag.Add(UnsupportedLower("String", 9, 0))
	bag.Add(UnsupportedLower("Record", 4, 3))

	bag.Sort()
	items := bag.Items()

	wantOrder := []uint32{2, 4, 9, 9}
	for i, d := range items {
		if d.FuncIdx != wantOrder[i] {
			t.Fatalf("item %d func_idx = %d, want %d", i, d.FuncIdx, wantOrder[i])
		}
	}
	if items[2].Position != 0 || items[3].Position != 1 {
		t.Error("diagnostics for the same import must order by position")
	}

	// Items returns a copy
	items[0] = Diagnostic{}
	if bag.Items()[0].FuncIdx != 2 {
		t.Error("mutating the returned slice must not affect the bag")
	}
}

func TestHasBlockingAdvisoryOnly(t *testing.T) {
	bag := NewBag()
	bag.Add(Classification(1, "dangling type index"))
	bag.Add(Classification(5, "marked func outside import space"))
	if bag.HasBlocking() {
		t.Error("advisory-only bag must not block")
	}
}
