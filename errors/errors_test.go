package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

// TestErrorRendering tests the [phase] kind rendering
func TestErrorRendering(t *testing.T) {
	tests := []struct {
		err  *Error
		name string
		want string
	}{
		{
			name: "phase and kind only",
			err:  New(PhaseLower, KindOverflow).Build(),
			want: "[lower] overflow",
		},
		{
			name: "with canonical type",
			err:  Unsupported(PhaseLower, "String"),
			want: "[lower] unsupported: canonical type String - not yet implemented",
		},
		{
			name: "detail without type",
			err:  BadMetadata("mark %d is dangling", 3),
			want: "[classify] bad_metadata: mark 3 is dangling",
		},
		{
			name: "with cause",
			err:  InvalidData(PhaseParse, "decode module", fmt.Errorf("boom")),
			want: "[parse] invalid_data: decode module (caused by: boom)",
		},
		{
			name: "overflow detail",
			err:  Overflow(PhaseLower, 256, "U8"),
			want: "[lower] overflow: canonical type U8 - value 256 does not fit U8",
		},
		{
			name: "invalid scalar",
			err:  InvalidScalar(PhaseLift, 0xD800),
			want: "[lift] invalid_scalar: canonical type Char - 0xD800 is not a Unicode scalar value",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.err.Error(); got != tc.want {
				t.Errorf("Error() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestErrorIs(t *testing.T) {
	err := Overflow(PhaseLower, 300, "U8")
	if !stderrors.Is(err, &Error{Phase: PhaseLower, Kind: KindOverflow}) {
		t.Error("Is should match on phase and kind")
	}
	if stderrors.Is(err, &Error{Phase: PhaseLift, Kind: KindOverflow}) {
		t.Error("Is must not match a different phase")
	}
	if stderrors.Is(err, fmt.Errorf("overflow")) {
		t.Error("Is must not match plain errors")
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("underlying")
	err := New(PhaseEmit, KindInvalidData).Cause(cause).Build()
	if !stderrors.Is(err, cause) {
		t.Error("Unwrap chain should reach the cause")
	}
}

func TestBuilder(t *testing.T) {
	err := New(PhaseGenerate, KindNameCollision).
		CanonType("U32").
		Value(uint32(7)).
		Detail("wrapper %d", 7).
		Build()

	if err.Phase != PhaseGenerate || err.Kind != KindNameCollision {
		t.Errorf("taxonomy = %s/%s", err.Phase, err.Kind)
	}
	if err.Value != uint32(7) || err.Detail != "wrapper 7" {
		t.Errorf("payload = %v %q", err.Value, err.Detail)
	}
}
