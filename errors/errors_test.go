package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseBuild,
				Kind:   KindSealedBlock,
				Block:  "join",
				Detail: "cannot add predecessor after seal",
			},
			contains: []string{"[build]", "sealed_block", "at block join", "cannot add predecessor"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseSeal,
				Kind:  KindDoubleSeal,
			},
			contains: []string{"[seal]", "double_seal"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseParse,
				Kind:   KindInvalidData,
				Detail: "parse script",
				Cause:  errors.New("yaml: bad indentation"),
			},
			contains: []string{"[parse]", "invalid_data", "parse script", "caused by", "bad indentation"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseReplay,
		Kind:  KindInvalidInput,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}
	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase: PhaseSeal,
		Kind:  KindDoubleSeal,
		Block: "loop",
	}

	if !err.Is(&Error{Phase: PhaseSeal, Kind: KindDoubleSeal}) {
		t.Error("Is should match same phase and kind")
	}
	if err.Is(&Error{Phase: PhaseBuild, Kind: KindDoubleSeal}) {
		t.Error("Is should not match different phase")
	}
	if err.Is(&Error{Phase: PhaseSeal, Kind: KindSealedBlock}) {
		t.Error("Is should not match different kind")
	}
	if err.Is(errors.New("double_seal")) {
		t.Error("Is should not match a plain error")
	}

	target := &Error{Phase: PhaseSeal, Kind: KindDoubleSeal}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseReplay, KindUnknownBlock).
		Block("mystery").
		Cause(cause).
		Detail("step %d", 7).
		Build()

	if err.Phase != PhaseReplay {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseReplay)
	}
	if err.Kind != KindUnknownBlock {
		t.Errorf("Kind = %v, want %v", err.Kind, KindUnknownBlock)
	}
	if err.Block != "mystery" {
		t.Errorf("Block = %q, want 'mystery'", err.Block)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "step 7" {
		t.Errorf("Detail = %q, want 'step 7'", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("SealedBlock", func(t *testing.T) {
		err := SealedBlock("join")
		if err.Phase != PhaseBuild || err.Kind != KindSealedBlock {
			t.Errorf("phase/kind = %v/%v", err.Phase, err.Kind)
		}
		if err.Block != "join" {
			t.Errorf("Block = %q, want 'join'", err.Block)
		}
	})

	t.Run("DoubleSeal", func(t *testing.T) {
		err := DoubleSeal("header")
		if err.Kind != KindDoubleSeal {
			t.Errorf("Kind = %v, want %v", err.Kind, KindDoubleSeal)
		}
	})

	t.Run("UnsealedPending", func(t *testing.T) {
		err := UnsealedPending([]string{"b1", "b3"})
		if err.Kind != KindUnsealedPending {
			t.Errorf("Kind = %v, want %v", err.Kind, KindUnsealedPending)
		}
		if !strings.Contains(err.Detail, "b1, b3") {
			t.Errorf("Detail = %q, should list the blocks", err.Detail)
		}
	})

	t.Run("UnknownBlock", func(t *testing.T) {
		err := UnknownBlock(PhaseReplay, "ghost")
		if err.Kind != KindUnknownBlock || err.Phase != PhaseReplay {
			t.Errorf("phase/kind = %v/%v", err.Phase, err.Kind)
		}
		if err.Block != "ghost" {
			t.Errorf("Block = %q, want 'ghost'", err.Block)
		}
	})

	t.Run("DuplicateBlock", func(t *testing.T) {
		err := DuplicateBlock("entry")
		if err.Kind != KindDuplicateBlock {
			t.Errorf("Kind = %v, want %v", err.Kind, KindDuplicateBlock)
		}
	})

	t.Run("InvalidInput", func(t *testing.T) {
		err := InvalidInput(PhaseParse, "script has no steps")
		if err.Kind != KindInvalidInput {
			t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidInput)
		}
	})

	t.Run("ParseFailed", func(t *testing.T) {
		cause := errors.New("bad yaml")
		err := ParseFailed("script", cause)
		if err.Kind != KindInvalidData || err.Phase != PhaseParse {
			t.Errorf("phase/kind = %v/%v", err.Phase, err.Kind)
		}
		if !errors.Is(err, cause) {
			t.Error("cause not reachable")
		}
	})

	t.Run("Wrap", func(t *testing.T) {
		cause := errors.New("inner")
		err := Wrap(PhaseRender, KindInvalidData, cause, "marshal dot")
		if err.Phase != PhaseRender || err.Kind != KindInvalidData {
			t.Errorf("phase/kind = %v/%v", err.Phase, err.Kind)
		}
		if !errors.Is(err, cause) {
			t.Error("cause not reachable")
		}
	})
}
