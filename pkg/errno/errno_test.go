package errno

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
)

func TestWithMessageKeepsCode(t *testing.T) {
	e := NotFoundErr.WithMessage("Video not found")
	if e.ErrCode != NotFoundErr.ErrCode {
		t.Fatalf("code = %d, want %d", e.ErrCode, NotFoundErr.ErrCode)
	}
	if e.ErrMsg != "Video not found" {
		t.Fatalf("msg = %q", e.ErrMsg)
	}
	if NotFoundErr.ErrMsg == "Video not found" {
		t.Fatal("WithMessage must not mutate the shared value")
	}
}

func TestConvertErr(t *testing.T) {
	if got := ConvertErr(PermissionErr); got.ErrCode != 403 {
		t.Fatalf("code = %d, want 403", got.ErrCode)
	}

	wrapped := errors.WithMessage(NotFoundErr.WithMessage("gone"), "lookup failed")
	if got := ConvertErr(wrapped); got.ErrCode != 404 || got.ErrMsg != "gone" {
		t.Fatalf("wrapped convert = %+v", got)
	}

	plain := fmt.Errorf("disk on fire")
	got := ConvertErr(plain)
	if got.ErrCode != 500 {
		t.Fatalf("code = %d, want 500 for plain errors", got.ErrCode)
	}
	if got.ErrMsg != "disk on fire" {
		t.Fatalf("msg = %q, want the original message", got.ErrMsg)
	}
}
