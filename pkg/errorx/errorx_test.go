package errorx

import (
	"errors"
	"fmt"
	"testing"
)

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("dial tcp: timeout")
	err := Wrap(cause, CodeDBError, "查询群组失败")

	if !errors.Is(err, cause) {
		t.Fatalf("wrapped error lost cause")
	}
	var codeErr *CodeError
	if !errors.As(err, &codeErr) || codeErr.Code != CodeDBError {
		t.Fatalf("errors.As failed, code=%d", GetCode(err))
	}
}

func TestGetCodeDefaultsToServerBusy(t *testing.T) {
	if got := GetCode(errors.New("plain")); got != CodeServerBusy {
		t.Fatalf("GetCode(plain) = %d, want %d", got, CodeServerBusy)
	}
	if got := GetCode(New(CodeForbidden, "x")); got != CodeForbidden {
		t.Fatalf("GetCode = %d, want %d", got, CodeForbidden)
	}
}

func TestPredicates(t *testing.T) {
	notFound := New(CodeNotFound, "群组不存在")
	forbidden := New(CodeForbidden, "权限不足")
	conflict := New(CodeConflict, "已是群组成员")

	if !IsNotFound(notFound) || IsNotFound(forbidden) {
		t.Fatalf("IsNotFound misclassified")
	}
	if !IsForbidden(forbidden) || IsForbidden(conflict) {
		t.Fatalf("IsForbidden misclassified")
	}
	if !IsConflict(conflict) || IsConflict(notFound) {
		t.Fatalf("IsConflict misclassified")
	}
	// 透过 fmt %w 包装仍可识别
	wrapped := fmt.Errorf("outer: %w", conflict)
	if !IsConflict(wrapped) {
		t.Fatalf("IsConflict lost through %%w wrapping")
	}
}
