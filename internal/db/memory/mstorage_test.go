package memory

import (
	"context"
	"errors"
	"testing"
)

func TestSet(t *testing.T) {
	type args[T any] struct {
		key  string
		val  *T
		m    *MStorage
		opts []func(*SetOptions)
	}
	type testCase[T any] struct {
		name    string
		args    args[T]
		wantErr error
	}
	type target struct {
		Key string
		Val int
	}
	ms := NewMemStorage()
	tests := []testCase[target]{
		{
			name: "default",
			args: args[target]{
				key:  "key1",
				val:  &target{Key: "key1", Val: 1},
				m:    ms,
				opts: nil,
			},
		}, {
			name: "duplicate records",
			args: args[target]{
				key:  "key1",
				val:  &target{Key: "key1", Val: 2},
				m:    ms,
				opts: nil,
			},
			wantErr: ErrDuplicateKey,
		}, {
			name: "overwrite",
			args: args[target]{
				key:  "key1",
				val:  &target{Key: "key1", Val: 3},
				m:    ms,
				opts: []func(*SetOptions){WithOverwrite()},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Set[target](t.Context(), tt.args.key, tt.args.val, tt.args.m, tt.args.opts...)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("%s: Set() error = %+v, wantErr %+v", tt.name, err, tt.wantErr)
			}

			if tt.wantErr == nil {
				val, getErr := Get[target](t.Context(), tt.args.key, tt.args.m)
				if getErr != nil {
					t.Fatal(getErr)
				}
				if val.Key != tt.args.val.Key || val.Val != tt.args.val.Val {
					t.Errorf("%s: Set() Val = %+v, want %+v", tt.name, val, tt.args.val)
				}
			}
		})
	}
}

func TestFilterAll(t *testing.T) {
	ms := NewMemStorage()
	ctx := t.Context()
	for i, key := range []string{"post:1", "post:2", "meta:1:k"} {
		v := i
		if err := Set[int](ctx, key, &v, ms); err != nil {
			t.Fatal(err)
		}
	}

	all, err := GetAll[int](ctx, "post:", ms)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 {
		t.Errorf("GetAll() len = %d, want 2", len(all))
	}

	odd, err := FilterAll[int](ctx, "", ms, func(v int) bool { return v%2 == 1 })
	if err != nil {
		t.Fatal(err)
	}
	if len(odd) != 1 || odd[0] != 1 {
		t.Errorf("FilterAll() = %v, want [1]", odd)
	}
}

func TestDelete(t *testing.T) {
	ms := NewMemStorage()
	ctx := t.Context()
	v := 1
	if err := Set[int](ctx, "k", &v, ms); err != nil {
		t.Fatal(err)
	}
	if err := Delete(ctx, "k", ms); err != nil {
		t.Fatal(err)
	}
	if _, err := Get[int](ctx, "k", ms); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() after Delete() error = %v, want %v", err, ErrNotFound)
	}
	if err := Delete(ctx, "missing", ms); err != nil {
		t.Errorf("Delete() missing key error = %v", err)
	}
}

func TestDeleteFunc(t *testing.T) {
	ms := NewMemStorage()
	ctx := t.Context()
	for i, key := range []string{"n:1", "n:2", "n:3", "other:4"} {
		v := i + 1
		if err := Set[int](ctx, key, &v, ms); err != nil {
			t.Fatal(err)
		}
	}

	removed, err := DeleteFunc[int](ctx, "n:", ms, func(v int) bool { return v >= 2 })
	if err != nil {
		t.Fatal(err)
	}
	if removed != 2 {
		t.Errorf("DeleteFunc() removed = %d, want 2", removed)
	}
	if ms.Len() != 2 || !ms.IsExist("n:1") || !ms.IsExist("other:4") {
		t.Errorf("DeleteFunc() left %d keys, want n:1 and other:4", ms.Len())
	}
}

func TestCanceledContext(t *testing.T) {
	ms := NewMemStorage()
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	v := 1
	if err := Set[int](ctx, "k", &v, ms); !errors.Is(err, context.Canceled) {
		t.Errorf("Set() error = %v, want %v", err, context.Canceled)
	}
	if ms.Len() != 0 {
		t.Errorf("Len() = %d, want 0", ms.Len())
	}
}
