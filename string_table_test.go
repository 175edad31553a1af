package sharedobject

import (
	"testing"

	"github.com/pkg/errors"
)

func TestStringTable_AppendResolve(t *testing.T) {
	table := &StringTable{}
	for i, s := range []string{"a", "", "héllo", "a"} {
		table.Append(s)
		got, err := table.Resolve(i)
		if err != nil {
			t.Fatalf("resolve %d: %v", i, err)
		}
		if got != s {
			t.Errorf("resolve %d: got %q, want %q", i, got, s)
		}
	}
	if table.Len() != 4 {
		t.Errorf("expected duplicates to get their own entry, got %d entries", table.Len())
	}
}

func TestStringTable_Dangling(t *testing.T) {
	table := &StringTable{}
	table.Append("only")
	for _, index := range []int{-1, 1, 2, 100} {
		if _, err := table.Resolve(index); !errors.Is(err, ErrDanglingReference) {
			t.Errorf("resolve %d: got %v, want %v", index, err, ErrDanglingReference)
		}
	}
}
