package store

import (
	"errors"
	"reflect"
	"testing"

	"github.com/sbezverk/sortbench/report"
)

var (
	i1 = &report.Series{Name: "simple", Label: "Simple sort"}
	i2 = &report.Series{Name: "merge", Label: "Merge sort"}
	i3 = &report.Series{Name: "baseline", Label: "Baseline sort"}
)

func TestAdd(t *testing.T) {
	s := NewStore()
	defer s.Stop()
	if err := s.Add(i1); err != nil {
		t.Fatalf("supposed to succeed but failed with error: %+v", err)
	}
	if err := s.Add(i1); !errors.Is(err, ErrAlreadyExist) {
		t.Fatalf("supposed to fail with ErrAlreadyExist but got: %+v", err)
	}
}

func TestRemove(t *testing.T) {
	s := NewStore()
	defer s.Stop()
	s.Add(i2)
	s.Add(i3)

	if err := s.Remove(i2); err != nil {
		t.Fatalf("supposed to succeed but failed with error: %+v", err)
	}
	if err := s.Remove(i1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("supposed to fail with ErrNotFound but got: %+v", err)
	}
	if l := s.List(); len(l) != 1 || l[0].Key() != i3.Key() {
		t.Fatalf("store supposed to hold only %s", i3.Key())
	}
}

func TestGet(t *testing.T) {
	s := NewStore()
	defer s.Stop()
	s.Add(i1)
	s.Add(i3)

	i, err := s.Get(i1.Key())
	if err != nil {
		t.Fatalf("item %s supposed to be found", i1.Key())
	}
	if !reflect.DeepEqual(i1, i.(*report.Series)) {
		t.Fatalf("original item %s and recovered %s do not match", i1.Key(), i.Key())
	}
	if _, err := s.Get(i2.Key()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("item %s is not supposed to be found", i2.Key())
	}
}

func TestList(t *testing.T) {
	s := NewStore()
	defer s.Stop()
	s.Add(i1)
	s.Add(i2)
	s.Add(i3)

	l := s.List()
	if len(l) != 3 {
		t.Fatalf("store supposed to have 3 items")
	}
	for i, expect := range []string{"simple", "merge", "baseline"} {
		if l[i].Key() != expect {
			t.Fatalf("item %d: expected %s, got %s", i, expect, l[i].Key())
		}
	}
}
