package model

import (
	"errors"
	"reflect"
	"testing"
)

func TestSetDomainCountRoundTrip(t *testing.T) {
	s := subunitWith(t, []int{2, 3, 4})

	if err := s.SetDomainCount(5); err != nil {
		t.Fatal(err)
	}
	if got := s.Multipliers(); !reflect.DeepEqual(got, []int{2, 3, 4, 1, 1}) {
		t.Errorf("after growing: %v", got)
	}

	if err := s.SetDomainCount(3); err != nil {
		t.Fatal(err)
	}
	if got := s.Multipliers(); !reflect.DeepEqual(got, []int{2, 3, 4}) {
		t.Errorf("after shrinking back: %v, want original multipliers restored", got)
	}
}

func TestSetDomainCountRejectsZero(t *testing.T) {
	s := subunitWith(t, []int{1})
	if err := s.SetDomainCount(0); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("got %v, want ErrInvalidParameter", err)
	}
}

func TestSetMultiplierRejectsBelowOne(t *testing.T) {
	s := subunitWith(t, []int{2})

	if err := s.SetMultiplier(0, 0); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("m=0: got %v, want ErrInvalidParameter", err)
	}
	if s.Domains[0].M != 2 {
		t.Error("rejected edit must not change the multiplier")
	}
	if err := s.SetMultiplier(5, 3); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("bad index: got %v, want ErrInvalidParameter", err)
	}
}

func TestRotateWrapsModularly(t *testing.T) {
	s := subunitWith(t, []int{1})
	const period = 21

	if err := s.Rotate(0, DOWN, period); err != nil {
		t.Fatal(err)
	}
	if s.Domains[0].Offset != period-1 {
		t.Errorf("offset after down-rotate from 0 = %d, want %d", s.Domains[0].Offset, period-1)
	}
	if err := s.Rotate(0, UP, period); err != nil {
		t.Fatal(err)
	}
	if s.Domains[0].Offset != 0 {
		t.Errorf("offset after rotating back = %d, want 0", s.Domains[0].Offset)
	}
}

func TestRotateTouchesOnlyPhase(t *testing.T) {
	s := subunitWith(t, []int{4})
	s.Domains[0].Direction = DOWN

	if err := s.Rotate(0, UP, 21); err != nil {
		t.Fatal(err)
	}
	if s.Domains[0].M != 4 || s.Domains[0].Direction != DOWN {
		t.Error("rotate must not change multiplier or strand direction")
	}
}
