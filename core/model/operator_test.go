package model

import "testing"

func TestNewOperator(t *testing.T) {
	cases := []struct {
		in   string
		want Operator
	}{
		{"J. R. Smith", "J R SMITH"},
		{"J.  R.  Smith", "J R SMITH"},
		{"smith", "SMITH"},
		{"  Mary   Jones ", "MARY JONES"},
	}
	for _, c := range cases {
		if got := NewOperator(c.in); got != c.want {
			t.Fatalf("NewOperator(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNewOperatorIdempotent(t *testing.T) {
	once := NewOperator("J. R. Smith")
	if twice := NewOperator(string(once)); twice != once {
		t.Fatalf("normalization not idempotent: %q -> %q", once, twice)
	}
}
