package hint

import (
	"errors"
	"testing"
)

var (
	intClass = Class{Module: "builtins", Name: "int"}
	strClass = Class{Module: "builtins", Name: "str"}
)

func TestClassRepr(t *testing.T) {
	if got := intClass.Repr(); got != "builtins.int" {
		t.Fatalf("Repr: got %q", got)
	}
	if got := (Class{Name: "Local"}).Repr(); got != "Local" {
		t.Fatalf("Repr without module: got %q", got)
	}
}

func TestSignOfTotality(t *testing.T) {
	cases := []struct {
		name string
		raw  any
		sign Sign
		ok   bool
	}{
		{"class", intClass, SignClass, true},
		{"forward ref", "builtins.int", SignForwardRef, true},
		{"tuple union", NewTuple(intClass, strClass), SignTupleUnion, true},
		{"any singleton", Any(), SignAny, true},
		{"none singleton", None(), SignNone, true},
		{"nil", nil, SignNone, true},
		{"unrecognized", 42, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sign, ok := SignOf(tc.raw)
			if ok != tc.ok {
				t.Fatalf("SignOf ok: got %v, want %v", ok, tc.ok)
			}
			if ok && sign != tc.sign {
				t.Fatalf("SignOf: got %s, want %s", sign, tc.sign)
			}
		})
	}
}

func TestUnionReprPreservesOrderAndDuplicates(t *testing.T) {
	u, err := Union(intClass, intClass, strClass)
	if err != nil {
		t.Fatalf("Union: %v", err)
	}
	if got := u.Repr(); got != "Union[builtins.int, builtins.int, builtins.str]" {
		t.Fatalf("Repr: got %q", got)
	}
	if u.Sign() != SignUnion {
		t.Fatalf("Sign: got %s", u.Sign())
	}
	children := u.Children()
	if len(children) != 3 {
		t.Fatalf("Children: got %d", len(children))
	}
	if children[0] != any(intClass) || children[2] != any(strClass) {
		t.Fatalf("Children out of order: %v", children)
	}
}

func TestUnionNilMemberBecomesNone(t *testing.T) {
	u, err := Union(intClass, nil)
	if err != nil {
		t.Fatalf("Union: %v", err)
	}
	if got := u.Repr(); got != "Union[builtins.int, None]" {
		t.Fatalf("Repr: got %q", got)
	}
	if u.Children()[1] != any(None()) {
		t.Fatalf("nil member not coerced to the None singleton")
	}
}

func TestUnionRejectsInvalidMember(t *testing.T) {
	if _, err := Union(intClass, 42); !errors.Is(err, ErrMember) {
		t.Fatalf("expected ErrMember, got %v", err)
	}
	if _, err := Union(NewTuple(intClass)); !errors.Is(err, ErrMember) {
		t.Fatalf("nested tuple union: expected ErrMember, got %v", err)
	}
}

func TestUnionRejectsUnhashableMember(t *testing.T) {
	if _, err := Union(intClass, []any{strClass}); !errors.Is(err, ErrUnhashable) {
		t.Fatalf("expected ErrUnhashable, got %v", err)
	}
}

func TestSingletonsAreSelfCaching(t *testing.T) {
	if Any() != Any() {
		t.Fatalf("Any() minted distinct instances")
	}
	if !Any().SelfCaching() || !None().SelfCaching() {
		t.Fatalf("singletons must be self-caching")
	}
	u, err := Union(intClass, strClass)
	if err != nil {
		t.Fatalf("Union: %v", err)
	}
	if u.SelfCaching() {
		t.Fatalf("compound hints must not be self-caching")
	}
}

func TestAnnotatedReprAndAccessors(t *testing.T) {
	a, err := Annotated(intClass, "meta", 50)
	if err != nil {
		t.Fatalf("Annotated: %v", err)
	}
	if got := a.Repr(); got != "Annotated[builtins.int, 'meta', int(50)]" {
		t.Fatalf("Repr: got %q", got)
	}
	if a.Wrapped() != any(intClass) {
		t.Fatalf("Wrapped: got %v", a.Wrapped())
	}
	if md := a.Metadata(); len(md) != 2 {
		t.Fatalf("Metadata: got %v", md)
	}
}

func TestAnnotatedRejectsUnhashableMetadata(t *testing.T) {
	if _, err := Annotated(intClass, []any{}); !errors.Is(err, ErrUnhashable) {
		t.Fatalf("expected ErrUnhashable, got %v", err)
	}
}

func TestContainerRepr(t *testing.T) {
	listClass := Class{Module: "builtins", Name: "list"}
	c, err := Container(listClass, intClass)
	if err != nil {
		t.Fatalf("Container: %v", err)
	}
	if got := c.Repr(); got != "builtins.list[builtins.int]" {
		t.Fatalf("Repr: got %q", got)
	}
	if c.Origin() != listClass {
		t.Fatalf("Origin: got %v", c.Origin())
	}
}

func TestReprOf(t *testing.T) {
	cases := []struct {
		name string
		raw  any
		want string
	}{
		{"class", intClass, "builtins.int"},
		{"forward ref quoted", "builtins.int", "'builtins.int'"},
		{"tuple union", NewTuple(intClass, strClass), "(builtins.int, builtins.str)"},
		{"nil", nil, "None"},
		{"any", Any(), "Any"},
		{"hashable scalar", 42, "int(42)"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ReprOf(tc.raw)
			if err != nil {
				t.Fatalf("ReprOf: %v", err)
			}
			if got != tc.want {
				t.Fatalf("ReprOf: got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestReprOfUnhashable(t *testing.T) {
	for _, raw := range []any{
		[]any{intClass},
		map[string]any{},
		NewTuple(intClass, []any{}),
	} {
		if _, err := ReprOf(raw); !errors.Is(err, ErrUnhashable) {
			t.Fatalf("ReprOf(%T): expected ErrUnhashable, got %v", raw, err)
		}
	}
}

func TestTupleImmutability(t *testing.T) {
	members := []any{intClass, strClass}
	tu := NewTuple(members...)
	members[0] = strClass
	if tu.At(0) != any(intClass) {
		t.Fatalf("Tuple aliased its constructor slice")
	}
	got := tu.Members()
	got[1] = intClass
	if tu.At(1) != any(strClass) {
		t.Fatalf("Members() exposed internal storage")
	}
}
