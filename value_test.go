package bind

import "testing"

func TestDataSrc(t *testing.T) {
	s := Static(4.5)
	if s.IsDynamic() || s.Value() != 4.5 || s.Name() != "" {
		t.Errorf("Static = %+v", s)
	}
	d := Dynamic[float64]("width")
	if !d.IsDynamic() || d.Name() != "width" || d.Value() != 0 {
		t.Errorf("Dynamic = %+v", d)
	}
	if got := d.String(); got != "$width" {
		t.Errorf("String() = %q, want $width", got)
	}

	var zero DataSrc[string]
	if zero.IsDynamic() {
		t.Error("zero DataSrc is dynamic")
	}
}

func TestDeclKindByName(t *testing.T) {
	for k := DeclBool; k <= DeclImage; k++ {
		got, ok := DeclKindByName(k.String())
		if !ok || got != k {
			t.Errorf("DeclKindByName(%q) = %v, %v", k.String(), got, ok)
		}
	}
	if _, ok := DeclKindByName("float"); ok {
		t.Error("unknown kind resolved")
	}
}

func TestListContextString(t *testing.T) {
	var none *ListContext
	if got := none.String(); got != "<none>" {
		t.Errorf("nil String() = %q", got)
	}
	if got := (&ListContext{Source: "rows", Index: 2}).String(); got != "rows[2]" {
		t.Errorf("String() = %q, want rows[2]", got)
	}
}
