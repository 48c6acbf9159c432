package config

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/gogpu/gfx"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		in     string
		delims string
		want   []string
	}{
		{"Rectangle 0,0,10,10 | FillColor 255,0,0", "|", []string{"Rectangle 0,0,10,10", "FillColor 255,0,0"}},
		{"a||b|", "|", []string{"a", "b"}},
		{"  ", "|", nil},
		{"One, Two;Three", ",;", []string{"One", "Two", "Three"}},
	}
	for _, tt := range tests {
		if got := Tokenize(tt.in, tt.delims); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Tokenize(%q, %q) = %q, want %q", tt.in, tt.delims, got, tt.want)
		}
	}
}

func TestTokenize2(t *testing.T) {
	tests := []struct {
		in     string
		parens bool
		want   []string
	}{
		{" 0, 0, 10, 10", true, []string{"0", "0", "10", "10"}},
		{"(0,0,10,10)", true, []string{"0", "0", "10", "10"}},
		{"((1,2))", true, []string{"1", "2"}},
		{"(1*2),(3+4)", true, []string{"(1*2)", "(3+4)"}},
		{"1,(max(2,3)),4", true, []string{"1", "(max(2,3))", "4"}},
		{"(1,2)", false, []string{"(1", "2)"}},
		{"1,,2", true, []string{"1", "", "2"}},
		{"", true, nil},
		{"()", true, nil},
	}
	for _, tt := range tests {
		if got := Tokenize2(tt.in, ',', tt.parens); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Tokenize2(%q, %v) = %q, want %q", tt.in, tt.parens, got, tt.want)
		}
	}
}

func TestEval(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"1+2*3", 7},
		{"(1+2)*3", 9},
		{"-4+10", 6},
		{"10/4", 2.5},
		{"7%4", 3},
		{"2^3^2", 512},
		{" ( 2 * ( 3 + 4 ) ) ", 14},
		{"PI", math.Pi},
		{"--3", 3},
	}
	for _, tt := range tests {
		got, err := Eval(tt.in)
		if err != nil {
			t.Errorf("Eval(%q) error: %v", tt.in, err)
			continue
		}
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Eval(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestEvalErrors(t *testing.T) {
	for _, in := range []string{"", "1+", "(1", "1)", "2*x", "1/0", "5%0", "1..2"} {
		if _, err := Eval(in); !errors.Is(err, ErrFormula) {
			t.Errorf("Eval(%q) error = %v, want ErrFormula", in, err)
		}
	}
}

func TestParseNumbers(t *testing.T) {
	intTests := []struct {
		in   string
		want int
	}{
		{"42", 42},
		{" -7 ", -7},
		{"10.9", 10},
		{"-10.9", -10},
		{"(10*2)", 20},
		{"(7/2)", 3},
		{"abc", -1},
		{"", -1},
		{"(1/0)", -1},
		{"1e12", -1},
	}
	for _, tt := range intTests {
		if got := ParseInt(tt.in, -1); got != tt.want {
			t.Errorf("ParseInt(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
	if got := ParseFloat("(1/4)", 0); got != 0.25 {
		t.Errorf("ParseFloat((1/4)) = %v, want 0.25", got)
	}
	if got := ParseFloat("NaN", 3); got != 3 {
		t.Errorf("ParseFloat(NaN) = %v, want default", got)
	}
}

func TestParseColor(t *testing.T) {
	def := gfx.RGB(1, 2, 3)
	tests := []struct {
		in   string
		want gfx.Color
	}{
		{"255,0,0", gfx.RGB(255, 0, 0)},
		{" 10, 20, 30, 40", gfx.ARGB(40, 10, 20, 30)},
		{"(100+200),-5,(2*64),128", gfx.ARGB(128, 255, 0, 128)},
		{"FF8000", gfx.RGB(255, 128, 0)},
		{"ff800080", gfx.ARGB(128, 255, 128, 0)},
		{"", def},
		{"255,0", def},
		{"1,2,3,4,5", def},
		{"red", def},
		{"GGGGGG", def},
		{"1,x,3", def},
	}
	for _, tt := range tests {
		if got := ParseColor(tt.in, def); got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestMapSection(t *testing.T) {
	m := MapSection{"Shape": "Rectangle 0,0,1,1", "shape2": "x"}
	if got := m.ReadString("Shape"); got != "Rectangle 0,0,1,1" {
		t.Errorf("ReadString(Shape) = %q", got)
	}
	if got := m.ReadString("SHAPE2"); got != "x" {
		t.Errorf("ReadString(SHAPE2) = %q, want case-insensitive match", got)
	}
	if got := m.ReadString("Shape3"); got != "" {
		t.Errorf("ReadString(Shape3) = %q, want empty", got)
	}
}

const testSkin = `
[Variables]
Accent = "255,128,0"
Size = 50

[Background]
Meter = "Shape"
Shape = "Rectangle 0,0,#Size#,#Size# | FillColor #Accent#"
Shape2 = ["Rectangle 0,0,5,5", "StrokeWidth 2"]
Visible = true
Scale = 1.5
Literal = "#Missing# and #Size#"

[Label]
Meter = "String"
`

func TestParseSkin(t *testing.T) {
	s, err := ParseSkin([]byte(testSkin))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := s.Sections(), []string{"Variables", "Background", "Label"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Sections() = %q, want %q", got, want)
	}
	if !s.Has("label") || s.Has("Nope") {
		t.Error("Has should match sections case-insensitively")
	}
	bg := s.Section("background")
	tests := []struct {
		key, want string
	}{
		{"Shape", "Rectangle 0,0,50,50 | FillColor 255,128,0"},
		{"shape2", "Rectangle 0,0,5,5 | StrokeWidth 2"},
		{"Visible", "1"},
		{"Scale", "1.5"},
		{"Literal", "#Missing# and 50"},
		{"Absent", ""},
	}
	for _, tt := range tests {
		if got := bg.ReadString(tt.key); got != tt.want {
			t.Errorf("ReadString(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
	if got := s.Section("Missing").ReadString("Meter"); got != "" {
		t.Errorf("missing section ReadString = %q, want empty", got)
	}
}

func TestParseSkinErrors(t *testing.T) {
	if _, err := ParseSkin([]byte("Width = 10\n")); !errors.Is(err, ErrNotTable) {
		t.Errorf("top-level scalar error = %v, want ErrNotTable", err)
	}
	if _, err := ParseSkin([]byte("[Broken")); err == nil {
		t.Error("malformed TOML should fail")
	}
	if _, err := LoadSkin("testdata/missing.toml"); err == nil {
		t.Error("LoadSkin(missing) should fail")
	}
}
