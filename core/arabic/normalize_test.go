package arabic

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "ascii lowered", in: "Ahmed Samir", want: "ahmedsamir"},
		{name: "whitespace stripped", in: " احمد  سمير ", want: "احمدسمير"},
		{name: "alef hamza above", in: "أحمد", want: "احمد"},
		{name: "alef hamza below", in: "إبراهيم", want: "ابراهيم"},
		{name: "alef madda", in: "آمنة", want: "امنه"},
		{name: "taa marbuta", in: "فاطمة", want: "فاطمه"},
		{name: "alef maksura", in: "مصطفى", want: "مصطفي"},
		{name: "waw hamza", in: "مؤمن", want: "مومن"},
		{name: "yaa hamza", in: "فائز", want: "فايز"},
		{name: "standalone hamza", in: "علاء", want: "علا"},
		{name: "diacritics stripped", in: "مُحَمَّد", want: "محمد"},
		{name: "tatweel stripped", in: "محـــمد", want: "محمد"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeDeterminism(t *testing.T) {
	in := "أُستاذة فَاطِمة الزهراء"
	first := Normalize(in)
	for i := 0; i < 100; i++ {
		if got := Normalize(in); got != first {
			t.Fatalf("Normalize is not deterministic: %q != %q", got, first)
		}
	}
}

func TestEquivalent(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{name: "same string", a: "احمد", b: "احمد", want: true},
		{name: "alef variants", a: "أحمد سمير", b: "احمد سمير", want: true},
		{name: "taa marbuta vs haa", a: "فاطمة", b: "فاطمه", want: true},
		{name: "maksura vs yaa", a: "مصطفى علي", b: "مصطفي علي", want: true},
		{name: "diacritized vs plain", a: "مُحَمَّد", b: "محمد", want: true},
		{name: "different names", a: "احمد", b: "محمود", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equivalent(tt.a, tt.b); got != tt.want {
				t.Errorf("Equivalent(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
