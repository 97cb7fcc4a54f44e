package cssselect

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_Render(t *testing.T) {
	tests := []struct {
		name  string
		build func() *Builder
		want  string
	}{
		{
			name:  "element",
			build: func() *Builder { return Element("div") },
			want:  "div",
		},
		{
			name:  "id with classes",
			build: func() *Builder { return ID("main").Class("container").Class("editable") },
			want:  "#main.container.editable",
		},
		{
			name:  "attribute and pseudo-class",
			build: func() *Builder { return Element("a").Attr(`href$=".png"`).PseudoClass("focus") },
			want:  `a[href$=".png"]:focus`,
		},
		{
			name:  "pseudo-element",
			build: func() *Builder { return Element("p").PseudoElement("first-line") },
			want:  "p::first-line",
		},
		{
			name: "every kind",
			build: func() *Builder {
				return Element("input").ID("q").Class("a").Class("b").
					Attr("type=text").Attr("required").
					PseudoClass("focus").PseudoClass("not(:disabled)").
					PseudoElement("placeholder")
			},
			want: "input#q.a.b[type=text][required]:focus:not(:disabled)::placeholder",
		},
		{
			name:  "starts with class",
			build: func() *Builder { return Class("btn").PseudoClass("hover") },
			want:  ".btn:hover",
		},
		{
			name:  "starts with attribute",
			build: func() *Builder { return Attr("data-x").Attr("lang|=en") },
			want:  "[data-x][lang|=en]",
		},
		{
			name:  "starts with pseudo-class",
			build: func() *Builder { return PseudoClass("nth-of-type(even)").PseudoClass("last-child") },
			want:  ":nth-of-type(even):last-child",
		},
		{
			name:  "starts with pseudo-element",
			build: func() *Builder { return PseudoElement("after") },
			want:  "::after",
		},
		{
			name:  "empty builder",
			build: New,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.build().Render()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuilder_RenderIsIdempotent(t *testing.T) {
	b := Element("li").Class("item").Class("active").PseudoClass("hover")

	first, err := b.Render()
	require.NoError(t, err)
	second, err := b.Render()
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// A later fragment still renders from the stored pieces.
	b.PseudoClass("focus")
	third, err := b.Render()
	require.NoError(t, err)
	assert.Equal(t, "li.item.active:hover:focus", third)
	assert.Equal(t, third, b.String())
}

func TestBuilder_Duplicate(t *testing.T) {
	tests := []struct {
		name  string
		build func() *Builder
		kind  Kind
	}{
		{name: "element twice", build: func() *Builder { return Element("a").Element("a") }, kind: KindElement},
		{name: "id twice", build: func() *Builder { return ID("a").ID("b") }, kind: KindID},
		{name: "pseudo-element twice", build: func() *Builder { return PseudoElement("before").PseudoElement("after") }, kind: KindPseudoElement},
		{name: "element after id", build: func() *Builder { return Element("a").ID("x").Element("b") }, kind: KindElement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.build().Render()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrDuplicateFragment)

			var dup *DuplicateFragmentError
			require.ErrorAs(t, err, &dup)
			assert.Equal(t, tt.kind, dup.Kind)
		})
	}
}

func TestBuilder_OrderViolation(t *testing.T) {
	tests := []struct {
		name  string
		build func() *Builder
		kind  Kind
		after Kind
	}{
		{name: "id after class", build: func() *Builder { return Class("y").ID("x") }, kind: KindID, after: KindClass},
		{name: "element after id", build: func() *Builder { return ID("x").Element("a") }, kind: KindElement, after: KindID},
		{name: "class after attribute", build: func() *Builder { return Attr("x").Class("y") }, kind: KindClass, after: KindAttribute},
		{name: "attribute after pseudo-class", build: func() *Builder { return PseudoClass("hover").Attr("x") }, kind: KindAttribute, after: KindPseudoClass},
		{name: "pseudo-class after pseudo-element", build: func() *Builder { return PseudoElement("after").PseudoClass("hover") }, kind: KindPseudoClass, after: KindPseudoElement},
		{name: "class after pseudo-element", build: func() *Builder { return Element("p").PseudoElement("after").Class("x") }, kind: KindClass, after: KindPseudoElement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.build().Render()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrOrderViolation)
			assert.NotErrorIs(t, err, ErrDuplicateFragment)

			var ov *OrderViolationError
			require.ErrorAs(t, err, &ov)
			assert.Equal(t, tt.kind, ov.Kind)
			assert.Equal(t, tt.after, ov.After)
		})
	}
}

func TestBuilder_FirstErrorSticks(t *testing.T) {
	b := Class("y").ID("x")
	first := b.Err()
	require.Error(t, first)

	b.Element("a").Class("z")
	assert.Same(t, first, b.Err())
	assert.Empty(t, b.String())
}

func TestBuilder_AddUnknownKind(t *testing.T) {
	_, err := New().Add(Kind(42), "x").Render()
	assert.ErrorIs(t, err, ErrUnknownKind)
}

// model mirrors the grammar rules independently of Builder: the first failing
// step and whether it failed on uniqueness or on order.
func model(seq []Kind) (failAt int, wantErr error) {
	used := map[Kind]bool{}
	latest := Kind(-1)
	for i, k := range seq {
		if !k.Repeatable() && used[k] {
			return i, ErrDuplicateFragment
		}
		if k < latest {
			return i, ErrOrderViolation
		}
		used[k] = true
		if k > latest {
			latest = k
		}
	}
	return -1, nil
}

func permutations(kinds []Kind) [][]Kind {
	if len(kinds) <= 1 {
		return [][]Kind{append([]Kind(nil), kinds...)}
	}
	var out [][]Kind
	for i := range kinds {
		rest := make([]Kind, 0, len(kinds)-1)
		rest = append(rest, kinds[:i]...)
		rest = append(rest, kinds[i+1:]...)
		for _, p := range permutations(rest) {
			out = append(out, append([]Kind{kinds[i]}, p...))
		}
	}
	return out
}

func sequences(n int) [][]Kind {
	if n == 0 {
		return [][]Kind{nil}
	}
	var out [][]Kind
	for _, prefix := range sequences(n - 1) {
		for _, k := range Kinds {
			seq := append(append([]Kind(nil), prefix...), k)
			out = append(out, seq)
		}
	}
	return out
}

func buildSeq(seq []Kind) (*Builder, int) {
	b := New()
	for i, k := range seq {
		b.Add(k, fmt.Sprintf("v%d", i))
		if b.Err() != nil {
			return b, i
		}
	}
	return b, -1
}

func TestBuilder_OrderMatchesModel(t *testing.T) {
	cases := permutations(Kinds)
	require.Len(t, cases, 720)
	cases = append(cases, sequences(4)...)

	for _, seq := range cases {
		wantAt, wantErr := model(seq)
		b, gotAt := buildSeq(seq)

		if wantErr == nil {
			require.NoError(t, b.Err(), "sequence %v", seq)
			continue
		}
		require.Equal(t, wantAt, gotAt, "sequence %v", seq)
		require.True(t, errors.Is(b.Err(), wantErr), "sequence %v: got %v, want %v", seq, b.Err(), wantErr)
	}
}

func TestBuilder_ValidSequencesRenderInGrammarOrder(t *testing.T) {
	prefix := map[Kind]func(string) string{
		KindElement:       func(v string) string { return v },
		KindID:            func(v string) string { return "#" + v },
		KindClass:         func(v string) string { return "." + v },
		KindAttribute:     func(v string) string { return "[" + v + "]" },
		KindPseudoClass:   func(v string) string { return ":" + v },
		KindPseudoElement: func(v string) string { return "::" + v },
	}

	for _, seq := range sequences(4) {
		if _, err := model(seq); err != nil {
			continue
		}
		b, _ := buildSeq(seq)

		want := ""
		for i, k := range seq {
			want += prefix[k](fmt.Sprintf("v%d", i))
		}
		got, err := b.Render()
		require.NoError(t, err)
		require.Equal(t, want, got, "sequence %v", seq)
	}
}

func TestKind_ParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{in: "element", want: KindElement},
		{in: "tag", want: KindElement},
		{in: "id", want: KindID},
		{in: "class", want: KindClass},
		{in: "attr", want: KindAttribute},
		{in: "attribute", want: KindAttribute},
		{in: "pseudoClass", want: KindPseudoClass},
		{in: "pseudo-class", want: KindPseudoClass},
		{in: " Pseudo-Element ", want: KindPseudoElement},
		{in: "pseudoElement", want: KindPseudoElement},
		{in: "combinator", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKind(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownKind)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "pseudoClass", KindPseudoClass.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
	for _, k := range Kinds {
		parsed, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}
}
