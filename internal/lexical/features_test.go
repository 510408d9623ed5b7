package lexical

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract_EmptyInput(t *testing.T) {
	f := Extract("")

	assert.Equal(t, 1, f.TotalLines)
	assert.Equal(t, 0, f.NonEmptyLines)
	assert.Equal(t, 0, f.NumClasses)
	assert.Equal(t, 0, f.NumMethods)
	assert.Equal(t, 0, f.NumIf)
	assert.Equal(t, 0, f.NumParameters)
}

func TestExtract_CountsDeclarations(t *testing.T) {
	source := `public class UserService {
    private String name;
    protected int age;

    public interface Callback {}
}`

	f := Extract(source)

	assert.Equal(t, 1, f.NumClasses)
	assert.Equal(t, 1, f.NumInterfaces)
	// "public " twice, "private " once, "protected " once
	assert.Equal(t, 4, f.NumMethods)
	assert.Equal(t, 6, f.TotalLines)
	assert.Equal(t, 5, f.NonEmptyLines)
}

func TestExtract_LineBasedControlFlow(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		wantIf  int
		wantFor int
	}{
		{
			name:    "indented if counts once per line",
			source:  "    if (x > 0) {\n    if (y > 0) {",
			wantIf:  2,
			wantFor: 0,
		},
		{
			name: "two ifs on one line count once",
			source: "    if (x > 0) { } else if (y > 0) { }",
			wantIf:  1,
			wantFor: 0,
		},
		{
			name: "if at line start without paren juxtaposition is missed",
			source: "if (x > 0) {",
			wantIf:  0,
			wantFor: 0,
		},
		{
			name:    "for loop",
			source:  "    for (int i = 0; i < n; i++) {",
			wantIf:  0,
			wantFor: 1,
		},
		{
			name:    "enhanced for",
			source:  "    for(User u : users) {",
			wantIf:  0,
			wantFor: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Extract(tt.source)
			assert.Equal(t, tt.wantIf, f.NumIf, "if count")
			assert.Equal(t, tt.wantFor, f.NumFor, "for count")
		})
	}
}

func TestExtract_CommentLines(t *testing.T) {
	source := `// header comment
public class A {
    /* block */
    int x; // trailing
}`

	f := Extract(source)
	assert.Equal(t, 3, f.CommentLines)
}

func TestCountLineParameters(t *testing.T) {
	tests := []struct {
		name string
		line string
		want int
	}{
		{"no parens", "int x = 1;", 0},
		{"empty parens", "void run()", 0},
		{"single param", "void run(int x)", 1},
		{"three params", "void run(int a, int b, int c)", 3},
		{"two calls conflated into one span", "foo(a).bar(b)", 1},
		{"unbalanced", "foo(", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, countLineParameters(tt.line))
		})
	}
}

func TestFeatures_Lookups(t *testing.T) {
	f := Extract("public class Foo { String s = \"SELECT\"; }")

	assert.True(t, f.Has("SELECT"))
	assert.False(t, f.Has("select"))
	assert.True(t, f.HasLower("select"))
	assert.Equal(t, 1, f.Count("SELECT"))
	assert.Equal(t, 1, f.CountLower("select"))
}
