package lang

import (
	"errors"
	"testing"

	"github.com/nexgo/runtime/internal/scene"
)

const demoSource = `
game SpaceBattle {
    import "ship.obj"
    import "enemy_ship.obj"

    object Player { position=(0,10,0) }
    object Enemy { position=(10,20,5) }

    ui HUD {
        panel topLeft { text "Score: 0" }
    }

    audio {
        bgm = "space_theme.mp3"
    }
}
`

func TestParseRequiresGameKeyword(t *testing.T) {
	for _, text := range []string{"", "object Player {}", "import \"a.obj\"", "g a m e"} {
		_, err := Parse(text)
		if err == nil {
			t.Fatalf("Parse(%q): expected error, got nil", text)
		}
		var syn *SyntaxError
		if !errors.As(err, &syn) {
			t.Fatalf("Parse(%q): expected *SyntaxError, got %T", text, err)
		}
	}
}

func TestParseObjectsGetDefaultTransform(t *testing.T) {
	g, err := Parse(demoSource)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(g.Objects) != 2 {
		t.Fatalf("expected 2 objects, got %d", len(g.Objects))
	}
	wantNames := []string{"Player", "Enemy"}
	for i, obj := range g.Objects {
		if obj.Name != wantNames[i] {
			t.Errorf("object %d: name %q, want %q", i, obj.Name, wantNames[i])
		}
		if obj.Position != (scene.Vec3{}) || obj.Rotation != (scene.Vec3{}) {
			t.Errorf("object %q: inline attributes must not override the default transform", obj.Name)
		}
		if obj.Scale != 1 {
			t.Errorf("object %q: scale %v, want 1", obj.Name, obj.Scale)
		}
	}
}

func TestParseAssetsKeepSourceOrder(t *testing.T) {
	g, err := Parse(demoSource)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := []string{"ship.obj", "enemy_ship.obj"}
	if len(g.Assets) != len(want) {
		t.Fatalf("assets %v, want %v", g.Assets, want)
	}
	for i := range want {
		if g.Assets[i] != want[i] {
			t.Fatalf("assets %v, want %v", g.Assets, want)
		}
	}
}

func TestParseKeywordMustLeadTheLine(t *testing.T) {
	g, err := Parse("game T\nmy object Thing\nreimport \"x.obj\"\nobjection Overruled")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(g.Objects) != 0 {
		t.Fatalf("expected no objects, got %d", len(g.Objects))
	}
	if len(g.Assets) != 0 {
		t.Fatalf("expected no assets, got %v", g.Assets)
	}
}

func TestParseAllowsDuplicateObjectNames(t *testing.T) {
	g, err := Parse("game T\nobject Crate {}\nobject Crate {}")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(g.Objects) != 2 {
		t.Fatalf("expected duplicate names kept, got %d objects", len(g.Objects))
	}
}

func TestClassifyKinds(t *testing.T) {
	cases := []struct {
		line string
		kind LineKind
		arg  string
	}{
		{"game Demo {", LineGame, "Demo"},
		{"object Player {}", LineObject, "Player"},
		{`import "x.obj"`, LineImport, "x.obj"},
		{"ui HUD {", LineUI, "HUD"},
		{"audio {", LineAudio, "{"},
		{"object", LineOther, ""},
		{"}", LineOther, ""},
		{"bgm = \"space_theme.mp3\"", LineOther, ""},
	}
	for _, tc := range cases {
		got := classify(tc.line)
		if got.Kind != tc.kind {
			t.Errorf("classify(%q): kind %v, want %v", tc.line, got.Kind, tc.kind)
		}
		if tc.kind != LineOther && got.Arg != tc.arg {
			t.Errorf("classify(%q): arg %q, want %q", tc.line, got.Arg, tc.arg)
		}
	}
}
