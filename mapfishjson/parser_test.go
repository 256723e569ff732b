package mapfishjson

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/npillmayer/fp/maybe"
	"github.com/npillmayer/mapstyle/ecql"
	"github.com/npillmayer/mapstyle/style"
	"github.com/npillmayer/mapstyle/style/styledbg"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

// mustCompile runs a document through the parser and fails the test
// unless a style comes out.
func mustCompile(t *testing.T, p *Plugin, doc string) *style.Style {
	t.Helper()
	parsed, err := p.ParseStyle(doc)
	require.NoError(t, err)
	var s *style.Style
	switch m := parsed.Match(); m {
	case m.Just(&s):
	case m.Nothing():
		t.Fatal("expected the document to compile to a style, got Nothing")
	}
	t.Logf("compiled:\n%s", styledbg.Dump(s))
	return s
}

func TestVersion1Simple(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mapstyle.mapfishjson")
	defer teardown()
	//
	s := mustCompile(t, New(nil, nil), `{
		"version": "1",
		"styleProperty": "_gx_style",
		"1": { "strokeColor": "#FFA829", "strokeWidth": 5 }
	}`)
	require.Equal(t, "_gx_style", s.StyleProperty)
	require.Equal(t, 1, s.Len())
	rule := s.Rules()[0]
	if m := rule.Filter.Match(); m.MatchAll() == nil {
		t.Error("expected version-1 rules to match every feature")
	}
	require.Len(t, rule.Symbolizers, 1)
	sym := rule.Symbolizers[0]
	require.Equal(t, style.Line, sym.Kind())
	if p, _ := sym.Property("strokeColor"); p != "#FFA829" {
		t.Errorf("expected strokeColor #FFA829, have %q", p)
	}
	if p, _ := sym.Property("strokeWidth"); p != "5" {
		t.Errorf("expected strokeWidth 5, have %q", p)
	}
}

func TestVersion1RuleOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mapstyle.mapfishjson")
	defer teardown()
	//
	s := mustCompile(t, New(nil, nil), `{
		"version": "1",
		"2":     { "strokeWidth": 2 },
		"10":    { "strokeWidth": 10 },
		"1":     { "strokeWidth": 1 },
		"notes": { "strokeWidth": 99 }
	}`)
	require.Equal(t, 4, s.Len())
	var widths []string
	for _, r := range s.Rules() {
		p, _ := r.Symbolizers[0].Property("strokeWidth")
		widths = append(widths, p.String())
	}
	require.Equal(t, []string{"1", "2", "10", "99"}, widths)
}

func TestVersion1MixedBundle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mapstyle.mapfishjson")
	defer teardown()
	//
	s := mustCompile(t, New(nil, nil), `{
		"version": "1",
		"1": {
			"fillColor": "#FF0000",
			"strokeColor": "#FFA829",
			"pointRadius": 6,
			"label": "hello"
		}
	}`)
	require.Equal(t, 1, s.Len())
	kinds := make([]style.Kind, 0, 4)
	for _, sym := range s.Rules()[0].Symbolizers {
		kinds = append(kinds, sym.Kind())
	}
	// paint order: fills below lines below points below labels
	require.Equal(t, []style.Kind{style.Polygon, style.Line, style.Point, style.Text}, kinds)
	text := s.Rules()[0].Symbolizers[3]
	var label string
	if m := text.Label().Match(); m.Literal(&label) == nil || label != "hello" {
		t.Errorf("expected literal label 'hello', have %v", text.Label())
	}
}

func TestVersion2ValueSubstitution(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mapstyle.mapfishjson")
	defer teardown()
	//
	s := mustCompile(t, New(nil, nil), `{
		"version": "2",
		"val1": "#FFA829",
		"[population > 300]": {
			"symbolizers": [
				{ "type": "polygon", "strokeColor": "${val1}", "strokeWidth": "3" }
			]
		}
	}`)
	require.Equal(t, 1, s.Len())
	rule := s.Rules()[0]
	var e ecql.Expr
	if m := rule.Filter.Match(); m.Expression(&e) == nil || e != "population > 300" {
		t.Fatalf("expected expression filter, have %v", rule.Filter)
	}
	require.Len(t, rule.Symbolizers, 1)
	sym := rule.Symbolizers[0]
	require.Equal(t, style.Polygon, sym.Kind())
	if p, _ := sym.Property("strokeColor"); p != "#FFA829" {
		t.Errorf("expected ${val1} to resolve to #FFA829, have %q", p)
	}
	for _, kv := range sym.Properties() {
		if strings.Contains(kv.Value.String(), "${") {
			t.Errorf("resolved property %s still carries a reference: %q", kv.Key, kv.Value)
		}
	}
}

func TestVersion2DefaultLayers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mapstyle.mapfishjson")
	defer teardown()
	//
	s := mustCompile(t, New(nil, nil), `{
		"version": "2",
		"strokeWidth": "1",
		"strokeLinecap": "round",
		"*": {
			"strokeWidth": "3",
			"strokeColor": "#00FF00",
			"symbolizers": [
				{ "type": "line", "strokeWidth": "5" },
				{ "type": "line" }
			]
		}
	}`)
	require.Equal(t, 1, s.Len())
	syms := s.Rules()[0].Symbolizers
	require.Len(t, syms, 2)
	// symbolizer value beats rule default beats style default
	if p, _ := syms[0].Property("strokeWidth"); p != "5" {
		t.Errorf("expected symbolizer layer to win, have %q", p)
	}
	if p, _ := syms[1].Property("strokeWidth"); p != "3" {
		t.Errorf("expected rule default to win, have %q", p)
	}
	for i, sym := range syms {
		if p, _ := sym.Property("strokeLinecap"); p != "round" {
			t.Errorf("expected style default linecap for symbolizer %d, have %q", i, p)
		}
		if p, _ := sym.Property("strokeColor"); p != "#00FF00" {
			t.Errorf("expected rule default color for symbolizer %d, have %q", i, p)
		}
	}
}

func TestVersion2ScaleBounds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mapstyle.mapfishjson")
	defer teardown()
	//
	s := mustCompile(t, New(nil, nil), `{
		"version": "2",
		"*": {
			"minScale": 100000,
			"maxScale": "1000000",
			"symbolizers": [ { "type": "line" } ]
		}
	}`)
	rule := s.Rules()[0]
	if v := rule.MinScale.WithDefault(-1); v != 100000 {
		t.Errorf("expected minScale 100000, have %v", v)
	}
	if v := rule.MaxScale.WithDefault(-1); v != 1000000 {
		t.Errorf("expected quoted maxScale to parse, have %v", v)
	}
	//
	_, err := New(nil, nil).ParseStyle(`{
		"version": "2",
		"*": { "minScale": "low", "symbolizers": [ { "type": "line" } ] }
	}`)
	if !errors.Is(err, ErrMalformedDocument) {
		t.Errorf("expected non-numeric scale bound to be rejected, have %v", err)
	}
}

func TestVersion2TextLabel(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mapstyle.mapfishjson")
	defer teardown()
	//
	s := mustCompile(t, New(nil, nil), `{
		"version": "2",
		"*": {
			"symbolizers": [ { "type": "text", "label": "[name]" } ]
		}
	}`)
	sym := s.Rules()[0].Symbolizers[0]
	require.Equal(t, style.Text, sym.Kind())
	var e ecql.Expr
	if m := sym.Label().Match(); m.Expression(&e) == nil || e != "name" {
		t.Errorf("expected dynamic label expression 'name', have %v", sym.Label())
	}
	//
	_, err := New(nil, nil).ParseStyle(`{
		"version": "2",
		"*": { "symbolizers": [ { "type": "text" } ] }
	}`)
	if !errors.Is(err, ErrMissingRequiredProperty) {
		t.Errorf("expected text symbolizer without label to be rejected, have %v", err)
	}
}

func TestVersion2DashCompilation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mapstyle.mapfishjson")
	defer teardown()
	//
	s := mustCompile(t, New(nil, nil), `{
		"version": "2",
		"*": {
			"symbolizers": [
				{ "type": "line", "strokeDashstyle": "dashdot", "strokeWidth": "2" }
			]
		}
	}`)
	dash := s.Rules()[0].Symbolizers[0].DashArray()
	require.Equal(t, []float64{6, 4, 0.1, 4}, dash)
}

func TestVersion2Errors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mapstyle.mapfishjson")
	defer teardown()
	//
	p := New(nil, nil)
	cases := []struct {
		doc  string
		want error
	}{
		{`{ "version": "2", "val1": "x" }`, ErrMissingRequiredProperty}, // no rules
		{`{ "version": "2", "[a > 1]": "scalar" }`, ErrMalformedDocument},
		{`{ "version": "2", "bad name": "x", "*": { "symbolizers": [ { "type": "line" } ] } }`,
			ErrMalformedDocument},
		{`{ "version": "2", "*": { "symbolizers": [] } }`, ErrMissingRequiredProperty},
		{`{ "version": "2", "*": { "symbolizers": [ { "type": "blob" } ] } }`,
			ErrUnknownSymbolizerType},
		{`{ "version": "2", "*": {
			"symbolizers": [ { "type": "line", "strokeColor": "${nope}" } ] } }`,
			ErrUnresolvedValueReference},
		{`{ "version": "1", "1": "flat" }`, ErrMalformedDocument},
	}
	for _, c := range cases {
		_, err := p.ParseStyle(c.doc)
		if !errors.Is(err, c.want) {
			t.Errorf("expected %v for %s, have %v", c.want, c.doc, err)
		}
	}
}

func TestUnknownVersionIsNothing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mapstyle.mapfishjson")
	defer teardown()
	//
	parsed, err := New(nil, nil).ParseStyle(`{ "version": "3", "*": {} }`)
	require.NoError(t, err)
	if isJust(parsed) {
		t.Error("expected unsupported version to yield Nothing")
	}
	//
	parsed, err = New(nil, nil).ParseStyle(`not a style at all`)
	require.NoError(t, err)
	if isJust(parsed) {
		t.Error("expected non-JSON input without a loader to yield Nothing")
	}
}

// stubLoader serves canned documents by reference.
type stubLoader struct {
	docs map[string]string
}

func (l *stubLoader) Load(ref string) ([]byte, error) {
	doc, ok := l.docs[ref]
	if !ok {
		return nil, fmt.Errorf("no such document: %q", ref)
	}
	return []byte(doc), nil
}

func TestLoaderFallback(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mapstyle.mapfishjson")
	defer teardown()
	//
	loader := &stubLoader{docs: map[string]string{
		"styles/roads.json": `{ "version": "1", "1": { "strokeColor": "#FFA829" } }`,
	}}
	p := New(loader, nil)
	s := mustCompile(t, p, "styles/roads.json")
	require.Equal(t, 1, s.Len())
	//
	_, err := p.ParseStyle("styles/missing.json")
	if err == nil {
		t.Error("expected a load error for an unknown reference")
	}
}

// stubResolver resolves graphic references against a fake directory.
type stubResolver struct{}

func (stubResolver) Resolve(ref string) (string, error) {
	return "/config/" + ref, nil
}

func TestExternalGraphicResolution(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mapstyle.mapfishjson")
	defer teardown()
	//
	s := mustCompile(t, New(nil, stubResolver{}), `{
		"version": "2",
		"*": {
			"symbolizers": [
				{ "type": "point", "externalGraphic": "marker.png" },
				{ "type": "point", "externalGraphic": "http://example.com/marker.png" }
			]
		}
	}`)
	syms := s.Rules()[0].Symbolizers
	if p, _ := syms[0].Property("externalGraphic"); p != "/config/marker.png" {
		t.Errorf("expected file reference to be resolved, have %q", p)
	}
	if p, _ := syms[1].Property("externalGraphic"); p != "http://example.com/marker.png" {
		t.Errorf("expected URL reference to pass through, have %q", p)
	}
}

func TestStyleIsRefused(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mapstyle.mapfishjson")
	defer teardown()
	//
	parsed, err := New(nil, nil).ParseStyle("")
	require.NoError(t, err)
	require.Equal(t, maybe.Nothing[*style.Style](), parsed)
}
