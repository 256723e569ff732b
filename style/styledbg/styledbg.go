/*
Package styledbg prints compiled styles for debugging.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package styledbg

import (
	"fmt"

	"github.com/npillmayer/mapstyle/style"
	tp "github.com/xlab/treeprint"
)

// Dump renders a compiled style as an indented tree, one branch per
// rule, one sub-branch per symbolizer.
func Dump(s *style.Style) string {
	printer := tp.New()
	header := "style"
	if s.StyleProperty != "" {
		header = fmt.Sprintf("style (styleProperty=%s)", s.StyleProperty)
	}
	for i, r := range s.Rules() {
		branch := printer.AddBranch(fmt.Sprintf("rule %d  %s%s", i, r.Filter, scaleSuffix(r)))
		for _, sym := range r.Symbolizers {
			printSymbolizer(branch, sym)
		}
	}
	return header + "\n" + printer.String()
}

func printSymbolizer(printer tp.Tree, sym style.Symbolizer) {
	branch := printer.AddBranch(sym.Kind().String())
	for _, kv := range sym.Properties() {
		branch.AddNode(kv.Key + " = " + kv.Value.String())
	}
	if dash := sym.DashArray(); dash != nil {
		branch.AddNode(fmt.Sprintf("dash array = %v", dash))
	}
}

func scaleSuffix(r style.Rule) string {
	s := ""
	var bound float64
	if m := r.MinScale.Match(); m.Just(&bound) != nil {
		s += fmt.Sprintf("  minScale=%g", bound)
	}
	if m := r.MaxScale.Match(); m.Just(&bound) != nil {
		s += fmt.Sprintf("  maxScale=%g", bound)
	}
	return s
}
