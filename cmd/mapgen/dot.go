package main

import (
	"fmt"
	"strings"

	"github.com/lawnchairsociety/adventure/internal/world"
)

// renderDOT writes the world as a directed graph. Forced passages are
// dashed, keyed exits carry the key in their label, and every exit to room 0
// points at a single END node. Unreachable rooms are greyed out.
func renderDOT(output *strings.Builder, w *world.World, showObjects bool) {
	fmt.Fprintf(output, "digraph %s {\n", quote(w.Name))
	output.WriteString("  rankdir=LR;\n")
	output.WriteString("  node [shape=box, fontname=\"Helvetica\"];\n")

	reachable := w.Reachable()
	start := w.StartingRoom()
	hasEnd := false

	for _, room := range w.Rooms() {
		label := fmt.Sprintf("%d: %s", room.Number, room.Name)
		if showObjects && room.ObjectCount() > 0 {
			names := make([]string, 0, room.ObjectCount())
			for _, obj := range room.Objects() {
				names = append(names, obj.Name)
			}
			label += "\n[" + strings.Join(names, ", ") + "]"
		}

		var attrs []string
		attrs = append(attrs, "label="+quote(label))
		switch {
		case start != nil && room.Number == start.Number:
			attrs = append(attrs, "style=bold")
		case !reachable[room.Number]:
			attrs = append(attrs, "color=gray", "fontcolor=gray")
		}
		if room.IsForced() {
			attrs = append(attrs, "shape=ellipse")
		}
		fmt.Fprintf(output, "  r%d [%s];\n", room.Number, strings.Join(attrs, ", "))
	}

	for _, room := range w.Rooms() {
		for _, e := range room.MotionTable() {
			target := fmt.Sprintf("r%d", e.Destination)
			if e.Destination == world.GameOverRoom {
				target = "end"
				hasEnd = true
			}

			label := e.Direction
			if !e.Unconditional() {
				label += " (" + e.Key + ")"
			}
			attrs := []string{"label=" + quote(label)}
			if e.Direction == world.Forced {
				attrs = append(attrs, "style=dashed")
			}
			fmt.Fprintf(output, "  r%d -> %s [%s];\n", room.Number, target, strings.Join(attrs, ", "))
		}
	}

	if hasEnd {
		output.WriteString("  end [label=\"GAME OVER\", shape=doublecircle];\n")
	}
	output.WriteString("}\n")
}

// quote returns s as a DOT string literal.
func quote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)
	return `"` + r.Replace(s) + `"`
}
