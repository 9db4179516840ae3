package world

// Reachable returns the rooms that can be reached from the starting room by
// following motion entries, ignoring keys.
func (w *World) Reachable() map[int]bool {
	seen := make(map[int]bool)
	start := w.StartingRoom()
	if start == nil {
		return seen
	}

	queue := []int{start.Number}
	seen[start.Number] = true
	for len(queue) > 0 {
		room := w.rooms[queue[0]]
		queue = queue[1:]
		for _, e := range room.motion {
			if e.Destination == GameOverRoom || seen[e.Destination] {
				continue
			}
			seen[e.Destination] = true
			queue = append(queue, e.Destination)
		}
	}
	return seen
}

// Unreachable returns the numbers of rooms no path from the start leads to.
func (w *World) Unreachable() []int {
	seen := w.Reachable()
	var out []int
	for _, num := range w.order {
		if !seen[num] {
			out = append(out, num)
		}
	}
	return out
}

// CanEnd reports whether any reachable room has an exit to GameOverRoom.
func (w *World) CanEnd() bool {
	for num := range w.Reachable() {
		for _, e := range w.rooms[num].motion {
			if e.Destination == GameOverRoom {
				return true
			}
		}
	}
	return false
}
