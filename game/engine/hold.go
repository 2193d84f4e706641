package engine

// Swap stashes the active kind and reports which kind becomes active next.
// fromBag is true when the slot was empty, meaning the caller must draw the
// replacement from the piece queue instead. Returns ok=false without any
// state change when the slot was already used since the last natural spawn.
func (h *HoldState) Swap(active PieceKind) (next PieceKind, fromBag bool, ok bool) {
	if h.UsedThisSpawn {
		return "", false, false
	}
	next = h.Held
	fromBag = h.Held == ""
	h.Held = active
	h.UsedThisSpawn = true
	return next, fromBag, true
}

// NoteSpawn re-arms the slot. Called exactly once per natural spawn; a spawn
// caused by the swap itself must not re-arm it.
func (h *HoldState) NoteSpawn() {
	h.UsedThisSpawn = false
}

// Clear empties the slot entirely, for full game resets
func (h *HoldState) Clear() {
	*h = HoldState{}
}
