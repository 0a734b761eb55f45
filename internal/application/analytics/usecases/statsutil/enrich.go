package statsutil

import (
	"opsight/internal/domain/directory"
	"opsight/internal/shared/constants"
)

// EnrichEntries attaches display identity from the directory to ranked
// entries in place. A missing directory entry degrades to the placeholder
// name and an empty avatar; ranks and values are never touched.
func EnrichEntries(entries []RankedEntry, dir map[uint]*directory.Entry) {
	for i := range entries {
		entry, ok := dir[entries[i].OwnerID]
		if !ok || entry == nil {
			entries[i].DisplayName = constants.PlaceholderDisplayName
			entries[i].Avatar = ""
			continue
		}
		entries[i].DisplayName = entry.DisplayName()
		entries[i].Avatar = entry.Avatar()
	}
}

// EnrichEntry applies the same decoration to a single optional entry.
func EnrichEntry(entry *RankedEntry, dir map[uint]*directory.Entry) {
	if entry == nil {
		return
	}
	single := []RankedEntry{*entry}
	EnrichEntries(single, dir)
	*entry = single[0]
}
