package report

import "cmcreport/internal/domain"

// Group is the slots of one orientation and size class in upload order.
type Group struct {
	Orientation domain.Orientation
	Size        domain.SizeClass
	Slots       []domain.EvidenceSlot
}

// Partition splits slots into non-empty groups ordered horizontal before
// vertical and normal, mediana, grande within each orientation. The relative
// order of slots inside a group is preserved.
func Partition(slots []domain.EvidenceSlot) []Group {
	var groups []Group
	for _, o := range domain.Orientations {
		for _, s := range domain.SizeClasses {
			grp := Group{Orientation: o, Size: s}
			for i := range slots {
				if domain.ParseOrientation(string(slots[i].Orientation)) == o &&
					domain.ParseSizeClass(string(slots[i].Size)) == s {
					grp.Slots = append(grp.Slots, slots[i])
				}
			}
			if len(grp.Slots) > 0 {
				groups = append(groups, grp)
			}
		}
	}
	return groups
}
